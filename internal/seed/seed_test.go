package seed

import (
	"strings"
	"testing"

	"verdant/internal/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func TestLoadSpeciesCatalog(t *testing.T) {
	t.Parallel()

	species, err := LoadSpeciesCatalog()
	if err != nil {
		t.Fatalf("load catalog: %v", err)
	}
	if len(species) == 0 {
		t.Fatal("expected a non-empty catalog")
	}
	for _, sp := range species {
		if sp.Name == "" {
			t.Fatal("species with empty name")
		}
		if !strings.HasPrefix(sp.Color, "#") || len(sp.Color) != 7 {
			t.Fatalf("species %s has non-hex color %q", sp.Name, sp.Color)
		}
	}
}

func TestSeed_PopulatesUsersPlantsWaterings(t *testing.T) {
	t.Parallel()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if migrateErr := db.AutoMigrate(
		&models.User{},
		&models.Plant{},
		&models.Watering{},
		&models.Attachment{},
	); migrateErr != nil {
		t.Fatalf("migrate: %v", migrateErr)
	}

	err = Seed(db, Options{NumUsers: 3, PlantsPerUser: 2, SkipBcrypt: true})
	if err != nil {
		t.Fatalf("seed: %v", err)
	}

	var userCount, plantCount int64
	if err := db.Model(&models.User{}).Count(&userCount).Error; err != nil {
		t.Fatalf("count users: %v", err)
	}
	if err := db.Model(&models.Plant{}).Count(&plantCount).Error; err != nil {
		t.Fatalf("count plants: %v", err)
	}
	if userCount != 3 {
		t.Fatalf("expected 3 users, got %d", userCount)
	}
	if plantCount != 6 {
		t.Fatalf("expected 6 plants, got %d", plantCount)
	}

	// Waterings must all reference seeded plants.
	var orphaned int64
	err = db.Model(&models.Watering{}).
		Where("plant_id NOT IN (?)", db.Model(&models.Plant{}).Select("id")).
		Count(&orphaned).Error
	if err != nil {
		t.Fatalf("count orphaned waterings: %v", err)
	}
	if orphaned != 0 {
		t.Fatalf("found %d waterings without a plant", orphaned)
	}
}

func TestSeed_CleanRemovesPreviousData(t *testing.T) {
	t.Parallel()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if migrateErr := db.AutoMigrate(
		&models.User{},
		&models.Plant{},
		&models.Watering{},
		&models.Attachment{},
	); migrateErr != nil {
		t.Fatalf("migrate: %v", migrateErr)
	}

	if err := Seed(db, Options{NumUsers: 2, PlantsPerUser: 1, SkipBcrypt: true}); err != nil {
		t.Fatalf("first seed: %v", err)
	}
	if err := Seed(db, Options{NumUsers: 2, PlantsPerUser: 1, SkipBcrypt: true, ShouldClean: true}); err != nil {
		t.Fatalf("second seed: %v", err)
	}

	var userCount int64
	if err := db.Model(&models.User{}).Count(&userCount).Error; err != nil {
		t.Fatalf("count users: %v", err)
	}
	if userCount != 2 {
		t.Fatalf("expected clean re-seed to leave 2 users, got %d", userCount)
	}
}
