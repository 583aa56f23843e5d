package seed

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"verdant/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Options configuration for the seeder
type Options struct {
	NumUsers      int
	PlantsPerUser int
	MaxDays       int
	ShouldClean   bool
	// SkipBcrypt uses a static placeholder hash; seeded accounts then
	// cannot log in, but seeding thousands of users stays fast.
	SkipBcrypt bool
}

// Factory builds domain entities and persists them to the database.
type Factory struct {
	db      *gorm.DB
	opts    Options
	species []Species
	rng     *rand.Rand
}

// NewFactory creates a new Factory bound to the provided Gorm DB.
func NewFactory(db *gorm.DB, opts Options) (*Factory, error) {
	species, err := LoadSpeciesCatalog()
	if err != nil {
		return nil, err
	}
	gofakeit.Seed(time.Now().UnixNano())
	return &Factory{
		db:      db,
		opts:    opts,
		species: species,
		rng:     rand.New(rand.NewSource(time.Now().UnixNano())),
	}, nil
}

// CreateUser constructs and persists a sample `models.User`.
// Optional override functions may modify the generated user before saving.
func (f *Factory) CreateUser(overrides ...func(*models.User)) (*models.User, error) {
	user := &models.User{
		Username: gofakeit.Username() + fmt.Sprintf("%d", gofakeit.Number(100, 999)),
		Email:    gofakeit.Email(),
	}

	if f.opts.SkipBcrypt {
		user.Password = "$2a$10$seeded.placeholder.hash.not.a.real.credential000000"
	} else {
		hashed, err := bcrypt.GenerateFromPassword([]byte("Password123!"+gofakeit.Word()), bcrypt.MinCost)
		if err != nil {
			return nil, fmt.Errorf("hash seed password: %w", err)
		}
		user.Password = string(hashed)
	}

	for _, override := range overrides {
		override(user)
	}

	if err := f.db.Create(user).Error; err != nil {
		return nil, fmt.Errorf("create seed user: %w", err)
	}
	return user, nil
}

// BuildPlant constructs a plant for the given owner from the species
// catalog but does not persist it. Useful for batching.
func (f *Factory) BuildPlant(owner *models.User, overrides ...func(*models.Plant)) *models.Plant {
	sp := f.species[f.rng.Intn(len(f.species))]

	plant := &models.Plant{
		UserID:      owner.ID,
		Name:        sp.Name,
		Description: sp.Description,
		Color:       sp.Color,
		ImageSrc:    fmt.Sprintf("https://picsum.photos/seed/%s/600/600", gofakeit.UUID()),
		CreatedAt:   f.pastTimestamp(),
	}

	for _, override := range overrides {
		override(plant)
	}
	return plant
}

// CreatePlantsBatch persists multiple plants in a single DB call.
func (f *Factory) CreatePlantsBatch(plants []*models.Plant) error {
	if len(plants) == 0 {
		return nil
	}
	return f.db.Create(&plants).Error
}

// CreateWaterings backfills a believable watering history for a plant:
// between zero and five events, spread out after the plant's creation.
func (f *Factory) CreateWaterings(plant *models.Plant) error {
	count := f.rng.Intn(6)
	for i := 0; i < count; i++ {
		watering := &models.Watering{
			PlantID:   plant.ID,
			CreatedAt: plant.CreatedAt.Add(time.Duration(i+1) * time.Duration(12+f.rng.Intn(120)) * time.Hour),
		}
		if err := f.db.Create(watering).Error; err != nil {
			return fmt.Errorf("create seed watering: %w", err)
		}
	}
	return nil
}

func (f *Factory) pastTimestamp() time.Time {
	maxDays := f.opts.MaxDays
	if maxDays <= 0 {
		maxDays = 90
	}
	daysBack := f.rng.Intn(maxDays)
	hoursBack := f.rng.Intn(24)
	return time.Now().Add(-time.Duration(daysBack)*24*time.Hour - time.Duration(hoursBack)*time.Hour)
}

// Seed populates the database with demo users, plants and waterings.
func Seed(db *gorm.DB, opts Options) error {
	log.Printf("Seeding database with %d users, %d plants each...", opts.NumUsers, opts.PlantsPerUser)

	if opts.ShouldClean {
		if err := clearData(db); err != nil {
			log.Println("Warning: could not clear all existing data, continuing anyway...")
		}
	}

	factory, err := NewFactory(db, opts)
	if err != nil {
		return err
	}

	for i := 0; i < opts.NumUsers; i++ {
		user, err := factory.CreateUser()
		if err != nil {
			return err
		}

		plants := make([]*models.Plant, 0, opts.PlantsPerUser)
		for j := 0; j < opts.PlantsPerUser; j++ {
			plants = append(plants, factory.BuildPlant(user))
		}
		if err := factory.CreatePlantsBatch(plants); err != nil {
			return fmt.Errorf("create seed plants: %w", err)
		}

		for _, plant := range plants {
			if err := factory.CreateWaterings(plant); err != nil {
				return err
			}
		}
	}

	log.Println("Seeding complete")
	return nil
}

func clearData(db *gorm.DB) error {
	// Children before parents to keep FK constraints happy.
	for _, model := range []interface{}{
		&models.Attachment{},
		&models.Watering{},
		&models.Plant{},
		&models.User{},
	} {
		if err := db.Session(&gorm.Session{AllowGlobalUpdate: true}).Unscoped().Delete(model).Error; err != nil {
			return err
		}
	}
	return nil
}
