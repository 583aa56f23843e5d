// Command main runs the database seeder for Verdant.
package main

import (
	"context"
	"flag"
	"log"

	"verdant/internal/bootstrap"
	"verdant/internal/config"
	"verdant/internal/seed"
)

func main() {
	numUsers := flag.Int("users", 20, "Number of users to create")
	plantsPerUser := flag.Int("plants", 5, "Number of plants per user")
	maxDays := flag.Int("max-days", 90, "Spread creation timestamps over this many days")
	shouldClean := flag.Bool("clean", true, "Clean database before seeding")
	skipBcrypt := flag.Bool("skip-bcrypt", false, "Use placeholder password hashes (faster, accounts cannot log in)")
	flag.Parse()

	log.Println("Database Seeder")
	log.Printf("Target: %d users, %d plants each, clean=%v\n", *numUsers, *plantsPerUser, *shouldClean)

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, redisClient, err := bootstrap.InitRuntime(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize runtime: %v", err)
	}

	if err := seed.Seed(db, seed.Options{
		NumUsers:      *numUsers,
		PlantsPerUser: *plantsPerUser,
		MaxDays:       *maxDays,
		ShouldClean:   *shouldClean,
		SkipBcrypt:    *skipBcrypt,
	}); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}

	// Seeding rewrites rows underneath any cached lists.
	if redisClient != nil {
		if err := redisClient.FlushDB(context.Background()).Err(); err != nil {
			log.Printf("Cache flush failed: %v", err)
		}
	}
}
