// Command seed populates the database with demo data for development.
package main

import (
	"flag"
	"log"

	"foodgram/internal/config"
	"foodgram/internal/database"
	"foodgram/internal/seed"
)

func main() {
	users := flag.Int("users", 0, "number of users to create (0 = preset default)")
	recipes := flag.Int("recipes", 0, "recipes per user (0 = preset default)")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if cfg.IsProduction() {
		log.Fatal("Refusing to seed a production database")
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	opts := seed.DefaultOptions()
	if *users > 0 {
		opts.Users = *users
	}
	if *recipes > 0 {
		opts.RecipesPerUser = *recipes
	}

	if err := seed.RunDemo(db, opts); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}
	log.Println("Seeding complete")
}
