// Command main populates the development database with demo data.
package main

import (
	"flag"
	"log"

	"lightbox/internal/config"
	"lightbox/internal/database"
	"lightbox/internal/seed"
)

func main() {
	opts := seed.DefaultOptions()
	flag.IntVar(&opts.Creators, "creators", opts.Creators, "number of creator accounts")
	flag.IntVar(&opts.Consumers, "consumers", opts.Consumers, "number of consumer accounts")
	flag.IntVar(&opts.PostsPerCreator, "posts", opts.PostsPerCreator, "posts per creator")
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
		log.Fatalf("Database connection failed: %v", err)
	}

	if err := seed.Run(db, opts); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}
}
