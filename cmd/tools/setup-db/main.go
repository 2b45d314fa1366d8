package main

import (
	"context"
	"flag"
	"log"

	"github.com/anonbbs-dev/anonbbs/internal/config"
	"github.com/anonbbs-dev/anonbbs/internal/storage/pg"
)

// Recreates the database schema from scratch. Destructive: drops every
// table first, so it refuses to run without -force.
func main() {
	var configFolder string
	var force bool
	flag.StringVar(&configFolder, "config_folder", "config", "path to folder with configs")
	flag.BoolVar(&force, "force", false, "confirm dropping and recreating all tables")
	flag.Parse()

	if !force {
		log.Fatal("refusing to drop the schema without -force")
	}

	cfg := config.MustLoad(configFolder)

	storage, err := pg.New(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer storage.Cleanup()

	if err := storage.Setup(context.Background()); err != nil {
		log.Fatal(err)
	}
	log.Print("schema created")
}
