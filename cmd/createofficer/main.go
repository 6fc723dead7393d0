package main

import (
	"errors"
	"flag"
	"log"

	"gorm.io/gorm"

	"github.com/janmarg/CivicPortal/app/models"
	"github.com/janmarg/CivicPortal/app/repository"
	"github.com/janmarg/CivicPortal/internal/pkg/config"
	"github.com/janmarg/CivicPortal/internal/pkg/database"
)

// Officer accounts are provisioned by an administrator on the command
// line; there is deliberately no self-service officer registration.
func main() {
	name := flag.String("name", "", "full name of the officer")
	email := flag.String("email", "", "login e-mail of the officer")
	password := flag.String("password", "", "initial password")
	flag.Parse()

	if *name == "" || *email == "" || *password == "" {
		flag.Usage()
		log.Fatal("name, email and password are required")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	database.SetupDatabase(cfg.Database)
	repository.InitializeFactory(database.GetDB())

	officer, err := models.NewOfficer(*name, *email, *password)
	if err != nil {
		log.Fatalf("failed to build officer account: %v", err)
	}

	repos := repository.GetGlobalRepositories()
	if err := repos.Officer.Create(officer); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			log.Fatalf("an officer with e-mail %s already exists", officer.Email)
		}
		log.Fatalf("failed to create officer: %v", err)
	}

	log.Printf("officer %s (%s) created with ID %d", officer.Name, officer.Email, officer.ID)
}
