package main

import (
	"Finora-Backend/cmd/config"
	migration "Finora-Backend/cmd/database/migrate"
	"Finora-Backend/internal/utils"
	"log"
)

func main() {
	utils.LoadConfig()

	db, err := config.ConnectDB()
	if err != nil {
		log.Fatalf("error connecting to database: %v", err)
	}

	if err := migration.Migrate(db); err != nil {
		log.Fatalf("error migrating database: %v", err)
	}

	app, err := config.NewApp(db)
	if err != nil {
		log.Fatalf("error creating app: %v", err)
	}

	if err := app.Listen(":8080"); err != nil {
		log.Fatalf("error starting server: %v", err)
	}
}
