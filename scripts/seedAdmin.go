package main

import (
	"log"
	"os"

	"techclass/config"
	"techclass/database"
	"techclass/models"

	"golang.org/x/crypto/bcrypt"
)

// Seeds the initial admin account. Run once after the first migration:
//
//	ADMIN_EMAIL=admin@techclass.io ADMIN_PASSWORD=... go run scripts/seedAdmin.go
func main() {
	config.LoadConfig()
	database.ConnectDb()

	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		log.Fatal("ADMIN_EMAIL and ADMIN_PASSWORD must be set")
	}

	db := database.Database.Db

	var existing models.User
	if err := db.Where("email = ?", email).First(&existing).Error; err == nil {
		log.Printf("Admin %s already exists (id=%d), nothing to do", email, existing.ID)
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), config.AppConfig.SaltRound)
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}

	admin := models.User{
		Name:            "Platform Admin",
		Email:           email,
		Password:        string(hashed),
		Role:            "ADMIN",
		IsEmailVerified: true,
	}

	if err := db.Create(&admin).Error; err != nil {
		log.Fatalf("Failed to create admin: %v", err)
	}

	log.Printf("Admin %s created (id=%d)", email, admin.ID)
}
