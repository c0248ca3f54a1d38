package main

import (
	"context"
	"log"
	"os"

	"groupchat/internal/auth"
	"groupchat/internal/config"
	"groupchat/internal/db"
	"groupchat/internal/model"
	"groupchat/internal/repository"
	"groupchat/internal/service"
)

// Seeds the bootstrap admin account. Registration defaults new users to the
// "user" role, so a fresh deployment needs one admin created out of band
// before the admin-only user management endpoints are usable.
func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := db.Migrate(gormDB); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	username := os.Getenv("ADMIN_USERNAME")
	if username == "" {
		username = "admin"
	}
	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		log.Fatal("ADMIN_PASSWORD must be set")
	}

	userRepo := repository.NewUserRepository(gormDB)
	authService := service.NewAuthService(userRepo, auth.NewJWTService(cfg.JWTSecret))

	user, err := authService.Register(context.Background(), username, password, model.RoleAdmin)
	if err != nil {
		if err == service.ErrUsernameTaken {
			log.Printf("Admin user %q already exists, nothing to do", username)
			return
		}
		log.Fatalf("Failed to create admin user: %v", err)
	}

	log.Printf("Seed completed successfully!")
	log.Printf("  - Admin user created: %s (%s)", user.Username, user.ID)
}
