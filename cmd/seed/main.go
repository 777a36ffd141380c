package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"resto-reserve-be/internal/model"
	"resto-reserve-be/pkg/database"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	log.Println("Seeding dining tables...")

	locations := []string{"window", "window", "center", "center", "center", "terrace", "terrace", "bar", "bar", "private"}
	capacities := []int{2, 2, 4, 4, 6, 4, 2, 2, 2, 8}

	for i := 0; i < 10; i++ {
		table := model.DiningTable{
			Id:          uuid.New(),
			TableNumber: fmt.Sprintf("T-%02d", i+1),
			Capacity:    capacities[i],
			Location:    locations[i],
		}
		// Idempotent on table_number
		result := db.Where("table_number = ?", table.TableNumber).FirstOrCreate(&table)
		if result.Error != nil {
			log.Printf("Warn: failed to seed table %s: %v", table.TableNumber, result.Error)
		}
	}

	log.Println("Seeding admin user...")

	adminPassword := os.Getenv("SEED_ADMIN_PASSWORD")
	if adminPassword == "" {
		adminPassword = "admin12345"
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Error: failed to hash admin password: %v", err)
	}

	admin := model.User{
		Id:           uuid.New(),
		Username:     "admin",
		Email:        "admin@restoreserve.local",
		PasswordHash: string(hash),
		FullName:     "Restaurant Admin",
		Role:         "admin",
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
	result := db.Where("username = ?", admin.Username).FirstOrCreate(&admin)
	if result.Error != nil {
		log.Printf("Warn: failed to seed admin user: %v", result.Error)
	}

	log.Println("Seeding completed.")
}
