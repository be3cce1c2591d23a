package main

import (
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"rental-marketplace-backend/internal/config"
	"rental-marketplace-backend/internal/database"
	"rental-marketplace-backend/internal/database/models"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Simple structures that directly match DB schema
type OwnerData struct {
	ID   int64  `yaml:"id"`
	Name string `yaml:"name"`
}

type CustomerData struct {
	ID   int64  `yaml:"id"`
	Name string `yaml:"name"`
}

type ApartmentData struct {
	ID      int64  `yaml:"id"`
	Address string `yaml:"address"`
	City    string `yaml:"city"`
	Country string `yaml:"country"`
	Size    int    `yaml:"size"`
	OwnerID int64  `yaml:"owner_id,omitempty"`
}

type ReservationData struct {
	CustomerID  int64   `yaml:"customer_id"`
	ApartmentID int64   `yaml:"apartment_id"`
	StartDate   string  `yaml:"start_date"`
	EndDate     string  `yaml:"end_date"`
	TotalPrice  float64 `yaml:"total_price"`
}

type ReviewData struct {
	CustomerID  int64  `yaml:"customer_id"`
	ApartmentID int64  `yaml:"apartment_id"`
	Date        string `yaml:"date"`
	Rating      int    `yaml:"rating"`
	Text        string `yaml:"text,omitempty"`
}

// File structures
type OwnersFile struct {
	Owners []OwnerData `yaml:"owners"`
}

type CustomersFile struct {
	Customers []CustomerData `yaml:"customers"`
}

type ApartmentsFile struct {
	Apartments []ApartmentData `yaml:"apartments"`
}

type ReservationsFile struct {
	Reservations []ReservationData `yaml:"reservations"`
}

type ReviewsFile struct {
	Reviews []ReviewData `yaml:"reviews"`
}

func main() {
	log.Println("🚀 Loading initial data from YAML files...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Load data from YAML files
	if err := loadDataFromYAMLFiles(db, "scripts/data"); err != nil {
		log.Fatalf("Failed to load data from YAML files: %v", err)
	}

	log.Println("✅ Initial data loaded successfully!")
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	// Configure database options to suppress verbose logging during data loading
	opts := &database.Options{
		LogLevel: logger.Silent, // Suppress all GORM logs including SQL queries and "record not found"
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		// Only log every 10 attempts to reduce noise
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

func loadDataFromYAMLFiles(db *gorm.DB, dataDir string) error {
	owners, err := loadOwners(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load owners: %w", err)
	}

	customers, err := loadCustomers(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load customers: %w", err)
	}

	apartments, err := loadApartments(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load apartments: %w", err)
	}

	reservations, err := loadReservations(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load reservations: %w", err)
	}

	reviews, err := loadReviews(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load reviews: %w", err)
	}

	// Create owners first
	ownerCreated := 0
	for _, ownerData := range owners {
		created, err := createOwner(db, ownerData)
		if err != nil {
			return fmt.Errorf("failed to create owner %d: %w", ownerData.ID, err)
		}
		if created {
			ownerCreated++
		}
	}
	log.Printf("📋 Owners: %d created, %d total", ownerCreated, len(owners))

	// Create customers
	customerCreated := 0
	for _, customerData := range customers {
		created, err := createCustomer(db, customerData)
		if err != nil {
			return fmt.Errorf("failed to create customer %d: %w", customerData.ID, err)
		}
		if created {
			customerCreated++
		}
	}
	log.Printf("📋 Customers: %d created, %d total", customerCreated, len(customers))

	// Create apartments plus their ownership links
	apartmentCreated := 0
	for _, apartmentData := range apartments {
		created, err := createApartment(db, apartmentData)
		if err != nil {
			return fmt.Errorf("failed to create apartment %d: %w", apartmentData.ID, err)
		}
		if created {
			apartmentCreated++
		}
	}
	log.Printf("📋 Apartments: %d created, %d total", apartmentCreated, len(apartments))

	// Create reservations
	reservationCreated := 0
	for _, reservationData := range reservations {
		created, err := createReservation(db, reservationData)
		if err != nil {
			log.Printf("⚠️  Warning: failed to create reservation for customer %d: %v", reservationData.CustomerID, err)
			continue // Continue with other reservations
		}
		if created {
			reservationCreated++
		}
	}
	log.Printf("📋 Reservations: %d created, %d total", reservationCreated, len(reservations))

	// Create reviews
	reviewCreated := 0
	for _, reviewData := range reviews {
		created, err := createReview(db, reviewData)
		if err != nil {
			log.Printf("⚠️  Warning: failed to create review for customer %d: %v", reviewData.CustomerID, err)
			continue // Continue with other reviews
		}
		if created {
			reviewCreated++
		}
	}
	log.Printf("📋 Reviews: %d created, %d total", reviewCreated, len(reviews))

	return nil
}

func loadOwners(dataDir string) ([]OwnerData, error) {
	var allOwners []OwnerData

	err := walkYAMLFiles(dataDir, "owners", func(data []byte) error {
		var file OwnersFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return err
		}
		allOwners = append(allOwners, file.Owners...)
		return nil
	})

	return allOwners, err
}

func loadCustomers(dataDir string) ([]CustomerData, error) {
	var allCustomers []CustomerData

	err := walkYAMLFiles(dataDir, "customers", func(data []byte) error {
		var file CustomersFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return err
		}
		allCustomers = append(allCustomers, file.Customers...)
		return nil
	})

	return allCustomers, err
}

func loadApartments(dataDir string) ([]ApartmentData, error) {
	var allApartments []ApartmentData

	err := walkYAMLFiles(dataDir, "apartments", func(data []byte) error {
		var file ApartmentsFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return err
		}
		allApartments = append(allApartments, file.Apartments...)
		return nil
	})

	return allApartments, err
}

func loadReservations(dataDir string) ([]ReservationData, error) {
	var allReservations []ReservationData

	err := walkYAMLFiles(dataDir, "reservations", func(data []byte) error {
		var file ReservationsFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return err
		}
		allReservations = append(allReservations, file.Reservations...)
		return nil
	})

	return allReservations, err
}

func loadReviews(dataDir string) ([]ReviewData, error) {
	var allReviews []ReviewData

	err := walkYAMLFiles(dataDir, "reviews", func(data []byte) error {
		var file ReviewsFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return err
		}
		allReviews = append(allReviews, file.Reviews...)
		return nil
	})

	return allReviews, err
}

// walkYAMLFiles feeds every .yaml file under dataDir whose path contains the
// given marker to handle.
func walkYAMLFiles(dataDir, marker string, handle func(data []byte) error) error {
	return filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, marker) {
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}
			return handle(data)
		}
		return nil
	})
}

func createOwner(db *gorm.DB, data OwnerData) (bool, error) {
	var existing models.Owner
	if err := db.First(&existing, "id = ?", data.ID).Error; err == nil {
		return false, nil // Already exists
	}

	owner := models.Owner{ID: data.ID, Name: data.Name}
	if err := db.Create(&owner).Error; err != nil {
		return false, err
	}
	return true, nil
}

func createCustomer(db *gorm.DB, data CustomerData) (bool, error) {
	var existing models.Customer
	if err := db.First(&existing, "id = ?", data.ID).Error; err == nil {
		return false, nil // Already exists
	}

	customer := models.Customer{ID: data.ID, Name: data.Name}
	if err := db.Create(&customer).Error; err != nil {
		return false, err
	}
	return true, nil
}

func createApartment(db *gorm.DB, data ApartmentData) (bool, error) {
	var existing models.Apartment
	if err := db.First(&existing, "id = ?", data.ID).Error; err == nil {
		return false, nil // Already exists
	}

	apartment := models.Apartment{
		ID:      data.ID,
		Address: data.Address,
		City:    data.City,
		Country: data.Country,
		Size:    data.Size,
	}
	if err := db.Create(&apartment).Error; err != nil {
		return false, err
	}

	// Link the owner when the seed names one
	if data.OwnerID != 0 {
		ownership := models.Ownership{ApartmentID: data.ID, OwnerID: data.OwnerID}
		if err := db.Create(&ownership).Error; err != nil {
			return false, err
		}
	}
	return true, nil
}

// parseDate parses a YYYY-MM-DD seed date.
func parseDate(value string) (time.Time, error) {
	return time.Parse("2006-01-02", value)
}

func createReservation(db *gorm.DB, data ReservationData) (bool, error) {
	start, err := parseDate(data.StartDate)
	if err != nil {
		return false, fmt.Errorf("bad start_date %q: %w", data.StartDate, err)
	}
	end, err := parseDate(data.EndDate)
	if err != nil {
		return false, fmt.Errorf("bad end_date %q: %w", data.EndDate, err)
	}

	var existing models.Reservation
	err = db.First(&existing,
		"customer_id = ? AND apartment_id = ? AND start_date = ?",
		data.CustomerID, data.ApartmentID, start).Error
	if err == nil {
		return false, nil // Already exists
	}

	reservation := models.Reservation{
		CustomerID:  data.CustomerID,
		ApartmentID: data.ApartmentID,
		StartDate:   start,
		EndDate:     end,
		TotalPrice:  data.TotalPrice,
	}
	if err := db.Create(&reservation).Error; err != nil {
		return false, err
	}
	return true, nil
}

func createReview(db *gorm.DB, data ReviewData) (bool, error) {
	var existing models.Review
	err := db.First(&existing,
		"customer_id = ? AND apartment_id = ?",
		data.CustomerID, data.ApartmentID).Error
	if err == nil {
		return false, nil // Already exists
	}

	date, err := parseDate(data.Date)
	if err != nil {
		return false, fmt.Errorf("bad date %q: %w", data.Date, err)
	}

	review := models.Review{
		CustomerID:  data.CustomerID,
		ApartmentID: data.ApartmentID,
		Date:        date,
		Rating:      data.Rating,
		Text:        data.Text,
	}
	if err := db.Create(&review).Error; err != nil {
		return false, err
	}
	return true, nil
}
