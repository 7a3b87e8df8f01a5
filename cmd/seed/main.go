package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"time"

	"comedyslots/internal/shared/config"
	"comedyslots/internal/shared/database"
	"comedyslots/internal/shows"
	"comedyslots/internal/users"
	"comedyslots/pkg/logger"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const seedPassword = "test123"

type Seeder struct {
	db *database.DB
}

func main() {
	clean := flag.Bool("clean", false, "truncate all tables before seeding")
	flag.Parse()

	fmt.Println("Starting Comedy Slots database seeder...")

	_ = godotenv.Load()
	cfg := config.Load()

	db, err := database.InitDB(cfg, logger.New())
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	seeder := &Seeder{db: db}

	if *clean {
		fmt.Println("\nCleaning database...")
		if err := seeder.CleanDatabase(); err != nil {
			log.Fatalf("Failed to clean database: %v", err)
		}
	}

	fmt.Println("\nSeeding database...")
	if err := seeder.SeedAll(context.Background()); err != nil {
		log.Fatalf("Failed to seed database: %v", err)
	}

	fmt.Printf("\nSeeding completed. Log in as promoter@example.com or comedian@example.com with password %q.\n", seedPassword)
}

// CleanDatabase truncates all tables, children first.
func (s *Seeder) CleanDatabase() error {
	tables := []string{"bookings", "shows", "users"}

	return s.db.PostgreSQL.Transaction(func(tx *gorm.DB) error {
		for _, table := range tables {
			fmt.Printf("  Truncating table: %s\n", table)
			if err := tx.Exec(fmt.Sprintf("TRUNCATE TABLE %s RESTART IDENTITY CASCADE", table)).Error; err != nil {
				return fmt.Errorf("failed to truncate table %s: %w", table, err)
			}
		}
		return nil
	})
}

// SeedAll seeds users and shows, then clears cached listings.
func (s *Seeder) SeedAll(ctx context.Context) error {
	userIDs, err := s.SeedUsers()
	if err != nil {
		return fmt.Errorf("failed to seed users: %w", err)
	}

	if err := s.SeedShows(userIDs["promoter"]); err != nil {
		return fmt.Errorf("failed to seed shows: %w", err)
	}

	if s.db.Redis != nil {
		if err := s.db.Redis.FlushDB(ctx).Err(); err != nil {
			log.Printf("Warning: failed to clear Redis cache: %v", err)
		}
	}
	return nil
}

// SeedUsers creates one promoter and one comedian sharing the seed password.
// Users that already exist are left untouched.
func (s *Seeder) SeedUsers() (map[string]uuid.UUID, error) {
	fmt.Println("  Seeding users...")

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(seedPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	usersData := []struct {
		key   string
		name  string
		email string
		role  users.Role
	}{
		{"promoter", "Test Promoter", "promoter@example.com", users.RolePromoter},
		{"comedian", "Test Comedian", "comedian@example.com", users.RoleComedian},
	}

	userIDs := make(map[string]uuid.UUID)
	for _, data := range usersData {
		var existing users.User
		err := s.db.PostgreSQL.Where("email = ?", data.email).First(&existing).Error
		if err == nil {
			userIDs[data.key] = existing.ID
			fmt.Printf("    Skipped existing user: %s\n", existing.Email)
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("failed to look up user %s: %w", data.email, err)
		}

		user := users.User{
			ID:       uuid.New(),
			Name:     data.name,
			Email:    data.email,
			Password: string(hashedPassword),
			Role:     data.role,
		}
		if err := s.db.PostgreSQL.Create(&user).Error; err != nil {
			return nil, fmt.Errorf("failed to create user %s: %w", data.email, err)
		}
		userIDs[data.key] = user.ID
		fmt.Printf("    Created user: %s (%s)\n", user.Email, user.Role)
	}

	return userIDs, nil
}

// SeedShows creates three upcoming shows owned by the promoter unless it already has some.
func (s *Seeder) SeedShows(promoterID uuid.UUID) error {
	fmt.Println("  Seeding shows...")

	var count int64
	if err := s.db.PostgreSQL.Model(&shows.Show{}).Where("promoter_id = ?", promoterID).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count shows: %w", err)
	}
	if count > 0 {
		fmt.Printf("    Promoter already has %d shows, skipping\n", count)
		return nil
	}

	tonight := time.Now().Truncate(24 * time.Hour).Add(20 * time.Hour)
	showsData := []struct {
		title       string
		description string
		venue       string
		daysAhead   int
		hours       int
		maxSlots    int
	}{
		{"Open Mic Night", "Five minutes each, newcomers welcome.", "The Basement", 1, 2, 10},
		{"Late Night Laughs", "Tight tens from regulars.", "Corner Pub", 2, 3, 6},
		{"New Material Night", "Work in progress only.", "Studio B", 3, 2, 8},
	}

	for _, data := range showsData {
		description := data.description
		start := tonight.AddDate(0, 0, data.daysAhead)
		show := shows.Show{
			Title:       data.title,
			Description: &description,
			Venue:       data.venue,
			StartTime:   start,
			EndTime:     start.Add(time.Duration(data.hours) * time.Hour),
			MaxSlots:    data.maxSlots,
			PromoterID:  promoterID,
		}
		if err := s.db.PostgreSQL.Create(&show).Error; err != nil {
			return fmt.Errorf("failed to create show %s: %w", data.title, err)
		}
		fmt.Printf("    Created show: %s (%d slots)\n", show.Title, show.MaxSlots)
	}

	return nil
}
