package main

import (
	"context"
	"log/slog"
	"os"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/wastewise/backend/config"
	"github.com/wastewise/backend/internal/database"
	"github.com/wastewise/backend/internal/models"
	"github.com/wastewise/backend/internal/service"
	"github.com/wastewise/backend/pkg/logging"
)

// Seeds a demo account with a day of entries in every lifecycle state:
// resolved with leftovers, fully consumed, and still pending.
func main() {
	logging.Setup()

	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	db, err := database.New(cfg)
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	if err := database.RunMigrations(db, "migrations"); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	user, err := ensureDemoUser(db)
	if err != nil {
		slog.Error("failed to create demo user", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()
	entries := service.NewFoodEntryService(db, nil)
	bookings := service.NewBookingService(db)

	seed := []struct {
		date      string
		mealType  string
		foodItem  string
		initial   float64
		remaining *float64
	}{
		{"2024-06-01", models.MealBreakfast, "Bread", 3, ptr(0.2)},
		{"2024-06-01", models.MealLunch, "Rice", 12, ptr(4)},
		{"2024-06-01", models.MealLunch, "Curry", 6, ptr(1.5)},
		{"2024-06-01", models.MealDinner, "Soup", 5, ptr(0)},
		{"2024-06-02", models.MealLunch, "Pasta", 8, nil},
	}

	for _, s := range seed {
		entry, err := entries.CreateEntry(ctx, service.CreateEntryInput{
			Date:          s.date,
			MealType:      s.mealType,
			FoodItem:      s.foodItem,
			InitialWeight: s.initial,
		}, user.ID)
		if err != nil {
			slog.Error("failed to seed entry", "food_item", s.foodItem, "error", err)
			os.Exit(1)
		}
		if s.remaining != nil {
			if _, err := entries.SetRemainingWeight(ctx, entry.ID, *s.remaining, user.ID); err != nil {
				slog.Error("failed to resolve entry", "food_item", s.foodItem, "error", err)
				os.Exit(1)
			}
		}
		if s.remaining != nil && *s.remaining > 1 {
			_, err := bookings.CreateBooking(ctx, service.CreateBookingInput{
				FoodEntryID:   entry.ID,
				PersonName:    "Demo Contact",
				ContactNumber: "0770000000",
				TrustName:     "Demo Trust",
			}, user.ID)
			if err != nil {
				slog.Error("failed to seed booking", "food_item", s.foodItem, "error", err)
				os.Exit(1)
			}
		}
	}

	slog.Info("demo data seeded", "email", user.Email)
}

func ensureDemoUser(db *gorm.DB) (*models.User, error) {
	var user models.User
	if err := db.Where("email = ?", "demo@wastewise.local").First(&user).Error; err == nil {
		return &user, nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("demopassword123"), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user = models.User{
		Name:         "Demo User",
		Email:        "demo@wastewise.local",
		PasswordHash: string(hash),
	}
	if err := db.Create(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func ptr(f float64) *float64 { return &f }
