package main

import (
	"context"
	"log"

	"courtbook/internal/config"
	"courtbook/internal/database"
	"courtbook/internal/domain"
	"courtbook/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running migrations...")
	if err := repository.Migrate(db); err != nil {
		log.Fatal("migrate failed:", err)
	}

	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM reservations")
	db.Exec("DELETE FROM court_closed_dates")
	db.Exec("DELETE FROM courts")
	db.Exec("DELETE FROM users")

	ctx := context.Background()
	users := repository.NewUserRepository(db)
	courts := repository.NewCourtRepository(db)

	log.Println("Creating users...")
	adminHash, _ := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	admin := &domain.User{
		Email:        "admin@courtbook.local",
		PasswordHash: string(adminHash),
		Role:         domain.RoleAdmin,
		Name:         "Administrator",
	}
	if err := users.Create(ctx, admin); err != nil {
		log.Fatal(err)
	}
	log.Println("Admin created: admin@courtbook.local / admin123")

	userHash, _ := bcrypt.GenerateFromPassword([]byte("player123"), bcrypt.DefaultCost)
	player := &domain.User{
		Email:        "player@courtbook.local",
		PasswordHash: string(userHash),
		Role:         domain.RoleUser,
		Name:         "Demo Player",
	}
	if err := users.Create(ctx, player); err != nil {
		log.Fatal(err)
	}
	log.Println("Player created: player@courtbook.local / player123")

	log.Println("Creating courts...")
	open, _ := domain.ParseTimeOfDay("08:00")
	close, _ := domain.ParseTimeOfDay("22:00")
	for _, name := range []string{"Court 1", "Court 2", "Court 3"} {
		c := &domain.Court{
			Name:        name,
			Status:      domain.CourtAvailable,
			OpeningHour: open,
			ClosingHour: close,
		}
		if err := courts.Create(ctx, c); err != nil {
			log.Fatal(err)
		}
		log.Printf("Court created: %s (%s - %s)", c.Name, c.OpeningHour, c.ClosingHour)
	}

	log.Println("Seed complete")
}
