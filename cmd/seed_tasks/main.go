package main

import (
	"context"
	"log"
	"os"
	"time"

	"taskboard/internal/domain"
	"taskboard/internal/repository"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Inserts a few sample tasks for local development.
func main() {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL not set")
	}

	db, err := pgxpool.New(context.Background(), dsn)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	repo := repository.NewTaskRepository(db)

	tomorrow := time.Now().AddDate(0, 0, 1).Truncate(24 * time.Hour)
	nextWeek := time.Now().AddDate(0, 0, 7).Truncate(24 * time.Hour)

	samples := []domain.TaskPayload{
		{Title: "Buy groceries", Description: "Milk, eggs, bread", DueDate: &tomorrow},
		{Title: "Book dentist appointment", DueDate: &nextWeek},
		{Title: "Clean the garage"},
	}

	for _, p := range samples {
		t, err := repo.Insert(context.Background(), p)
		if err != nil {
			log.Fatalf("insert %q: %v", p.Title, err)
		}
		log.Printf("created task %d: %s", t.ID, t.Title)
	}
}
