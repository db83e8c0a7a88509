// Command seed bulk-loads books into a running server through the public
// HTTP API. The input is a JSON array of book documents.
//
// Usage:
//
//	seed -file books.json -url http://localhost:8080 -k <api key>
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/smoretta/books-api/internal/client"
	"github.com/smoretta/books-api/internal/logger"
	"github.com/smoretta/books-api/models"
)

func main() {
	_ = godotenv.Load(".env.local")

	var (
		filePath string
		baseURL  string
		apiKey   string
	)
	flag.StringVar(&filePath, "file", "books.json", "Path to a JSON array of books")
	flag.StringVar(&baseURL, "url", "http://localhost:8080", "Base URL of the books API")
	flag.StringVar(&apiKey, "k", os.Getenv("APP_API_KEY"), "API key")
	flag.Parse()

	log := logger.NewLogger("seed")

	raw, err := os.ReadFile(filePath)
	if err != nil {
		log.Fatal().Err(err).Str("file", filePath).Msg("error reading seed file")
	}

	var seedBooks []models.Book
	if err = json.Unmarshal(raw, &seedBooks); err != nil {
		log.Fatal().Err(err).Str("file", filePath).Msg("error parsing seed file")
	}

	api := client.New(client.Config{
		BaseURL: baseURL,
		APIKey:  apiKey,
		Timeout: 15 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	var created, skipped int
	for _, book := range seedBooks {
		err = api.Create(ctx, book)

		var validationErr *client.ValidationFailedError
		switch {
		case err == nil:
			created++
		case errors.As(err, &validationErr):
			// Existing ISBNs come back as a validation-shaped conflict;
			// seeding is idempotent, so they are skipped, not fatal.
			skipped++
			log.Warn().Str("isbn", book.ISBN).Str("reason", validationErr.Error()).Msg("book skipped")
		default:
			log.Fatal().Err(err).Str("isbn", book.ISBN).Msg("error creating book")
		}
	}

	log.Info().Int("created", created).Int("skipped", skipped).Msg("seeding finished")
}
