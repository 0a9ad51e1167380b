// Command import-ingredients loads the ingredient catalog from a CSV file
// with "name,measurement_unit" rows. Existing entries are skipped.
package main

import (
	"context"
	"encoding/csv"
	"errors"
	"flag"
	"io"
	"log"
	"os"
	"strings"

	"foodgram/internal/config"
	"foodgram/internal/database"
	"foodgram/internal/models"
	"foodgram/internal/repository"
)

func main() {
	path := flag.String("file", "ingredients.csv", "path to the ingredients CSV file")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	f, err := os.Open(*path)
	if err != nil {
		log.Fatalf("Failed to open %s: %v", *path, err)
	}
	defer func() { _ = f.Close() }()

	repo := repository.NewIngredientRepository(db)
	reader := csv.NewReader(f)
	reader.FieldsPerRecord = 2

	imported, skipped := 0, 0
	for line := 1; ; line++ {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			log.Fatalf("Failed to read line %d: %v", line, err)
		}

		name := strings.TrimSpace(record[0])
		unit := strings.TrimSpace(record[1])
		if name == "" || unit == "" {
			log.Printf("Skipping line %d: empty name or unit", line)
			skipped++
			continue
		}

		err = repo.Create(context.Background(), &models.Ingredient{
			Name:            name,
			MeasurementUnit: unit,
		})
		if err != nil {
			var appErr *models.AppError
			if errors.As(err, &appErr) && appErr.Code == "CONFLICT" {
				skipped++
				continue
			}
			log.Fatalf("Failed to import %q (%s): %v", name, unit, err)
		}
		imported++
	}

	log.Printf("Imported %d ingredients, skipped %d", imported, skipped)
}
