// Package export writes parsed transactions to CSV for use in spreadsheet
// tools.
package export

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"

	"jmoret/bankparse/internal/fileutils"
	"jmoret/bankparse/internal/logging"
	"jmoret/bankparse/internal/models"
)

var log = logging.GetLogger()

// WriteTransactionsCSV writes the records to csvFile in a standardized
// column layout, creating the parent directory if needed.
func WriteTransactionsCSV(transactions []models.Transaction, csvFile string) error {
	if transactions == nil {
		return fmt.Errorf("cannot write nil transactions to CSV")
	}

	log.Info("Writing transactions to CSV file",
		logging.Field{Key: "file", Value: csvFile},
		logging.Field{Key: "count", Value: len(transactions)})

	if err := fileutils.EnsureDirectoryExists(filepath.Dir(csvFile)); err != nil {
		return err
	}

	file, err := os.Create(csvFile)
	if err != nil {
		return fmt.Errorf("error creating CSV file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			log.WithError(err).Warn("Failed to close CSV file")
		}
	}()

	if err := gocsv.MarshalFile(&transactions, file); err != nil {
		return fmt.Errorf("error writing CSV file: %w", err)
	}
	return nil
}
