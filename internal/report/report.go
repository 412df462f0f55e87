// Package report flattens validation results into CSV for downstream
// tooling.
package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"
	"github.com/sirupsen/logrus"

	"openclear/mx-message/internal/document"
	"openclear/mx-message/internal/logging"
)

var log = logging.GetLogger()

// SetLogger allows setting a configured logger
func SetLogger(logger *logrus.Logger) {
	if logger == nil {
		return
	}
	log = logger
}

// Row is one validation error in CSV form.
type Row struct {
	MessageType string `csv:"message_type"`
	Status      string `csv:"status"`
	Path        string `csv:"path"`
	Field       string `csv:"field"`
	Code        int    `csv:"code"`
	Message     string `csv:"message"`
}

// Rows flattens a validation report. A valid report yields a single summary
// row so the output always records that the file was checked.
func Rows(rep *document.ValidationReport) []Row {
	if len(rep.Errors) == 0 {
		return []Row{{
			MessageType: rep.MessageType,
			Status:      string(rep.Status),
		}}
	}

	rows := make([]Row, 0, len(rep.Errors))
	for _, verr := range rep.Errors {
		rows = append(rows, Row{
			MessageType: rep.MessageType,
			Status:      string(rep.Status),
			Path:        verr.Path,
			Field:       verr.Field,
			Code:        verr.Code,
			Message:     verr.Message,
		})
	}
	return rows
}

// WriteCSV writes a validation report as CSV to a writer.
func WriteCSV(rep *document.ValidationReport, w io.Writer) error {
	csvWriter := csv.NewWriter(w)
	if err := gocsv.MarshalCSV(Rows(rep), gocsv.NewSafeCSVWriter(csvWriter)); err != nil {
		return fmt.Errorf("error writing CSV data: %w", err)
	}
	return nil
}

// WriteCSVFile writes a validation report as CSV to a file, creating the
// parent directory if needed.
func WriteCSVFile(rep *document.ValidationReport, csvFile string) error {
	log.WithFields(logrus.Fields{
		logging.FieldOutputFile: csvFile,
		logging.FieldCount:      len(rep.Errors),
	}).Info("Writing validation report to CSV file")

	dir := filepath.Dir(csvFile)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return fmt.Errorf("error creating directory: %w", err)
	}

	file, err := os.Create(csvFile)
	if err != nil {
		log.WithError(err).Error("Failed to create CSV file")
		return fmt.Errorf("error creating CSV file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			log.WithError(err).Warn("Failed to close file")
		}
	}()

	return WriteCSV(rep, file)
}
