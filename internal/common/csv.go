// Package common provides the CSV input and output shared by the commands.
package common

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"fjacquet/chat-txn/internal/dateutils"
	"fjacquet/chat-txn/internal/logging"
	"fjacquet/chat-txn/internal/models"
	"fjacquet/chat-txn/internal/parsererror"

	"github.com/gocarina/gocsv"
)

// MessageRow is one input message of a batch file. Date is optional.
type MessageRow struct {
	ID      string `csv:"id"`
	Message string `csv:"message"`
	Date    string `csv:"date"`
}

// TransactionRow is one output row of a batch run. Failed rows carry only
// the ID and the user-facing error.
type TransactionRow struct {
	ID          string `csv:"id"`
	Type        string `csv:"type"`
	Amount      string `csv:"amount"`
	Category    string `csv:"category"`
	Description string `csv:"description"`
	Date        string `csv:"date"`
	Confidence  string `csv:"confidence"`
	Error       string `csv:"error"`
}

// NewTransactionRow flattens an interpretation result for CSV output.
// Interpreter failures are reported with their user-facing message.
func NewTransactionRow(id string, tx models.ParsedTransaction, err error) TransactionRow {
	if err != nil {
		var ie *parsererror.InterpretError
		if errors.As(err, &ie) {
			return TransactionRow{ID: id, Error: ie.Message}
		}
		return TransactionRow{ID: id, Error: err.Error()}
	}
	return TransactionRow{
		ID:          id,
		Type:        string(tx.Type),
		Amount:      tx.Amount.StringFixed(2),
		Category:    tx.Category,
		Description: tx.Description,
		Date:        dateutils.ToISODate(tx.Date),
		Confidence:  string(tx.Confidence),
	}
}

// CSVCodec reads and writes the batch CSV formats with a fixed delimiter.
type CSVCodec struct {
	Delimiter rune
	logger    logging.Logger
}

// NewCSVCodec creates a codec. A zero delimiter means comma.
func NewCSVCodec(delimiter rune, logger logging.Logger) *CSVCodec {
	if delimiter == 0 {
		delimiter = ','
	}
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return &CSVCodec{Delimiter: delimiter, logger: logger}
}

// ReadCSV decodes CSV data into a slice of structs using gocsv.
// TCSVRow is the struct type that maps to the CSV columns.
func ReadCSV[TCSVRow any](r io.Reader, delimiter rune) ([]TCSVRow, error) {
	reader := csv.NewReader(r)
	reader.Comma = delimiter
	reader.TrimLeadingSpace = true

	var rows []TCSVRow
	if err := gocsv.UnmarshalCSV(reader, &rows); err != nil {
		return nil, fmt.Errorf("error parsing CSV data: %w", err)
	}
	return rows, nil
}

// ReadMessages reads message rows from r.
func (c *CSVCodec) ReadMessages(r io.Reader) ([]MessageRow, error) {
	rows, err := ReadCSV[MessageRow](r, c.Delimiter)
	if err != nil {
		return nil, err
	}
	c.logger.Debug("Read messages", logging.F(logging.FieldCount, len(rows)))
	return rows, nil
}

// ReadMessagesFile reads message rows from a CSV file.
func (c *CSVCodec) ReadMessagesFile(filePath string) ([]MessageRow, error) {
	log := c.logger.WithField(logging.FieldInputFile, filePath)
	log.Info("Reading messages file")

	file, err := os.Open(filePath) // #nosec G304 -- path is a command line argument
	if err != nil {
		log.WithError(err).Error("Failed to open CSV file")
		return nil, fmt.Errorf("error opening CSV file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			log.WithError(err).Warn("Failed to close file")
		}
	}()

	return c.ReadMessages(file)
}

// WriteTransactions writes rows, header first, to w.
func (c *CSVCodec) WriteTransactions(w io.Writer, rows []TransactionRow) error {
	if rows == nil {
		rows = []TransactionRow{}
	}
	csvWriter := csv.NewWriter(w)
	csvWriter.Comma = c.Delimiter

	if err := gocsv.MarshalCSV(rows, gocsv.NewSafeCSVWriter(csvWriter)); err != nil {
		return fmt.Errorf("error writing CSV data: %w", err)
	}
	return nil
}

// WriteTransactionsFile writes rows to a CSV file, creating its directory.
func (c *CSVCodec) WriteTransactionsFile(filePath string, rows []TransactionRow) error {
	log := c.logger.WithFields(
		logging.F(logging.FieldOutputFile, filePath),
		logging.F(logging.FieldCount, len(rows)),
		logging.F(logging.FieldDelimiter, string(c.Delimiter)))

	if err := os.MkdirAll(filepath.Dir(filePath), models.PermissionDirectory); err != nil {
		log.WithError(err).Error("Failed to create directory")
		return fmt.Errorf("error creating directory: %w", err)
	}

	file, err := os.Create(filePath) // #nosec G304 -- path is a command line argument
	if err != nil {
		log.WithError(err).Error("Failed to create CSV file")
		return fmt.Errorf("error creating CSV file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			log.WithError(err).Warn("Failed to close file")
		}
	}()

	if err := c.WriteTransactions(file, rows); err != nil {
		log.WithError(err).Error("Failed to marshal transactions to CSV")
		return err
	}

	log.Info("Successfully wrote transactions to CSV file")
	return nil
}
