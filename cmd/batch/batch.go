// Package batch interprets every message of a CSV file
package batch

import (
	"context"
	"fmt"
	"time"

	"fjacquet/chat-txn/cmd/root"
	"fjacquet/chat-txn/internal/common"
	"fjacquet/chat-txn/internal/config"
	"fjacquet/chat-txn/internal/dateutils"
	"fjacquet/chat-txn/internal/ledger"
	"fjacquet/chat-txn/internal/logging"
	"fjacquet/chat-txn/internal/models"
	"fjacquet/chat-txn/internal/parsererror"
	"fjacquet/chat-txn/internal/validation"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var workers int

// Cmd represents the batch command
var Cmd = &cobra.Command{
	Use:   "batch",
	Short: "Batch interpret messages from a CSV file",
	Long: `Batch interpret messages from a CSV file with the columns id, message and an
optional date, and write one transaction row per message.

Rows that cannot be interpreted keep their id and carry the error message.
Successful rows are recorded in order and the resulting balance is logged.

Example:
  chat-txn batch -i messages.csv -o transactions.csv -w 8`,
	SilenceUsage: true,
	RunE:         batchFunc,
}

func init() {
	Cmd.Flags().IntVarP(&workers, "workers", "w", 0, "Number of concurrent workers (default from configuration)")
}

// Interpreter turns one message into a transaction.
type Interpreter interface {
	Interpret(text string, now time.Time) (models.ParsedTransaction, error)
}

// Result is the outcome of one input row.
type Result struct {
	ID          string
	Transaction models.ParsedTransaction
	Err         error
}

func batchFunc(cmd *cobra.Command, args []string) error {
	c := root.GetContainer()
	if c == nil {
		return fmt.Errorf("application is not initialized")
	}
	logger := c.GetLogger()

	inputFile := root.SharedFlags.Input
	outputFile := root.SharedFlags.Output
	if err := validation.IsValidInputFile(inputFile); err != nil {
		return err
	}

	n := workers
	if n == 0 {
		n = c.GetConfig().Batch.Workers
	}
	if n < config.MinWorkers || n > config.MaxWorkers {
		return fmt.Errorf("workers must be between %d and %d, got %d", config.MinWorkers, config.MaxWorkers, n)
	}

	rows, err := c.GetCSV().ReadMessagesFile(inputFile)
	if err != nil {
		return err
	}

	results, err := Run(cmd.Context(), c.GetInterpreter(), rows, n, time.Now())
	if err != nil {
		return err
	}

	failed := Record(c.GetLedger(), results, logger)

	out := make([]common.TransactionRow, 0, len(results))
	for _, r := range results {
		out = append(out, common.NewTransactionRow(r.ID, r.Transaction, r.Err))
	}
	if outputFile == "" {
		err = c.GetCSV().WriteTransactions(cmd.OutOrStdout(), out)
	} else {
		err = c.GetCSV().WriteTransactionsFile(outputFile, out)
	}
	if err != nil {
		return err
	}

	totals := c.GetLedger().Totals()
	logger.Info("Batch processing completed",
		logging.F(logging.FieldCount, len(results)),
		logging.F(logging.FieldWorkers, n),
		logging.F(logging.FieldFailed, failed),
		logging.F(logging.FieldBalance, totals.Balance.String()),
		logging.F(logging.FieldTotalIncome, totals.TotalIncome.String()),
		logging.F(logging.FieldTotalExpense, totals.TotalExpense.String()))
	return nil
}

// Run interprets rows with at most n concurrent workers. Results keep the
// order of rows. A row date that cannot be parsed fails only that row; now is
// used for rows without a date. The returned error is non-nil only when ctx
// is cancelled.
func Run(ctx context.Context, in Interpreter, rows []common.MessageRow, n int, now time.Time) ([]Result, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if n < 1 {
		n = 1
	}

	results := make([]Result, len(rows))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(n)

	for i, row := range rows {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = interpretRow(in, row, now)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return results, nil
}

func interpretRow(in Interpreter, row common.MessageRow, now time.Time) Result {
	ref := now
	if row.Date != "" {
		date, _, err := dateutils.ParseDate(row.Date, now.Location())
		if err != nil {
			return Result{ID: row.ID, Err: &parsererror.ParseError{Parser: "batch", Field: "date", Value: row.Date, Err: err}}
		}
		ref = date
	}
	tx, err := in.Interpret(row.Message, ref)
	return Result{ID: row.ID, Transaction: tx, Err: err}
}

// Record adds the successful results to l in input order and returns the
// number of failed rows.
func Record(l *ledger.Ledger, results []Result, logger logging.Logger) int {
	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
			logger.WithError(r.Err).Debug("Row not interpreted", logging.F(logging.FieldTransactionID, r.ID))
			continue
		}
		if _, err := l.Add(r.Transaction); err != nil {
			failed++
			logger.WithError(err).Warn("Row not recorded", logging.F(logging.FieldTransactionID, r.ID))
		}
	}
	return failed
}
