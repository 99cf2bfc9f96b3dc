// Package parse interprets a single message given on the command line
package parse

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"fjacquet/chat-txn/cmd/root"
	"fjacquet/chat-txn/internal/currencyutils"
	"fjacquet/chat-txn/internal/dateutils"
	"fjacquet/chat-txn/internal/logging"
	"fjacquet/chat-txn/internal/models"
	"fjacquet/chat-txn/internal/parsererror"
	"fjacquet/chat-txn/internal/validation"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// Output formats accepted by --format
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
	FormatChat = "chat"
)

// Formats lists every accepted output format.
var Formats = []string{FormatText, FormatJSON, FormatYAML, FormatChat}

var (
	outputFormat string
	dateFlag     string
)

// Cmd represents the parse command
var Cmd = &cobra.Command{
	Use:   "parse [message]",
	Short: "Interpret one natural language message",
	Long: `Interpret one natural language message such as "paid 1,200 for electricity bill"
and print the resulting transaction. Words after the command are joined with spaces.`,
	Args:         cobra.MinimumNArgs(1),
	SilenceUsage: true,
	RunE:         parseFunc,
}

func init() {
	Cmd.Flags().StringVarP(&outputFormat, "format", "f", FormatText, "Output format (text, json, yaml, chat)")
	Cmd.Flags().StringVarP(&dateFlag, "date", "d", "", "Reference date instead of today (e.g. 2025-03-14)")
}

func parseFunc(cmd *cobra.Command, args []string) error {
	c := root.GetContainer()
	if c == nil {
		return fmt.Errorf("application is not initialized")
	}
	logger := c.GetLogger()

	if err := validation.IsValidOutputFormat(outputFormat, Formats...); err != nil {
		return err
	}

	now, err := referenceDate(dateFlag)
	if err != nil {
		return err
	}

	message := strings.Join(args, " ")
	tx, err := c.GetInterpreter().Interpret(message, now)
	if err != nil {
		logger.WithError(err).Warn("Message not interpreted", logging.F(logging.FieldMessage, message))
		fmt.Fprintln(cmd.ErrOrStderr(), models.FormatHelp(parsererror.UserMessage(err)))
		return err
	}

	entryID, err := c.GetLedger().Add(tx)
	if err != nil {
		return fmt.Errorf("failed to record transaction: %w", err)
	}
	balance := c.GetLedger().Totals().Balance
	logger.Debug("Transaction recorded",
		logging.F(logging.FieldEntryID, entryID),
		logging.F(logging.FieldBalance, balance.String()))

	out, err := Render(tx, balance, outputFormat, c.GetConfig().Interpreter.Currency)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), out)
	return nil
}

func referenceDate(value string) (time.Time, error) {
	if value == "" {
		return time.Now(), nil
	}
	date, _, err := dateutils.ParseDate(value, time.Local)
	if err != nil {
		return time.Time{}, &parsererror.ParseError{Parser: "parse", Field: "date", Value: value, Err: err}
	}
	return date, nil
}

// Render formats tx in one of the output formats. balance and currency are
// only used by the chat format; currency also labels the text amount.
func Render(tx models.ParsedTransaction, balance decimal.Decimal, format, currency string) (string, error) {
	switch strings.ToLower(format) {
	case FormatJSON:
		data, err := json.MarshalIndent(tx, "", "  ")
		if err != nil {
			return "", fmt.Errorf("failed to encode transaction as json: %w", err)
		}
		return string(data), nil
	case FormatYAML:
		data, err := yaml.Marshal(tx)
		if err != nil {
			return "", fmt.Errorf("failed to encode transaction as yaml: %w", err)
		}
		return strings.TrimRight(string(data), "\n"), nil
	case FormatChat:
		return models.FormatConfirmationWithBalance(tx, balance, currency), nil
	case FormatText, "":
		var sb strings.Builder
		fmt.Fprintf(&sb, "type: %s\n", tx.Type)
		fmt.Fprintf(&sb, "amount: %s\n", currencyutils.FormatAmount(tx.Amount, currency))
		fmt.Fprintf(&sb, "category: %s\n", tx.Category)
		fmt.Fprintf(&sb, "description: %s\n", tx.Description)
		fmt.Fprintf(&sb, "date: %s\n", tx.DateString())
		fmt.Fprintf(&sb, "confidence: %s", tx.Confidence)
		return sb.String(), nil
	default:
		return "", fmt.Errorf("unknown output format %q", format)
	}
}
