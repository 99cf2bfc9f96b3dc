// Package root contains the root command for the application
package root

import (
	"fmt"

	"fjacquet/chat-txn/internal/config"
	"fjacquet/chat-txn/internal/container"
	"fjacquet/chat-txn/internal/logging"

	"github.com/spf13/cobra"
)

// CommonFlags represents the flags that are common to multiple commands
type CommonFlags struct {
	Input  string
	Output string
	Config string
}

var (
	// Log is the shared logger instance for commands. It is replaced by the
	// configured logger once PersistentPreRunE has run.
	Log logging.Logger = logging.NewLogrusAdapter(config.GetEnv("LOG_LEVEL", "info"), config.GetEnv("LOG_FORMAT", "text"))

	// AppConfig is the loaded configuration
	AppConfig *config.Config

	// AppContainer holds the wired dependencies
	AppContainer *container.Container

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "chat-txn",
		Short: "A CLI tool to turn natural language messages into transactions.",
		Long: `chat-txn is a CLI tool that interprets free-form messages such as
"I bought groceries for 500 taka" into structured transactions with a type,
amount, category and description, and keeps a running balance of them.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to chat-txn!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRunE: initialize,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if AppContainer != nil {
				if err := AppContainer.Close(); err != nil {
					Log.WithError(err).Warn("Failed to close container")
				}
			}
		},
	}

	// Common flags accessible to all commands
	SharedFlags = CommonFlags{}
)

// Init initializes the root command and all flags
func Init() {
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Input, "input", "i", "", "Input file")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Output, "output", "o", "", "Output file")
	Cmd.PersistentFlags().StringVar(&SharedFlags.Config, "config", "", "Config file (default searches $HOME/.chat-txn, .chat-txn and .)")
}

func initialize(cmd *cobra.Command, args []string) error {
	config.LoadEnv(Log)

	cfg, err := config.InitializeConfig(SharedFlags.Config)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	c, err := container.NewContainer(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	AppConfig = cfg
	AppContainer = c
	Log = c.GetLogger()
	return nil
}

// GetContainer returns the application container, or nil before initialization.
func GetContainer() *container.Container {
	return AppContainer
}

// GetConfig returns the loaded configuration, or nil before initialization.
func GetConfig() *config.Config {
	return AppConfig
}

// GetLogger returns the shared logger.
func GetLogger() logging.Logger {
	return Log
}
