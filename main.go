package main

import (
	"fmt"
	"os"
	"path/filepath"

	"fjacquet/chat-txn/cmd/batch"
	"fjacquet/chat-txn/cmd/parse"
	"fjacquet/chat-txn/cmd/root"
	"fjacquet/chat-txn/cmd/taxonomy"
	"fjacquet/chat-txn/internal/config"
	"fjacquet/chat-txn/internal/logging"

	"github.com/joho/godotenv"
)

func init() {
	// 1. Load environment variables silently first (no logging yet)
	loadEnvSilently()

	// 2. Logger for everything that runs before the configuration is loaded
	root.Log = logging.NewLogrusAdapter(config.GetEnv("LOG_LEVEL", "info"), config.GetEnv("LOG_FORMAT", "text"))

	// 3. Initialize root command
	root.Init()

	// 4. Add all subcommands
	root.Cmd.AddCommand(parse.Cmd)
	root.Cmd.AddCommand(batch.Cmd)
	root.Cmd.AddCommand(taxonomy.Cmd)
}

// loadEnvSilently loads environment variables without logging anything
func loadEnvSilently() {
	envFile := ".env"
	if _, err := os.Stat(envFile); os.IsNotExist(err) {
		envFile = filepath.Join("..", ".env")
		if _, err := os.Stat(envFile); os.IsNotExist(err) {
			return
		}
	}
	_ = godotenv.Load(envFile)
}

func main() {
	if err := root.Cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
