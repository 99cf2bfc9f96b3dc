// Package container provides dependency injection for the chat-txn application.
// It centralizes the creation and wiring of all application dependencies,
// making them explicit and testable.
package container

import (
	"fmt"

	"fjacquet/chat-txn/internal/common"
	"fjacquet/chat-txn/internal/config"
	"fjacquet/chat-txn/internal/interpreter"
	"fjacquet/chat-txn/internal/ledger"
	"fjacquet/chat-txn/internal/logging"
	"fjacquet/chat-txn/internal/store"
	"fjacquet/chat-txn/internal/taxonomy"
)

// Container holds all application dependencies and provides methods to access them.
// Container is immutable after creation: fields are private and only
// reachable through getters.
type Container struct {
	logger      logging.Logger
	config      *config.Config
	store       store.TaxonomyLoader
	taxonomy    *taxonomy.Taxonomy
	interpreter *interpreter.Interpreter
	ledger      *ledger.Ledger
	csv         *common.CSVCodec
}

// NewContainer creates and wires all application dependencies from cfg.
func NewContainer(cfg *config.Config) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}
	logger := cfg.NewLogger()
	return NewContainerWith(cfg, logger, store.NewTaxonomyStore(cfg.Interpreter.TaxonomyFile, logger))
}

// NewContainerWith wires the dependencies around an existing logger and
// taxonomy source.
func NewContainerWith(cfg *config.Config, logger logging.Logger, loader store.TaxonomyLoader) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}
	if logger == nil || loader == nil {
		return nil, fmt.Errorf("logger and taxonomy loader are required")
	}

	tax, err := loader.LoadTaxonomy()
	if err != nil {
		return nil, fmt.Errorf("failed to load taxonomy: %w", err)
	}

	in := interpreter.New(tax, logger, interpreter.WithDiagnostics(cfg.Interpreter.Diagnostics))

	logger.Debug("Container initialized successfully",
		logging.F(logging.FieldCount, tax.Len()),
		logging.F(logging.FieldWorkers, cfg.Batch.Workers))

	return &Container{
		logger:      logger,
		config:      cfg,
		store:       loader,
		taxonomy:    tax,
		interpreter: in,
		ledger:      ledger.New(logger),
		csv:         common.NewCSVCodec(cfg.Delimiter(), logger),
	}, nil
}

// GetLogger returns the container's logger instance.
func (c *Container) GetLogger() logging.Logger {
	return c.logger
}

// GetConfig returns the container's configuration instance.
func (c *Container) GetConfig() *config.Config {
	return c.config
}

// GetStore returns the taxonomy store.
func (c *Container) GetStore() store.TaxonomyLoader {
	return c.store
}

// GetTaxonomy returns the taxonomy loaded at startup.
func (c *Container) GetTaxonomy() *taxonomy.Taxonomy {
	return c.taxonomy
}

// GetInterpreter returns the shared interpreter. It is safe for concurrent use.
func (c *Container) GetInterpreter() *interpreter.Interpreter {
	return c.interpreter
}

// GetLedger returns the process ledger.
func (c *Container) GetLedger() *ledger.Ledger {
	return c.ledger
}

// GetCSV returns the CSV codec configured with the CSV delimiter.
func (c *Container) GetCSV() *common.CSVCodec {
	return c.csv
}

// Close performs cleanup of container resources.
func (c *Container) Close() error {
	c.logger.Debug("Container closed")
	return nil
}
