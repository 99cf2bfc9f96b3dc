// Package taxonomy exports the active category taxonomy
package taxonomy

import (
	"fmt"
	"strings"

	"fjacquet/chat-txn/cmd/root"
	"fjacquet/chat-txn/internal/logging"
	"fjacquet/chat-txn/internal/taxonomy"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// Cmd represents the taxonomy command
var Cmd = &cobra.Command{
	Use:   "taxonomy [category...]",
	Short: "Print or export the active category taxonomy",
	Long: `Print the active category taxonomy as YAML, or write it to the --output file.
Naming categories restricts the output to them, in the order given.
The exported file can be edited and loaded back with interpreter.taxonomy_file.`,
	SilenceUsage: true,
	RunE:         taxonomyFunc,
}

func taxonomyFunc(cmd *cobra.Command, args []string) error {
	c := root.GetContainer()
	if c == nil {
		return fmt.Errorf("application is not initialized")
	}
	tax, err := Select(c.GetTaxonomy(), args)
	if err != nil {
		return err
	}

	if out := root.SharedFlags.Output; out != "" {
		if err := c.GetStore().SaveTaxonomy(tax, out); err != nil {
			return err
		}
		c.GetLogger().Info("Taxonomy exported",
			logging.F(logging.FieldOutputFile, out),
			logging.F(logging.FieldCategory, strings.Join(tax.Names(), ",")))
		return nil
	}

	data, err := yaml.Marshal(tax.Config())
	if err != nil {
		return fmt.Errorf("error marshaling taxonomy: %w", err)
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}

// Select returns the named categories of tax as a new taxonomy, or tax
// itself when no names are given.
func Select(tax *taxonomy.Taxonomy, names []string) (*taxonomy.Taxonomy, error) {
	if len(names) == 0 {
		return tax, nil
	}
	categories := make([]taxonomy.Category, 0, len(names))
	for _, name := range names {
		c, ok := tax.Lookup(strings.ToLower(name))
		if !ok {
			return nil, fmt.Errorf("unknown category %q", name)
		}
		categories = append(categories, c)
	}
	return taxonomy.New(categories)
}
