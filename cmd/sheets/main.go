// Command sheets renders script character sheets from the command line.
package main

import (
	"fmt"
	"os"

	"script-sheets/internal/config"
	"script-sheets/internal/script"

	"github.com/spf13/cobra"
)

var catalogPath string

var rootCmd = &cobra.Command{
	Use:   "sheets",
	Short: "Render printable character sheets",
	Long:  `Render a script's character sheet, back cover and night order as a printable HTML page.`,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		if err := config.LoadDotEnv(".env"); err != nil {
			return err
		}
		if catalogPath != "" {
			return nil
		}
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		catalogPath = cfg.CatalogPath
		return nil
	},
	SilenceUsage: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&catalogPath, "catalog", "", "character catalog json (defaults to CATALOG_PATH)")

	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(nightOrderCmd)
}

// loadScript parses a script file against the catalog. A missing catalog is
// not fatal; ids it would have resolved are skipped with a log line.
func loadScript(cmd *cobra.Command, path string) (script.Script, *script.Catalog, error) {
	catalog, err := script.LoadCatalogFile(catalogPath)
	if err != nil {
		if !os.IsNotExist(err) {
			return script.Script{}, nil, fmt.Errorf("load catalog: %w", err)
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "catalog %s not found; only custom characters will resolve\n", catalogPath)
		catalog = script.NewCatalog(nil, nil)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return script.Script{}, nil, err
	}
	parsed, err := script.ParseScript(data, catalog)
	if err != nil {
		return script.Script{}, nil, err
	}
	if len(parsed.Characters) == 0 {
		return script.Script{}, nil, script.ErrEmptyScript
	}
	return parsed, catalog, nil
}
