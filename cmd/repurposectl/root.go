package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/CHETHANCHARMANNAPK/drug-repurposing/internal/app"
	"github.com/CHETHANCHARMANNAPK/drug-repurposing/internal/config"
	"github.com/CHETHANCHARMANNAPK/drug-repurposing/internal/observability"
)

var (
	cfgFile    string
	offline    bool
	jsonOutput bool
)

// loaded by PersistentPreRunE
var cfg *config.Config

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "repurposectl",
		Short:         "Query drug repurposing predictions from the command line.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			_ = godotenv.Load()

			path := cfgFile
			if path == "" {
				path = os.Getenv("CONFIG_PATH")
			}
			if path == "" {
				path = "config/config.toml"
			}
			c, err := config.LoadOrDefault(path)
			if err != nil {
				return err
			}
			if offline {
				c.Prediction.Mode = "offline"
			}
			if err := c.Validate(); err != nil {
				return fmt.Errorf("invalid configuration: %w", err)
			}
			// keep stdout clean for command output
			c.Logger.Format = "console"
			if c.Logger.Level == "info" {
				c.Logger.Level = "warn"
			}
			observability.InitializeLogger(c.Logger)
			cfg = c
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			observability.Sync()
		},
	}

	root.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "path to the TOML config file")
	root.PersistentFlags().BoolVar(&offline, "offline", false, "answer from the built-in catalog instead of the prediction service")
	root.PersistentFlags().BoolVar(&jsonOutput, "json", false, "print JSON instead of tables")

	root.AddCommand(
		newDiseasesCmd(),
		newPredictCmd(),
		newExplainCmd(),
		newGraphCmd(),
		newHealthCmd(),
		newMoleculeCmd(),
		newDrugDiseasesCmd(),
		newSeedCatalogCmd(),
	)
	return root
}

func Execute(ctx context.Context) error {
	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		if ctx.Err() == nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		return err
	}
	return nil
}

func newApp(ctx context.Context) (*app.App, error) {
	return app.New(ctx, cfg, observability.GetLogger())
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func logger() *zap.Logger {
	return observability.GetLogger()
}
