package cli

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"cat-feeding-tracker/internal/adapters/foodfacts/openpetfoodfacts"
	"cat-feeding-tracker/internal/platform/logger"

	"github.com/spf13/cobra"
)

var (
	lookupJSON    bool
	lookupBaseURL string
	lookupTimeout time.Duration
	lookupVerbose bool
)

var lookupCmd = &cobra.Command{
	Use:   "lookup <query>",
	Short: "Search Open Pet Food Facts for a product's calories",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		log := logger.NewNop()
		if lookupVerbose {
			l, err := logger.New(logger.Options{Level: logger.Debug, Format: logger.FormatText})
			if err != nil {
				return err
			}
			defer func() { _ = l.Sync() }()
			log = l
		}

		client, err := openpetfoodfacts.New(openpetfoodfacts.Options{
			BaseURL: lookupBaseURL,
			Timeout: lookupTimeout,
			Logger:  log,
		})
		if err != nil {
			return err
		}

		query := strings.Join(args, " ")
		rec, ok := client.Lookup(cmd.Context(), query)
		if !ok {
			return fmt.Errorf("no cat food results found with calorie information for %q", query)
		}

		if lookupJSON {
			b, err := json.MarshalIndent(map[string]any{
				"brand":             rec.Brand,
				"product_name":      rec.ProductName,
				"categories":        rec.Categories,
				"calories_per_100g": rec.CaloriesPer100g,
				"source_url":        rec.SourceURL,
			}, "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(b))
			return nil
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Product:    %s\n", rec.DisplayName())
		fmt.Fprintf(out, "Calories:   %.0f kcal/100g\n", *rec.CaloriesPer100g)
		fmt.Fprintf(out, "Categories: %s\n", rec.Categories)
		fmt.Fprintf(out, "Source:     %s\n", rec.SourceURL)
		return nil
	},
}

func init() {
	lookupCmd.Flags().BoolVar(&lookupJSON, "json", false, "Print JSON output")
	lookupCmd.Flags().StringVar(&lookupBaseURL, "base-url", openpetfoodfacts.DefaultBaseURL, "Open Pet Food Facts base URL")
	lookupCmd.Flags().DurationVar(&lookupTimeout, "timeout", openpetfoodfacts.DefaultTimeout, "Request timeout")
	lookupCmd.Flags().BoolVarP(&lookupVerbose, "verbose", "v", false, "Log request failures to stdout")
	rootCmd.AddCommand(lookupCmd)
}
