package cli

import (
	"fmt"

	"cat-feeding-tracker/internal/domain/foods"
	"cat-feeding-tracker/internal/nutrition"

	"github.com/spf13/cobra"
)

var foodsType string

var foodsCmd = &cobra.Command{
	Use:   "foods",
	Short: "List the reference food catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		types := nutrition.FoodTypes()
		if foodsType != "" {
			ft := nutrition.ParseFoodType(foodsType)
			if !ft.Valid() {
				return fmt.Errorf("--type must be dry or wet")
			}
			types = []nutrition.FoodType{ft}
		}

		c := foods.Seed()
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "TYPE\tKCAL/100G\tBRAND")
		for _, t := range types {
			for _, e := range c.Entries(t) {
				fmt.Fprintf(out, "%s\t%.0f\t%s\n", t, e.CaloriesPer100g, e.Brand)
			}
		}
		return nil
	},
}

func init() {
	foodsCmd.Flags().StringVar(&foodsType, "type", "", "dry|wet (default: both)")
	rootCmd.AddCommand(foodsCmd)
}
