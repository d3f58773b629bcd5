package cli

import (
	"fmt"

	"cat-feeding-tracker/internal/nutrition"

	"github.com/spf13/cobra"
)

var (
	servingKcal   float64
	servingTarget float64
	servingType   string
)

var servingCmd = &cobra.Command{
	Use:   "serving",
	Short: "Convert a calorie target into grams and cups",
	RunE: func(cmd *cobra.Command, args []string) error {
		ft := nutrition.ParseFoodType(servingType)
		if !ft.Valid() {
			return fmt.Errorf("--type must be dry or wet")
		}
		grams, cups, err := nutrition.ServingSize(servingKcal, servingTarget, ft)
		if err != nil {
			return err
		}
		if msg := nutrition.CaloriesWarning(servingKcal, ft); msg != "" {
			fmt.Fprintf(cmd.ErrOrStderr(), "warning: %s\n", msg)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%.1f g\t%.2f cups (%s, %.0f g/cup)\n", grams, cups, ft, nutrition.CupSizeGrams(ft))
		return nil
	},
}

func init() {
	servingCmd.Flags().Float64Var(&servingKcal, "kcal", 0, "Calories per 100 g")
	servingCmd.Flags().Float64Var(&servingTarget, "target", 0, "Target calories")
	servingCmd.Flags().StringVar(&servingType, "type", "dry", "dry|wet")
	_ = servingCmd.MarkFlagRequired("kcal")
	_ = servingCmd.MarkFlagRequired("target")
	rootCmd.AddCommand(servingCmd)
}
