package cli

import (
	"fmt"

	"cat-feeding-tracker/internal/nutrition"

	"github.com/spf13/cobra"
)

var (
	energyWeightKg  float64
	energyWeightLbs float64
	energyYears     int
	energyMonths    int
	energyActivity  string
	energyStage     string
	energyCondition string
)

var energyCmd = &cobra.Command{
	Use:   "energy",
	Short: "Compute RER and DER for a cat",
	RunE: func(cmd *cobra.Command, args []string) error {
		weight := energyWeightKg
		if weight <= 0 && energyWeightLbs > 0 {
			weight = nutrition.LbsToKg(energyWeightLbs)
		}
		if weight <= 0 {
			return fmt.Errorf("--weight or --weight-lbs must be > 0")
		}
		if energyMonths < 0 || energyMonths > 11 {
			return fmt.Errorf("--months must be between 0 and 11")
		}

		total := nutrition.AgeInMonths(energyYears, energyMonths)
		stage := nutrition.ParseLifeStage(energyStage)
		if stage == "" {
			stage = nutrition.LifeStageFromAge(total)
		}
		activity := nutrition.ParseActivityLevel(energyActivity)
		if activity == "" {
			activity = nutrition.SuggestedActivityFromAge(total)
		}
		condition := nutrition.ParseBodyCondition(energyCondition)
		if !stage.Valid() || !activity.Valid() || !condition.Valid() {
			return fmt.Errorf("unknown stage %q, activity %q or condition %q", stage, activity, condition)
		}

		rer := nutrition.RestingEnergy(weight)
		der := nutrition.DailyEnergy(rer, activity, stage, condition)

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Weight:     %.2f kg (%.1f lbs)\n", weight, nutrition.KgToLbs(weight))
		fmt.Fprintf(out, "Age:        %s (%s, %s)\n", nutrition.FormatAge(energyYears, energyMonths), stage, activity)
		fmt.Fprintf(out, "RER:        %.0f kcal/day\n", rer)
		fmt.Fprintf(out, "DER:        %.0f kcal/day (x%.1f)\n", der, nutrition.DailyMultiplier(activity, stage, condition))
		if msg := nutrition.WeightWarning(weight); msg != "" {
			fmt.Fprintf(out, "Warning:    %s\n", msg)
		}
		return nil
	},
}

func init() {
	energyCmd.Flags().Float64Var(&energyWeightKg, "weight", 0, "Weight in kg")
	energyCmd.Flags().Float64Var(&energyWeightLbs, "weight-lbs", 0, "Weight in lbs (used when --weight is not set)")
	energyCmd.Flags().IntVar(&energyYears, "years", 0, "Age in years")
	energyCmd.Flags().IntVar(&energyMonths, "months", 0, "Additional months (0-11)")
	energyCmd.Flags().StringVar(&energyActivity, "activity", "", "very_young|low|moderate|high (default: suggested by age)")
	energyCmd.Flags().StringVar(&energyStage, "stage", "", "kitten|adult|senior (default: from age)")
	energyCmd.Flags().StringVar(&energyCondition, "condition", "ideal", "underweight|ideal|overweight")
	rootCmd.AddCommand(energyCmd)
}
