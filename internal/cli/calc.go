package cli

import (
	"zeta/internal/app"
	"zeta/internal/zeta"

	"github.com/spf13/cobra"
)

var calcCmd = &cobra.Command{
	Use:   "calc",
	Short: "Compute the zeta factor for a standard",
	Long: `Compute the zeta calibration factor and its uncertainty from track counts
measured on an age standard.

Track densities are given either directly (--rho-s, --rho-i) or derived
from the track counts and the areas they were counted over (--ns-area,
--ni-area). Standards and minerals accept codes, names or labels; see
"zeta standards" and "zeta minerals".

Examples:
  # Durango apatite
  zeta calc -s DUR -m Ap --nd 5881 --ns 769 --ni 1960 \
      --rho-s 210321.91 --rho-i 536061.05 --rho-d 0.66973

  # Densities from counted areas, JSON output
  zeta calc -s DUR -m Ap --nd 5881 --rho-d 0.66973 \
      --ns 769 --ns-area 0.003656 --ni 1960 --ni-area 0.003656 --json`,
	Args: cobra.NoArgs,
	RunE: runCalc,
}

// Calc flags
var (
	calcStandard  string
	calcMineral   string
	calcLambda    float64
	calcLambdaErr float64
	calcG         float64
	calcND        int
	calcNS        int
	calcNI        int
	calcRhoS      float64
	calcRhoI      float64
	calcRhoD      float64
	calcNSArea    float64
	calcNIArea    float64
	calcJSON      bool
)

func init() {
	rootCmd.AddCommand(calcCmd)

	// Standard and mineral
	calcCmd.Flags().StringVarP(&calcStandard, "standard", "s", "", "Age standard code, name or label (e.g. DUR)")
	calcCmd.Flags().StringVarP(&calcMineral, "mineral", "m", "", "Mineral code or name (Ap, Zrn, Ttn)")

	// Constants
	calcCmd.Flags().Float64Var(&calcLambda, "lambda", zeta.DefaultDecayConstant, "Decay constant of 238U [yr^-1]")
	calcCmd.Flags().Float64Var(&calcLambdaErr, "lambda-err", zeta.DefaultDecayConstantUncertainty, "Uncertainty of the decay constant [yr^-1]")
	calcCmd.Flags().Float64VarP(&calcG, "geometry", "g", zeta.DefaultGeometryFactor, "Geometry factor, in (0, 1]")

	// Counts
	calcCmd.Flags().IntVar(&calcND, "nd", 0, "Dosimeter track count")
	calcCmd.Flags().IntVar(&calcNS, "ns", 0, "Spontaneous track count")
	calcCmd.Flags().IntVar(&calcNI, "ni", 0, "Induced track count")

	// Densities
	calcCmd.Flags().Float64Var(&calcRhoD, "rho-d", 0, "Dosimeter track density [cm^-2]")
	calcCmd.Flags().Float64Var(&calcRhoS, "rho-s", 0, "Spontaneous track density [cm^-2]")
	calcCmd.Flags().Float64Var(&calcRhoI, "rho-i", 0, "Induced track density [cm^-2]")
	calcCmd.Flags().Float64Var(&calcNSArea, "ns-area", 0, "Area Ns was counted over [cm²], instead of --rho-s")
	calcCmd.Flags().Float64Var(&calcNIArea, "ni-area", 0, "Area Ni was counted over [cm²], instead of --rho-i")

	// Output
	calcCmd.Flags().BoolVar(&calcJSON, "json", false, "Print the report as JSON")

	for _, name := range []string{"standard", "mineral", "nd", "ns", "ni", "rho-d"} {
		_ = calcCmd.MarkFlagRequired(name)
	}
	calcCmd.MarkFlagsRequiredTogether("rho-s", "rho-i")
	calcCmd.MarkFlagsRequiredTogether("ns-area", "ni-area")
	calcCmd.MarkFlagsMutuallyExclusive("rho-s", "ns-area")
	calcCmd.MarkFlagsMutuallyExclusive("rho-i", "ni-area")
	calcCmd.MarkFlagsOneRequired("rho-s", "ns-area")
}

func runCalc(cmd *cobra.Command, args []string) error {
	req := app.Request{
		Standard: calcStandard,
		Mineral:  calcMineral,
		Settings: app.Settings{
			DecayConstant:            calcLambda,
			DecayConstantUncertainty: calcLambdaErr,
			GeometryFactor:           calcG,
		},
		NS:        calcNS,
		NI:        calcNI,
		ND:        calcND,
		RhoS:      calcRhoS,
		RhoI:      calcRhoI,
		RhoD:      calcRhoD,
		FromAreas: cmd.Flags().Changed("ns-area"),
		NSArea:    calcNSArea,
		NIArea:    calcNIArea,
	}

	report, err := app.Calibrate(req)
	if err != nil {
		return err
	}

	reporter := NewReporter(cmd.OutOrStdout(), cmd.ErrOrStderr())
	if calcJSON {
		return reporter.PrintJSON(report)
	}
	reporter.PrintReport(report)
	return nil
}
