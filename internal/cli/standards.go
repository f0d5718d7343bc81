package cli

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"zeta/internal/registry"
	"zeta/internal/util"

	"github.com/spf13/cobra"
)

var standardsCmd = &cobra.Command{
	Use:   "standards",
	Short: "List the age standards",
	Long: `List the age standards with their reference ages and the minerals they are
calibrated for. The registry fingerprint identifies the reference tables
used in JSON reports.

Examples:
  zeta standards
  zeta standards --mineral Zircon`,
	Args: cobra.NoArgs,
	RunE: runStandards,
}

var mineralsCmd = &cobra.Command{
	Use:   "minerals",
	Short: "List the minerals",
	Args:  cobra.NoArgs,
	RunE:  runMinerals,
}

// Standards flags
var (
	standardsMineral string
	standardsJSON    bool
)

func init() {
	rootCmd.AddCommand(standardsCmd)
	rootCmd.AddCommand(mineralsCmd)

	standardsCmd.Flags().StringVarP(&standardsMineral, "mineral", "m", "", "Only standards calibrated for this mineral")
	standardsCmd.Flags().BoolVar(&standardsJSON, "json", false, "Print the list as JSON")
}

type standardEntry struct {
	Code             string   `json:"code"`
	Name             string   `json:"name"`
	AgeMa            float64  `json:"age_ma"`
	AgeUncertaintyMa float64  `json:"age_uncertainty_ma"`
	Minerals         []string `json:"minerals"`
}

func runStandards(cmd *cobra.Command, args []string) error {
	list := registry.Standards()
	if standardsMineral != "" {
		m, err := registry.ResolveMineral(standardsMineral)
		if err != nil {
			return err
		}
		if list, err = registry.StandardsFor(m.Code); err != nil {
			return err
		}
	}

	out := cmd.OutOrStdout()
	if standardsJSON {
		entries := make([]standardEntry, 0, len(list))
		for _, s := range list {
			entries = append(entries, standardEntry{
				Code:             s.Code,
				Name:             s.Name,
				AgeMa:            s.AgeMa,
				AgeUncertaintyMa: s.AgeUncertaintyMa,
				Minerals:         mineralCodes(s),
			})
		}
		return NewReporter(out, cmd.ErrOrStderr()).PrintJSON(struct {
			Standards      []standardEntry `json:"standards"`
			RegistryDigest string          `json:"registry_digest"`
		}{entries, registry.Digest()})
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "CODE\tNAME\tAGE [Ma]\tMINERALS")
	for _, s := range list {
		fmt.Fprintf(w, "%s\t%s\t%s ± %s\t%s\n",
			s.Code, s.Name,
			util.Decimal(s.AgeMa), util.Decimal(s.AgeUncertaintyMa),
			joinCodes(mineralCodes(s)))
	}
	if err := w.Flush(); err != nil {
		return err
	}
	fmt.Fprintf(out, "\nregistry %s\n", registry.ShortDigest())
	return nil
}

func runMinerals(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "CODE\tNAME\tSTANDARDS")
	for _, m := range registry.Minerals() {
		stds, err := registry.StandardsFor(m.Code)
		if err != nil {
			return err
		}
		codes := make([]string, 0, len(stds))
		for _, s := range stds {
			codes = append(codes, s.Code)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", m.Code, m.Name, joinCodes(codes))
	}
	return w.Flush()
}

// mineralCodes lists the minerals s is calibrated for, in registry order.
func mineralCodes(s registry.StandardRecord) []string {
	var codes []string
	for _, m := range registry.Minerals() {
		if s.AppliesTo(m.Code) {
			codes = append(codes, m.Code)
		}
	}
	return codes
}

func joinCodes(codes []string) string {
	if len(codes) == 0 {
		return "-"
	}
	return strings.Join(codes, ", ")
}
