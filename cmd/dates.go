package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/digestview/internal/digest"
)

var datesCmd = &cobra.Command{
	Use:   "dates",
	Short: "List the dates that have a digest",
	Long: `Resolves the available dates the same way the viewer does: from the index
document when it can be read, otherwise by probing the most recent days.`,
	RunE: runDates,
}

func init() {
	datesCmd.Flags().Bool("probe", false, "ignore the index and probe recent days")
	datesCmd.Flags().Int("days", 0, "number of days to probe (defaults to probe_days)")
	rootCmd.AddCommand(datesCmd)
}

func runDates(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	src, err := newSource(cfg)
	if err != nil {
		return err
	}

	forceProbe, _ := cmd.Flags().GetBool("probe")
	days, _ := cmd.Flags().GetInt("days")
	if days == 0 {
		days = cfg.ProbeDays
	}

	r := &digest.Resolver{
		Source:     src,
		ProbeDays:  days,
		ForceProbe: forceProbe,
		OnProbe:    probeProgress(),
	}
	available := r.Resolve(context.Background(), digest.DateOf(time.Now()))

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%d digests (from %s)\n", available.Len(), available.Origin())
	for _, d := range available.Dates() {
		fmt.Fprintf(out, "  %s  %s\n", d, digest.DisplayString(d))
	}
	return nil
}
