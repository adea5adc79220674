package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/digestview/internal/config"
	"github.com/ziadkadry99/digestview/internal/walker"
)

var indexCmd = &cobra.Command{
	Use:   "index",
	Short: "Rebuild index.json for a local digests directory",
	Long: `Scans the configured digests directory for YYYY-MM-DD.md documents and
writes index.json listing them newest first, so viewers skip the slower
probe fallback.`,
	RunE: runIndex,
}

func init() {
	indexCmd.Flags().StringSlice("include", nil, "only index dates matching these glob patterns")
	indexCmd.Flags().StringSlice("exclude", nil, "skip dates matching these glob patterns")
	indexCmd.Flags().Bool("dry-run", false, "print the index instead of writing it")
	rootCmd.AddCommand(indexCmd)
}

func runIndex(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if cfg.Kind() != config.SourceDir {
		return fmt.Errorf("index needs digests_dir; %s is served over HTTP", cfg.SourceURL)
	}

	include, _ := cmd.Flags().GetStringSlice("include")
	exclude, _ := cmd.Flags().GetStringSlice("exclude")
	dir := filepath.Join(cfg.DigestsDir, filepath.FromSlash(cfg.DigestsPath))

	entries, err := walker.Scan(walker.Config{Dir: dir, Include: include, Exclude: exclude})
	if err != nil {
		return err
	}
	dates := walker.Dates(entries)

	out := cmd.OutOrStdout()
	if dryRun, _ := cmd.Flags().GetBool("dry-run"); dryRun {
		for _, d := range dates {
			fmt.Fprintln(out, d)
		}
		return nil
	}
	if err := walker.WriteIndex(dir, dates); err != nil {
		return err
	}
	fmt.Fprintf(out, "Wrote %s (%d dates)\n", filepath.Join(dir, "index.json"), len(dates))
	return nil
}
