package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/digestview/internal/progress"
	"github.com/ziadkadry99/digestview/internal/site"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the digests as a static website",
	Long: `Renders every available digest into a self-contained static site: one page
per date plus an index page showing today's digest, or the newest one.`,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().String("output", "", "override output directory (defaults to the configured output_dir)")
	exportCmd.Flags().StringSlice("match", nil, "only export dates matching these glob patterns, e.g. 2026-10-*")
	exportCmd.Flags().Bool("serve", false, "start a local HTTP server after exporting")
	exportCmd.Flags().Int("port", 0, "port for the local server (defaults to the configured port)")
	exportCmd.Flags().Bool("open", false, "open browser automatically when serving")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	src, err := newSource(cfg)
	if err != nil {
		return err
	}

	outputDir, _ := cmd.Flags().GetString("output")
	if outputDir == "" {
		outputDir = cfg.OutputDir
	}
	match, _ := cmd.Flags().GetStringSlice("match")

	exporter := &site.Exporter{
		Source:      src,
		Pipeline:    newPipeline(),
		OutputDir:   outputDir,
		Title:       cfg.Title,
		Match:       match,
		ProbeDays:   cfg.ProbeDays,
		RecentLimit: cfg.RecentLimit,
		Reporter:    progress.NewReporter("Exporting digests"),
	}
	res, err := exporter.Export(context.Background())
	if err != nil {
		return fmt.Errorf("exporting site: %w", err)
	}

	fmt.Printf("Static site exported: %s (%d digests)\n", outputDir, len(res.Dates))
	if len(res.Failed) > 0 {
		warnf("%d digests could not be loaded: %v", len(res.Failed), res.Failed)
	}
	if res.Initial == "" {
		fmt.Fprintln(os.Stderr, "The index page shows the no-digest placeholder.")
	}

	if serve, _ := cmd.Flags().GetBool("serve"); serve {
		port, _ := cmd.Flags().GetInt("port")
		if port == 0 {
			port = cfg.Port
		}
		open, _ := cmd.Flags().GetBool("open")
		return site.Serve(outputDir, port, open)
	}
	return nil
}
