package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/digestview/internal/digest"
)

var showCmd = &cobra.Command{
	Use:   "show <date>",
	Short: "Print the rendered HTML of one digest",
	Long:  `Fetches the digest for the given YYYY-MM-DD date and prints it after markdown rendering, currency protection and glossary annotation.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

func init() {
	showCmd.Flags().Bool("raw", false, "print the markdown body instead of HTML")
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	date, err := digest.ParseDate(args[0])
	if err != nil {
		return err
	}
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	src, err := newSource(cfg)
	if err != nil {
		return err
	}

	doc, err := digest.Load(context.Background(), src, date)
	if err != nil {
		return fmt.Errorf("loading digest %s: %w", date, err)
	}

	out := cmd.OutOrStdout()
	if raw, _ := cmd.Flags().GetBool("raw"); raw {
		fmt.Fprintln(out, doc.Body)
		return nil
	}
	html, err := newPipeline().Render(doc.Body)
	if err != nil {
		return fmt.Errorf("rendering digest %s: %w", date, err)
	}
	fmt.Fprintln(out, html)
	return nil
}
