package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ziadkadry99/digestview/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize digestview configuration with an interactive wizard",
	Long:  `Runs an interactive wizard that asks where the digests are published and writes a .digestview.yml file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := config.RunWizard(cfgFile)
		return err
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
