package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fatmove/fatmove/internal/config"
)

var configForce bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the fatmove settings file",
}

// configInitCmd writes a starter settings file with every key commented.
var configInitCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Write a starter settings file",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := "config.ini"
		if len(args) > 0 {
			path = args[0]
		}

		if err := config.WriteTemplate(path, configForce); err != nil {
			return err
		}
		PrintSuccess(fmt.Sprintf("Wrote %s", path))
		return nil
	},
}

func init() {
	configInitCmd.Flags().BoolVar(&configForce, "force", false, "Overwrite an existing file")
	configCmd.AddCommand(configInitCmd)
}
