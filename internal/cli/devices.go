package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/fatmove/fatmove/internal/device"
	"github.com/fatmove/fatmove/internal/execx"
)

// devicesCmd lists the FAT volumes a transfer could target.
var devicesCmd = &cobra.Command{
	Use:   "devices",
	Short: "List mounted FAT volumes",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		lister := &device.MountLister{Runner: execx.NewRealRunner()}
		volumes, err := lister.List(context.Background())
		if err != nil {
			return err
		}

		if len(volumes) == 0 {
			PrintEmptyState("no mounted FAT volumes")
			return nil
		}

		rows := make([][]string, 0, len(volumes))
		for _, vol := range volumes {
			rows = append(rows, []string{vol.Node, vol.MountPoint})
		}
		PrintTable([]string{"DEVICE", "MOUNT POINT"}, rows)
		return nil
	},
}
