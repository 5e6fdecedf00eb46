package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/phanxgames/vjoy"
)

var checkCmd = &cobra.Command{
	Use:   "check <layout.yaml>",
	Short: "Validate a layout file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := vjoy.LoadConfigFile(args[0])
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		for _, jc := range cfg.Joysticks {
			opts, _ := jc.Options()
			b := opts.Geometry.Bounds
			fmt.Fprintf(out, "%-12s %-22s bounds=(%g,%g %gx%g) dead_zone=%g\n",
				jc.Name, opts.Behavior, b.X, b.Y, b.Width, b.Height, opts.DeadZone)
		}
		return nil
	},
}
