// vjoy is a headless tool for joystick layouts.
//
// Usage:
//
//	vjoy check <layout.yaml>                          - Validate a layout and list its joysticks
//	vjoy replay --layout <yaml> --script <json>       - Replay an input script and print each tick
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:           "vjoy",
	Short:         "Inspect and replay virtual joystick layouts",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.AddCommand(checkCmd, replayCmd)
}
