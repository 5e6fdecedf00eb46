package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/phanxgames/vjoy"
)

// maxReplayTicks stops runaway scripts.
const maxReplayTicks = 100000

var (
	flagLayout string
	flagScript string
	flagDebug  bool
	flagDT     float32
)

var replayCmd = &cobra.Command{
	Use:   "replay",
	Short: "Replay an input script against a layout and print every tick",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := vjoy.LoadConfigFile(flagLayout)
		if err != nil {
			return err
		}
		data, err := os.ReadFile(flagScript)
		if err != nil {
			return fmt.Errorf("read script %s: %w", flagScript, err)
		}
		runner, err := vjoy.LoadScript(data)
		if err != nil {
			return err
		}
		return replay(cmd.OutOrStdout(), cfg, runner)
	},
}

func init() {
	replayCmd.Flags().StringVar(&flagLayout, "layout", "", "layout YAML file")
	replayCmd.Flags().StringVar(&flagScript, "script", "", "input script JSON file")
	replayCmd.Flags().BoolVar(&flagDebug, "debug", false, "log per-tick debug stats to stderr")
	replayCmd.Flags().Float32Var(&flagDT, "dt", 1.0/60, "seconds per tick")
	_ = replayCmd.MarkFlagRequired("layout")
	_ = replayCmd.MarkFlagRequired("script")
}

func replay(out io.Writer, cfg *vjoy.Config, runner *vjoy.ScriptRunner) error {
	ctrl := vjoy.NewController()
	ctrl.SetSource(nil)
	ctrl.SetDebugMode(flagDebug)
	ctrl.SetScriptRunner(runner)
	if _, err := ctrl.AddFromConfig(cfg); err != nil {
		return err
	}

	for tick := 0; !runner.Done(); tick++ {
		if tick >= maxReplayTicks {
			return fmt.Errorf("replay: script did not finish after %d ticks", maxReplayTicks)
		}
		ctrl.Update()
		ctrl.Extract(flagDT)
		for _, e := range ctrl.Events() {
			fmt.Fprintf(out, "%5d %-8s %-12s pos=(%g,%g) delta=(%.3f,%.3f) snap=(%g,%g)\n",
				tick, e.Type, e.Name, e.Position.X, e.Position.Y,
				e.Delta.X, e.Delta.Y, e.SnapAxis().X, e.SnapAxis().Y)
		}
		for _, j := range ctrl.Joysticks() {
			if !j.Dragging() && !j.JustReleased() {
				continue
			}
			if l, ok := ctrl.Layout(j.ID); ok {
				fmt.Fprintf(out, "%5d layout   %-12s base=(%.1f,%.1f) knob=(%.1f,%.1f)\n",
					tick, j.Name, l.Base.X, l.Base.Y, l.Knob.X, l.Knob.Y)
			}
		}
	}
	return nil
}
