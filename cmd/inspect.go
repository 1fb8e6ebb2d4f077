package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/hellfloat/internal/controller"
	"github.com/mouse-blink/hellfloat/internal/domain"
)

// inspectCmd represents the inspect command.
var inspectCmd = newInspectCmd()

func newInspectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Show how the count is split across generators",
		Long:  "Inspect prints the per-generator partition for the configured count and seed without generating anything.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			presenter, wf := pickPresenter(cmd)

			return runWithUI(presenter, controller.WithInspectMode(), func() error {
				return wf.Inspect(domain.InspectArgs{Target: cfg.TargetCount, Seed: cfg.Seed})
			})
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}
