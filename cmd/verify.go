package cmd

import (
	"runtime"

	"github.com/spf13/cobra"

	"github.com/mouse-blink/hellfloat/internal/controller"
	"github.com/mouse-blink/hellfloat/internal/domain"
	m "github.com/mouse-blink/hellfloat/internal/model"
)

var verifyParallelFlag int

// verifyCmd represents the verify command.
var verifyCmd = newVerifyCmd()

func newVerifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verify [path]",
		Short: "Check an artifact against the corpus its seed produces",
		Long: `Verify re-reads an artifact and checks that every line is a finite value in
canonical 17-digit form and that the file matches, bit for bit, the corpus
regenerated from its manifest. Without a manifest the configured count and
seed are used. The path defaults to the configured output path.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output := cfg.OutputPath
			if len(args) == 1 {
				output = args[0]
			}

			presenter, wf := pickPresenter(cmd)

			return runWithUI(presenter, controller.WithVerifyMode(), func() error {
				return wf.Verify(domain.VerifyArgs{
					Output:  m.Path(output),
					Target:  cfg.TargetCount,
					Seed:    cfg.Seed,
					Threads: cfg.Parallel,
				})
			})
		},
	}
	cmd.Flags().IntVarP(&verifyParallelFlag, "parallel", "p", runtime.NumCPU(), "number of parallel verification workers")

	return cmd
}

func init() {
	rootCmd.AddCommand(verifyCmd)
}
