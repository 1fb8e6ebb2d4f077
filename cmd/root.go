// Package cmd provides the root command and CLI setup for hellfloat.
package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/mouse-blink/hellfloat/internal/adapter"
	"github.com/mouse-blink/hellfloat/internal/config"
	"github.com/mouse-blink/hellfloat/internal/controller"
	"github.com/mouse-blink/hellfloat/internal/domain"
	"github.com/mouse-blink/hellfloat/internal/logging"
	m "github.com/mouse-blink/hellfloat/internal/model"
)

var logLevel = zap.NewAtomicLevelAt(zapcore.WarnLevel)
var logger = logging.NewWithLevel(logLevel, os.Stderr)

var cfg = config.Default()
var ui controller.UI
var workflow domain.Workflow

// newWorkflow wires a workflow around the given presenter.
var newWorkflow = func(presenter controller.UI) domain.Workflow {
	fs := adapter.NewLocalCorpusFSAdapter()

	return domain.NewWorkflow(
		fs,
		adapter.NewManifestStore(fs),
		presenter,
		domain.NewAssembler(logger),
		logger,
	)
}

func init() {
	ui = controller.NewUI(rootCmd, controller.DetectPresentation(os.Stdout, false))
	workflow = newWorkflow(ui)
}

var configFlag string
var countFlag int
var seedFlag uint64
var outputFlag string
var logLevelFlag string
var noManifestFlag bool
var jsonFlag bool

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hellfloat",
		Short: "Generate an adversarial float64 test corpus",
		Long: `hellfloat writes a deterministic corpus of IEEE 754 double values that
stress float parsers and printers: signed zeros, subnormals, extremes,
exact powers of two and ten, log-uniform magnitudes and neighbours of
powers of ten. The same seed and count always produce the same bytes.

Without a subcommand it behaves like "hellfloat generate".`,
		SilenceUsage:      true,
		PersistentPreRunE: loadConfig,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGenerate(cmd)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVarP(&configFlag, "config", "c", "", "YAML config file (env "+config.EnvConfig+")")
	flags.IntVarP(&countFlag, "count", "n", config.DefaultTargetCount, "number of values to generate (env "+config.EnvCount+")")
	flags.Uint64VarP(&seedFlag, "seed", "s", config.DefaultSeed, "random seed (env "+config.EnvSeed+")")
	flags.StringVarP(&outputFlag, "output", "o", config.DefaultOutputPath, "artifact path (env "+config.EnvOutput+")")
	flags.StringVar(&logLevelFlag, "log-level", config.DefaultLogLevel, "log level: debug, info, warn, error (env "+config.EnvLogLevel+")")
	flags.BoolVar(&jsonFlag, "json", false, "print results as JSON")
	cmd.Flags().BoolVar(&noManifestFlag, "no-manifest", false, "do not write <output>.manifest.yaml")

	return cmd
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func loadConfig(cmd *cobra.Command, _ []string) error {
	loaded, err := config.Load(config.Options{
		File:     configFlag,
		Override: flagOverrides(cmd),
	})
	if err != nil {
		return err
	}

	level, err := logging.ParseLevel(loaded.LogLevel)
	if err != nil {
		return err
	}

	logLevel.SetLevel(level.Level())
	cfg = loaded

	logger.Debug("configuration loaded",
		zap.Int("target_count", cfg.TargetCount),
		zap.Uint64("seed", cfg.Seed),
		zap.String("output_path", cfg.OutputPath),
	)

	return nil
}

// flagOverrides applies only the flags the user actually set, so the
// environment and config file are not shadowed by flag defaults.
func flagOverrides(cmd *cobra.Command) func(*config.Config) {
	flags := cmd.Flags()

	return func(c *config.Config) {
		if flags.Changed("count") {
			c.TargetCount = countFlag
		}

		if flags.Changed("seed") {
			c.Seed = seedFlag
		}

		if flags.Changed("output") {
			c.OutputPath = outputFlag
		}

		if flags.Changed("log-level") {
			c.LogLevel = logLevelFlag
		}

		if flags.Changed("no-manifest") {
			c.Manifest = !noManifestFlag
		}

		if flags.Changed("parallel") {
			c.Parallel = verifyParallelFlag
		}
	}
}

// pickPresenter returns the UI and workflow for this invocation.
func pickPresenter(cmd *cobra.Command) (controller.UI, domain.Workflow) {
	if jsonFlag {
		jsonUI := controller.NewUI(cmd, controller.PresentJSON)
		return jsonUI, newWorkflow(jsonUI)
	}

	return ui, workflow
}

func runWithUI(presenter controller.UI, mode controller.StartOption, run func() error) error {
	if err := presenter.Start(mode); err != nil {
		return err
	}

	err := run()

	presenter.Close()
	presenter.Wait()

	return err
}

func runGenerate(cmd *cobra.Command) error {
	presenter, wf := pickPresenter(cmd)

	return runWithUI(presenter, controller.WithGenerateMode(), func() error {
		return wf.Generate(domain.GenerateArgs{
			Target:        cfg.TargetCount,
			Seed:          cfg.Seed,
			Output:        m.Path(cfg.OutputPath),
			WriteManifest: cfg.Manifest,
		})
	})
}
