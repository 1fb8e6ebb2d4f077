package cmd

import (
	"github.com/spf13/cobra"
)

// generateCmd represents the generate command.
var generateCmd = newGenerateCmd()

func newGenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate the corpus and write it to the output path",
		Long: `Generate builds the corpus for the configured count and seed, writes it
atomically to the output path, one value per line, and records a manifest
next to it unless --no-manifest is given.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGenerate(cmd)
		},
	}
	cmd.Flags().BoolVar(&noManifestFlag, "no-manifest", false, "do not write <output>.manifest.yaml")

	return cmd
}

func init() {
	rootCmd.AddCommand(generateCmd)
}
