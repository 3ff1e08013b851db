// Package root contains the root command for the application.
package root

import (
	"github.com/spf13/cobra"

	"jmoret/bankparse/internal/config"
	"jmoret/bankparse/internal/container"
	"jmoret/bankparse/internal/logging"
)

// CommonFlags are the flags shared by multiple commands.
type CommonFlags struct {
	Input  string
	Output string
}

var (
	// SharedFlags holds the common flag values.
	SharedFlags = CommonFlags{}

	appContainer *container.Container

	// Cmd is the root command.
	Cmd = &cobra.Command{
		Use:   "bankparse",
		Short: "Parse bank statements into categorized transactions.",
		Long: `bankparse extracts transaction records from bank statement files
(PDF, CSV or plain text) using a heuristic parser, with optional
LLM-based extraction, and serves them over an HTTP API.`,
		Run: func(cmd *cobra.Command, args []string) {
			logging.GetLogger().Info("Use --help to see available commands")
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			config.LoadEnv()

			cfg, err := config.InitializeConfig()
			if err != nil {
				logging.GetLogger().WithError(err).Fatal("Failed to load configuration")
			}

			appContainer, err = container.NewContainer(cmd.Context(), cfg)
			if err != nil {
				logging.GetLogger().WithError(err).Fatal("Failed to wire dependencies")
			}
		},
	}
)

// Init registers the persistent flags on the root command.
func Init() {
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Input, "input", "i", "", "Input file")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Output, "output", "o", "", "Output file")
}

// GetContainer returns the wired dependency container. It is available
// inside command Run functions, after PersistentPreRun has executed.
func GetContainer() *container.Container {
	return appContainer
}
