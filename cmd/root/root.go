// Package root contains the root command for the application
package root

import (
	"openclear/mx-message/internal/config"
	"openclear/mx-message/internal/report"
	"openclear/mx-message/internal/xmlutils"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// CommonFlags represents the flags that are common to multiple commands
type CommonFlags struct {
	Input   string
	Output  string
	Profile string
}

var (
	// Log is the shared logger instance for commands
	Log = logrus.New()

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "mx-message",
		Short: "A CLI tool to validate ISO 20022 MX payment messages.",
		Long: `mx-message validates ISO 20022 MX messages (pacs.008, pacs.003,
camt.057, camt.108 and the head.001 business application header) against
the CBPR+ usage guidelines, reporting every violation with its element path.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to mx-message!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Initialize and configure logging
			config.LoadEnv()
			Log = config.ConfigureLogging()

			// Set the configured logger for the internal packages
			xmlutils.SetLogger(Log)
			report.SetLogger(Log)
		},
	}

	// SharedFlags holds common flags accessible to all commands
	SharedFlags = CommonFlags{}
)

// Init initializes the root command and all flags
func Init() {
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Input, "input", "i", "", "Input file")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Output, "output", "o", "", "Output file")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Profile, "profile", "p", "default", "Validation profile (default, fail-fast, lenient)")
}
