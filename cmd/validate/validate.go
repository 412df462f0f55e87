// Package validate implements the validate command.
package validate

import (
	"fmt"
	"os"

	"openclear/mx-message/cmd/root"
	"openclear/mx-message/internal/config"
	"openclear/mx-message/internal/document"
	"openclear/mx-message/internal/logging"
	"openclear/mx-message/internal/report"
	"openclear/mx-message/internal/validation"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// Cmd is the validate command
var Cmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate an MX message file",
	Long: `Validate an MX message file against its CBPR+ usage guideline.
The message type is detected from the XML structure. Every violation is
reported with its error code and element path; with --output the report is
also written as CSV.`,
	RunE: run,
}

// resolveParserConfig loads the viper configuration and maps it to a parser
// configuration. A profile given explicitly on the command line overrides
// the one from the config file.
func resolveParserConfig(profile string, explicit bool) (*validation.ParserConfig, error) {
	cfg, err := config.InitializeConfig()
	if err != nil {
		return nil, err
	}
	if explicit {
		cfg.Validation.Profile = profile
	}
	return cfg.ParserConfig()
}

func run(cmd *cobra.Command, args []string) error {
	if root.SharedFlags.Input == "" {
		return fmt.Errorf("input file is required (use -i)")
	}

	cfg, err := resolveParserConfig(root.SharedFlags.Profile, cmd.Flag("profile").Changed)
	if err != nil {
		return err
	}

	root.Log.WithFields(logrus.Fields{
		logging.FieldInputFile: root.SharedFlags.Input,
		logging.FieldProfile:   root.SharedFlags.Profile,
	}).Info("Validating MX message file")

	messageType, err := document.DetectMessageTypeFile(root.SharedFlags.Input)
	if err != nil {
		return err
	}

	var rep *document.ValidationReport
	if messageType == "head.001" {
		f, err := os.Open(root.SharedFlags.Input)
		if err != nil {
			return err
		}
		defer f.Close()
		hdr, err := document.ParseAppHeader(f)
		if err != nil {
			return err
		}
		rep = document.ValidateAppHeader(hdr, cfg)
	} else {
		doc, err := document.ParseFile(root.SharedFlags.Input)
		if err != nil {
			return err
		}
		rep = document.ValidateDocument(doc, cfg)
	}

	for _, verr := range rep.Errors {
		root.Log.WithFields(logrus.Fields{
			logging.FieldCode: verr.Code,
			logging.FieldPath: verr.Path,
		}).Warn(verr.Message)
	}

	root.Log.WithFields(logrus.Fields{
		logging.FieldMessageType: rep.MessageType,
		logging.FieldStatus:      string(rep.Status),
		logging.FieldCount:       len(rep.Errors),
	}).Info("Validation finished")

	if root.SharedFlags.Output != "" {
		if err := report.WriteCSVFile(rep, root.SharedFlags.Output); err != nil {
			return err
		}
	}

	if rep.Status != document.StatusValid {
		return fmt.Errorf("%s message is %s: %d validation error(s)", rep.MessageType, rep.Status, len(rep.Errors))
	}
	fmt.Printf("%s message is valid\n", rep.MessageType)
	return nil
}
