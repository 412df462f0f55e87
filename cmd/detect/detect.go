// Package detect implements the detect command.
package detect

import (
	"fmt"

	"openclear/mx-message/cmd/root"
	"openclear/mx-message/internal/document"

	"github.com/spf13/cobra"
)

// Cmd is the detect command
var Cmd = &cobra.Command{
	Use:   "detect",
	Short: "Detect the message type of an MX file",
	Long: `Detect probes the XML structure of a file and prints the short form
of the ISO 20022 message type it carries, e.g. "pacs.008".`,
	RunE: run,
}

func run(cmd *cobra.Command, args []string) error {
	if root.SharedFlags.Input == "" {
		return fmt.Errorf("input file is required (use -i)")
	}

	messageType, err := document.DetectMessageTypeFile(root.SharedFlags.Input)
	if err != nil {
		return err
	}

	fmt.Println(messageType)
	return nil
}
