// Package sample implements the sample command.
package sample

import (
	"fmt"
	"os"

	"openclear/mx-message/cmd/root"
	"openclear/mx-message/internal/document"
	"openclear/mx-message/internal/sample"

	"github.com/spf13/cobra"
)

var messageType string

// Cmd is the sample command
var Cmd = &cobra.Command{
	Use:   "sample",
	Short: "Generate a sample MX message",
	Long: `Sample writes a minimal valid instance of the given message type
("pacs.008", "pacs.003", "camt.057", "camt.108" or "head.001" for the
business application header) to the output file, or to stdout.`,
	RunE: run,
}

func init() {
	Cmd.Flags().StringVarP(&messageType, "type", "t", "pacs.008", "Message type to generate")
}

func run(cmd *cobra.Command, args []string) error {
	data, err := render(messageType)
	if err != nil {
		return err
	}

	if root.SharedFlags.Output == "" {
		fmt.Print(string(data))
		return nil
	}
	if err := os.WriteFile(root.SharedFlags.Output, data, 0600); err != nil {
		return fmt.Errorf("failed to write sample: %w", err)
	}
	root.Log.Infof("Wrote sample %s message to %s", messageType, root.SharedFlags.Output)
	return nil
}

func render(messageType string) ([]byte, error) {
	if messageType == "head.001" {
		hdr, err := sample.AppHeader("pacs.008")
		if err != nil {
			return nil, err
		}
		return document.MarshalAppHeader(hdr)
	}

	doc, err := sample.NewDocument(messageType)
	if err != nil {
		return nil, err
	}
	return document.Marshal(doc)
}
