package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/agentstation/confyg/internal/cmd/output"
	"github.com/agentstation/confyg/pkg/document"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <document>",
	Short: "Print the structure of a configuration document",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store := document.NewFileStore()
		doc, err := store.Load(args[0])
		if err != nil {
			return err
		}
		output.WriteTree(os.Stdout, doc)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}
