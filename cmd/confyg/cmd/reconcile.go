package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/agentstation/confyg/pkg/document"
	"github.com/agentstation/confyg/pkg/errors"
	"github.com/agentstation/confyg/pkg/logging"
	"github.com/agentstation/confyg/pkg/reconcile"
)

var (
	defaultsFile string
	writeResult  bool
)

var reconcileCmd = &cobra.Command{
	Use:   "reconcile <document>",
	Short: "Reconcile a document against a defaults document",
	Long: `Reconcile merges a defaults document against a persisted document,
key by key: values edited in the persisted document are kept, missing
keys are filled in from the defaults, and keys absent from the defaults
are pruned at every nesting depth.

The merged result is printed to stdout, or written back over the
persisted document with --write.`,
	Args: cobra.ExactArgs(1),
	RunE: runReconcile,
}

func init() {
	reconcileCmd.Flags().StringVar(&defaultsFile, "defaults", "", "defaults document (required)")
	reconcileCmd.Flags().BoolVar(&writeResult, "write", false, "write the merged result back to the document")
	_ = reconcileCmd.MarkFlagRequired("defaults")

	rootCmd.AddCommand(reconcileCmd)
}

func runReconcile(cmd *cobra.Command, args []string) error {
	store := document.NewFileStore()

	def, err := store.Load(defaultsFile)
	if err != nil {
		return err
	}

	path := args[0]
	persisted, err := store.Load(path)
	if err != nil {
		if !errors.IsNotFound(err) {
			return err
		}
		persisted = document.Mapping{}
	}

	// The defaults document plays the schema's role here, so iterating
	// its keys also prunes sections it does not declare.
	merged := reconcile.Section(def, persisted)

	if writeResult {
		if err := store.Save(path, merged); err != nil {
			return err
		}
		logging.Info().Str("document", path).Msg("Wrote reconciled document")
		return nil
	}

	data, err := document.Marshal(merged)
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(os.Stdout, string(data))
	return err
}
