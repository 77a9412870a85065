package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hoffmabc/arch-idl/internal/domain/idl"
)

var validateCmd = &cobra.Command{
	Use:   "validate <idl.json>",
	Short: "Validate an IDL JSON document",
	Long:  "Checks that a document is well-formed: required keys present, type encodings recognized, catalogs internally consistent.",
	Args:  cobra.ExactArgs(1),
	RunE:  runValidate,
}

func runValidate(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}
	doc, err := idl.ValidateJSON(data)
	if err != nil {
		return err
	}
	fmt.Printf("%s: ok — %s v%s, %d instruction(s), %d account(s), %d type(s), %d error(s)\n",
		args[0], doc.Name, doc.Version,
		len(doc.Instructions), len(doc.Accounts), len(doc.Types), len(doc.Errors))
	return nil
}
