package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hoffmabc/arch-idl/internal/adapters/bbolt"
	"github.com/hoffmabc/arch-idl/internal/adapters/treesitter"
	"github.com/hoffmabc/arch-idl/internal/app"
	"github.com/hoffmabc/arch-idl/internal/ports"
)

var (
	generateOutput  string
	generateNoCache bool
	grammarPath     string
)

var generateCmd = &cobra.Command{
	Use:   "generate <file.rs>",
	Short: "Generate the IDL for a Rust program source file",
	Long:  "Parses the source, extracts instructions, accounts, types, and error codes, and emits the IDL as JSON. Results are cached by source hash; unchanged files are served from the cache.",
	Args:  cobra.ExactArgs(1),
	RunE:  runGenerate,
}

func init() {
	generateCmd.Flags().StringVarP(&generateOutput, "output", "o", "", "write IDL JSON to this path (default: stdout)")
	generateCmd.Flags().BoolVar(&generateNoCache, "no-cache", false, "always re-extract, skip the cache")
	generateCmd.Flags().StringVar(&grammarPath, "grammar", "", "load the Rust grammar from this shared library instead of the compiled-in one")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	gen, err := newGenerator()
	if err != nil {
		return err
	}

	var store ports.Store
	if !generateNoCache {
		if s, err := openStore(); err == nil {
			store = s
			defer s.Close()
		}
		// A locked or unopenable cache degrades to uncached generation.
	}

	svc := app.NewService(gen, store, nil)
	res, err := svc.GenerateFile(args[0])
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(res.Document, "", "  ")
	if err != nil {
		return err
	}

	if generateOutput == "" {
		fmt.Println(string(data))
		return nil
	}
	if err := os.WriteFile(generateOutput, append(data, '\n'), 0644); err != nil {
		return err
	}
	source := "generated"
	if res.FromCache {
		source = "cached"
	}
	fmt.Printf("%s → %s (%s)\n", args[0], generateOutput, source)
	return nil
}

// newGenerator builds the tree-sitter generator, honoring --grammar.
func newGenerator() (*treesitter.Generator, error) {
	if grammarPath == "" {
		return treesitter.NewGenerator(), nil
	}
	parser, err := treesitter.NewRustParserFromLibrary(grammarPath)
	if err != nil {
		return nil, err
	}
	return treesitter.NewGeneratorWith(parser), nil
}

// openStore opens the project-local bbolt cache.
func openStore() (*bbolt.Store, error) {
	path, err := app.CachePath(projectRoot())
	if err != nil {
		return nil, err
	}
	return bbolt.NewStore(path)
}
