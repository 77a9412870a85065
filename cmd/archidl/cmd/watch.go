package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	fsw "github.com/hoffmabc/arch-idl/internal/adapters/fsnotify"
	"github.com/hoffmabc/arch-idl/internal/app"
	"github.com/hoffmabc/arch-idl/internal/ports"
)

var watchCmd = &cobra.Command{
	Use:   "watch <dir>",
	Short: "Regenerate IDLs as Rust sources change",
	Long:  "Recursively watches a directory and re-extracts the IDL for each .rs file on save, writing it alongside the source as <name>.idl.json.",
	Args:  cobra.ExactArgs(1),
	RunE:  runWatch,
}

func init() {
	watchCmd.Flags().StringVar(&grammarPath, "grammar", "", "load the Rust grammar from this shared library instead of the compiled-in one")
}

func runWatch(cmd *cobra.Command, args []string) error {
	gen, err := newGenerator()
	if err != nil {
		return err
	}

	var store ports.Store
	if s, err := openStore(); err == nil {
		store = s
		defer s.Close()
	}

	watcher, err := fsw.NewWatcher()
	if err != nil {
		return err
	}

	svc := app.NewService(gen, store, watcher)
	err = svc.Watch(args[0], func(path string, res *app.Result, err error) {
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
			return
		}
		out := app.IdlOutputPath(path)
		data, merr := json.MarshalIndent(res.Document, "", "  ")
		if merr != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", path, merr)
			return
		}
		if werr := os.WriteFile(out, append(data, '\n'), 0644); werr != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", path, werr)
			return
		}
		fmt.Printf("%s → %s\n", path, out)
	})
	if err != nil {
		return err
	}
	defer svc.Stop()

	fmt.Printf("watching %s (ctrl-c to stop)\n", args[0])
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	<-sig
	return nil
}
