package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Inspect or clear the IDL cache",
}

var cacheListCmd = &cobra.Command{
	Use:   "list",
	Short: "List cached IDL entries",
	Args:  cobra.NoArgs,
	RunE:  runCacheList,
}

var cacheWipeCmd = &cobra.Command{
	Use:   "wipe",
	Short: "Remove all cached IDL entries",
	Args:  cobra.NoArgs,
	RunE:  runCacheWipe,
}

func init() {
	cacheCmd.AddCommand(cacheListCmd)
	cacheCmd.AddCommand(cacheWipeCmd)
}

func runCacheList(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	entries, err := store.List()
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Println("cache is empty")
		return nil
	}
	for _, e := range entries {
		name := ""
		if e.Document != nil {
			name = e.Document.Name
		}
		fmt.Printf("%s  %s  %s  %s\n",
			time.Unix(e.GeneratedAt, 0).Format("2006-01-02 15:04:05"),
			e.SourceHash[:12], name, e.Path)
	}
	return nil
}

func runCacheWipe(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.Wipe(); err != nil {
		return err
	}
	fmt.Println("cache wiped")
	return nil
}
