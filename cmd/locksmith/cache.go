package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"locksmith/internal/driver"
)

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Manage the persistent result cache",
}

var cacheClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all cached expansion results",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cache, err := driver.OpenDiskCache("locksmith")
		if err != nil {
			return fmt.Errorf("cache: %w", err)
		}
		if err := cache.DropAll(); err != nil {
			return fmt.Errorf("cache: %w", err)
		}
		if !isQuiet(cmd) {
			fmt.Fprintln(os.Stdout, "Cache cleared.")
		}
		return nil
	},
}

func init() {
	cacheCmd.AddCommand(cacheClearCmd)
}
