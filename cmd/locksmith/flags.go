package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"locksmith/internal/expand"
	"locksmith/internal/project"
)

func useColor(cmd *cobra.Command, f *os.File) (bool, error) {
	colorFlag, err := cmd.Root().PersistentFlags().GetString("color")
	if err != nil {
		return false, fmt.Errorf("failed to get color flag: %w", err)
	}
	switch colorFlag {
	case "on":
		return true, nil
	case "off":
		return false, nil
	case "auto":
		return isTerminal(f), nil
	default:
		return false, fmt.Errorf("unknown color mode: %s", colorFlag)
	}
}

func maxDiagnostics(cmd *cobra.Command) (int, error) {
	n, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return 0, fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}
	return n, nil
}

func isQuiet(cmd *cobra.Command) bool {
	quiet, err := cmd.Root().PersistentFlags().GetBool("quiet")
	return err == nil && quiet
}

// loadProjectConfig ищет locksmith.toml вверх от цели и сливает его
// поверх дефолтов. Для файла поиск начинается с его директории.
func loadProjectConfig(target string, isDir bool) (project.Manifest, expand.Config, error) {
	dir := target
	if !isDir {
		dir = filepath.Dir(target)
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return project.Manifest{}, expand.Config{}, err
	}
	manifest, err := project.LoadFromDir(abs)
	if err != nil {
		return project.Manifest{}, expand.Config{}, err
	}
	return manifest, manifest.Config(), nil
}

// silentExit подавляет вывод cobra: диагностики уже напечатаны.
func silentExit(cmd *cobra.Command) error {
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true
	return fmt.Errorf("")
}
