package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"locksmith/internal/diag"
	"locksmith/internal/diagfmt"
	"locksmith/internal/driver"
	"locksmith/internal/source"
)

var checkCmd = &cobra.Command{
	Use:   "check [flags] <file.swift|directory>",
	Short: "Report expansion diagnostics without touching files",
	Long:  `Check runs the expansion pipeline and reports diagnostics; no files are modified.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runCheck,
}

func init() {
	checkCmd.Flags().String("format", "pretty", "output format (pretty|json|short)")
	checkCmd.Flags().Int("jobs", 0, "max parallel workers for directory processing (0=auto)")
	checkCmd.Flags().Bool("with-notes", false, "include diagnostic notes in output")
	checkCmd.Flags().Bool("fullpath", false, "emit absolute file paths in output")
}

func runCheck(cmd *cobra.Command, args []string) error {
	targetPath := args[0]

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	switch format {
	case "pretty", "json", "short":
	default:
		return fmt.Errorf("unknown format: %s", format)
	}

	withNotes, err := cmd.Flags().GetBool("with-notes")
	if err != nil {
		return err
	}
	fullPath, err := cmd.Flags().GetBool("fullpath")
	if err != nil {
		return err
	}

	maxDiags, err := maxDiagnostics(cmd)
	if err != nil {
		return err
	}

	info, err := os.Stat(targetPath)
	if err != nil {
		return fmt.Errorf("check: %w", err)
	}

	manifest, cfg, err := loadProjectConfig(targetPath, info.IsDir())
	if err != nil {
		return err
	}

	var (
		fileSet  *source.FileSet
		outcomes []*driver.FileOutcome
	)
	if info.IsDir() {
		jobs, jobsErr := cmd.Flags().GetInt("jobs")
		if jobsErr != nil {
			return jobsErr
		}
		fileSet, outcomes, err = driver.ExpandDir(cmd.Context(), targetPath, cfg, driver.DirOptions{
			Jobs:           jobs,
			MaxDiagnostics: maxDiags,
			Manifest:       manifest,
		})
	} else {
		fileSet, outcomes, err = runExpandFile(targetPath, cfg, maxDiags)
	}
	if err != nil {
		return err
	}

	// одна сумка на весь прогон: сортировка даёт стабильный порядок
	total := diag.NewBag(maxDiags)
	sites, expanded := 0, 0
	for _, outcome := range outcomes {
		sites += outcome.Sites
		expanded += outcome.Expanded
		if outcome.Bag != nil {
			total.Merge(outcome.Bag)
		}
	}
	total.Sort()

	pathMode := diagfmt.PathModeAuto
	if fullPath {
		pathMode = diagfmt.PathModeAbsolute
	}

	switch format {
	case "pretty":
		color, colorErr := useColor(cmd, os.Stdout)
		if colorErr != nil {
			return colorErr
		}
		diagfmt.Pretty(os.Stdout, total, fileSet, diagfmt.PrettyOpts{
			Color:     color,
			PathMode:  pathMode,
			ShowNotes: withNotes,
		})
		if !isQuiet(cmd) {
			fmt.Fprintf(os.Stdout, "%d site(s), %d expandable, %d problem(s)\n",
				sites, expanded, total.Len())
		}
	case "json":
		if err := diagfmt.JSON(os.Stdout, total, fileSet, diagfmt.JSONOpts{
			IncludePositions: true,
			PathMode:         pathMode,
			IncludeNotes:     withNotes,
		}); err != nil {
			return err
		}
	case "short":
		if err := diagfmt.Short(os.Stdout, total, fileSet, withNotes); err != nil {
			return err
		}
		if total.Len() > 0 {
			fmt.Fprintln(os.Stdout)
		}
	}

	if total.HasErrors() {
		return silentExit(cmd)
	}
	return nil
}
