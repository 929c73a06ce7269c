package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"locksmith/internal/diag"
	"locksmith/internal/diagfmt"
	"locksmith/internal/driver"
	"locksmith/internal/expand"
	"locksmith/internal/project"
	"locksmith/internal/rewrite"
	"locksmith/internal/source"
)

var expandCmd = &cobra.Command{
	Use:   "expand [flags] <file.swift|directory>",
	Short: "Expand @ThreadSafe declarations into lock-guarded accessors",
	Long: `Expand rewrites every marked variable declaration into a computed-property
facade backed by a private (value, lock) tuple. Without --write the command
only reports what it would change.`,
	Args: cobra.ExactArgs(1),
	RunE: runExpand,
}

func init() {
	expandCmd.Flags().Bool("write", false, "write expanded files in place (default is dry run)")
	expandCmd.Flags().Bool("print", false, "print rewritten file contents to stdout (dry run only)")
	expandCmd.Flags().Int("jobs", 0, "max parallel workers for directory processing (0=auto)")
	expandCmd.Flags().Bool("no-cache", false, "disable the persistent result cache")
	expandCmd.Flags().Bool("ui", false, "show interactive progress for directory processing")
	expandCmd.Flags().String("attribute", "", "override the marker attribute name")
}

func runExpand(cmd *cobra.Command, args []string) error {
	targetPath := args[0]

	write, err := cmd.Flags().GetBool("write")
	if err != nil {
		return err
	}
	printContent, err := cmd.Flags().GetBool("print")
	if err != nil {
		return err
	}
	if write && printContent {
		return fmt.Errorf("--print cannot be combined with --write")
	}

	maxDiags, err := maxDiagnostics(cmd)
	if err != nil {
		return err
	}

	info, err := os.Stat(targetPath)
	if err != nil {
		return fmt.Errorf("expand: %w", err)
	}

	manifest, cfg, err := loadProjectConfig(targetPath, info.IsDir())
	if err != nil {
		return err
	}
	if attr, _ := cmd.Flags().GetString("attribute"); attr != "" {
		cfg.Attribute = attr
	}

	var (
		fileSet  *source.FileSet
		outcomes []*driver.FileOutcome
	)
	if info.IsDir() {
		fileSet, outcomes, err = runExpandDir(cmd, targetPath, cfg, manifest, maxDiags)
	} else {
		fileSet, outcomes, err = runExpandFile(targetPath, cfg, maxDiags)
	}
	if err != nil {
		return err
	}

	reportDiagnostics(cmd, fileSet, outcomes)

	sites, expanded := 0, 0
	var edits []diag.TextEdit
	for _, outcome := range outcomes {
		sites += outcome.Sites
		expanded += outcome.Expanded
		edits = append(edits, outcome.Edits...)
	}

	quiet := isQuiet(cmd)
	if len(edits) == 0 {
		if !quiet {
			fmt.Fprintln(os.Stdout, "No expansion sites found.")
		}
		if hasErrors(outcomes) {
			return silentExit(cmd)
		}
		return nil
	}

	res, applyErr := rewrite.Apply(fileSet, edits, rewrite.Options{DryRun: !write})
	if applyErr != nil && !errors.Is(applyErr, rewrite.ErrNoExpansions) {
		return applyErr
	}

	if !quiet {
		printApplyResult(res, write, sites, expanded)
	}
	if printContent {
		for _, change := range res.Changes {
			fmt.Fprintf(os.Stdout, "--- %s ---\n", change.Path)
			os.Stdout.Write(change.NewContent)
		}
	}

	if hasErrors(outcomes) || len(res.Skipped) > 0 {
		return silentExit(cmd)
	}
	return nil
}

func runExpandFile(path string, cfg expand.Config, maxDiags int) (*source.FileSet, []*driver.FileOutcome, error) {
	abs, err := source.AbsolutePath(path)
	if err != nil {
		return nil, nil, err
	}
	fileSet := source.NewFileSetWithBase(filepath.Dir(abs))
	fileID, err := fileSet.Load(abs)
	if err != nil {
		return nil, nil, fmt.Errorf("expand: %w", err)
	}
	outcome := driver.ExpandOne(fileSet, fileID, cfg, maxDiags)
	return fileSet, []*driver.FileOutcome{outcome}, nil
}

func runExpandDir(cmd *cobra.Command, dir string, cfg expand.Config, manifest project.Manifest, maxDiags int) (*source.FileSet, []*driver.FileOutcome, error) {
	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return nil, nil, err
	}
	noCache, err := cmd.Flags().GetBool("no-cache")
	if err != nil {
		return nil, nil, err
	}
	useUI, err := cmd.Flags().GetBool("ui")
	if err != nil {
		return nil, nil, err
	}

	var cache *driver.DiskCache
	if !noCache {
		cache, err = driver.OpenDiskCache("locksmith")
		if err != nil {
			// кэш опционален: работаем без него
			fmt.Fprintf(os.Stderr, "warning: disk cache unavailable: %v\n", err)
			cache = nil
		}
	}

	opts := driver.DirOptions{
		Jobs:           jobs,
		MaxDiagnostics: maxDiags,
		Manifest:       manifest,
		Cache:          cache,
	}

	if useUI && isTerminal(os.Stdout) {
		return runExpandDirWithUI(cmd, dir, cfg, opts)
	}
	return driver.ExpandDir(cmd.Context(), dir, cfg, opts)
}

// reportDiagnostics печатает накопленные диагностики в stderr.
func reportDiagnostics(cmd *cobra.Command, fileSet *source.FileSet, outcomes []*driver.FileOutcome) {
	color, err := useColor(cmd, os.Stderr)
	if err != nil {
		color = false
	}
	opts := diagfmt.PrettyOpts{
		Color:     color,
		ShowNotes: true,
	}
	for _, outcome := range outcomes {
		if outcome.Bag == nil || outcome.Bag.Len() == 0 {
			continue
		}
		outcome.Bag.Sort()
		diagfmt.Pretty(os.Stderr, outcome.Bag, fileSet, opts)
	}
}

func printApplyResult(res *rewrite.Result, write bool, sites, expanded int) {
	verb := "would update"
	if write {
		verb = "updated"
	}
	for _, change := range res.Changes {
		fmt.Fprintf(os.Stdout, "%s %s (%d edits)\n", verb, change.Path, change.EditCount)
	}
	for _, skip := range res.Skipped {
		fmt.Fprintf(os.Stdout, "skipped %s: %s\n", skip.Path, skip.Reason)
	}
	fmt.Fprintf(os.Stdout, "%d site(s), %d expanded\n", sites, expanded)
}

func hasErrors(outcomes []*driver.FileOutcome) bool {
	for _, outcome := range outcomes {
		if !outcome.Clean() {
			return true
		}
	}
	return false
}
