package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"locksmith/internal/diag"
	"locksmith/internal/diagfmt"
	"locksmith/internal/lexer"
	"locksmith/internal/source"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [flags] file.swift",
	Short: "Tokenize a source file",
	Long:  `Tokenize breaks down a source file into its constituent tokens`,
	Args:  cobra.ExactArgs(1),
	RunE:  runTokenize,
}

func init() {
	tokenizeCmd.Flags().String("format", "pretty", "output format (pretty|json)")
}

func runTokenize(cmd *cobra.Command, args []string) error {
	filePath := args[0]

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}

	maxDiags, err := maxDiagnostics(cmd)
	if err != nil {
		return err
	}

	abs, err := source.AbsolutePath(filePath)
	if err != nil {
		return err
	}
	fileSet := source.NewFileSetWithBase(filepath.Dir(abs))
	fileID, err := fileSet.Load(abs)
	if err != nil {
		return fmt.Errorf("tokenize: %w", err)
	}

	bag := diag.NewBag(maxDiags)
	adapter := lexer.ReporterAdapter{Bag: bag}
	lx := lexer.New(fileSet.Get(fileID), lexer.Options{Reporter: adapter.Reporter()})
	tokens := lx.Tokens()

	// Диагностику в stderr, если есть
	if bag.Len() > 0 {
		color, colorErr := useColor(cmd, os.Stderr)
		if colorErr != nil {
			color = false
		}
		bag.Sort()
		diagfmt.Pretty(os.Stderr, bag, fileSet, diagfmt.PrettyOpts{Color: color})
	}

	switch format {
	case "pretty":
		return diagfmt.FormatTokensPretty(os.Stdout, tokens, fileSet)
	case "json":
		return diagfmt.FormatTokensJSON(os.Stdout, tokens)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}
