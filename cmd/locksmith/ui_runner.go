package main

import (
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"locksmith/internal/driver"
	"locksmith/internal/expand"
	"locksmith/internal/source"
	"locksmith/internal/ui"
)

type expandOutcome struct {
	fileSet  *source.FileSet
	outcomes []*driver.FileOutcome
	err      error
}

// runExpandDirWithUI гоняет ExpandDir в фоне и рисует прогресс в
// терминале. Канал событий закрывает фоновая горутина; модель выходит
// по закрытию.
func runExpandDirWithUI(cmd *cobra.Command, dir string, cfg expand.Config, opts driver.DirOptions) (*source.FileSet, []*driver.FileOutcome, error) {
	files, err := driver.ListSourceFiles(dir, opts.Manifest)
	if err != nil {
		return nil, nil, err
	}
	relFiles := make([]string, 0, len(files))
	for _, file := range files {
		rel := file
		if r, relErr := filepath.Rel(dir, file); relErr == nil {
			rel = r
		}
		relFiles = append(relFiles, rel)
	}

	events := make(chan ui.Event, 256)
	outcomeCh := make(chan expandOutcome, 1)

	opts.Progress = func(done, total int, outcome *driver.FileOutcome) {
		events <- ui.Event{File: outcome.Path, Status: outcomeStatus(outcome)}
	}

	go func() {
		fileSet, outcomes, runErr := driver.ExpandDir(cmd.Context(), dir, cfg, opts)
		outcomeCh <- expandOutcome{fileSet: fileSet, outcomes: outcomes, err: runErr}
		close(events)
	}()

	model := ui.NewProgressModel("expanding "+dir, relFiles, events)
	program := tea.NewProgram(model, tea.WithOutput(os.Stdout))
	_, uiErr := program.Run()
	outcome := <-outcomeCh
	if uiErr != nil {
		return outcome.fileSet, outcome.outcomes, uiErr
	}
	return outcome.fileSet, outcome.outcomes, outcome.err
}

func outcomeStatus(outcome *driver.FileOutcome) ui.Status {
	switch {
	case !outcome.Clean():
		return ui.StatusError
	case outcome.Cached:
		return ui.StatusCached
	default:
		return ui.StatusDone
	}
}
