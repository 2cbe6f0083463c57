package main

import (
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"gdtoolkit/internal/driver"
	"gdtoolkit/internal/ui"
)

type batchOutcome[R any] struct {
	results []R
	err     error
}

// runWithUI runs a batch while a progress model renders its events.
func runWithUI[R any](title string, files []string, run func(driver.ProgressSink) ([]R, error)) ([]R, error) {
	events := make(chan driver.Event, 256)
	outcomeCh := make(chan batchOutcome[R], 1)

	go func() {
		res, err := run(driver.ChannelSink{Ch: events})
		close(events)
		outcomeCh <- batchOutcome[R]{results: res, err: err}
	}()

	model := ui.NewProgressModel(title, files, events)
	program := tea.NewProgram(model, tea.WithOutput(os.Stdout))
	_, uiErr := program.Run()
	// the program may quit before the batch does
	go func() {
		for range events {
		}
	}()
	outcome := <-outcomeCh
	if uiErr != nil {
		return outcome.results, uiErr
	}
	return outcome.results, outcome.err
}
