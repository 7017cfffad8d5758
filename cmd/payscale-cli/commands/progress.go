package commands

import (
	"os"
	"time"

	"github.com/briandowns/spinner"
)

// newSpinner writes to stderr and only animates when stderr is a terminal,
// so stdout stays reserved for the summary lines.
func newSpinner(message string) *spinner.Spinner {
	return spinner.New(
		spinner.CharSets[14],
		100*time.Millisecond,
		spinner.WithWriterFile(os.Stderr),
		spinner.WithSuffix(" "+message),
	)
}

// withProgress shows a spinner while fn runs. Nothing is shown while debug
// logs are being written.
func withProgress(message string, verbose bool, fn func() error) error {
	if verbose {
		return fn()
	}
	s := newSpinner(message)
	s.Start()
	defer s.Stop()
	return fn()
}
