package serviceutil

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
)

// Returns a context that will live until Ctrl+C is pressed
func SignalContext() context.Context {
	ctx, cancel := context.WithCancel(context.Background())

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigs
		cancel()
	}()

	return ctx
}

// WriteError writes err as a single `ERROR: <message>` line.
func WriteError(w io.Writer, err error) {
	message := strings.ReplaceAll(err.Error(), "\n", " ")
	fmt.Fprintf(w, "ERROR: %s\n", message)
}

// Fatal reports err on stderr and exits with status 1.
func Fatal(err error) {
	slog.Debug("exiting on error", "err", err)
	WriteError(os.Stderr, err)
	os.Exit(1)
}
