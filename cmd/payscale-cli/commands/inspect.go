package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"payscales/internal/components/telemetry"
	"payscales/internal/tables"
	"payscales/lib/util/serviceutil"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"
)

var inspectLimit int

func init() {
	inspectCmd.Flags().IntVar(&inspectLimit, "limit", 60, "Truncate header text to this many characters, 0 for no limit.")
	rootCmd.AddCommand(inspectCmd)
}

var inspectCmd = &cobra.Command{
	Use:   "inspect [--url <page>] [--limit N]",
	Short: "Prints every table on the page with the score used to pick the pay scale table.",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		err := withTelemetry(cmd.Context(), func(ctx context.Context) error {
			return runInspect(ctx, cmd.OutOrStdout(), opts, inspectLimit)
		})
		if err != nil {
			serviceutil.Fatal(err)
		}
	},
}

func runInspect(ctx context.Context, stdout io.Writer, o options, limit int) error {
	tel := telemetry.SlogAPI{Logger: slog.Default()}

	client, err := newClient(o, tel)
	if err != nil {
		return err
	}
	var page string
	err = withProgress("fetching "+o.url, o.verbose, func() error {
		page, err = client.Fetch(ctx, o.url)
		return err
	})
	if err != nil {
		return err
	}
	doc, err := tables.ParseDocument(strings.NewReader(page))
	if err != nil {
		return err
	}

	renderCandidates(stdout, tables.Candidates(doc, tables.Score), limit)
	return nil
}

func renderCandidates(w io.Writer, candidates []tables.Candidate, limit int) {
	if len(candidates) == 0 {
		fmt.Fprintln(w, "No tables found.")
		return
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleRounded)
	t.AppendHeader(table.Row{"", "Index", "Rows", "Columns", "Header", "Score"})

	best := tables.Best(candidates)
	for i, c := range candidates {
		marker := ""
		if i == best {
			marker = "*"
		}
		header := c.HeaderText
		if limit > 0 {
			header = text.Trim(header, limit)
		}
		t.AppendRow(table.Row{marker, c.Index, c.Rows, c.Columns, header, c.Score})
	}
	t.Render()
}
