package payscale

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"payscales/internal/components/telemetry"
	"payscales/internal/tables"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
)

const (
	report_scrape          = "scrape"
	report_scrape_assemble = "scrape.assemble"
)

// DefaultURL is the IBEW electricians pay scale page.
const DefaultURL = "https://unionpayscales.com/trades/ibew-electricians/"

var tracer = otel.Tracer("payscales/internal/scrapers/payscale")
var meter = otel.Meter("payscales/internal/scrapers/payscale")
var recordCounter = newRecordCounter()

func newRecordCounter() metric.Int64Counter {
	counter, err := meter.Int64Counter(
		"payscale.records",
		metric.WithDescription("records extracted from the selected pay scale table"),
	)
	if err != nil {
		slog.Warn("failed to create record counter, records will not be metered", "err", err)
		return noop.Int64Counter{}
	}
	return counter
}

// Scrape fetches url and converts its pay scale table into a Result.
func Scrape(ctx context.Context, fetcher Fetcher, url string, tel telemetry.API) (Result, error) {
	ctx, span := tracer.Start(ctx, "Scrape")
	defer span.End()

	fail := func(id string, err error) (Result, error) {
		tel.ReportBroken(id, err, url)
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return Result{}, err
	}

	page, err := fetcher.Fetch(ctx, url)
	if err != nil {
		return fail(report_scrape, err)
	}

	doc, err := tables.ParseDocument(strings.NewReader(page))
	if err != nil {
		return fail(report_scrape, err)
	}
	tel.ReportDebug("parsed document", url, len(doc.Tables))

	result, err := Assemble(url, doc)
	if err != nil {
		return fail(report_scrape_assemble, err)
	}

	span.SetAttributes(attribute.Int("record_count", result.RecordCount))
	recordCounter.Add(ctx, int64(result.RecordCount))
	tel.ReportCount("records", int64(result.RecordCount))
	return result, nil
}

// Assemble selects the pay scale table of doc and builds the Result from
// its records.
func Assemble(url string, doc tables.Document) (Result, error) {
	table, err := tables.Select(doc)
	if errors.Is(err, tables.ErrNoTables) {
		return Result{}, ErrNoTable
	}
	if err != nil {
		return Result{}, err
	}

	records := tables.Normalize(table)
	if len(records) == 0 {
		return Result{}, ErrEmptyTable
	}

	return Result{
		SourceURL:   url,
		RecordCount: len(records),
		Fields:      records[0].Keys(),
		Data:        records,
	}, nil
}
