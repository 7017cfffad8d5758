package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"payscales/internal/components/telemetry"
	"payscales/internal/scrapers/payscale"
	"payscales/lib/restyutil"
	libtelemetry "payscales/lib/telemetry"
	"payscales/lib/util/serviceutil"

	"github.com/spf13/cobra"
)

var opts = defaultOptions()

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.config, "config", opts.config, "Optional json5 config file supplying flag defaults.")
	flags.StringVar(&opts.url, "url", opts.url, "The pay scale page to scrape.")
	flags.IntVar(&opts.retries, "retries", opts.retries, "Total number of fetch attempts.")
	flags.DurationVar(&opts.timeout, "timeout", opts.timeout, "Timeout of a single fetch attempt.")
	flags.BoolVar(&opts.verbose, "verbose", opts.verbose, "Log debug output to stderr.")
	flags.StringVar(&opts.dumpHttp, "dump-http", opts.dumpHttp, "Directory to write every HTTP exchange to.")

	rootCmd.Flags().StringVar(&opts.out, "out", opts.out, "The JSON file to write.")
	rootCmd.Flags().IntVar(&opts.indent, "indent", opts.indent, "Spaces of JSON indentation per level, 0 for line breaks only.")
}

var rootCmd = &cobra.Command{
	Use:   "payscale-cli [--url <page>] [--out <file.json>]",
	Short: "payscale-cli scrapes the pay scale table of a union trade page into JSON.",
	Args:  cobra.NoArgs,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig(opts.config)
		if err == nil {
			err = cfg.apply(&opts, cmd.Flags().Changed)
		}
		if err == nil {
			err = validate(opts)
		}
		if err != nil {
			serviceutil.Fatal(err)
		}
		libtelemetry.InitSlog(opts.verbose)
	},
	Run: func(cmd *cobra.Command, args []string) {
		err := withTelemetry(cmd.Context(), func(ctx context.Context) error {
			return runScrape(ctx, cmd.OutOrStdout(), opts)
		})
		if err != nil {
			serviceutil.Fatal(err)
		}
	},
}

func ExecuteContext(ctx context.Context) {
	rootCmd.SilenceUsage = true
	rootCmd.SilenceErrors = true
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		serviceutil.Fatal(err)
	}
}

func validate(o options) error {
	if o.url == "" {
		return fmt.Errorf("--url must not be empty")
	}
	if o.retries < 1 {
		return fmt.Errorf("--retries must be at least 1, got %d", o.retries)
	}
	if o.timeout <= 0 {
		return fmt.Errorf("--timeout must be positive, got %s", o.timeout)
	}
	return nil
}

// withTelemetry runs fn with the exporters of telemetry.json5 installed
// and flushes them afterwards.
func withTelemetry(ctx context.Context, fn func(ctx context.Context) error) error {
	tel, err := libtelemetry.SetupFromEnv(ctx, "payscale-cli")
	if err != nil {
		slog.Warn("failed to setup telemetry", "err", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		err := tel.Shutdown(shutdownCtx)
		if err != nil {
			slog.Warn("failed to flush telemetry", "err", err)
		}
	}()
	return fn(ctx)
}

func newClient(o options, tel telemetry.API) (*payscale.Client, error) {
	clientOpts := payscale.ClientOptions{
		Retries: o.retries,
		Timeout: o.timeout,
	}
	if o.dumpHttp != "" {
		output, err := restyutil.NewFilesystemOutput(o.dumpHttp)
		if err != nil {
			return nil, err
		}
		clientOpts.HttpDump = output
	}
	return payscale.NewClient(clientOpts, tel)
}

func runScrape(ctx context.Context, stdout io.Writer, o options) error {
	tel := telemetry.SlogAPI{Logger: slog.Default()}

	client, err := newClient(o, tel)
	if err != nil {
		return err
	}

	var result payscale.Result
	err = withProgress("scraping "+o.url, o.verbose, func() error {
		result, err = payscale.Scrape(ctx, client, o.url, tel)
		return err
	})
	if err != nil {
		return err
	}
	return writeResult(stdout, result, o)
}

func writeResult(stdout io.Writer, result payscale.Result, o options) error {
	err := result.WriteFile(o.out, o.indent)
	if err != nil {
		return err
	}
	fmt.Fprintf(stdout, "Wrote %d records to %s\n", result.RecordCount, o.out)
	fmt.Fprintf(stdout, "Fields: %s\n", strings.Join(result.Fields, ", "))
	return nil
}
