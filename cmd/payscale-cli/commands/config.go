package commands

import (
	"errors"
	"fmt"
	"os"
	"time"

	"payscales/internal/scrapers/payscale"
	"payscales/lib/configutil"
)

// Config is the optional payscale.json5 file. Every field is a default for
// the flag of the same name.
type Config struct {
	URL      string `json:"url"`
	Out      string `json:"out"`
	Indent   *int   `json:"indent"`
	Retries  int    `json:"retries"`
	Timeout  string `json:"timeout"`
	DumpHttp string `json:"dump_http"`
}

type options struct {
	config   string
	url      string
	out      string
	indent   int
	retries  int
	timeout  time.Duration
	verbose  bool
	dumpHttp string
}

func defaultOptions() options {
	return options{
		config:  "payscale.json5",
		url:     payscale.DefaultURL,
		out:     "ibew_electricians.json",
		indent:  2,
		retries: payscale.DefaultRetries,
		timeout: payscale.DefaultTimeout,
	}
}

// loadConfig reads the config file at path, a missing file is not an error.
func loadConfig(path string) (Config, error) {
	cfg, err := configutil.ReadConfig[Config](path)
	if errors.Is(err, os.ErrNotExist) {
		return Config{}, nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	return cfg, nil
}

// apply copies the values of cfg into opts for every flag that was not
// given explicitly.
func (cfg Config) apply(opts *options, changed func(flag string) bool) error {
	if cfg.URL != "" && !changed("url") {
		opts.url = cfg.URL
	}
	if cfg.Out != "" && !changed("out") {
		opts.out = cfg.Out
	}
	if cfg.Indent != nil && !changed("indent") {
		opts.indent = *cfg.Indent
	}
	if cfg.Retries != 0 && !changed("retries") {
		opts.retries = cfg.Retries
	}
	if cfg.Timeout != "" && !changed("timeout") {
		timeout, err := time.ParseDuration(cfg.Timeout)
		if err != nil {
			return fmt.Errorf("config timeout: %w", err)
		}
		opts.timeout = timeout
	}
	if cfg.DumpHttp != "" && !changed("dump-http") {
		opts.dumpHttp = cfg.DumpHttp
	}
	return nil
}
