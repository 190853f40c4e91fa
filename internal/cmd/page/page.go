// Package page parses page host flags and launches the service.
package page

import (
	"context"
	"flag"
	"fmt"

	entrypoint "github.com/louisbranch/uctf/internal/platform/cmd"
	"github.com/louisbranch/uctf/internal/services/page"
)

// Config holds page command configuration.
type Config struct {
	HTTPAddr string `env:"UCTF_PAGE_HTTP_ADDR" envDefault:"localhost:8080"`
	Title    string `env:"UCTF_PAGE_TITLE" envDefault:"Hello"`
	Lang     string `env:"UCTF_PAGE_LANG" envDefault:"en"`
}

// ParseConfig parses environment and flags into Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP listen address")
	fs.StringVar(&cfg.Title, "title", cfg.Title, "Document title")
	fs.StringVar(&cfg.Lang, "lang", cfg.Lang, "Document language tag")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run starts the page host.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServicePage, func(ctx context.Context) error {
		server, err := page.NewServer(ctx, page.Config{
			HTTPAddr: cfg.HTTPAddr,
			Title:    cfg.Title,
			Lang:     cfg.Lang,
		})
		if err != nil {
			return fmt.Errorf("init page server: %w", err)
		}
		defer server.Close()

		if err := server.ListenAndServe(ctx); err != nil {
			return fmt.Errorf("serve page: %w", err)
		}
		return nil
	})
}
