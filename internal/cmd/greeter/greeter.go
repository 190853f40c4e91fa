// Package greeter parses responder flags and launches the service.
package greeter

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math"

	entrypoint "github.com/louisbranch/uctf/internal/platform/cmd"
	platformotel "github.com/louisbranch/uctf/internal/platform/otel"
	"github.com/louisbranch/uctf/internal/services/greeter"
	"go.opentelemetry.io/otel"
)

// Config holds greeter command configuration.
type Config struct {
	Address   string `env:"UCTF_GREETER_ADDRESS" envDefault:"127.0.0.1"`
	Port      uint16 `env:"UCTF_GREETER_PORT" envDefault:"3000"`
	AccessLog bool   `env:"UCTF_GREETER_ACCESS_LOG" envDefault:"false"`
}

// Options converts the command config into responder options.
func (c Config) Options() greeter.Options {
	return greeter.Options{Address: c.Address, Port: c.Port}
}

// ParseConfig parses environment and flags into Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	port := uint(cfg.Port)
	fs.StringVar(&cfg.Address, "address", cfg.Address, "The greeter listen address")
	fs.UintVar(&port, "port", port, "The greeter listen port")
	fs.BoolVar(&cfg.AccessLog, "access-log", cfg.AccessLog, "Log every request")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	if port > math.MaxUint16 {
		return Config{}, fmt.Errorf("port %d out of range", port)
	}
	cfg.Port = uint16(port)
	return cfg, nil
}

// Run binds the listening socket and serves the greeting until ctx is done.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceGreeter, func(ctx context.Context) error {
		routerCfg := greeter.RouterConfig{AccessLog: cfg.AccessLog}
		if platformotel.Enabled() {
			routerCfg.TracerProvider = otel.GetTracerProvider()
		}
		server, err := greeter.NewServer(cfg.Options(), greeter.NewRouter(routerCfg))
		if err != nil {
			return fmt.Errorf("init greeter server: %w", err)
		}
		defer server.Close()

		if err := server.Listen(ctx); err != nil {
			return err
		}
		log.Printf("listening on %s", server.Addr())
		if err := server.Serve(ctx); err != nil {
			return fmt.Errorf("serve greeter: %w", err)
		}
		return nil
	})
}
