package greeter

import (
	"errors"
	"net"
	"strconv"
	"strings"
)

// Default listen endpoint. The responder binds here unless explicitly
// reconfigured.
const (
	DefaultAddress        = "127.0.0.1"
	DefaultPort    uint16 = 3000
)

// Options enumerates the listen endpoint of the responder.
type Options struct {
	Address string
	Port    uint16
}

// DefaultOptions returns the loopback endpoint 127.0.0.1:3000.
func DefaultOptions() Options {
	return Options{Address: DefaultAddress, Port: DefaultPort}
}

// Addr joins address and port into a dialable host:port string.
func (o Options) Addr() string {
	return net.JoinHostPort(strings.TrimSpace(o.Address), strconv.Itoa(int(o.Port)))
}

func (o Options) validate() error {
	if strings.TrimSpace(o.Address) == "" {
		return errors.New("listen address is required")
	}
	return nil
}
