package transport

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"

	"github.com/grandcat/zeroconf"
)

const (
	ServiceType   = "_sketchy._tcp"
	ServiceDomain = "local."

	txtTransport = "transport="
)

var ErrNoHost = errors.New("no hosted game found")

// Host is a hosting peer found on the local network.
type Host struct {
	Instance  string
	Addr      string
	Transport string
}

// Advertise registers a hosted game on port and returns the function that
// withdraws it.
func Advertise(port int, transport string) (func(), error) {
	name, _ := os.Hostname()
	if name == "" {
		name = "local"
	}

	server, err := zeroconf.Register(
		fmt.Sprintf("sketchy-%s", name),
		ServiceType,
		ServiceDomain,
		port,
		[]string{txtTransport + transport},
		nil,
	)
	if err != nil {
		return nil, fmt.Errorf("zeroconf register: %w", err)
	}

	return server.Shutdown, nil
}

// Lookup browses until the first hosted game with a usable address appears
// or ctx ends.
func Lookup(ctx context.Context) (Host, error) {
	resolver, err := zeroconf.NewResolver(nil)
	if err != nil {
		return Host{}, fmt.Errorf("zeroconf resolver: %w", err)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	entries := make(chan *zeroconf.ServiceEntry)
	if err := resolver.Browse(ctx, ServiceType, ServiceDomain, entries); err != nil {
		return Host{}, fmt.Errorf("zeroconf browse: %w", err)
	}

	for {
		select {
		case <-ctx.Done():
			return Host{}, fmt.Errorf("%w: %v", ErrNoHost, ctx.Err())
		case e, ok := <-entries:
			if !ok {
				return Host{}, ErrNoHost
			}
			if h, ok := hostFromEntry(e); ok {
				return h, nil
			}
		}
	}
}

func hostFromEntry(e *zeroconf.ServiceEntry) (Host, bool) {
	var ip net.IP
	switch {
	case len(e.AddrIPv4) > 0:
		ip = e.AddrIPv4[0]
	case len(e.AddrIPv6) > 0:
		ip = e.AddrIPv6[0]
	default:
		return Host{}, false
	}

	h := Host{
		Instance: e.Instance,
		Addr:     net.JoinHostPort(ip.String(), strconv.Itoa(e.Port)),
	}
	for _, txt := range e.Text {
		if v, ok := strings.CutPrefix(txt, txtTransport); ok {
			h.Transport = v
		}
	}

	return h, true
}
