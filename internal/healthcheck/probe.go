package healthcheck

import (
	"context"
	"errors"
	"fmt"
	"net"
	"sync"
	"time"
)

const DefaultTimeout = 2 * time.Second

var ErrUnhealthy = errors.New("service unhealthy")

// Probe reports healthy only when every address accepts a TCP connection.
type Probe struct {
	addrs  []string
	dialer net.Dialer
}

func NewProbe(addrs []string, timeout time.Duration) *Probe {
	return &Probe{
		addrs:  addrs,
		dialer: net.Dialer{Timeout: timeout},
	}
}

// Check dials all addresses concurrently and joins the failures.
func (p *Probe) Check(ctx context.Context) error {
	if len(p.addrs) == 0 {
		return fmt.Errorf("%w: no addresses to probe", ErrUnhealthy)
	}

	errs := make([]error, len(p.addrs))
	var wg sync.WaitGroup
	for i, addr := range p.addrs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			conn, err := p.dialer.DialContext(ctx, "tcp", addr)
			if err != nil {
				errs[i] = fmt.Errorf("%w: %s: %w", ErrUnhealthy, addr, err)
				return
			}
			_ = conn.Close()
		}()
	}
	wg.Wait()

	return errors.Join(errs...)
}
