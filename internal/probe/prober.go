// If you are AI: This file implements the concurrent endpoint prober.
// Each (address, endpoint) pair gets one GET; results keep a deterministic order.

package probe

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strconv"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency bounds in-flight probes when none is configured.
const DefaultConcurrency = 8

// Result is the outcome of one probe.
type Result struct {
	Address        string
	Port           int
	Path           string
	Description    string
	ExpectedStatus int
	Status         int // 0 when the request failed
	Required       bool
	Bytes          int64
	ContentType    string
	Err            error
}

// OK reports whether the probe returned the expected status.
func (r Result) OK() bool {
	return r.Err == nil && r.Status == r.ExpectedStatus
}

// URL returns the probed URL.
func (r Result) URL() string {
	return buildURL(r.Address, r.Port, r.Path)
}

// Prober runs probes against a target set.
type Prober struct {
	targets     *Targets
	port        int
	concurrency int
	client      *http.Client
	logger      *zap.Logger
}

// Option configures a Prober.
type Option func(*Prober)

// WithPort overrides the target file's default_port.
func WithPort(port int) Option {
	return func(p *Prober) {
		if port > 0 {
			p.port = port
		}
	}
}

// WithConcurrency bounds the number of probes in flight.
func WithConcurrency(n int) Option {
	return func(p *Prober) {
		if n > 0 {
			p.concurrency = n
		}
	}
}

// New creates a prober for the given targets.
func New(targets *Targets, logger *zap.Logger, opts ...Option) *Prober {
	p := &Prober{
		targets:     targets,
		port:        targets.DefaultPort,
		concurrency: DefaultConcurrency,
		logger:      logger,
	}
	for _, opt := range opts {
		opt(p)
	}
	p.client = newClient(targets.Connection)
	return p
}

// newClient builds an HTTP client honouring the timeout and redirect policy.
func newClient(cc ConnectionConfig) *http.Client {
	return &http.Client{
		Timeout: cc.Timeout(),
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			if !cc.FollowRedirects() {
				return http.ErrUseLastResponse
			}
			if limit := cc.RedirectLimit(); len(via) > limit {
				return fmt.Errorf("stopped after %d redirects", limit)
			}
			return nil
		},
	}
}

// Run probes every endpoint on every address.
// Individual probe failures are recorded in the report; the returned error is
// non-nil only when ctx is cancelled.
func (p *Prober) Run(ctx context.Context, addresses []string) (*Report, error) {
	endpoints := p.targets.Endpoints
	results := make([]Result, len(addresses)*len(endpoints))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.concurrency)

	for i, addr := range addresses {
		for j, ep := range endpoints {
			slot := &results[i*len(endpoints)+j]
			*slot = Result{
				Address:        addr,
				Port:           p.port,
				Path:           ep.Path,
				Description:    ep.Description,
				ExpectedStatus: ep.ExpectedStatus,
				Required:       ep.IsRequired(),
			}

			g.Go(func() error {
				p.probe(gctx, slot)
				return nil
			})
		}
	}

	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		return &Report{Results: results}, fmt.Errorf("probe run: %w", err)
	}
	return &Report{Results: results}, nil
}

// probe performs one GET and fills in the result slot.
func (p *Prober) probe(ctx context.Context, res *Result) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, res.URL(), nil)
	if err != nil {
		res.Err = err
		return
	}
	for k, v := range p.targets.Connection.Headers {
		req.Header.Set(k, v)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		res.Err = classify(err)
		p.logger.Debug("Probe failed", zap.String("url", res.URL()), zap.Error(res.Err))
		return
	}
	defer resp.Body.Close()

	res.Status = resp.StatusCode
	res.ContentType = resp.Header.Get("Content-Type")
	res.Bytes, err = io.Copy(io.Discard, resp.Body)
	if err != nil {
		res.Err = fmt.Errorf("read body: %w", err)
	}

	p.logger.Debug("Probe finished",
		zap.String("url", res.URL()),
		zap.Int("status", res.Status),
		zap.Int("expected", res.ExpectedStatus),
	)
}

// Probe error categories.
var (
	ErrConnection = errors.New("connection error")
	ErrTimeout    = errors.New("timeout")
)

// classify wraps transport errors in a coarse category.
func classify(err error) error {
	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		return fmt.Errorf("%w: %w", ErrTimeout, err)
	}
	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return fmt.Errorf("%w: %w", ErrConnection, err)
	}
	return err
}

// buildURL joins address, port, and path into an http URL.
func buildURL(addr string, port int, path string) string {
	return "http://" + net.JoinHostPort(addr, strconv.Itoa(port)) + path
}
