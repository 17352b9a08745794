package entropy

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/hashicorp/go-multierror"
	"golang.org/x/sync/errgroup"

	"github.com/rzbill/entid/pkg/log"
)

// Beacon consumes the distributed entropy network over HTTP. Each draw is
// fanned out to every configured node; the first node to answer wins and
// the remaining requests are cancelled. A draw that fails on all nodes is
// retried with capped exponential backoff before surfacing ErrUnavailable.
type Beacon struct {
	endpoints []string
	client    *http.Client
	maxTries  int
	logger    log.Logger
}

// BeaconOption configures a Beacon.
type BeaconOption func(*Beacon)

// WithHTTPClient replaces the HTTP client used for node requests.
func WithHTTPClient(c *http.Client) BeaconOption {
	return func(b *Beacon) { b.client = c }
}

// WithRequestTimeout bounds each node request.
func WithRequestTimeout(d time.Duration) BeaconOption {
	return func(b *Beacon) { b.client.Timeout = d }
}

// WithMaxTries sets how many rounds over the nodes a single draw may take,
// including the first.
func WithMaxTries(n int) BeaconOption {
	return func(b *Beacon) {
		if n > 0 {
			b.maxTries = n
		}
	}
}

// WithLogger attaches a logger for node-level failures.
func WithLogger(l log.Logger) BeaconOption {
	return func(b *Beacon) { b.logger = l }
}

// NewBeacon returns a Beacon over the given node endpoints.
func NewBeacon(endpoints []string, opts ...BeaconOption) (*Beacon, error) {
	if len(endpoints) == 0 {
		return nil, errors.New("entropy: beacon needs at least one endpoint")
	}
	b := &Beacon{
		endpoints: endpoints,
		client:    &http.Client{Timeout: 2 * time.Second},
		maxTries:  3,
		logger:    log.NewNop(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b, nil
}

// Bits implements Source.
func (b *Beacon) Bits(ctx context.Context, n int) ([]byte, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidCount, n)
	}

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = 50 * time.Millisecond
	bo.MaxInterval = time.Second

	var out []byte
	op := func() error {
		p, err := b.fetchAny(ctx, n)
		if err != nil {
			return err
		}
		out = p
		return nil
	}
	err := backoff.Retry(op, backoff.WithContext(
		backoff.WithMaxRetries(bo, uint64(b.maxTries-1)), ctx))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return out, nil
}

// fetchAny races one request per node and returns the first success. When
// every node fails, the per-node errors are returned aggregated.
func (b *Beacon) fetchAny(ctx context.Context, n int) ([]byte, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	results := make(chan []byte, len(b.endpoints))
	var (
		mu       sync.Mutex
		nodeErrs error
	)
	g := new(errgroup.Group)
	for _, ep := range b.endpoints {
		ep := ep
		g.Go(func() error {
			p, err := b.fetchNode(ctx, ep, n)
			if err != nil {
				b.logger.Debug("entropy node failed", log.Str("node", ep), log.Err(err))
				mu.Lock()
				nodeErrs = multierror.Append(nodeErrs, fmt.Errorf("%s: %w", ep, err))
				mu.Unlock()
				return nil
			}
			results <- p
			cancel()
			return nil
		})
	}
	_ = g.Wait()

	select {
	case p := <-results:
		return p, nil
	default:
		return nil, multierror.Flatten(nodeErrs)
	}
}

// fetchNode requests n bits from one node.
//
// Wire contract: GET {node}/v1/entropy?bits=N answers 200 with
// {"bits":N,"data":"<base64>"} where data holds ceil(N/8) bytes.
func (b *Beacon) fetchNode(ctx context.Context, endpoint string, n int) ([]byte, error) {
	url := fmt.Sprintf("%s/v1/entropy?bits=%d", strings.TrimRight(endpoint, "/"), n)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := b.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %s", resp.Status)
	}

	var body struct {
		Bits int    `json:"bits"`
		Data string `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	if body.Bits != n {
		return nil, fmt.Errorf("node answered %d bits, want %d", body.Bits, n)
	}
	p, err := base64.StdEncoding.DecodeString(body.Data)
	if err != nil {
		return nil, fmt.Errorf("decode data: %w", err)
	}
	if len(p) != bytesFor(n) {
		return nil, fmt.Errorf("node answered %d bytes, want %d", len(p), bytesFor(n))
	}
	maskTail(p, n)
	return p, nil
}
