package lyrics

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"
)

var (
	// ErrNotFound is returned when the service has no lyrics for a song.
	ErrNotFound = errors.New("lyrics not found")

	// ErrNoLyrics is returned when an MP3 file carries no lyrics frame.
	ErrNoLyrics = errors.New("no lyrics in file")

	errMalformed = errors.New("malformed lyrics response")
)

// StatusError is returned for unexpected HTTP responses.
type StatusError struct {
	Code   int
	Status string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("HTTP %d: %s", e.Code, e.Status)
}

// temporary reports whether a retry may succeed.
func (e *StatusError) temporary() bool {
	return e.Code == http.StatusTooManyRequests || e.Code >= 500
}

// Options configures a Client. Zero values fall back to the defaults
// listed on each field.
type Options struct {
	// BaseURL of the service. Default "https://api.lyrics.ovh".
	BaseURL string

	// Timeout per request. Default 15s.
	Timeout time.Duration

	// MaxRetries is the number of attempts. Default 3.
	MaxRetries int

	// RetryCooldown is the wait before the second attempt. Default 200ms.
	RetryCooldown time.Duration

	// RetryExponent multiplies the cooldown after each attempt. Default 4.
	RetryExponent float64

	// UserAgent header value. Default "chordlyrics".
	UserAgent string

	// HTTPClient overrides the underlying client; Timeout is then ignored.
	HTTPClient *http.Client

	// Logger receives request diagnostics. Default no-op.
	Logger *zap.Logger
}

// Client fetches lyrics over HTTP.
//
// Example usage:
//
//	client := NewClient(Options{})
//	text, err := client.Fetch(ctx, "Oasis", "Wonderwall")
type Client struct {
	httpClient *http.Client
	baseURL    string
	userAgent  string
	maxRetries int
	cooldown   time.Duration
	exponent   float64
	logger     *zap.Logger
}

// NewClient creates a Client.
func NewClient(opts Options) *Client {
	if opts.BaseURL == "" {
		opts.BaseURL = "https://api.lyrics.ovh"
	}
	if opts.Timeout <= 0 {
		opts.Timeout = 15 * time.Second
	}
	if opts.MaxRetries <= 0 {
		opts.MaxRetries = 3
	}
	if opts.RetryCooldown <= 0 {
		opts.RetryCooldown = 200 * time.Millisecond
	}
	if opts.RetryExponent <= 0 {
		opts.RetryExponent = 4
	}
	if opts.UserAgent == "" {
		opts.UserAgent = "chordlyrics"
	}
	if opts.HTTPClient == nil {
		opts.HTTPClient = &http.Client{Timeout: opts.Timeout}
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}

	return &Client{
		httpClient: opts.HTTPClient,
		baseURL:    strings.TrimRight(opts.BaseURL, "/"),
		userAgent:  opts.UserAgent,
		maxRetries: opts.MaxRetries,
		cooldown:   opts.RetryCooldown,
		exponent:   opts.RetryExponent,
		logger:     opts.Logger,
	}
}

type response struct {
	Lyrics string `json:"lyrics"`
	Error  string `json:"error"`
}

// Fetch returns the lyrics of a song.
//
// Returns ErrNotFound when the service does not know the song, the context
// error when ctx is cancelled, or the last failure once all attempts are
// used up.
func (c *Client) Fetch(ctx context.Context, artist, title string) (string, error) {
	endpoint := fmt.Sprintf("%s/v1/%s/%s", c.baseURL, url.PathEscape(artist), url.PathEscape(title))
	log := c.logger.With(zap.String("artist", artist), zap.String("title", title))

	var err error
	for tries := 0; tries < c.maxRetries; tries++ {
		var text string
		text, err = c.get(ctx, endpoint)
		if err == nil {
			log.Debug("fetched lyrics", zap.Int("bytes", len(text)), zap.Int("attempt", tries+1))
			return text, nil
		}
		if !retryable(err) || ctx.Err() != nil || tries+1 == c.maxRetries {
			break
		}

		log.Warn("lyrics request failed, retrying",
			zap.Error(err),
			zap.Int("attempt", tries+1),
			zap.Int("max_attempts", c.maxRetries))
		if werr := c.waitForRetry(ctx, tries); werr != nil {
			return "", werr
		}
	}

	if ctx.Err() != nil {
		return "", ctx.Err()
	}
	return "", fmt.Errorf("fetch lyrics for %s - %s: %w", artist, title, err)
}

func (c *Client) get(ctx context.Context, endpoint string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return "", ErrNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return "", &StatusError{Code: resp.StatusCode, Status: resp.Status}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	var r response
	if err := json.Unmarshal(body, &r); err != nil {
		return "", fmt.Errorf("%w: %v", errMalformed, err)
	}
	if r.Error != "" && r.Lyrics == "" {
		return "", ErrNotFound
	}
	return r.Lyrics, nil
}

func (c *Client) waitForRetry(ctx context.Context, tries int) error {
	wait := time.Duration(float64(c.cooldown) * math.Pow(c.exponent, float64(tries)))
	timer := time.NewTimer(wait)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func retryable(err error) bool {
	if errors.Is(err, ErrNotFound) || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	var serr *StatusError
	if errors.As(err, &serr) {
		return serr.temporary()
	}
	return !errors.Is(err, errMalformed)
}
