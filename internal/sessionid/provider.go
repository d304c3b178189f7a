package sessionid

import (
	"crypto/rand"
	"io"
	"strconv"
	"strings"
	"sync/atomic"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/sessionkit/noluhn/internal/noluhn"
)

const (
	// AttributeIDLength is the attribute holding the id length in bytes.
	AttributeIDLength = "session.id.length"

	// DefaultLength is the id length in bytes used when nothing is configured.
	DefaultLength = 30
)

// AttributeSource provides string valued configuration attributes.
type AttributeSource interface {
	// Attribute returns the value for key or defaultValue if the key is not set.
	Attribute(key, defaultValue string) string
}

// Provider generates new session ids and checks the shape of received ones.
// Use New; a zero Provider falls back to crypto/rand with a length of 0.
type Provider struct {
	random io.Reader
	length atomic.Int64
}

// Option configures a Provider.
type Option func(*Provider)

// WithLength sets the number of random bytes per id.
// It panics on a negative length.
func WithLength(n int) Option {
	return func(p *Provider) {
		if err := p.SetLength(n); err != nil {
			panic(err)
		}
	}
}

// WithRandom replaces the random source. The reader must be safe for
// concurrent use and should be a cryptographically secure generator.
func WithRandom(r io.Reader) Option {
	return func(p *Provider) {
		if r != nil {
			p.random = r
		}
	}
}

// New returns a Provider using crypto/rand and DefaultLength unless overridden.
func New(opts ...Option) *Provider {
	p := &Provider{random: rand.Reader}
	p.length.Store(DefaultLength)

	for _, opt := range opts {
		opt(p)
	}

	initMetrics()

	return p
}

// Length returns the configured id length in bytes.
func (p *Provider) Length() int {
	return int(p.length.Load())
}

// CharLength returns the length in characters of ids issued by p.
func (p *Provider) CharLength() int {
	return noluhn.CharLength(p.Length())
}

// SetLength replaces the id length in bytes.
func (p *Provider) SetLength(n int) error {
	if n < 0 {
		return errors.Wrapf(ErrNegativeLength, "length %d", n)
	}

	p.length.Store(int64(n))

	return nil
}

// Configure reads AttributeIDLength from src, defaulting to DefaultLength.
// A value that is not an integer is a configuration error and leaves the
// provider unchanged.
func (p *Provider) Configure(src AttributeSource) error {
	if src == nil {
		return errors.New("attribute source is nil")
	}

	raw := src.Attribute(AttributeIDLength, strconv.Itoa(DefaultLength))

	n, err := strconv.Atoi(raw)
	if err != nil {
		return errors.Wrapf(ErrInvalidLength, "%s=%q", AttributeIDLength, raw)
	}

	if err = p.SetLength(n); err != nil {
		return err
	}

	log.Debug().Int("bytes", n).Int("chars", noluhn.CharLength(n)).Msg("session id length configured")

	return nil
}

// NewID returns a fresh id. An error means the random source failed; there is
// no fallback.
func (p *Provider) NewID() (string, error) {
	initMetrics()

	random := p.random
	if random == nil {
		random = rand.Reader
	}

	buf := make([]byte, p.Length())

	if _, err := io.ReadFull(random, buf); err != nil {
		return "", errors.Wrap(err, "can't read random bytes for session id")
	}

	generated.Inc()

	return noluhn.EncodeToString(buf), nil
}

// KeyGenerator adapts NewID to session stores expecting a func() string.
// The returned function panics if the random source fails.
func (p *Provider) KeyGenerator() func() string {
	return func() string {
		id, err := p.NewID()
		if err != nil {
			panic(err)
		}

		return id
	}
}

// ReadID trims value and returns it if its length matches CharLength.
// Empty and blank values are rejected even when the configured length is 0.
// Only the length is checked, not the characters. The length counts bytes,
// not characters, so multi-byte text is measured by its UTF-8 size.
func (p *Provider) ReadID(value string) (string, bool) {
	initMetrics()

	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		read.WithLabelValues(resultEmpty).Inc()
		return "", false
	}

	if len(trimmed) != p.CharLength() {
		read.WithLabelValues(resultLength).Inc()
		return "", false
	}

	read.WithLabelValues(resultAccepted).Inc()

	return trimmed, true
}
