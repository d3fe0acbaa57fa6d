package shortener

import (
	"encoding/hex"
	"math/rand/v2"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/zeebo/xxh3"
)

const (
	Alphabet   = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789_-"
	SaltLength = 20

	DefaultLength     = 8
	MinExtendedLength = 9
	MaxExtendedLength = 12
)

// Fingerprinter derives short identifiers from a 128-bit digest of
// timestamp, long URL and a random salt.
type Fingerprinter struct {
	now func() time.Time

	mu  sync.Mutex
	rnd *rand.Rand
}

type Option func(*Fingerprinter)

func WithClock(now func() time.Time) Option {
	return func(f *Fingerprinter) {
		f.now = now
	}
}

// WithRand makes salts and extension lengths reproducible.
func WithRand(r *rand.Rand) Option {
	return func(f *Fingerprinter) {
		f.rnd = r
	}
}

func New(opts ...Option) *Fingerprinter {
	f := &Fingerprinter{now: time.Now}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Fingerprint returns the lowercase hex digest (32 chars) for longURL.
func (f *Fingerprinter) Fingerprint(longURL string) string {
	var b strings.Builder
	b.Grow(20 + len(longURL) + SaltLength)
	b.WriteString(strconv.FormatInt(f.now().UnixNano(), 10))
	b.WriteString(longURL)
	b.WriteString(f.salt())

	sum := xxh3.HashString128(b.String()).Bytes()
	return hex.EncodeToString(sum[:])
}

// Candidate is the default identifier for a digest.
func (f *Fingerprinter) Candidate(digest string) string {
	return digest[:DefaultLength]
}

// Extended returns a longer prefix of the same digest, its length drawn
// uniformly from [MinExtendedLength, MaxExtendedLength].
func (f *Fingerprinter) Extended(digest string) string {
	n := MinExtendedLength + f.intN(MaxExtendedLength-MinExtendedLength+1)
	return digest[:n]
}

func (f *Fingerprinter) salt() string {
	buf := make([]byte, SaltLength)
	for i := range buf {
		buf[i] = Alphabet[f.intN(len(Alphabet))]
	}
	return string(buf)
}

func (f *Fingerprinter) intN(n int) int {
	if f.rnd == nil {
		return rand.IntN(n)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.rnd.IntN(n)
}
