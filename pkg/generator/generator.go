// Package generator produces random passwords that satisfy every strength
// requirement by construction.
package generator

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"math/big"

	"github.com/jwalitptl/passcheck/pkg/strength"
)

const (
	// DefaultLength is used when the caller does not pick a length
	DefaultLength = 16
	// MinLength leaves room for one character of each class
	MinLength = 4
	// MaxLength caps the work done per request
	MaxLength = 128
)

// ErrInvalidLength is returned for lengths outside [MinLength, MaxLength]
var ErrInvalidLength = errors.New("invalid password length")

var classes = []string{
	strength.UppercaseChars,
	strength.LowercaseChars,
	strength.DigitChars,
	strength.SpecialChars,
}

var alphabet = strength.UppercaseChars + strength.LowercaseChars + strength.DigitChars + strength.SpecialChars

// Generated is a password together with its evaluation
type Generated struct {
	Password string          `json:"password"`
	Result   strength.Result `json:"result"`
}

// Option configures a Generator
type Option func(*Generator)

// WithRand replaces the random source. The reader must be unpredictable in
// production; tests may pass a deterministic stream.
func WithRand(r io.Reader) Option {
	return func(g *Generator) {
		g.rand = r
	}
}

// Generator draws passwords from a cryptographically secure source
type Generator struct {
	rand io.Reader
}

// New creates a generator backed by crypto/rand unless overridden
func New(opts ...Option) *Generator {
	g := &Generator{rand: rand.Reader}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate returns a password of exactly length characters containing at least
// one uppercase letter, lowercase letter, digit and symbol.
func (g *Generator) Generate(length int) (Generated, error) {
	if length < MinLength || length > MaxLength {
		return Generated{}, fmt.Errorf("%w: %d not in [%d, %d]", ErrInvalidLength, length, MinLength, MaxLength)
	}

	buf := make([]byte, 0, length)
	for _, class := range classes {
		c, err := g.pick(class)
		if err != nil {
			return Generated{}, err
		}
		buf = append(buf, c)
	}

	for len(buf) < length {
		c, err := g.pick(alphabet)
		if err != nil {
			return Generated{}, err
		}
		buf = append(buf, c)
	}

	if err := g.shuffle(buf); err != nil {
		return Generated{}, err
	}

	password := string(buf)
	return Generated{
		Password: password,
		Result:   strength.Evaluate(password),
	}, nil
}

func (g *Generator) pick(set string) (byte, error) {
	i, err := g.intn(len(set))
	if err != nil {
		return 0, err
	}
	return set[i], nil
}

// shuffle is a Fisher-Yates permutation
func (g *Generator) shuffle(b []byte) error {
	for i := len(b) - 1; i > 0; i-- {
		j, err := g.intn(i + 1)
		if err != nil {
			return err
		}
		b[i], b[j] = b[j], b[i]
	}
	return nil
}

func (g *Generator) intn(n int) (int, error) {
	v, err := rand.Int(g.rand, big.NewInt(int64(n)))
	if err != nil {
		return 0, fmt.Errorf("read random source: %w", err)
	}
	return int(v.Int64()), nil
}

var defaultGenerator = New()

// Generate uses the package-level crypto/rand generator
func Generate(length int) (Generated, error) {
	return defaultGenerator.Generate(length)
}
