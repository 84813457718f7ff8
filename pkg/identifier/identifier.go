// Package identifier classifies device identifiers as IMEIs or serial
// numbers and validates IMEI check digits.
package identifier

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode"
)

type Kind string

const (
	KindIMEI    Kind = "imei"
	KindSerial  Kind = "serial"
	KindUnknown Kind = "unknown"

	ReasonValid        = "valid"
	ReasonEmpty        = "empty"
	ReasonIMEILength   = "imei_length"
	ReasonIMEIChecksum = "imei_checksum"
	ReasonUnrecognized = "unrecognized"

	IMEILength = 15

	DefaultSerialMinLength = 8
	minSerialLength        = 2
)

var ErrEmptyIdentifier = errors.New("identifier is empty")

type (
	// Identifier is the verdict for one caller supplied value.
	Identifier struct {
		Raw        string `json:"raw"`
		Kind       Kind   `json:"kind"`
		Valid      bool   `json:"valid"`
		Normalized string `json:"normalized"`
		Reason     string `json:"reason"`
	}

	// Classifier is immutable once built and safe for concurrent use.
	Classifier struct {
		serialMinLength int
		serialPattern   *regexp.Regexp
	}

	Option func(*Classifier)
)

var defaultClassifier = NewClassifier()

// WithSerialMinLength sets the minimum serial length, leading letter
// included. Values below 2 are raised to 2.
func WithSerialMinLength(n int) Option {
	return func(c *Classifier) {
		c.serialMinLength = max(n, minSerialLength)
	}
}

func NewClassifier(opts ...Option) *Classifier {
	c := &Classifier{serialMinLength: DefaultSerialMinLength}

	for _, opt := range opts {
		opt(c)
	}

	c.serialPattern = regexp.MustCompile(fmt.Sprintf(`^[A-Z][A-Z0-9]{%d,}$`, c.serialMinLength-1))

	return c
}

// Classify runs the default classifier.
func Classify(raw string) (Identifier, error) {
	return defaultClassifier.Classify(raw)
}

func (c *Classifier) SerialMinLength() int {
	return c.serialMinLength
}

// Classify normalizes raw and decides its kind. Digit-only values are
// always treated as IMEIs, whatever their length. The only error is
// ErrEmptyIdentifier.
func (c *Classifier) Classify(raw string) (Identifier, error) {
	id := Identifier{
		Raw:        raw,
		Kind:       KindUnknown,
		Normalized: Normalize(raw),
	}

	switch {
	case id.Normalized == "":
		id.Reason = ReasonEmpty

		return id, ErrEmptyIdentifier
	case isDigits(id.Normalized):
		id.Kind = KindIMEI
		id.Valid, id.Reason = validateIMEI(id.Normalized)
	case c.serialPattern.MatchString(id.Normalized):
		id.Kind = KindSerial
		id.Valid = true
		id.Reason = ReasonValid
	default:
		id.Reason = ReasonUnrecognized
	}

	return id, nil
}

// Normalize trims the value, strips whitespace and dashes, and upper-cases
// ASCII letters. Other runes are kept as they are so that a value such as
// "ıphone123" cannot fold into a serial the caller never sent.
func Normalize(raw string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r == '-' || unicode.IsSpace(r):
			return -1
		case r >= 'a' && r <= 'z':
			return r - 'a' + 'A'
		default:
			return r
		}
	}, strings.TrimSpace(raw))
}

// ValidIMEI reports whether s is exactly 15 digits with a correct check digit.
func ValidIMEI(s string) bool {
	valid, _ := validateIMEI(s)

	return valid
}

func validateIMEI(s string) (bool, string) {
	if len(s) != IMEILength || !isDigits(s) {
		return false, ReasonIMEILength
	}

	if !Luhn(s) {
		return false, ReasonIMEIChecksum
	}

	return true, ReasonValid
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}

	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}

	return true
}
