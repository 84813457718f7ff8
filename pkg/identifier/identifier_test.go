package identifier_test

import (
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/architeacher/imei-lookup/pkg/identifier"
)

func TestClassify(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name        string
		raw         string
		expected    identifier.Identifier
		expectedErr error
	}{
		{
			name: "valid imei",
			raw:  "490154203237518",
			expected: identifier.Identifier{
				Raw: "490154203237518", Kind: identifier.KindIMEI, Valid: true,
				Normalized: "490154203237518", Reason: identifier.ReasonValid,
			},
		},
		{
			name: "valid imei with separators and padding",
			raw:  "  49-015420-323751-8 ",
			expected: identifier.Identifier{
				Raw: "  49-015420-323751-8 ", Kind: identifier.KindIMEI, Valid: true,
				Normalized: "490154203237518", Reason: identifier.ReasonValid,
			},
		},
		{
			name: "imei failing the checksum",
			raw:  "356789012345678",
			expected: identifier.Identifier{
				Raw: "356789012345678", Kind: identifier.KindIMEI,
				Normalized: "356789012345678", Reason: identifier.ReasonIMEIChecksum,
			},
		},
		{
			name: "imei with corrected check digit",
			raw:  "356789012345672",
			expected: identifier.Identifier{
				Raw: "356789012345672", Kind: identifier.KindIMEI, Valid: true,
				Normalized: "356789012345672", Reason: identifier.ReasonValid,
			},
		},
		{
			name: "sequential digits fail the checksum",
			raw:  "123456789012345",
			expected: identifier.Identifier{
				Raw: "123456789012345", Kind: identifier.KindIMEI,
				Normalized: "123456789012345", Reason: identifier.ReasonIMEIChecksum,
			},
		},
		{
			name: "short numeric value is an invalid imei",
			raw:  "12345",
			expected: identifier.Identifier{
				Raw: "12345", Kind: identifier.KindIMEI,
				Normalized: "12345", Reason: identifier.ReasonIMEILength,
			},
		},
		{
			name: "fourteen digits are rejected",
			raw:  "49015420323751",
			expected: identifier.Identifier{
				Raw: "49015420323751", Kind: identifier.KindIMEI,
				Normalized: "49015420323751", Reason: identifier.ReasonIMEILength,
			},
		},
		{
			name: "sixteen digits are rejected",
			raw:  "4901542032375180",
			expected: identifier.Identifier{
				Raw: "4901542032375180", Kind: identifier.KindIMEI,
				Normalized: "4901542032375180", Reason: identifier.ReasonIMEILength,
			},
		},
		{
			name: "serial number",
			raw:  "RF123456789",
			expected: identifier.Identifier{
				Raw: "RF123456789", Kind: identifier.KindSerial, Valid: true,
				Normalized: "RF123456789", Reason: identifier.ReasonValid,
			},
		},
		{
			name: "lower case serial is upper-cased",
			raw:  "f2lx1234abcd",
			expected: identifier.Identifier{
				Raw: "f2lx1234abcd", Kind: identifier.KindSerial, Valid: true,
				Normalized: "F2LX1234ABCD", Reason: identifier.ReasonValid,
			},
		},
		{
			name: "serial at the minimum length",
			raw:  "C0123456",
			expected: identifier.Identifier{
				Raw: "C0123456", Kind: identifier.KindSerial, Valid: true,
				Normalized: "C0123456", Reason: identifier.ReasonValid,
			},
		},
		{
			name: "serial below the minimum length",
			raw:  "C012345",
			expected: identifier.Identifier{
				Raw: "C012345", Kind: identifier.KindUnknown,
				Normalized: "C012345", Reason: identifier.ReasonUnrecognized,
			},
		},
		{
			name: "serial starting with a digit that is not all digits",
			raw:  "1ABCDEFGH",
			expected: identifier.Identifier{
				Raw: "1ABCDEFGH", Kind: identifier.KindUnknown,
				Normalized: "1ABCDEFGH", Reason: identifier.ReasonUnrecognized,
			},
		},
		{
			name: "punctuation is unrecognized",
			raw:  "ABC.12345678",
			expected: identifier.Identifier{
				Raw: "ABC.12345678", Kind: identifier.KindUnknown,
				Normalized: "ABC.12345678", Reason: identifier.ReasonUnrecognized,
			},
		},
		{
			name: "dotless i does not fold into a serial",
			raw:  "ıphone123",
			expected: identifier.Identifier{
				Raw: "ıphone123", Kind: identifier.KindUnknown,
				Normalized: "ıPHONE123", Reason: identifier.ReasonUnrecognized,
			},
		},
		{
			name: "long s does not fold into a serial",
			raw:  "ſerial1234",
			expected: identifier.Identifier{
				Raw: "ſerial1234", Kind: identifier.KindUnknown,
				Normalized: "ſERIAL1234", Reason: identifier.ReasonUnrecognized,
			},
		},
		{
			name: "non ascii digits are not an imei",
			raw:  "４９０１５４２０３２３７５１８",
			expected: identifier.Identifier{
				Raw: "４９０１５４２０３２３７５１８", Kind: identifier.KindUnknown,
				Normalized: "４９０１５４２０３２３７５１８", Reason: identifier.ReasonUnrecognized,
			},
		},
		{
			name:        "empty",
			raw:         "",
			expected:    identifier.Identifier{Kind: identifier.KindUnknown, Reason: identifier.ReasonEmpty},
			expectedErr: identifier.ErrEmptyIdentifier,
		},
		{
			name:        "only whitespace",
			raw:         "   ",
			expected:    identifier.Identifier{Raw: "   ", Kind: identifier.KindUnknown, Reason: identifier.ReasonEmpty},
			expectedErr: identifier.ErrEmptyIdentifier,
		},
		{
			name:        "only dashes",
			raw:         "- -",
			expected:    identifier.Identifier{Raw: "- -", Kind: identifier.KindUnknown, Reason: identifier.ReasonEmpty},
			expectedErr: identifier.ErrEmptyIdentifier,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, err := identifier.Classify(tc.raw)

			if tc.expectedErr != nil {
				require.ErrorIs(t, err, tc.expectedErr)
			} else {
				require.NoError(t, err)
			}

			require.Equal(t, tc.expected, got)
		})
	}
}

func TestClassifyEveryFifteenDigitStringIsIMEI(t *testing.T) {
	t.Parallel()

	for _, raw := range []string{
		"000000000000000",
		"999999999999999",
		"123456789012345",
		"490154203237518",
		"353325090000005",
	} {
		got, err := identifier.Classify(raw)
		require.NoError(t, err)
		require.Equal(t, identifier.KindIMEI, got.Kind, raw)
	}
}

func TestClassifySingleDigitSubstitutionInvalidates(t *testing.T) {
	t.Parallel()

	const valid = "490154203237518"

	for pos := range len(valid) {
		for d := byte('0'); d <= '9'; d++ {
			if d == valid[pos] {
				continue
			}

			mutated := valid[:pos] + string(d) + valid[pos+1:]

			got, err := identifier.Classify(mutated)
			require.NoError(t, err)
			require.Equal(t, identifier.KindIMEI, got.Kind)
			require.False(t, got.Valid, mutated)
			require.Equal(t, identifier.ReasonIMEIChecksum, got.Reason)
		}
	}
}

func TestClassifyIsDeterministic(t *testing.T) {
	t.Parallel()

	inputs := []string{"490154203237518", "rf123456789", "12345", "??", "   "}

	for _, raw := range inputs {
		first, firstErr := identifier.Classify(raw)
		second, secondErr := identifier.Classify(raw)

		require.Equal(t, first, second)
		require.Equal(t, firstErr, secondErr)

		if firstErr == nil {
			again, err := identifier.Classify(first.Normalized)
			require.NoError(t, err)
			require.Equal(t, first.Kind, again.Kind)
			require.Equal(t, first.Valid, again.Valid)
			require.Equal(t, first.Normalized, again.Normalized)
		}
	}
}

func TestClassifierSerialMinLength(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name        string
		minLength   int
		effective   int
		raw         string
		expectedKnd identifier.Kind
	}{
		{name: "custom length accepts shorter serial", minLength: 4, effective: 4, raw: "AB12", expectedKnd: identifier.KindSerial},
		{name: "custom length rejects shorter serial", minLength: 12, effective: 12, raw: "RF123456789", expectedKnd: identifier.KindUnknown},
		{name: "values below two are clamped", minLength: 0, effective: 2, raw: "A1", expectedKnd: identifier.KindSerial},
		{name: "single letter never matches", minLength: -3, effective: 2, raw: "A", expectedKnd: identifier.KindUnknown},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			c := identifier.NewClassifier(identifier.WithSerialMinLength(tc.minLength))
			require.Equal(t, tc.effective, c.SerialMinLength())

			got, err := c.Classify(tc.raw)
			require.NoError(t, err)
			require.Equal(t, tc.expectedKnd, got.Kind)
			require.Equal(t, tc.expectedKnd == identifier.KindSerial, got.Valid)
		})
	}
}

func TestClassifierConcurrentUse(t *testing.T) {
	t.Parallel()

	c := identifier.NewClassifier()
	results := make([]identifier.Identifier, 32)

	var wg sync.WaitGroup

	for i := range results {
		wg.Add(1)

		go func() {
			defer wg.Done()

			raw := "490154203237518"
			if i%2 == 1 {
				raw = strings.ToLower("RF123456789")
			}

			results[i], _ = c.Classify(raw)
		}()
	}

	wg.Wait()

	for _, got := range results {
		require.True(t, got.Valid)
	}
}

func TestNormalize(t *testing.T) {
	t.Parallel()

	require.Equal(t, "490154203237518", identifier.Normalize(" 4901 5420-3237 518\t"))
	require.Equal(t, "RF12AB", identifier.Normalize("rf-12-ab"))
	require.Empty(t, identifier.Normalize(" - "))
}
