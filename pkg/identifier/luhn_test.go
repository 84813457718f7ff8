package identifier_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/architeacher/imei-lookup/pkg/identifier"
)

func TestLuhn(t *testing.T) {
	t.Parallel()

	cases := []struct {
		digits   string
		expected bool
	}{
		{digits: "490154203237518", expected: true},
		{digits: "356789012345672", expected: true},
		{digits: "356789012345678"},
		{digits: "123456789012347", expected: true},
		{digits: "123456789012345"},
		{digits: "000000000000000", expected: true},
		{digits: "79927398713", expected: true},
		{digits: "79927398710"},
		{digits: "18", expected: true},
		{digits: "8"},
		{digits: ""},
		{digits: "4901542032375A8"},
	}

	for _, tc := range cases {
		t.Run(tc.digits, func(t *testing.T) {
			t.Parallel()

			require.Equal(t, tc.expected, identifier.Luhn(tc.digits))
		})
	}
}

func TestValidIMEI(t *testing.T) {
	t.Parallel()

	require.True(t, identifier.ValidIMEI("490154203237518"))
	require.False(t, identifier.ValidIMEI("79927398713"))
	require.False(t, identifier.ValidIMEI("49015420323751A"))
}

func TestCheckDigit(t *testing.T) {
	t.Parallel()

	cases := []struct {
		body        string
		expected    byte
		expectedErr error
	}{
		{body: "49015420323751", expected: '8'},
		{body: "35678901234567", expected: '2'},
		{body: "12345678901234", expected: '7'},
		{body: "00000000000000", expected: '0'},
		{body: "99999999999999", expected: '4'},
		{body: "3533250900000", expectedErr: identifier.ErrInvalidIMEIBody},
		{body: "3533250900000X", expectedErr: identifier.ErrInvalidIMEIBody},
	}

	for _, tc := range cases {
		t.Run(tc.body, func(t *testing.T) {
			t.Parallel()

			digit, err := identifier.CheckDigit(tc.body)
			if tc.expectedErr != nil {
				require.ErrorIs(t, err, tc.expectedErr)

				return
			}

			require.NoError(t, err)
			require.Equal(t, tc.expected, digit)
			require.True(t, identifier.ValidIMEI(tc.body+string(digit)))
		})
	}
}
