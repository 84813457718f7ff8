package idempotency

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFromContext(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name          string
		setupContext  func(t *testing.T) context.Context
		expectedKey   string
		expectedFound bool
	}{
		{
			name: "key present",
			setupContext: func(t *testing.T) context.Context {
				return WithKey(t.Context(), "query-490154203237518")
			},
			expectedKey:   "query-490154203237518",
			expectedFound: true,
		},
		{
			name: "key absent",
			setupContext: func(t *testing.T) context.Context {
				return t.Context()
			},
		},
		{
			name: "empty key",
			setupContext: func(t *testing.T) context.Context {
				return WithKey(t.Context(), "")
			},
		},
		{
			name: "last key wins",
			setupContext: func(t *testing.T) context.Context {
				return WithKey(WithKey(t.Context(), "first-key-12345678"), "second-key-1234567")
			},
			expectedKey:   "second-key-1234567",
			expectedFound: true,
		},
		{
			name: "string keyed values do not collide",
			setupContext: func(t *testing.T) context.Context {
				type foreignKey string

				return context.WithValue(t.Context(), foreignKey("idempotencyKey"), "foreign")
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			key, found := FromContext(tc.setupContext(t))

			require.Equal(t, tc.expectedFound, found)
			require.Equal(t, tc.expectedKey, key)
		})
	}
}
