package dhru

import (
	"net/http"

	"github.com/architeacher/imei-lookup/pkg/circuitbreaker"
)

type Option func(*Client)

func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		c.httpClient = client
	}
}

func WithCircuitBreaker(cb *circuitbreaker.CircuitBreaker[[]byte]) Option {
	return func(c *Client) {
		c.cb = cb
	}
}
