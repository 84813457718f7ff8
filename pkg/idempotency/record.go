package idempotency

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Record is the stored outcome of the first request made with a key.
type Record struct {
	StatusCode  int         `json:"status_code"`
	Header      http.Header `json:"header"`
	Body        []byte      `json:"body"`
	Fingerprint string      `json:"fingerprint"`
	CreatedAt   time.Time   `json:"created_at"`
}

// Replayable reports whether the response may be served again. Server
// errors and 429s are not stored so clients can retry them.
func (r Record) Replayable() bool {
	return r.StatusCode > 0 &&
		r.StatusCode < http.StatusInternalServerError &&
		r.StatusCode != http.StatusTooManyRequests
}

func (r Record) Marshal() ([]byte, error) {
	data, err := json.Marshal(r)
	if err != nil {
		return nil, fmt.Errorf("encoding idempotency record: %w", err)
	}

	return data, nil
}

func UnmarshalRecord(data []byte) (Record, error) {
	var r Record
	if err := json.Unmarshal(data, &r); err != nil {
		return Record{}, fmt.Errorf("decoding idempotency record: %w", err)
	}

	return r, nil
}
