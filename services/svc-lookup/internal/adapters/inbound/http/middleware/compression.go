package middleware

import (
	"compress/gzip"
	"io"
	"mime"
	"net/http"
	"strconv"
	"strings"
	"sync"

	"github.com/andybalholm/brotli"
	"github.com/architeacher/imei-lookup/pkg/metrics"
	"github.com/architeacher/imei-lookup/services/svc-lookup/internal/config"
	"go.opentelemetry.io/otel/attribute"
)

const (
	encodingBrotli = "br"
	encodingGzip   = "gzip"

	httpCompressionTotal = "http_compression_total"
	httpCompressionRatio = "http_compression_ratio"
	compressionAlgorithm = "algorithm"
)

var compressibleTypes = map[string]struct{}{
	"application/json":         {},
	"application/problem+json": {},
	"application/yaml":         {},
	"text/plain":               {},
	"text/html":                {},
}

// Compression encodes responses of at least cfg.MinSize bytes with brotli or
// gzip, whichever the client weighs higher (brotli on ties). Bodies are
// buffered up to MinSize to decide, then streamed.
func Compression(cfg config.Compression, metricsClient metrics.Client) func(http.Handler) http.Handler {
	gzipPool := sync.Pool{New: func() any {
		w, _ := gzip.NewWriterLevel(io.Discard, cfg.Level)

		return w
	}}
	brotliPool := sync.Pool{New: func() any {
		return brotli.NewWriterLevel(io.Discard, cfg.Level)
	}}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !cfg.Enabled || r.Method == http.MethodHead || matchesPath(r.URL.Path, cfg.SkipPaths) {
				next.ServeHTTP(w, r)

				return
			}

			w.Header().Add("Vary", "Accept-Encoding")

			encoding := negotiateEncoding(r.Header.Get("Accept-Encoding"))
			if encoding == "" {
				next.ServeHTTP(w, r)

				return
			}

			cw := &compressWriter{
				ResponseWriter: w,
				encoding:       encoding,
				minSize:        cfg.MinSize,
				statusCode:     http.StatusOK,
			}

			cw.newEncoder = func(dst io.Writer) io.WriteCloser {
				switch encoding {
				case encodingBrotli:
					bw, _ := brotliPool.Get().(*brotli.Writer)
					bw.Reset(dst)

					return pooledWriter{WriteCloser: bw, release: func() { brotliPool.Put(bw) }}
				default:
					gw, _ := gzipPool.Get().(*gzip.Writer)
					gw.Reset(dst)

					return pooledWriter{WriteCloser: gw, release: func() { gzipPool.Put(gw) }}
				}
			}

			next.ServeHTTP(cw, r)

			_ = cw.Close()

			if cw.encoder != nil && cw.plainBytes > 0 && metricsClient != nil {
				attr := attribute.String(compressionAlgorithm, encoding)
				metricsClient.Inc(r.Context(), httpCompressionTotal, 1, attr)
				metricsClient.Observe(r.Context(), httpCompressionRatio,
					float64(cw.counter.n)/float64(cw.plainBytes), attr)
			}
		})
	}
}

// negotiateEncoding picks br or gzip from an Accept-Encoding header, or ""
// when neither is acceptable.
func negotiateEncoding(header string) string {
	var (
		best    string
		bestQ   float64
		anyQ    = -1.0
		weights = map[string]float64{}
	)

	for _, part := range strings.Split(header, ",") {
		name, params, _ := strings.Cut(strings.TrimSpace(part), ";")
		name = strings.ToLower(strings.TrimSpace(name))

		q := 1.0
		if value, ok := strings.CutPrefix(strings.TrimSpace(params), "q="); ok {
			parsed, err := strconv.ParseFloat(value, 64)
			if err != nil {
				continue
			}

			q = parsed
		}

		if name == "*" {
			anyQ = q

			continue
		}

		weights[name] = q
	}

	for _, candidate := range []string{encodingBrotli, encodingGzip} {
		q, ok := weights[candidate]
		if !ok {
			q = max(anyQ, 0)
		}

		if q > bestQ {
			best, bestQ = candidate, q
		}
	}

	return best
}

type pooledWriter struct {
	io.WriteCloser
	release func()
}

func (p pooledWriter) Flush() error {
	if f, ok := p.WriteCloser.(interface{ Flush() error }); ok {
		return f.Flush()
	}

	return nil
}

func (p pooledWriter) Close() error {
	err := p.WriteCloser.Close()
	p.release()

	return err
}

type countingWriter struct {
	w io.Writer
	n int
}

func (c *countingWriter) Write(b []byte) (int, error) {
	n, err := c.w.Write(b)
	c.n += n

	return n, err
}

type compressWriter struct {
	http.ResponseWriter
	encoding   string
	minSize    int
	statusCode int
	newEncoder func(io.Writer) io.WriteCloser

	buf         []byte
	decided     bool
	wroteHeader bool
	encoder     io.WriteCloser
	counter     *countingWriter
	plainBytes  int
}

func (c *compressWriter) WriteHeader(code int) {
	if c.wroteHeader {
		return
	}

	c.wroteHeader = true
	c.statusCode = code
}

func (c *compressWriter) Write(b []byte) (int, error) {
	if !c.wroteHeader {
		c.WriteHeader(http.StatusOK)
	}

	c.plainBytes += len(b)

	if c.decided {
		return c.write(b)
	}

	c.buf = append(c.buf, b...)
	if len(c.buf) < c.minSize {
		return len(b), nil
	}

	c.decide(true)

	if _, err := c.write(c.buf); err != nil {
		return 0, err
	}

	c.buf = nil

	return len(b), nil
}

func (c *compressWriter) write(b []byte) (int, error) {
	if c.encoder != nil {
		return c.encoder.Write(b)
	}

	return c.ResponseWriter.Write(b)
}

// decide commits the headers. Compression needs a large enough body, a
// compressible type, a body-carrying status and no prior encoding.
func (c *compressWriter) decide(bigEnough bool) {
	c.decided = true
	h := c.Header()

	if bigEnough && c.statusCode >= http.StatusOK &&
		c.statusCode != http.StatusNoContent && c.statusCode != http.StatusNotModified &&
		h.Get("Content-Encoding") == "" && isCompressible(h.Get(headerContentType)) {
		h.Set("Content-Encoding", c.encoding)
		h.Del("Content-Length")

		c.counter = &countingWriter{w: c.ResponseWriter}
		c.encoder = c.newEncoder(c.counter)
	}

	c.ResponseWriter.WriteHeader(c.statusCode)
}

// Close flushes a body that never reached the size threshold and finishes
// the encoder.
func (c *compressWriter) Close() error {
	if !c.decided {
		if !c.wroteHeader && len(c.buf) == 0 {
			return nil
		}

		c.decide(false)

		if len(c.buf) > 0 {
			if _, err := c.ResponseWriter.Write(c.buf); err != nil {
				return err
			}
		}
	}

	if c.encoder != nil {
		return c.encoder.Close()
	}

	return nil
}

func (c *compressWriter) Flush() {
	if !c.decided {
		c.decide(len(c.buf) >= c.minSize)

		if _, err := c.write(c.buf); err == nil {
			c.buf = nil
		}
	}

	if f, ok := c.encoder.(interface{ Flush() error }); ok {
		_ = f.Flush()
	}

	if f, ok := c.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

func (c *compressWriter) Unwrap() http.ResponseWriter {
	return c.ResponseWriter
}

func isCompressible(contentType string) bool {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}

	_, ok := compressibleTypes[mediaType]

	return ok
}
