package middleware

import (
	"compress/gzip"
	"io"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
)

// CompressionConfig holds response compression configuration.
type CompressionConfig struct {
	Level         int      // gzip compression level (1-9)
	ExcludedPaths []string // path prefixes never compressed
}

// DefaultCompressionConfig returns the default compression configuration.
func DefaultCompressionConfig() CompressionConfig {
	return CompressionConfig{
		Level:         gzip.DefaultCompression,
		ExcludedPaths: []string{"/debug/pprof", "/swagger"},
	}
}

// Compression gzips responses for clients that accept it, pooling gzip
// writers across requests.
type Compression struct {
	config CompressionConfig
	pool   sync.Pool
}

// NewCompression creates a compression middleware.
func NewCompression(config CompressionConfig) *Compression {
	return &Compression{
		config: config,
		pool: sync.Pool{
			New: func() interface{} {
				gz, _ := gzip.NewWriterLevel(io.Discard, config.Level)
				return gz
			},
		},
	}
}

// Handler returns the gin middleware.
func (cm *Compression) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !cm.shouldCompress(c) {
			c.Next()
			return
		}

		gz := cm.pool.Get().(*gzip.Writer)
		gz.Reset(c.Writer)

		c.Header("Content-Encoding", "gzip")
		c.Header("Vary", "Accept-Encoding")
		c.Writer.Header().Del("Content-Length")

		wrapped := &gzipWriter{ResponseWriter: c.Writer, gz: gz}
		c.Writer = wrapped

		defer func() {
			gz.Close()
			cm.pool.Put(gz)
		}()

		c.Next()
	}
}

func (cm *Compression) shouldCompress(c *gin.Context) bool {
	if !strings.Contains(c.GetHeader("Accept-Encoding"), "gzip") {
		return false
	}
	for _, prefix := range cm.config.ExcludedPaths {
		if strings.HasPrefix(c.Request.URL.Path, prefix) {
			return false
		}
	}
	return true
}

// gzipWriter routes the response body through the gzip writer.
type gzipWriter struct {
	gin.ResponseWriter
	gz *gzip.Writer
}

func (w *gzipWriter) Write(data []byte) (int, error) {
	return w.gz.Write(data)
}

func (w *gzipWriter) WriteString(s string) (int, error) {
	return w.gz.Write([]byte(s))
}
