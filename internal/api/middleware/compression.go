package middleware

import (
	"bufio"
	"bytes"
	"compress/gzip"
	"io"
	"net"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// Compression is skipped for these content types
var excludedContentTypes = []string{
	"image/",
	"video/",
	"audio/",
}

// CompressionConfig holds configuration for the compression middleware
type CompressionConfig struct {
	// Minimum content length to trigger compression
	MinLength int
	// Gzip compression level (1-9, higher = better compression but slower)
	Level int
}

// DefaultCompressionConfig returns the default compression configuration
func DefaultCompressionConfig() CompressionConfig {
	return CompressionConfig{
		MinLength: 1024, // 1KB
		Level:     gzip.DefaultCompression,
	}
}

func shouldCompress(contentType string) bool {
	for _, excluded := range excludedContentTypes {
		if strings.HasPrefix(contentType, excluded) {
			return false
		}
	}
	return true
}

// Compression returns a middleware that transparently decompresses gzip
// request bodies and compresses responses for clients that accept gzip
func Compression(cfg CompressionConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Header.Get("Content-Encoding") == "gzip" {
			reader, err := gzip.NewReader(c.Request.Body)
			if err != nil {
				c.AbortWithStatus(http.StatusBadRequest)
				return
			}
			body, err := io.ReadAll(reader)
			if err != nil {
				reader.Close()
				c.AbortWithStatus(http.StatusBadRequest)
				return
			}
			reader.Close()
			c.Request.Body = io.NopCloser(bytes.NewReader(body))
		}

		if !strings.Contains(c.Request.Header.Get("Accept-Encoding"), "gzip") {
			c.Next()
			return
		}

		gzipWriter := &gzipResponseWriter{
			ResponseWriter: c.Writer,
			minLength:      cfg.MinLength,
			level:          cfg.Level,
			contentBuf:     new(bytes.Buffer),
		}
		c.Writer = gzipWriter

		// Prevent caches serving compressed bodies to clients without gzip
		c.Header("Vary", "Accept-Encoding")

		c.Next()

		gzipWriter.finishWriting()
	}
}

type gzipResponseWriter struct {
	gin.ResponseWriter
	writer     *gzip.Writer
	minLength  int
	level      int
	contentBuf *bytes.Buffer
}

// Write buffers output until the handler finishes so the compression
// decision can consider the full body length
func (g *gzipResponseWriter) Write(data []byte) (int, error) {
	return g.contentBuf.Write(data)
}

func (g *gzipResponseWriter) finishWriting() error {
	contentType := g.Header().Get("Content-Type")
	content := g.contentBuf.Bytes()
	shouldGzip := shouldCompress(contentType) && len(content) >= g.minLength

	if shouldGzip {
		gz, err := gzip.NewWriterLevel(g.ResponseWriter, g.level)
		if err != nil {
			return err
		}
		g.Header().Set("Content-Encoding", "gzip")
		g.Header().Del("Content-Length")

		if _, err = gz.Write(content); err != nil {
			gz.Close()
			return err
		}

		return gz.Close()
	}

	_, err := g.ResponseWriter.Write(content)
	return err
}

func (g *gzipResponseWriter) WriteString(s string) (int, error) {
	return g.Write([]byte(s))
}

func (g *gzipResponseWriter) Flush() {
	if g.writer != nil {
		g.writer.Flush()
	}
	g.ResponseWriter.Flush()
}

func (g *gzipResponseWriter) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	return g.ResponseWriter.Hijack()
}
