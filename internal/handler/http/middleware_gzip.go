package http

import (
	"compress/gzip"
	"io"
	"net/http"
	"strings"
	"sync"
)

var gzipWriterPool = sync.Pool{
	New: func() any { return gzip.NewWriter(io.Discard) },
}

var gzipReaderPool = sync.Pool{
	New: func() any { return new(gzip.Reader) },
}

// withGZip inflates gzip request bodies and compresses responses for clients
// sending "Accept-Encoding: gzip". Responses without a body stay uncompressed.
func withGZip(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.Contains(r.Header.Get("Content-Encoding"), "gzip") && r.Body != nil {
			body, err := inflateBody(r.Body)
			if err != nil {
				http.Error(w, "invalid gzip data", http.StatusBadRequest)
				return
			}
			r.Body = body
			r.Header.Del("Content-Encoding")
			r.ContentLength = -1
		}

		if !strings.Contains(r.Header.Get("Accept-Encoding"), "gzip") {
			next.ServeHTTP(w, r)
			return
		}

		w.Header().Add("Vary", "Accept-Encoding")
		gw := &gzipResponseWriter{ResponseWriter: w}
		defer gw.finish()

		next.ServeHTTP(gw, r)
	})
}

func inflateBody(body io.ReadCloser) (io.ReadCloser, error) {
	zr := gzipReaderPool.Get().(*gzip.Reader)
	if err := zr.Reset(body); err != nil {
		gzipReaderPool.Put(zr)
		return nil, err
	}

	return &pooledReadCloser{Reader: zr, close: func() {
		_ = zr.Close()
		_ = body.Close()
		gzipReaderPool.Put(zr)
	}}, nil
}

type pooledReadCloser struct {
	io.Reader
	once  sync.Once
	close func()
}

func (p *pooledReadCloser) Close() error {
	p.once.Do(p.close)
	return nil
}

// gzipResponseWriter starts compressing on the first body write.
type gzipResponseWriter struct {
	http.ResponseWriter

	zw          *gzip.Writer
	wroteHeader bool
	status      int
}

func (w *gzipResponseWriter) WriteHeader(statusCode int) {
	if w.wroteHeader {
		return
	}
	w.wroteHeader = true
	w.status = statusCode

	if bodyAllowed(statusCode) {
		w.Header().Set("Content-Encoding", "gzip")
		w.Header().Del("Content-Length")
	}
	w.ResponseWriter.WriteHeader(statusCode)
}

func (w *gzipResponseWriter) Write(data []byte) (int, error) {
	if !w.wroteHeader {
		w.WriteHeader(http.StatusOK)
	}
	if !bodyAllowed(w.status) {
		return w.ResponseWriter.Write(data)
	}
	if w.zw == nil {
		w.zw = gzipWriterPool.Get().(*gzip.Writer)
		w.zw.Reset(w.ResponseWriter)
	}
	return w.zw.Write(data)
}

// finish flushes the gzip stream, writing an empty one when the handler
// advertised a body but wrote none.
func (w *gzipResponseWriter) finish() {
	if w.zw == nil {
		if w.wroteHeader && bodyAllowed(w.status) {
			w.zw = gzipWriterPool.Get().(*gzip.Writer)
			w.zw.Reset(w.ResponseWriter)
		} else {
			return
		}
	}
	_ = w.zw.Close()
	gzipWriterPool.Put(w.zw)
	w.zw = nil
}

func bodyAllowed(status int) bool {
	return status != http.StatusNoContent && status != http.StatusNotModified && status >= http.StatusOK
}
