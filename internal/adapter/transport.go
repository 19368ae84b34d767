package adapter

import (
	"io"
	"net/http"

	"github.com/andybalholm/brotli"
)

const encodingBrotli = "br"

// brotliTransport asks the server for brotli-compressed responses and
// decompresses them before resty reads the body.
type brotliTransport struct {
	base http.RoundTripper
}

func newBrotliTransport(base http.RoundTripper) *brotliTransport {
	if base == nil {
		base = http.DefaultTransport
	}
	return &brotliTransport{base: base}
}

func (t *brotliTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context())
	req.Header.Set("Accept-Encoding", encodingBrotli)

	resp, err := t.base.RoundTrip(req)
	if err != nil {
		return nil, err
	}

	if resp.Header.Get("Content-Encoding") == encodingBrotli {
		resp.Body = &readCloserWrapper{Reader: brotli.NewReader(resp.Body), Closer: resp.Body}
		resp.Header.Del("Content-Encoding")
		resp.Header.Del("Content-Length")
		resp.ContentLength = -1
		resp.Uncompressed = true
	}

	return resp, nil
}

type readCloserWrapper struct {
	io.Reader
	io.Closer
}
