package fontloader

import (
	"compress/gzip"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/andybalholm/brotli"
)

const (
	headerAcceptEncoding  = "Accept-Encoding"
	headerContentEncoding = "Content-Encoding"
	headerUserAgent       = "User-Agent"

	acceptEncoding = "gzip, br"

	// maxStylesheetBytes caps the stylesheet body; font-CSS responses are a few KiB.
	maxStylesheetBytes = 4 << 20
)

// DefaultUserAgent claims a mobile Safari client so the font service answers
// with TrueType sources the native asset loader can register.
const DefaultUserAgent = "Mozilla/5.0 (iPhone; CPU iPhone OS 17_5 like Mac OS X) " +
	"AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.5 Mobile/15E148 Safari/604.1"

func fetchStylesheet(ctx context.Context, client *http.Client, url, userAgent string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("build stylesheet request: %w", err)
	}
	req.Header.Set(headerUserAgent, userAgent)
	req.Header.Set(headerAcceptEncoding, acceptEncoding)
	req.Header.Set("Accept", "text/css,*/*;q=0.1")

	resp, err := client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("stylesheet request returned status %d", resp.StatusCode)
	}

	body, err := decodeBody(resp)
	if err != nil {
		return "", err
	}

	data, err := io.ReadAll(io.LimitReader(body, maxStylesheetBytes))
	if err != nil {
		return "", fmt.Errorf("read stylesheet: %w", err)
	}
	return string(data), nil
}

// decodeBody unwraps the response body according to Content-Encoding. Setting
// Accept-Encoding by hand disables the transport's transparent gzip, so both
// encodings are handled here.
func decodeBody(resp *http.Response) (io.Reader, error) {
	switch strings.ToLower(strings.TrimSpace(resp.Header.Get(headerContentEncoding))) {
	case "", "identity":
		return resp.Body, nil
	case "gzip":
		reader, err := gzip.NewReader(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("open gzip stylesheet: %w", err)
		}
		return reader, nil
	case "br":
		return brotli.NewReader(resp.Body), nil
	default:
		return nil, fmt.Errorf("unsupported content encoding %q", resp.Header.Get(headerContentEncoding))
	}
}
