package loader

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// fetchURL retrieves a remote document body. The loader only dispatches here
// when a client was configured, and the configured timeout bounds the whole
// request including the body read.
func (l *Loader) fetchURL(ctx context.Context, url string) ([]byte, error) {
	if url == "" {
		return nil, errors.New("source loader: url is required")
	}

	if l.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, l.timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("source loader: build request for %s: %w", url, err)
	}

	resp, err := l.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("source loader: fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		return nil, fmt.Errorf("source loader: fetch %s: unexpected status %s", url, resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("source loader: read response from %s: %w", url, err)
	}
	return body, nil
}
