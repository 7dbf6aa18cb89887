// Package http wraps plain GET requests with a sane timeout for the
// external services the pipeline consumes (RCSB, EBI, UniProt).
package http

import (
	"fmt"
	"io"
	"net/http"
	"time"
)

const timeout = 120 * time.Second

// Get fetches the given URL and returns the response body.
func Get(url string) ([]byte, error) {
	client := http.Client{
		Timeout: timeout,
	}

	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	res, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if res.StatusCode != 200 {
		return nil, fmt.Errorf("HTTP status code %d", res.StatusCode)
	}

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, err
	}

	return body, nil
}
