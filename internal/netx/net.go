// Package netx holds plain HTTP transfer helpers that do not belong to the
// API client itself, such as downloading evidence images from the media host.
package netx

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
)

// MaxDownloadSize caps a single download; evidence photos are far below it.
const MaxDownloadSize = 32 << 20

// Download GETs url and returns the body. Any status other than 200 is an
// error that includes the status line and a short body excerpt.
func Download(ctx context.Context, client *http.Client, url string) ([]byte, error) {
	if client == nil {
		client = http.DefaultClient
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("download failed: %s; body: %s", resp.Status, string(b))
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, MaxDownloadSize+1))
	if err != nil {
		return nil, err
	}
	if len(data) > MaxDownloadSize {
		return nil, fmt.Errorf("download exceeds %d bytes", MaxDownloadSize)
	}
	return data, nil
}

// DownloadToFile downloads url into dest, replacing any existing file.
func DownloadToFile(ctx context.Context, client *http.Client, url, dest string) error {
	data, err := Download(ctx, client, url)
	if err != nil {
		return err
	}
	if err := os.WriteFile(dest, data, 0o640); err != nil {
		return fmt.Errorf("write %s: %w", dest, err)
	}
	return nil
}
