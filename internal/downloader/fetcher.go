package downloader

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"go.uber.org/zap"
	apperrors "video-transcriber/internal/app/errors"
)

// Fetcher downloads a remote video into a local file.
type Fetcher interface {
	Fetch(ctx context.Context, url string, dst string) error
}

// HTTPFetcher performs a plain, unauthenticated GET. It does not retry.
type HTTPFetcher struct {
	client  *http.Client
	timeout time.Duration
	logger  *zap.Logger
}

// NewHTTPFetcher creates a fetcher. A zero timeout means no bound.
func NewHTTPFetcher(client *http.Client, timeout time.Duration, logger *zap.Logger) *HTTPFetcher {
	if client == nil {
		client = &http.Client{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &HTTPFetcher{client: client, timeout: timeout, logger: logger}
}

// Fetch streams the response body of url into dst, creating or truncating it.
func (f *HTTPFetcher) Fetch(ctx context.Context, url string, dst string) error {
	if f.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, f.timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return apperrors.Wrap(err, apperrors.KindFetch, "invalid video URL")
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return apperrors.Wrap(err, apperrors.KindFetch, "failed to fetch video")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return apperrors.FetchFailed(resp.Status)
	}

	out, err := os.Create(dst)
	if err != nil {
		return apperrors.Wrap(err, apperrors.KindFetch, "failed to create local video file")
	}

	written, err := io.Copy(out, resp.Body)
	if closeErr := out.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return apperrors.Wrap(err, apperrors.KindFetch, "failed to write video body")
	}

	f.logger.Debug("video downloaded",
		zap.String("path", dst),
		zap.String("size", formatBytes(written)),
	)
	return nil
}

func formatBytes(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for m := n / unit; m >= unit; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMGTPE"[exp])
}
