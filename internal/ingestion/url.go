package ingestion

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/jonathan/ats-match/internal/fetch"
)

// Sentinel errors for URL ingestion failures.
var (
	ErrFetchFailed      = errors.New("failed to fetch posting")
	ErrExtractionFailed = errors.New("failed to extract posting text")
	ErrEmptyPosting     = errors.New("posting contains no text")
)

// URLOptions configures FromURL.
type URLOptions struct {
	// UseBrowser enables the headless-browser fallback for pages whose
	// plain HTTP fetch yields too little text.
	UseBrowser bool
	Fetch      *fetch.Options
	Logger     *zap.Logger
}

// FromURL fetches a job posting and returns its cleaned text, using
// platform-specific extraction and optionally a headless browser for
// client-rendered boards.
func FromURL(ctx context.Context, urlStr string, opts URLOptions) (string, error) {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	platform := fetch.DetectPlatform(urlStr)
	logger.Debug("ingesting posting",
		zap.String("url", urlStr),
		zap.String("platform", string(platform)))

	result, err := fetch.Page(ctx, urlStr, opts.Fetch)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrFetchFailed, err)
	}

	text, err := fetch.JobText(result.HTML, platform)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrExtractionFailed, err)
	}

	if opts.UseBrowser && fetch.NeedsBrowser(text) {
		logger.Debug("content too short, rendering in browser",
			zap.Int("content_length", len(text)))

		html, renderErr := fetch.Render(ctx, urlStr, 0)
		if renderErr != nil {
			// Keep the HTTP content when the browser is unavailable.
			logger.Warn("browser rendering failed", zap.Error(renderErr))
		} else if rendered, extractErr := fetch.JobText(html, platform); extractErr == nil {
			text = rendered
		}
	}

	cleaned := CleanText(text)
	if cleaned == "" {
		return "", ErrEmptyPosting
	}

	logger.Debug("posting ingested", zap.Int("chars", len(cleaned)))
	return cleaned, nil
}
