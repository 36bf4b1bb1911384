// Package analyzer reads payment receipt images with a vision model and
// returns the structured extraction consumed by the verification gates.
package analyzer

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	anthropic "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/heartmarshall/incentive-ledger/internal/config"
	"github.com/heartmarshall/incentive-ledger/internal/domain"
)

var (
	// ErrCircuitOpen is returned while the analyzer is considered unhealthy.
	ErrCircuitOpen = errors.New("analyzer circuit open")
	// ErrDisabled is returned by Disabled.
	ErrDisabled = errors.New("analyzer not configured")
)

// Client calls the Messages API with the receipt image and a forensic prompt.
type Client struct {
	log       *slog.Logger
	api       anthropic.Client
	model     string
	maxTokens int64
	timeout   time.Duration
	maxPx     int
	breaker   *breaker
}

// New creates a Client from cfg. Extra options are appended after the ones
// derived from cfg.
func New(logger *slog.Logger, cfg config.AnalyzerConfig, opts ...option.RequestOption) *Client {
	base := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		// The breaker and the manual review fallback replace SDK retries.
		option.WithMaxRetries(0),
	}
	if cfg.BaseURL != "" {
		base = append(base, option.WithBaseURL(cfg.BaseURL))
	}

	return &Client{
		log:       logger.With("adapter", "analyzer"),
		api:       anthropic.NewClient(append(base, opts...)...),
		model:     cfg.Model,
		maxTokens: cfg.MaxTokens,
		timeout:   cfg.Timeout,
		maxPx:     cfg.MaxImagePx,
		breaker:   newBreaker(cfg.BreakerThreshold, cfg.BreakerCooldown),
	}
}

// Analyze extracts receipt fields from image. Any error means the caller
// should fall back to manual review.
func (c *Client) Analyze(ctx context.Context, image []byte, contentType string, rc domain.ReceiptContext) (domain.ExtractionResult, error) {
	data, mediaType, err := prepareImage(image, contentType, c.maxPx)
	if err != nil {
		return domain.ExtractionResult{}, fmt.Errorf("analyzer prepare image: %w", err)
	}
	if !c.breaker.allow() {
		return domain.ExtractionResult{}, ErrCircuitOpen
	}

	result, err := c.analyze(ctx, data, mediaType, rc)
	if err != nil {
		// Caller cancellation is not an analyzer failure.
		if ctx.Err() != nil {
			return domain.ExtractionResult{}, err
		}
		if c.breaker.failure() {
			c.log.WarnContext(ctx, "analyzer circuit opened", slog.String("error", err.Error()))
		}
		return domain.ExtractionResult{}, err
	}
	c.breaker.success()
	return result, nil
}

// Ping reports ErrCircuitOpen while the breaker is open. It does not call
// the API.
func (c *Client) Ping(context.Context) error {
	if c.breaker.tripped() {
		return ErrCircuitOpen
	}
	return nil
}

func (c *Client) analyze(ctx context.Context, data []byte, mediaType string, rc domain.ReceiptContext) (domain.ExtractionResult, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	msg, err := c.api.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(c.model),
		MaxTokens: c.maxTokens,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(
				anthropic.NewImageBlockBase64(mediaType, base64.StdEncoding.EncodeToString(data)),
				anthropic.NewTextBlock(buildPrompt(rc)),
			),
		},
	})
	if err != nil {
		return domain.ExtractionResult{}, fmt.Errorf("analyzer call: %w", err)
	}

	var text strings.Builder
	for _, block := range msg.Content {
		if block.Type == "text" {
			text.WriteString(block.Text)
		}
	}
	if text.Len() == 0 {
		return domain.ExtractionResult{}, errors.New("analyzer returned no text")
	}

	result, err := parseResult(text.String())
	if err != nil {
		return domain.ExtractionResult{}, fmt.Errorf("analyzer parse: %w", err)
	}
	return result, nil
}

// Disabled is used when no API key is configured; every submission goes to
// manual review.
type Disabled struct{}

func (Disabled) Analyze(context.Context, []byte, string, domain.ReceiptContext) (domain.ExtractionResult, error) {
	return domain.ExtractionResult{}, ErrDisabled
}

func (Disabled) Ping(context.Context) error { return ErrDisabled }
