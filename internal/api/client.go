// Package api provides the Anthropic API client used by Claude-backed
// workers. It supports the direct API and AWS Bedrock.
package api

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/bedrock"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/aws/aws-sdk-go-v2/config"
)

// defaultMaxTokens is the per-call output token ceiling.
const defaultMaxTokens = 8192

// Client wraps the Anthropic SDK client.
type Client struct {
	inner     anthropic.Client
	model     anthropic.Model
	maxTokens int64
}

// ClientConfig contains configuration for creating a new Client.
type ClientConfig struct {
	// Model is the Claude model to use. Defaults to Sonnet.
	Model anthropic.Model
	// APIKey is the Anthropic API key. If empty, uses ANTHROPIC_API_KEY.
	APIKey string
	// MaxTokens overrides the per-call output token ceiling.
	MaxTokens int64
	// UseAWSBedrock indicates whether to use AWS Bedrock instead of the
	// direct API.
	UseAWSBedrock bool
	// AWSRegion is the AWS region for Bedrock (e.g. "us-west-2").
	AWSRegion string
	// AWSProfile is the optional AWS profile name to use.
	AWSProfile string
}

// NewClient creates a new Anthropic API client.
func NewClient(cfg ClientConfig) (*Client, error) {
	var opts []option.RequestOption

	if cfg.UseAWSBedrock {
		ctx := context.Background()

		var loadOpts []func(*config.LoadOptions) error
		if cfg.AWSRegion != "" {
			loadOpts = append(loadOpts, config.WithRegion(cfg.AWSRegion))
		}
		if cfg.AWSProfile != "" {
			loadOpts = append(loadOpts, config.WithSharedConfigProfile(cfg.AWSProfile))
		}

		opts = append(opts, bedrock.WithLoadDefaultConfig(ctx, loadOpts...))
	} else {
		apiKey := cfg.APIKey
		if apiKey == "" {
			apiKey = os.Getenv("ANTHROPIC_API_KEY")
		}
		if apiKey == "" {
			return nil, fmt.Errorf("ANTHROPIC_API_KEY environment variable is not set")
		}
		opts = append(opts, option.WithAPIKey(apiKey))
	}

	model := cfg.Model
	if model == "" {
		model = anthropic.ModelClaudeSonnet4_20250514
	}
	if cfg.UseAWSBedrock {
		model = translateModelForBedrock(model)
	}

	maxTokens := cfg.MaxTokens
	if maxTokens <= 0 {
		maxTokens = defaultMaxTokens
	}

	return &Client{
		inner:     anthropic.NewClient(opts...),
		model:     model,
		maxTokens: maxTokens,
	}, nil
}

// translateModelForBedrock converts standard Anthropic model names to
// Bedrock cross-region inference profile format.
func translateModelForBedrock(model anthropic.Model) anthropic.Model {
	bedrockModels := map[anthropic.Model]string{
		anthropic.ModelClaudeSonnet4_20250514:   "us.anthropic.claude-sonnet-4-20250514-v1:0",
		anthropic.ModelClaudeSonnet4_5_20250929: "us.anthropic.claude-sonnet-4-5-20250929-v1:0",
		anthropic.ModelClaudeHaiku4_5_20251001:  "us.anthropic.claude-haiku-4-5-20251001-v1:0",
		anthropic.ModelClaudeOpus4_1_20250805:   "us.anthropic.claude-opus-4-1-20250805-v1:0",
		anthropic.ModelClaude3_5Haiku20241022:   "us.anthropic.claude-3-5-haiku-20241022-v1:0",
	}

	if bedrockModel, ok := bedrockModels[model]; ok {
		return anthropic.Model(bedrockModel)
	}
	return model
}

// Model returns the configured model name.
func (c *Client) Model() anthropic.Model {
	return c.model
}

// Completion is the result of one Complete call.
type Completion struct {
	// Text is the concatenated text content of the response.
	Text string
	// InputTokens and OutputTokens are the API-reported usage.
	InputTokens  int64
	OutputTokens int64
}

// Complete sends a single system+user prompt pair and returns the text
// response with usage. Transport-level and overload failures are marked
// retryable via ErrRetryable.
func (c *Client) Complete(ctx context.Context, system, prompt string) (*Completion, error) {
	params := anthropic.MessageNewParams{
		Model:     c.model,
		MaxTokens: c.maxTokens,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	}
	if system != "" {
		params.System = []anthropic.TextBlockParam{{Text: system}}
	}

	resp, err := c.inner.Messages.New(ctx, params)
	if err != nil {
		if retryable(err) {
			return nil, fmt.Errorf("%w: %v", ErrRetryable, err)
		}
		return nil, fmt.Errorf("API call failed: %w", err)
	}

	var text strings.Builder
	for _, block := range resp.Content {
		if variant, ok := block.AsAny().(anthropic.TextBlock); ok {
			text.WriteString(variant.Text)
		}
	}

	return &Completion{
		Text:         text.String(),
		InputTokens:  resp.Usage.InputTokens,
		OutputTokens: resp.Usage.OutputTokens,
	}, nil
}

// ErrRetryable marks API failures that are worth retrying with backoff.
var ErrRetryable = errors.New("retryable API error")

// retryable classifies rate limits, server errors, and request timeouts as
// transient.
func retryable(err error) bool {
	var apierr *anthropic.Error
	if errors.As(err, &apierr) {
		switch apierr.StatusCode {
		case 408, 429, 500, 502, 503, 504, 529:
			return true
		}
		return false
	}
	// Non-API errors from the transport (connection reset, EOF) are
	// retryable; context cancellation is not.
	return !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded)
}
