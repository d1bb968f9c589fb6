package service

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"image"
	"log"
	"net/http"
	"time"

	"github.com/disintegration/imaging"
	"github.com/hashicorp/go-retryablehttp"
	openai "github.com/openai/openai-go/v2"
	"github.com/openai/openai-go/v2/option"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const embeddingImageQuality = 90

// EmbeddingConfig configures the connection to an OpenAI-compatible embeddings server
// hosting a CLIP-style model (text and images share one vector space).
type EmbeddingConfig struct {
	BaseURL string
	APIKey  string
	Model   string
	Timeout time.Duration
}

// EmbeddingService talks to the embeddings server. It is created once at startup
// and shared by all requests; it is safe for concurrent use.
type EmbeddingService struct {
	client openai.Client
	model  string
}

// Ensure EmbeddingService implements EmbeddingServiceInterface
var _ EmbeddingServiceInterface = (*EmbeddingService)(nil)

// NewEmbeddingService creates a new EmbeddingService
func NewEmbeddingService(cfg EmbeddingConfig) (*EmbeddingService, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("embedding base URL is required")
	}
	if cfg.Model == "" {
		return nil, fmt.Errorf("embedding model is required")
	}

	opts := []option.RequestOption{
		option.WithBaseURL(cfg.BaseURL),
		option.WithAPIKey(cfg.APIKey),
		option.WithHTTPClient(newRetryingHTTPClient()),
		// retries are handled by the retryable transport
		option.WithMaxRetries(0),
	}
	if cfg.Timeout > 0 {
		opts = append(opts, option.WithRequestTimeout(cfg.Timeout))
	}

	log.Printf("✓ Embedding service configured: base_url=%s, model=%s", cfg.BaseURL, cfg.Model)
	return &EmbeddingService{
		client: openai.NewClient(opts...),
		model:  cfg.Model,
	}, nil
}

// EmbedText returns the embedding of a text prompt
func (s *EmbeddingService) EmbedText(ctx context.Context, text string) ([]float32, error) {
	vec, err := s.embed(ctx, text)
	if err != nil {
		return nil, fmt.Errorf("failed to embed text %q: %w", text, err)
	}
	return vec, nil
}

// EmbedImage returns the embedding of an image. The image is sent as a JPEG data URI
// with modality "image".
func (s *EmbeddingService) EmbedImage(ctx context.Context, img image.Image) ([]float32, error) {
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(embeddingImageQuality)); err != nil {
		return nil, fmt.Errorf("failed to encode image for embedding: %w", err)
	}
	dataURI := "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(buf.Bytes())

	vec, err := s.embed(ctx, dataURI, option.WithJSONSet("modality", "image"))
	if err != nil {
		return nil, fmt.Errorf("failed to embed image: %w", err)
	}
	return vec, nil
}

func (s *EmbeddingService) embed(ctx context.Context, input string, opts ...option.RequestOption) ([]float32, error) {
	resp, err := s.client.Embeddings.New(ctx, openai.EmbeddingNewParams{
		Input: openai.EmbeddingNewParamsInputUnion{OfString: openai.String(input)},
		Model: openai.EmbeddingModel(s.model),
	}, opts...)
	if err != nil {
		return nil, err
	}
	if len(resp.Data) == 0 || len(resp.Data[0].Embedding) == 0 {
		return nil, fmt.Errorf("embeddings server returned an empty embedding")
	}

	src := resp.Data[0].Embedding
	vec := make([]float32, len(src))
	for i, v := range src {
		vec[i] = float32(v)
	}
	return vec, nil
}

func newRetryingHTTPClient() *http.Client {
	retryClient := retryablehttp.NewClient()
	retryClient.RetryWaitMax = 5 * time.Second
	retryClient.RetryMax = 3
	retryClient.CheckRetry = dontRetry500StatusPolicy(retryablehttp.ErrorPropagatedRetryPolicy)
	retryClient.Logger = log.Default()

	stdClient := retryClient.StandardClient()
	stdClient.Transport = otelhttp.NewTransport(stdClient.Transport)
	return stdClient
}

// dontRetry500StatusPolicy prevents retries on HTTP 500 responses
func dontRetry500StatusPolicy(policy retryablehttp.CheckRetry) retryablehttp.CheckRetry {
	return func(ctx context.Context, resp *http.Response, err error) (bool, error) {
		if ctx.Err() != nil {
			return false, ctx.Err()
		}
		if resp != nil && resp.StatusCode == http.StatusInternalServerError {
			return false, err
		}
		return policy(ctx, resp, err)
	}
}
