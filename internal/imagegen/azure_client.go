package imagegen

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/tidwall/gjson"
)

const azureDefaultTimeout = 60 * time.Second

// maxProviderBody bounds how much of a provider response is read.
const maxProviderBody = 4 << 20

type AzureOptions struct {
	Config     ProviderConfig
	HTTPClient *http.Client
	Timeout    time.Duration
}

// AzureDalleClient generates product images through an Azure OpenAI DALL-E
// deployment. It performs exactly one request per Generate call.
type AzureDalleClient struct {
	httpClient *http.Client
	cfg        ProviderConfig
}

func NewAzureDalleClient(opts AzureOptions) *AzureDalleClient {
	client := opts.HTTPClient
	if client == nil {
		timeout := opts.Timeout
		if timeout <= 0 {
			timeout = azureDefaultTimeout
		}
		client = &http.Client{Timeout: timeout}
	}
	cfg := opts.Config.WithDefaults()
	cfg.EndpointBase = strings.TrimSpace(cfg.EndpointBase)
	cfg.APIKey = strings.TrimSpace(cfg.APIKey)
	return &AzureDalleClient{httpClient: client, cfg: cfg}
}

type dalleRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
	N      int    `json:"n"`
}

// GenerationURL returns the images/generations URL of the configured
// deployment. EndpointBase is expected to end with a slash.
func GenerationURL(cfg ProviderConfig) string {
	return fmt.Sprintf("%sopenai/deployments/%s/images/generations?api-version=%s",
		cfg.EndpointBase, cfg.DeploymentName, cfg.APIVersion)
}

func (c *AzureDalleClient) Generate(ctx context.Context, req ProductRequest) (Result, error) {
	if c == nil {
		return Result{}, configurationError("image provider not configured")
	}
	endpoint := GenerationURL(c.cfg)
	if c.cfg.EndpointBase == "" || c.cfg.APIKey == "" {
		return Result{}, configurationError("missing required environment variables: AZURE_OPENAI_DALLE_ENDPOINT or OPENAI_API_KEY")
	}

	body, err := json.Marshal(dalleRequest{
		Model:  ProviderModel,
		Prompt: BuildProductPrompt(req),
		N:      1,
	})
	if err != nil {
		return Result{}, unexpectedError("encode provider request", err)
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return Result{}, unexpectedError("build provider request", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("api-key", c.cfg.APIKey)

	zerolog.Ctx(ctx).Info().
		Str("deployment", c.cfg.DeploymentName).
		Str("api_version", c.cfg.APIVersion).
		Msg("calling image provider")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return Result{}, unexpectedError("image provider request failed", err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(io.LimitReader(resp.Body, maxProviderBody))
	if err != nil {
		return Result{}, unexpectedError("read provider response", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return Result{}, providerHTTPError(resp.StatusCode, strings.TrimSpace(string(payload)))
	}
	if !gjson.ValidBytes(payload) {
		return Result{}, providerResponseError("image provider returned invalid JSON")
	}
	url := gjson.GetBytes(payload, "data.0.url")
	if url.Type != gjson.String || strings.TrimSpace(url.Str) == "" {
		return Result{}, providerResponseError("image provider response is missing data[0].url")
	}
	return Result{ImageURL: url.Str}, nil
}

var _ Generator = (*AzureDalleClient)(nil)
