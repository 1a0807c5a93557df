package imagegen

import "context"

const (
	DefaultAPIVersion     = "2024-02-01"
	DefaultDeploymentName = "dall-e-3"

	// ProviderModel is sent in every request body regardless of the
	// deployment name the URL points at.
	ProviderModel = "dall-e-3"
)

// ProductRequest is the validated inbound payload of a generation call.
type ProductRequest struct {
	Name        string   `json:"name" mapstructure:"name"`
	Description []string `json:"description" mapstructure:"description"`
}

// ProviderConfig holds the Azure OpenAI settings used to reach the DALL-E
// deployment.
type ProviderConfig struct {
	APIVersion     string
	EndpointBase   string
	DeploymentName string
	APIKey         string
}

// WithDefaults fills the optional fields that were left empty.
func (c ProviderConfig) WithDefaults() ProviderConfig {
	if c.APIVersion == "" {
		c.APIVersion = DefaultAPIVersion
	}
	if c.DeploymentName == "" {
		c.DeploymentName = DefaultDeploymentName
	}
	return c
}

// Result is the successful outcome of a generation.
type Result struct {
	ImageURL string
}

// Generator is implemented by image providers.
type Generator interface {
	Generate(ctx context.Context, req ProductRequest) (Result, error)
}
