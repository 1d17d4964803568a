package openai

import (
	"github.com/sashabaranov/go-openai"
)

// NewClient builds an OpenAI client for the given credential. An empty
// baseURL keeps the library default.
func NewClient(apiKey, baseURL string) *openai.Client {
	config := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		config.BaseURL = baseURL
	}
	return openai.NewClientWithConfig(config)
}
