// ABOUTME: LLM completion client interface consumed by the generation service
// ABOUTME: Chat-completion request/response shapes at the provider boundary

package interfaces

import "context"

// ChatMessage is one turn of a chat-completion conversation.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatRequest carries a completion request to the LLM provider.
type ChatRequest struct {
	Messages    []ChatMessage `json:"messages"`
	Temperature float64       `json:"temperature,omitempty"`
	MaxTokens   int           `json:"maxTokens,omitempty"`
	TopP        float64       `json:"topP,omitempty"`
}

// TokenUsage reports token accounting for one completion.
type TokenUsage struct {
	PromptTokens     int `json:"promptTokens"`
	CompletionTokens int `json:"completionTokens"`
	TotalTokens      int `json:"totalTokens"`
}

// ChatResponse is the provider's completion result.
type ChatResponse struct {
	Content string     `json:"content"`
	Usage   TokenUsage `json:"usage"`
}

// LLMClient abstracts the chat-completion provider so the generation service
// can be tested against a mock.
type LLMClient interface {
	// Complete sends one chat-completion request and returns the first
	// choice's content. Provider failures surface as errors carrying the
	// upstream HTTP status where available.
	Complete(ctx context.Context, req ChatRequest) (*ChatResponse, error)
}
