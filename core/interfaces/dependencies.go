// ABOUTME: Dependencies container provides dependency injection for core services
// ABOUTME: Defines the contract for dependencies required by the core business logic

package interfaces

// Dependencies holds all external dependencies required by the core business logic
type Dependencies struct {
	// Storage provides durable key-value persistence
	Storage KVStorage

	// LLM provides chat-completion functionality
	LLM LLMClient

	// Logger provides structured logging
	Logger Logger
}
