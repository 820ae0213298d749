// Package infrastructure provides concrete implementations of the interfaces
// defined in the core package. These implementations handle external concerns
// such as durable storage, LLM access, authentication, and logging.
//
// The infrastructure package is organized by technical concern:
//
// - storage/memory: In-memory key-value storage for development and tests
// - storage/redis: Redis-backed key-value storage
// - storage/sqlite: SQLite-backed key-value storage
// - llm/openrouter: OpenRouter chat-completion client
// - auth/supabase: Supabase session provider
// - logger/standard: Simple structured logger implementation
// - logger/logrus: JSON structured logger built on logrus
//
// # Design Philosophy
//
// Infrastructure components are designed to be:
// - Pluggable: Easy to swap implementations
// - Configurable: Accept configuration objects
// - Testable: Include unit tests against the core interfaces
// - Production-ready: Include timeouts and error handling
//
// # Storage Implementations
//
// Memory Storage Example:
//
//	storage := memory.NewMemoryStorage()
//	err := storage.Set(ctx, "workflow:p1", payload)
//	value, err := storage.Get(ctx, "workflow:p1")
//
// Redis Storage Example:
//
//	config := config.RedisConfig{
//	    Address:  "localhost:6379",
//	    Password: "",
//	    DB:       0,
//	}
//	storage, err := redis.NewRedisStorage(config)
//
// # LLM Client
//
// The OpenRouter client speaks the OpenAI chat-completion protocol against
// the OpenRouter endpoint:
//
//	client, err := openrouter.NewClient(cfg.LLM)
//	resp, err := client.Complete(ctx, interfaces.ChatRequest{
//	    Messages: []interfaces.ChatMessage{{Role: "user", Content: "..."}},
//	})
//
// # Logger
//
// The loggers support structured logging with fields:
//
//	logger := standard.NewStandardLogger()
//	logger.Info("Run started", map[string]interface{}{
//	    "project_id": "p1",
//	    "sequence":   3,
//	})
package infrastructure
