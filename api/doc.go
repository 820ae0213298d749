// Package api provides the HTTP API layer for the MagicMuse application.
// It uses the Huma framework to provide automatic OpenAPI documentation,
// request/response validation, and a clean handler interface.
//
// # Architecture
//
// The API package is structured as follows:
//
// - server.go: Huma API configuration and setup
// - handlers/: HTTP request handlers
// - dto/: Data Transfer Objects for requests and responses
// - middleware/: HTTP middleware for cross-cutting concerns
//
// # Key Features
//
// 1. Automatic OpenAPI Generation
//
// The API automatically generates OpenAPI 3.0 documentation:
// - JSON spec available at /openapi.json
// - Interactive docs UI at /docs
//
// 2. Request/Response Validation
//
// Huma provides automatic validation based on struct tags:
//
//	type SlideInput struct {
//	    Title      string `json:"title" minLength:"1" maxLength:"200"`
//	    Type       string `json:"type" minLength:"1"`
//	    VisualType string `json:"visualType,omitempty" enum:",chart,table,diagram,infographic,logo"`
//	}
//
// 3. Middleware Support
//
// The API includes middleware for:
// - Request logging with unique request IDs
// - Rate limiting per client address
// - CORS handling
//
// # Usage Example
//
//	// Create API with middleware
//	cfg := api.APIConfig{
//	    Logger:    logger,
//	    RateLimit: 100,
//	}
//	humaAPI, router := api.NewAPIWithMiddleware(cfg)
//
//	// Register handlers
//	workflowHandler := handlers.NewWorkflowHandler(manager, catalog, brandColors)
//	workflowHandler.RegisterRoutes(humaAPI)
//
//	// Start server
//	http.ListenAndServe(":8000", router)
//
// # Error Handling
//
// The API uses a consistent error format based on RFC 7807:
//
//	{
//	    "status": 404,
//	    "title": "Not Found",
//	    "detail": "workflow not found: w1"
//	}
//
// Domain errors are automatically mapped to appropriate HTTP status codes,
// including 409 Conflict for updates from superseded generation runs.
package api
