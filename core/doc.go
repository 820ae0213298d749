// Package core contains the business logic for the MagicMuse API.
// It is designed to be framework-agnostic and can be used independently
// of any web framework or infrastructure concerns.
//
// The core package is organized into several sub-packages:
//
// - domain: Pure domain models (WorkflowState, Slide, PhaseData, etc.)
// - workflow: Composed workflow state store with per-slice setters
// - generation: Generation run orchestration service
// - visual: Visual-specification parser for LLM output
// - templates: Slide-deck template catalog
// - services: Supporting services (brand color extraction)
// - errors: Custom error types for better error handling
// - interfaces: Contracts for external dependencies (storage, LLM, logger)
//
// # Design Principles
//
// The core package follows clean architecture principles:
// - No external framework dependencies
// - All external dependencies are injected via interfaces
// - Business logic is testable in isolation
// - Domain models are free from persistence concerns
//
// # Usage Example
//
//	import (
//	    "magicmuse-api/core/interfaces"
//	    "magicmuse-api/core/workflow"
//	)
//
//	// Create dependencies
//	deps := interfaces.Dependencies{
//	    Storage: myStorage, // implements interfaces.KVStorage
//	    LLM:     myLLM,     // implements interfaces.LLMClient
//	    Logger:  myLogger,  // implements interfaces.Logger
//	}
//
//	// Create the workflow manager and a workflow
//	manager, err := workflow.NewManager(deps)
//	store, err := manager.Create(ctx, "Pitch deck")
package core
