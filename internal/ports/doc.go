// Package ports defines the interfaces (ports) that connect the lifecycle
// core to infrastructure adapters.
//
// Ports are the boundary between the application core and the outside
// world. They define what the core needs from external systems without
// specifying how those needs are fulfilled.
//
// # Port Interfaces
//
//   - [Store]: Loads and persists application records
//   - [Notifier]: Delivers notification intents to their audience
//   - [Logger]: Structured logging abstraction
//   - [HTTPClient]: HTTP request abstraction for dependency injection
//
// # Usage
//
// The application layer (internal/app) depends only on these interfaces.
// Infrastructure adapters (internal/adapters) implement them with concrete
// implementations (SQLite, the marketplace REST API, a JSON file, zerolog).
package ports
