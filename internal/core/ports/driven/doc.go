// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
// These must be provided for the application to function:
//
//   - Fetcher: Retrieves the raw CSV bytes (HTTP)
//   - RecordParser: Turns CSV bytes into header-keyed raw records
//   - Presenter: Maps aggregations to chart datasets and tables
//   - ConfigStore: Application configuration
//
// # Optional Interfaces
//
// These can be nil - the application degrades gracefully:
//
//   - Renderer: Draws view states. Without it the controller still
//     computes state and surfaces can pull it with State().
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter or presentation package
package driven
