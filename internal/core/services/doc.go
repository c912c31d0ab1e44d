// Package services implements the driving port interfaces.
// Services contain the core business logic and orchestrate
// calls to driven ports (adapters).
//
// The record pipeline (normalise, filter, aggregate) is made of plain
// functions; ViewController and SettingsService hold state.
//
// Services are pure Go with no CGO or external dependencies.
package services
