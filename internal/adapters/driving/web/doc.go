// Package web serves the dataset views over HTTP.
//
// Routes:
//
//	GET /          HTML page: selectors, Chart.js chart and accessible table
//	GET /api/view  view state as JSON
//	GET /healthz   readiness
//	GET /metrics   Prometheus metrics
//
// Handlers never change controller state. Every request computes its own
// view from query parameters (kind, category, year).
package web
