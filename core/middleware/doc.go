// Package middleware contains HTTP middleware for the Fiber application.
//
// It provides cross-cutting concerns that sit between the request and the handler.
//
// # Components
//
//   - auth: API key validation (X-API-Key header or bearer token). Health and
//     metrics endpoints stay public.
//   - rayid: Generates a unique Request ID (RayID) for every incoming request,
//     injecting it into the context and response headers for tracing.
//   - metrics: Prometheus request counters and latency histograms labelled by
//     route pattern.
//
// These middleware components are registered globally in the start command.
package middleware
