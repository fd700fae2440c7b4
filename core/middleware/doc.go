// Package middleware contains HTTP middleware for the Fiber application.
//
// It provides cross-cutting concerns that sit between the request and the handler.
//
// # Components
//
//   - Auth: Verifies the admin bearer token (JWT) and stores its claims on the context.
//     Mounted on the /admin route group only; public read endpoints stay open.
//   - RayID: Generates a unique Request ID (RayID) for every incoming request,
//     injecting it into the context and response headers for tracing.
//
// These middleware components are registered globally (RayID) or per-route group
// (Auth) in cmd/start.go.
package middleware
