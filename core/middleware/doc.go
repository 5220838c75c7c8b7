// Package middleware contains HTTP middleware for the Fiber application.
//
// # Components
//
//   - auth: API key validation protecting the batch endpoints.
//   - rayid: assigns every request a RayID, stored in the context and echoed
//     in the X-Ray-ID response header for tracing.
//
// These components are registered globally in the serve command.
package middleware
