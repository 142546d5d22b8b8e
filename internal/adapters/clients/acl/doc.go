// Package acl provides Anti-Corruption Layer adapters translating between
// external service payloads and domain types.
//
// The Anti-Corruption Layer keeps the domain model independent of the wire
// formats of downstream services:
//
//   - External DTOs stay unexported and never leak into the domain
//   - External error codes map to domain errors
//   - External data is validated before creating domain objects
//
// # Package Components
//
//   - [BaseAdapter]: Embeddable struct with request plumbing and error mapping
//   - [ErrorResponse]: External error response parsing
//   - [MapHTTPError]: HTTP status code to domain error mapping
//   - [DecodeResponse]: Generic JSON response decoder
//   - [GeminiAdapter]: Generative-model adapter producing travel guidance
//
// # Error Handling Strategy
//
// All downstream failures surface as domain errors:
//   - 404 Not Found → [domain.ErrNotFound]
//   - 409 Conflict → [domain.ErrConflict]
//   - 400/422 → [domain.ErrValidation]
//   - 401/403 (rejected credentials), 429, 5xx, network → [domain.ErrUnavailable]
//
// Client-level errors ([clients.ErrCircuitOpen], [clients.ErrMaxRetriesExceeded])
// also translate to [domain.ErrUnavailable] with appropriate context.
package acl
