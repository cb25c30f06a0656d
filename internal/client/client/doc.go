// Package client talks to the CalamaUnido REST API.
//
// # Overview
//
// Client is the transport-agnostic contract; HTTPClient is the JSON over
// HTTPS implementation. Authenticated calls obtain their bearer token from a
// TokenSource on every request, so a token stored by a login is picked up by
// the next call without rebuilding the client.
//
// Endpoints
//
//	POST /api/v1/token/          {rut, password} -> {access, refresh}
//	GET  /api/v1/categorias/     -> [{id, nombre}]
//	GET  /api/v1/publicaciones/  ?page=N[&categoria=A,B] -> {next, results}
//
// # Error Handling
//
// Transport failures map to ErrUnavailable, non-2xx replies to *APIError
// (which unwraps to ErrUnauthorized or ErrServer where meaningful) and
// undecodable bodies to ErrDecode. Match with errors.Is / errors.As.
//
// Each operation is exactly one HTTP request; there is no retry or backoff.
package client
