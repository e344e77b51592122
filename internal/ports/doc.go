// Package ports defines the boundary interfaces of the application.
//
// Repository ports are the outbound persistence contracts implemented by
// storage adapters (see adapters/postgres). Service ports are the inbound
// use-case contracts implemented by the application layer and called by the
// HTTP handlers. Health ports connect infrastructure components to the
// readiness endpoint.
//
// Use-case inputs and outputs are primitives-only structs: converting
// between them and domain types happens inside the application layer and
// nowhere else.
package ports
