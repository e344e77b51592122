// Package domain contains shared domain types used across entity sub-packages.
// Entity-specific value objects and aggregates live in sub-packages
// (domain/todo, domain/user). This root package holds sentinel errors, the
// validation error type with per-field rule messages, and the identifier
// helpers shared by every aggregate.
package domain
