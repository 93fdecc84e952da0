// Package kernel provides the core domain primitives shared by every model
// package of the logistics service.
//
// The package includes:
//   - UUID: identifier value object with validation and comparison
//   - ConstructorGuard: detects zero-value structs that bypassed a constructor
//
// Both primitives are immutable and safe for concurrent use. They carry no
// business logic of their own; their job is to keep every aggregate in a valid
// state from the moment it is built.
package kernel
