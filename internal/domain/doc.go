// Package domain contains the core entities and transition rules for the
// internship application lifecycle.
//
// This package represents the innermost layer of the architecture. It has no
// dependencies on infrastructure concerns (HTTP, SQLite, logging) and
// contains only pure business logic.
//
// # Entities
//
//   - [Status]: The closed enumeration of application statuses
//   - [Record]: A single internship application with its workflow timestamps
//   - [Intent]: A side effect (notification) a transition requires
//
// # Design Principles
//
// The transition rules live in a single lookup table ([LegalTargets]) and a
// single pure function ([Transition]). Callers persist the returned record
// and dispatch the returned intents themselves; nothing in this package
// performs I/O.
package domain
