// Package services implements the driving port interfaces.
// Services contain the core business logic and orchestrate
// calls to driven ports (adapters).
//
// Searching is pure and synchronous: it reads one immutable corpus
// obtained from the CorpusService and performs no I/O.
package services
