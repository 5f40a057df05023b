// Package session drives a live study session: an explicit finite-state
// machine for classic mode with lives, score and per-answer feedback, a
// lighter running context for endless mode, and JSON snapshots so an
// interrupted session can be resumed.
//
// The machine is intentionally framework-free: a fixed set of states, a
// value-type context and a pure transition function. Everything the
// hosting application needs to render or persist lives in the returned
// (State, Context) pair.
package session
