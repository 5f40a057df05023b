// Package ordering decides which cards a study session sees and in what
// sequence: due-only filtering, hardest-first ease banding with in-band
// shuffling for classic sessions, and the self-replenishing adaptive
// queue behind endless practice.
//
// Both policies take an explicit *rand.Rand so callers control the source
// of randomness and tests stay deterministic.
package ordering
