// Package srs implements the spaced repetition scheduler: a modified SM-2
// algorithm that grades recall from a fuzzy-match score and computes the
// next review schedule for a card.
//
// The modification is deliberate: instead of SM-2's exponential interval
// growth, intervals follow a fixed step schedule capped at 28 days, so a
// card is never pushed further than a month out. The ease factor update is
// the unmodified SM-2 formula and remains the difficulty signal used for
// card prioritization.
package srs
