// Package fuzzy normalizes free-typed answers and scores how closely they
// match the expected answer, producing the similarity ratio that drives
// quality grading.
package fuzzy
