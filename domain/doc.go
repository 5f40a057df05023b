// Package domain defines the core entities of the learning engine:
// cards, per-learner schedule state, and recall-quality grades.
package domain
