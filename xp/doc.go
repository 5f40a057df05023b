// Package xp converts graded reviews into experience points and derives
// levels, titles and difficulty labels from accumulated totals. Only the
// XP total is ever persisted; level and progress are recomputed from it.
package xp
