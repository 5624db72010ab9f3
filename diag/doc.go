// Package diag defines the problems reported by the doc comment checker and
// the sinks that receive them.
//
// The checker never returns problems as errors. Every problem goes through a
// Reporter; callers choose whether to collect them in a Bag, forward them to
// an editor, or drop them.
package diag
