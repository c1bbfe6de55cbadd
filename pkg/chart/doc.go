// Package chart lays out a ledger snapshot as a horizontal bar chart and
// reconciles successive layouts into keyed enter, update and exit
// instructions.
//
// A [Renderer] computes a [Frame] for every snapshot, diffs it against the
// previous frame with [Reconcile], and hands the resulting [Plan] to a
// [Backend]. Backends decide how to draw; animated backends can use a
// [Scene] to interpolate element attributes between plans.
package chart
