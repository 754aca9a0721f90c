// Package checks implements dual-mode precondition checking for the raw
// convolution kernels.
//
// The kernels are contractually called with pre-validated arguments, so by
// default a violated precondition is a silent no-op: Ok reports false and
// the caller returns without touching the result buffer. Building with the
// convdebug tag turns every violation into a panic at the point of
// detection, for integration testing against misbehaving callers.
package checks
