// Package lambert solves Lambert's boundary-value problem: given a central
// gravitational parameter, two position vectors and a time of flight, it
// returns the velocity pair that connects them along a Keplerian arc.
//
// The implementation follows Izzo's reformulation of the problem as a single
// scalar root-find over x, a non-dimensional variable monotone in the time
// of flight. It covers single- and multi-revolution transfers, prograde and
// retrograde geometries, and the near-parabolic and near-180 degree
// branches.
//
// The solver is pure: Solve, Batch and MultiRev take their inputs by value,
// allocate their scratch vectors on the stack (or heap, per escape
// analysis) of the call, and keep no package-level mutable state besides the
// once-loaded tolerance/iteration defaults in config.go. Concurrent callers
// need no external synchronization.
package lambert
