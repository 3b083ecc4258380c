// Package tween provides a tick-driven interpolation and sequencing core.
//
// A Progress turns elapsed time into normalised progress under either a fixed
// duration or a speed/distance policy, with reversal support. Steps are the
// schedulable units built on top of it: a Timed step fans progress out to
// actions, a Group shares one timebase between several sub-animations, and
// Delay, WaitFor and Do cover fixed pauses, condition waits and one-shot
// effects. A Program chains heterogeneous steps into an ordered run with
// once, counted-loop and infinite-loop modes.
//
// The same step definitions support two consumption protocols. In pull mode
// the caller arms a step or program and ticks it from its own frame callback,
// passing explicit time values. In push mode a tick channel drives the run
// and the core yields control between ticks. The core never reads the wall
// clock for timing decisions, which keeps it deterministic under test.
//
// The core is single-threaded by design: actions in a group are concurrent
// only by shared timebase and execute synchronously within one tick, and a
// program's steps never overlap. When several programs must run at once, each
// gets its own goroutine and tick channel (see RunAll); no program is ever
// mutated from more than one goroutine.
package tween
