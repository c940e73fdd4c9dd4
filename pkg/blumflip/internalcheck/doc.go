// Package internalcheck holds source-policy tests for the coin-flipping
// packages.
//
// The core packages (modgroup, pedersen, flip) have two standing rules:
// entropy is always injected, never drawn from a global generator, and the
// only side channel is the transcript sink, never the console. The tests in
// this package load the core sources and enforce both rules mechanically.
//
// # Internal Use Only
//
// This package is part of the internal implementation and should not be
// imported by applications. Use the public API provided by pkg/blumflip and
// its subpackages instead.
package internalcheck
