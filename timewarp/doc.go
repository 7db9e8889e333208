// SPDX-License-Identifier: MIT

// Package timewarp maps times in a base scene's time scale to times in a
// target scene's time scale and back.
//
// A Map holds two parallel, non-decreasing arrays of times (baseTimes,
// otherTimes) resolved from an alignment path. Lookups clamp into the base
// range and take the lowest index whose base time is ≥ the query (a lower-bound
// binary search), so both directions are O(log K) and cheap enough to run once
// per rendered scene per frame.
//
// A nil *Map is the identity: playback can call m.Forward(t) whether or not a
// warp is installed.
//
// WARNING: Backward is not the inverse of Forward. An alignment is not 1:1, so
// Backward(Forward(t)) may differ from t, and iterating the pair can walk a
// value earlier along runs where one side of the path stands still.
//
// Maps are never mutated after construction; a recomputation builds a new Map
// and the old reference is simply dropped.
package timewarp
