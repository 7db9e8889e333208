// SPDX-License-Identifier: MIT

// Package channel holds the comparable numeric channels sampled from a scene
// and the distance model built from two such channel sets.
//
// A channel is identified by name, never by object identity: the base scene
// and the scene being re-timed hold physically different robot instances that
// stand for the same semantic entity. Two channels are comparable when their
// Keys are equal.
//
// Channel kinds:
//
//	RootPosition    a robot's own root transform (Part is empty)
//	LinkPosition    world position of a named link
//	JointPosition   world position of a named joint
//	JointAngle      scalar angle of a named articulated joint
//
// The distance between two instants is the sum over every comparable pair of
// the Euclidean distance (positions) or absolute difference (angles).
package channel
