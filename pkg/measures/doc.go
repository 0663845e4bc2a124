// SPDX-License-Identifier: MPL-2.0

// Package measures implements dimensional analysis over physical quantities.
//
// A UnitType names a dimension (length, time, ...). A Unit is a named scalar
// for one dimension, either a root unit with value 1 or derived from another
// unit of the same dimension. A ComposedUnit multiplies units raised to
// integer powers, at most one unit per dimension. A Quantity attaches a
// float64 value to a ComposedUnit and supports arithmetic that tracks
// dimensions and conversion factors, rejecting operations between
// incompatible dimensions.
//
// All types are immutable once built and safe for concurrent use. The only
// mutable type is ComposedUnit's Builder, which is meant for a single owner.
//
// This package is a leaf dependency: it imports only the standard library.
package measures
