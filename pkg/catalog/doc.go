// SPDX-License-Identifier: MPL-2.0

// Package catalog provides a name-indexed registry of unit types, units,
// composed units and constants built with package measures.
//
// A Catalog resolves the short and long names that appear in composed-unit
// labels ("m^1 s^-2"), so it can parse labels and quantities back into
// values. It also reads and writes quantities in the project's pipe-delimited
// text grammar:
//
//	type::quantity|value::9.80665|unit::m^1 s^-2
//
// Catalogs are typically produced by package unitfile from CUE definitions.
// A Catalog is not safe for concurrent mutation; once populated it may be
// read from multiple goroutines.
package catalog
