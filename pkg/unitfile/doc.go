// SPDX-License-Identifier: MPL-2.0

// Package unitfile parses unitfile.cue unit definitions and resolves them
// into a catalog.Catalog.
//
// A unitfile declares dimensions, root and derived units, named composed
// units and constants:
//
//	types: ["length", "time"]
//	units: [
//		{name: "meter", short: "m", type: "length"},
//		{name: "kilometer", short: "km", base: "meter", scalar: 1000},
//		{name: "second", short: "s", type: "time"},
//		{name: "hour", short: "h", base: "second", scalar: 3600},
//	]
//	composites: [
//		{key: "kph", name: "kilometers per hour", short: "km/h", factors: [
//			{unit: "km", power: 1},
//			{unit: "h", power: -1},
//		]},
//	]
//	constants: [
//		{name: "walking pace", short: "wp", value: 5, unit: "kph"},
//	]
//
// Parsing follows three steps: compile the embedded schema, unify it with
// the user data, then validate and decode to Go structs. CUE errors are
// reported with JSON-path prefixes (units[1].scalar: ...). Rules CUE cannot
// express, such as "type or base, not both", are checked in Go afterwards.
//
// Builtin returns a catalog of common SI, imperial and time units parsed from
// an embedded unitfile.
package unitfile
