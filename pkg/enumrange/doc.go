// SPDX-License-Identifier: MPL-2.0

// Package enumrange attaches a fixed family of iteration operators, sentinel
// comparisons and range-validation predicates to any bounded enumeration.
//
// A bounded enumeration is a named integer type whose valid values form the
// contiguous range [First, Count). The type opts in by reporting its own
// boundaries through a Bounds method; every operator in this package is then
// available for it, with no per-type code:
//
//	type Color uint8
//
//	const (
//		Red Color = iota
//		Green
//		Blue
//		ColorCount
//
//		ColorFirst = Red
//	)
//
//	func (Color) Bounds() (first, count Color) { return ColorFirst, ColorCount }
//	func (c Color) String() string { ... }
//
// The End sentinel lets a conventional ascending loop drive the enumeration
// without an iterator abstraction:
//
//	for c := enumrange.First[Color](); enumrange.NotEqual(c, enumrange.End); enumrange.Inc(&c) {
//		...
//	}
//
// Inc and Dec never clamp; use the sentinel comparison as the loop guard.
// AssertValid treats an out-of-range value as a programmer error and routes
// it to the assert package; Validate is the returned-error form for values
// that come from outside the program (config files, flags).
//
// The String method is the enumeration's display hook. This package only
// relies on it through the Named constraint; each enumeration supplies its
// own text, one string per valid value.
package enumrange
