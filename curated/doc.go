// This file is part of Gopher8080.
//
// Gopher8080 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher8080 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher8080.  If not, see <https://www.gnu.org/licenses/>.

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. This is similar to
// the Errorf() function in the fmt package. It takes a formatting pattern,
// placeholder values and returns an error. The pattern is remembered and is
// what distinguishes one curated error from another.
//
// Packages that return curated errors should declare the patterns they use as
// exported string constants. For example, the cpubus package declares:
//
//	const WriteProtectionViolation = "write protection violation: %#04x"
//
// and the memory package returns an error with:
//
//	return curated.Errorf(cpubus.WriteProtectionViolation, address)
//
// Callers can then test for the condition with the Is() function:
//
//	if curated.Is(err, cpubus.WriteProtectionViolation) {
//		...
//	}
//
// Errors are commonly wrapped by the calling package, usually with a short
// prefix naming the package:
//
//	return curated.Errorf("cpu: %v", err)
//
// The Is() function will not match a wrapped error. The Has() function should
// be used instead, which searches the entire chain.
//
// The Error() implementation normalises the error chain by removing duplicate
// adjacent parts. For example, an error wrapped twice with the "cpu: %v"
// pattern will print as:
//
//	cpu: unknown opcode (0xdd) at (0x0123)
//
// and not:
//
//	cpu: cpu: unknown opcode (0xdd) at (0x0123)
//
// Parts of the chain are separated by the sub-string ": ", as suggested on
// p239 of "The Go Programming Language" (Donovan, Kernighan).
//
// Curated errors also implement the Unwrap() method so that the errors
// package in the standard library can see through them.
package curated
