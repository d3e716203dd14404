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

// Package test bundles a few helper functions that remove common boilerplate
// from the package tests.
//
// The Expect functions report a test failure but allow the test to continue.
// They return false if the expectation was not met, which is useful when the
// test wants to log additional context before moving on. The Demand functions
// are the same except that a failure ends the test immediately. Demand
// functions should be used when subsequent parts of the test depend on the
// value being correct; for example, testing that the length of a slice is
// correct before indexing it.
//
// The ExpectSuccess and ExpectFailure functions interpret their argument
// according to its type:
//
//	bool  -> success is true
//	error -> success is nil
//	nil   -> always success
//
// The nil type is considered a success. This follows how errors are used in
// Go, where a nil error indicates that nothing went wrong.
//
// All functions accept an optional list of tags which are prefixed to any
// failure message. Tags help identify which iteration of a table driven test
// has failed.
//
// The CompareWriter type implements the io.Writer interface and can be used
// to capture and compare output.
package test
