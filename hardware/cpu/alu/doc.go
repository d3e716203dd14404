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

// Package alu contains the arithmetic and flag logic of the 8080. All
// functions are pure. The result of an operation is returned in a Result
// instance and it is up to the caller to decide which of the flags to copy
// into the flags register.
//
// Subtraction is performed as a widened uint16 operation. A borrow causes
// the result to wrap around and so appear greater than 0xff, which is the
// same test used for the carry after addition.
package alu
