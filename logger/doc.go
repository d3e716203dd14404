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

// Package logger is the central log for the emulation. Entries are added
// with a tag and a detail string:
//
//	logger.Log(logger.Allow, "ports", "unhandled write to port 7")
//
// Tags identify the part of the program that created the entry and are
// usually the name of the package. Consecutive entries with the same tag and
// detail are folded into a single entry with a repeat count. This stops
// programs that repeatedly write to an unused port from flooding the log.
//
// The log has a maximum number of entries and older entries are discarded
// as new entries are added.
//
// The Permission interface allows the caller to decide whether logging is
// allowed in the current context. The Allow value can be used when logging
// should always happen.
package logger
