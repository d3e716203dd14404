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

package disassembly

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/gopher8080/hardware/cpu/execution"
)

// Entry is a disassembled instruction.
type Entry struct {
	// copy of the execution result the entry was created from. for undocumented
	// opcodes the Defn field will be nil
	Result execution.Result

	// string representations of information in execution.Result
	Address  string
	Bytecode string
	Operator string
	Operand  string

	// additional information about the instruction, for example the canonical
	// name of a port
	Annotation string
}

func (e Entry) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("%s  %-8s  %s", e.Address, e.Bytecode, e.Operator))
	if e.Operand != "" {
		s.WriteString(" ")
		s.WriteString(e.Operand)
	}
	if e.Annotation != "" {
		s.WriteString("  ; ")
		s.WriteString(e.Annotation)
	}
	return s.String()
}

// Size returns the number of bytes in the entry.
func (e Entry) Size() int {
	if e.Result.Defn == nil {
		return 1
	}
	return e.Result.Defn.Bytes
}
