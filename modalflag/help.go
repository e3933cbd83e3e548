// This file is part of s2d.
//
// s2d is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// s2d is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with s2d.  If not, see <https://www.gnu.org/licenses/>.

package modalflag

import (
	"fmt"
	"io"
	"strings"
)

// help amends the output of the flag package with the mode path and the list
// of available sub-modes.
func (md *Modes) help(flagOutput fmt.Stringer) {
	w := md.Output
	banner := md.Path()

	lines := strings.Split(strings.TrimSuffix(flagOutput.String(), "\n"), "\n")
	noFlags := len(lines) <= 1

	if noFlags && len(md.subModes) == 0 {
		if banner == "" {
			io.WriteString(w, "No help available\n")
		} else {
			fmt.Fprintf(w, "No help available for %s\n", banner)
		}
		return
	}

	if banner == "" {
		fmt.Fprintln(w, "Usage:")
	} else {
		fmt.Fprintf(w, "Usage for %s mode:\n", banner)
	}

	for _, l := range lines[1:] {
		fmt.Fprintln(w, l)
	}

	if len(md.subModes) > 0 {
		if !noFlags {
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "  available sub-modes: %s\n", strings.Join(md.subModes, ", "))
		fmt.Fprintf(w, "    default: %s\n", md.subModes[0])
	}

	if md.additionalHelp != "" {
		fmt.Fprintln(w)
		fmt.Fprintln(w, md.additionalHelp)
	}
}
