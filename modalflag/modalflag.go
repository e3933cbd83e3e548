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
	"errors"
	"flag"
	"io"
	"strings"
)

const modeSeparator = "/"

// Modes handles command line arguments with modes. The Output field should be
// set before calling Parse() or help messages will be lost.
type Modes struct {
	// where to print help messages
	Output io.Writer

	flags *flag.FlagSet

	args    []string
	argsIdx int

	// sub-modes for the next call to Parse(). the first entry is the default
	subModes []string

	// modes encountered during all calls to Parse(). never reset
	path []string

	additionalHelp string
	parsed         bool
}

func (md *Modes) String() string {
	return md.Path()
}

// Mode returns the most recently selected mode.
func (md *Modes) Mode() string {
	if len(md.path) == 0 {
		return ""
	}
	return md.path[len(md.path)-1]
}

// Path returns all modes selected so far, separated by a forward slash.
func (md *Modes) Path() string {
	return strings.Join(md.path, modeSeparator)
}

// NewArgs sets the argument list and begins a new mode.
func (md *Modes) NewArgs(args []string) {
	md.args = args
	md.argsIdx = 0
	md.NewMode()
}

// NewMode indicates that further flags and sub-modes belong to a new mode.
// Flags added before the call are forgotten.
func (md *Modes) NewMode() {
	md.subModes = md.subModes[:0]
	md.flags = flag.NewFlagSet("", flag.ContinueOnError)
	md.additionalHelp = ""
	md.parsed = false
}

// AdditionalHelp is printed after the flag and sub-mode help for the current
// mode.
func (md *Modes) AdditionalHelp(help string) {
	md.additionalHelp = help
}

// Parsed returns true if Parse() has been called since the last call to
// NewMode(). A failed Parse() still counts.
func (md *Modes) Parsed() bool {
	return md.parsed
}

// AddSubModes to the list of sub-modes for the next call to Parse(). The first
// sub-mode ever added is the default.
func (md *Modes) AddSubModes(subModes ...string) {
	for _, m := range subModes {
		md.subModes = append(md.subModes, strings.ToUpper(m))
	}
}

// ParseResult is returned by the Parse() function.
type ParseResult int

// List of valid ParseResult values.
const (
	// ParseContinue indicates that the caller should continue. If sub-modes
	// were added then Mode() will return the selected mode.
	ParseContinue ParseResult = iota

	// ParseHelp indicates that help was requested and has been printed.
	ParseHelp

	// ParseError indicates that the arguments could not be parsed. The error is
	// returned as the second value.
	ParseError
)

// Parse the arguments for the current mode.
func (md *Modes) Parse() (ParseResult, error) {
	md.parsed = true

	var buf strings.Builder
	md.flags.SetOutput(&buf)

	var remaining []string
	if md.argsIdx < len(md.args) {
		remaining = md.args[md.argsIdx:]
	}

	err := md.flags.Parse(remaining)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			if md.Output != nil {
				md.help(&buf)
			}
			return ParseHelp, nil
		}
		return ParseError, err
	}

	// flags are consumed. the argument index moves on to the first argument
	// that is not a flag
	md.argsIdx = len(md.args) - md.flags.NArg()

	if len(md.subModes) == 0 {
		return ParseContinue, nil
	}

	mode := md.subModes[0]
	arg := strings.ToUpper(md.flags.Arg(0))
	for _, m := range md.subModes {
		if m == arg {
			mode = m
			md.argsIdx++
			break // for loop
		}
	}
	md.path = append(md.path, mode)

	return ParseContinue, nil
}

// RemainingArgs returns the arguments that are neither flags nor a selected
// sub-mode.
func (md *Modes) RemainingArgs() []string {
	if md.argsIdx >= len(md.args) {
		return []string{}
	}
	return md.args[md.argsIdx:]
}

// GetArg returns the numbered argument from RemainingArgs(). Returns the empty
// string if there is no such argument.
func (md *Modes) GetArg(i int) string {
	r := md.RemainingArgs()
	if i < 0 || i >= len(r) {
		return ""
	}
	return r[i]
}

// AddBool flag for next call to Parse().
func (md *Modes) AddBool(name string, value bool, usage string) *bool {
	return md.flags.Bool(name, value, usage)
}

// AddInt flag for next call to Parse().
func (md *Modes) AddInt(name string, value int, usage string) *int {
	return md.flags.Int(name, value, usage)
}

// AddFloat64 flag for next call to Parse().
func (md *Modes) AddFloat64(name string, value float64, usage string) *float64 {
	return md.flags.Float64(name, value, usage)
}

// AddString flag for next call to Parse().
func (md *Modes) AddString(name string, value string, usage string) *string {
	return md.flags.String(name, value, usage)
}

// Visit calls fn for each flag that has been set, in lexicographical order.
func (md *Modes) Visit(fn func(flag string)) {
	md.flags.Visit(func(f *flag.Flag) {
		fn(f.Name)
	})
}
