// This file is part of Pong328.
//
// Pong328 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Pong328 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Pong328.  If not, see <https://www.gnu.org/licenses/>.

package modalflag

import (
	"flag"
	"fmt"
	"io"
	"strings"
	"time"
)

const modeSeparator = "/"

// Modes provides an easy way of handling command line arguments divided into
// sub-modes. The Output field should be specified before calling Parse() or
// help messages will not be seen.
type Modes struct {
	// where to print output (help messages etc.)
	Output io.Writer

	// the underlying flag structure. a new flagset is created on every call
	// to NewArgs() and NewMode()
	flags *flag.FlagSet

	// the argument list as specified by the NewArgs() function. argsIdx
	// advances past each recognised sub-mode
	args    []string
	argsIdx int

	// the list of sub-modes given to the most recent AddSubModes() call. the
	// first entry is the default
	subModes []string

	// the series of sub-modes that have been found during subsequent calls
	// to Parse(). never reset
	path []string

	// some modes benefit from a longer explanation, printed after the flag
	// defaults
	additionalHelp string
}

func (md *Modes) String() string {
	return md.Path()
}

// Mode returns the last mode to be encountered.
func (md *Modes) Mode() string {
	if len(md.path) == 0 {
		return ""
	}
	return md.path[len(md.path)-1]
}

// Path returns a string of all the modes encountered during parsing.
func (md *Modes) Path() string {
	return strings.Join(md.path, modeSeparator)
}

// NewArgs begins parsing with a fresh string of arguments (from the command
// line for example).
func (md *Modes) NewArgs(args []string) {
	md.args = args
	md.argsIdx = 0

	// by definition, a newly initialised Modes struct begins with a new mode
	md.NewMode()
}

// NewMode indicates that further arguments should be considered part of a new
// mode.
func (md *Modes) NewMode() {
	md.subModes = []string{}
	md.additionalHelp = ""
	md.flags = flag.NewFlagSet("", flag.ContinueOnError)
}

// AdditionalHelp adds help text to be displayed in addition to the regular
// help on available flags.
func (md *Modes) AdditionalHelp(help string) {
	md.additionalHelp = help
}

// AddSubModes to the list of sub-modes for the next call to Parse(). The
// first sub-mode in the list is the default, used when no sub-mode appears on
// the command line. Sub-mode comparison is case insensitive.
func (md *Modes) AddSubModes(subModes ...string) {
	for _, m := range subModes {
		md.subModes = append(md.subModes, strings.ToUpper(m))
	}
}

// ParseResult is returned from the Parse() function.
type ParseResult int

// List of valid ParseResult values.
const (
	// continue with command line processing. if sub-modes were specified in
	// the preceding call to NewMode() then the Mode() function says which
	// sub-mode was selected
	ParseContinue ParseResult = iota

	// help was requested and has been printed
	ParseHelp

	// an error has occurred and is returned as the second return value
	ParseError
)

// Parse the current layer of arguments. Help messages are printed to the
// Output field automatically, in which case the return value is ParseHelp.
func (md *Modes) Parse() (ParseResult, error) {
	// capture the flag package's output so the help message can be amended
	hw := &helpWriter{}
	md.flags.SetOutput(hw)

	err := md.flags.Parse(md.args[md.argsIdx:])
	if err != nil {
		if err == flag.ErrHelp {
			hw.help(md.Output, md.Path(), md.subModes, md.additionalHelp)
			return ParseHelp, nil
		}
		return ParseError, err
	}

	if len(md.subModes) > 0 {
		arg := strings.ToUpper(md.flags.Arg(0))

		// assume the default sub-mode unless the first argument matches a
		// listed sub-mode
		mode := md.subModes[0]
		for i := range md.subModes {
			if md.subModes[i] == arg {
				mode = arg
				md.argsIdx++
				break // for loop
			}
		}

		md.path = append(md.path, mode)
	}

	return ParseContinue, nil
}

// RemainingArgs returns the arguments left over after a call to Parse() ie.
// arguments that aren't flags or a listed sub-mode.
func (md *Modes) RemainingArgs() []string {
	return md.flags.Args()
}

// GetArg returns the numbered argument that isn't a flag or listed sub-mode.
func (md *Modes) GetArg(i int) string {
	return md.flags.Arg(i)
}

// AddBool flag for next call to Parse().
func (md *Modes) AddBool(name string, value bool, usage string) *bool {
	return md.flags.Bool(name, value, usage)
}

// AddDuration flag for next call to Parse().
func (md *Modes) AddDuration(name string, value time.Duration, usage string) *time.Duration {
	return md.flags.Duration(name, value, usage)
}

// AddFloat64 flag for next call to Parse().
func (md *Modes) AddFloat64(name string, value float64, usage string) *float64 {
	return md.flags.Float64(name, value, usage)
}

// AddInt flag for next call to Parse().
func (md *Modes) AddInt(name string, value int, usage string) *int {
	return md.flags.Int(name, value, usage)
}

// AddString flag for next call to Parse().
func (md *Modes) AddString(name string, value string, usage string) *string {
	return md.flags.String(name, value, usage)
}

// helpWriter buffers the output of the flag package so that it can be
// supplemented with sub-mode information.
type helpWriter struct {
	buffer []byte
}

// Write implements the io.Writer interface. All output is buffered.
func (hw *helpWriter) Write(p []byte) (n int, err error) {
	hw.buffer = append(hw.buffer, p...)
	return len(p), nil
}

func (hw *helpWriter) help(output io.Writer, banner string, subModes []string, additionalHelp string) {
	if output == nil {
		return
	}

	s := string(hw.buffer)
	lines := strings.Split(s, "\n")

	// there is no help at all for modes with no flags and no sub-modes
	if s == "Usage:\n" && len(subModes) == 0 {
		if banner != "" {
			fmt.Fprintf(output, "No help available for %s\n", banner)
		} else {
			fmt.Fprintln(output, "No help available")
		}
		return
	}

	if banner != "" {
		fmt.Fprintf(output, "%s for %s mode\n", lines[0], banner)
	} else {
		fmt.Fprintln(output, lines[0])
	}

	if len(lines) > 1 {
		output.Write([]byte(strings.Join(lines[1:], "\n")))
	}

	if len(subModes) > 0 {
		if len(lines) > 2 {
			output.Write([]byte("\n"))
		}
		fmt.Fprintf(output, "  available sub-modes: %s\n", strings.Join(subModes, ", "))
		fmt.Fprintf(output, "    default: %s\n", subModes[0])
	}

	if additionalHelp != "" {
		fmt.Fprintf(output, "\n%s\n", additionalHelp)
	}
}
