/*
 * Copyright (c) 2026 Michael Morris. All Rights Reserved.
 *
 * Licensed under the MIT license (the "License"). You may not use this file except in compliance
 * with the License. A copy of the License is located at
 *
 * https://github.com/mmmorris1975/aws-mfa-ls/blob/master/LICENSE
 *
 * or in the "license" file accompanying this file. This file is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License
 * for the specific language governing permissions and limitations under the License.
 */

package cli

import (
	"flag"
	"github.com/urfave/cli/v2"
	"strconv"
)

var vFlag = &verbosityFlag{
	Name:        "verbose",
	Aliases:     []string{"v"},
	Usage:       "output debug logging, use twice for AWS call tracing",
	Value:       new(counter),
	DefaultText: "standard logging",
}

// verbosityFlag is a boolean flag which may be repeated, each use raises the verbosity level by one.
// Only a flag.Value reporting IsBoolFlag() gets parsed without an argument, which the stock cli flag
// types do not allow for a counted value.
type verbosityFlag struct {
	Name        string
	Aliases     []string
	Usage       string
	Hidden      bool
	Value       *counter
	DefaultText string
}

func (f *verbosityFlag) String() string {
	return cli.FlagStringer(f)
}

// Apply registers the flag, and all of its aliases, with a fresh counter.
func (f *verbosityFlag) Apply(set *flag.FlagSet) error {
	f.Value = new(counter)

	for _, name := range f.Names() {
		set.Var(f.Value, name, f.Usage)
	}
	return nil
}

func (f *verbosityFlag) Names() []string {
	return append([]string{f.Name}, f.Aliases...)
}

func (f *verbosityFlag) IsSet() bool {
	return f.Level() > 0
}

// Level returns the number of times the flag was found on the command line.
func (f *verbosityFlag) Level() int {
	if f.Value == nil {
		return 0
	}
	return int(*f.Value)
}

func (f *verbosityFlag) GetUsage() string {
	return f.Usage
}

// no effect on the help text, only on man page and markdown output.
func (f *verbosityFlag) TakesValue() bool {
	return false
}

func (f *verbosityFlag) GetValue() string {
	if f.Value != nil {
		return f.Value.String()
	}
	return ""
}

// counter is a flag.Getter which counts the times it is set to true.
type counter int

func (c *counter) String() string {
	if c == nil {
		return "0"
	}
	return strconv.Itoa(int(*c))
}

// Set increments the counter for a true value, a false (or unparseable) value resets it.
func (c *counter) Set(s string) error {
	if b, _ := strconv.ParseBool(s); b {
		*c++
	} else {
		*c = 0
	}
	return nil
}

func (c *counter) Get() interface{} {
	return int(*c)
}

func (c *counter) IsBoolFlag() bool {
	return true
}
