// Copyright 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package base defines shared basic pieces of the tpi command,
// in particular logging and the Command structure.
package base

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/rusq/tpimage/cmd/tpi/internal/cfg"
)

// A Command is an implementation of a tpi command
// like tpi convert or tpi batch.
type Command struct {
	// Run runs the command.
	// The args are the arguments after the command name.
	Run func(ctx context.Context, cmd *Command, args []string) error

	// UsageLine is the one-line usage message.
	// The words between "tpi" and the first flag or argument in the line are taken to be the command name.
	UsageLine string

	// Short is the short description shown in the 'tpi help' output.
	Short string

	// Long is the long message shown in the 'tpi help <this-command>' output.
	Long string

	// Flag is a set of flags specific to this command.
	Flag flag.FlagSet

	// FlagMask selects the common flags that are not applicable to this
	// command.
	FlagMask cfg.FlagMask

	// PrintFlags instructs the help to print the flag defaults.
	PrintFlags bool

	// CustomFlags indicates that the command will do its own
	// flag parsing.
	CustomFlags bool

	// Commands lists the available commands and help topics.
	// The order here is the order in which they are printed by 'tpi help'.
	// Note that subcommands are in general best avoided.
	Commands []*Command
}

var TpiCommand = &Command{
	UsageLine: "tpi",
	Long:      `Tpi reduces the colours of raster images: thresholding, palettes and dithering.`,
	// Commands initialized in package main
}

// LongName returns the command's long name: all the words in the usage line between "tpi" and a flag or argument,
func (c *Command) LongName() string {
	name := c.UsageLine
	if i := strings.Index(name, " ["); i >= 0 {
		name = name[:i]
	}
	if i := strings.Index(name, " <"); i >= 0 {
		name = name[:i]
	}
	if name == "tpi" {
		return ""
	}
	return strings.TrimPrefix(name, "tpi ")
}

// Name returns the command's short name: the last word in the usage line before a flag or argument.
func (c *Command) Name() string {
	name := c.LongName()
	if i := strings.LastIndex(name, " "); i >= 0 {
		name = name[i+1:]
	}
	return name
}

func (c *Command) Usage() {
	fmt.Fprintf(os.Stderr, "usage: %s\n", c.UsageLine)
	fmt.Fprintf(os.Stderr, "Run 'tpi help %s' for details.\n", c.LongName())
	SetExitStatus(SHelpRequested)
	Exit()
}

// Runnable reports whether the command can be run; otherwise
// it is a documentation pseudo-command such as importpath.
func (c *Command) Runnable() bool {
	return c.Run != nil
}

var atExitFuncs []func()

func AtExit(f func()) {
	atExitFuncs = append(atExitFuncs, f)
}

func Exit() {
	for _, f := range atExitFuncs {
		f()
	}
	os.Exit(int(exitStatus))
}

// StatusCode is the process exit status.
type StatusCode uint8

const (
	SNoError StatusCode = iota
	SGenericError
	SInvalidParameters
	SHelpRequested
	SApplicationError
	SCancelled
)

func (s StatusCode) String() string {
	switch s {
	case SNoError:
		return "NoError"
	case SGenericError:
		return "GenericError"
	case SInvalidParameters:
		return "InvalidParameters"
	case SHelpRequested:
		return "HelpRequested"
	case SApplicationError:
		return "ApplicationError"
	case SCancelled:
		return "Cancelled"
	}
	return fmt.Sprintf("StatusCode(%d)", uint8(s))
}

var exitStatus = SNoError
var exitMu sync.Mutex

// SetExitStatus sets the exit status, the highest status wins.
func SetExitStatus(n StatusCode) {
	exitMu.Lock()
	if exitStatus < n {
		exitStatus = n
	}
	exitMu.Unlock()
}

func ExitStatus() StatusCode {
	return exitStatus
}

// Usage is the usage-reporting function, filled in by package main
// but here for reference by other packages.
var Usage func()

// CmdName is the name of the command being run.
var CmdName string
