// Copyright (c) 2015, Dave Cheney <dave@cheney.net>
// All rights reserved.

// Adapted from https://github.com/pkg/errors.

package stacktrace

import (
	"runtime"
)

// Frame represents a program counter inside a stack frame.
// For historical reasons if Frame is interpreted as a uintptr
// its value represents the program counter + 1.
type Frame uintptr

func (f Frame) pc() uintptr { return uintptr(f) - 1 }

// File returns the full path to the file that contains the
// function for this Frame's pc.
func (f Frame) File() string {
	fn := runtime.FuncForPC(f.pc())
	if fn == nil {
		return "unknown"
	}
	file, _ := fn.FileLine(f.pc())
	return file
}

// Line returns the line number of source code of the
// function for this Frame's pc.
func (f Frame) Line() int {
	fn := runtime.FuncForPC(f.pc())
	if fn == nil {
		return 0
	}
	_, line := fn.FileLine(f.pc())
	return line
}

// Name returns the name of this function, if known.
func (f Frame) Name() string {
	fn := runtime.FuncForPC(f.pc())
	if fn == nil {
		return "unknown"
	}
	return fn.Name()
}

// StackTrace is stack of Frames from innermost (newest) to outermost (oldest).
type StackTrace []Frame

// New returns the StackTrace of its caller's caller, i.e. the frame that
// invoked the error constructor calling New.
func New() StackTrace {
	return NewWithSkip(1)
}

func NewWithSkip(k int) StackTrace {
	const depth = 32
	var pcs [depth]uintptr

	// Skip runtime.Callers, NewWithSkip and New.
	n := runtime.Callers(k+3, pcs[:])
	frames := make([]Frame, n)
	for i := 0; i < n; i++ {
		frames[i] = Frame(pcs[i])
	}
	return frames
}
