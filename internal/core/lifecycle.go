// Copyright 2022 Namespace Labs Inc; All rights reserved.
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.

package core

import (
	"go.uber.org/atomic"
	"namespacelabs.dev/greeter/internal/fnerrors"
)

type State int32

const (
	Unbound State = iota
	Listening
)

func (s State) String() string {
	switch s {
	case Unbound:
		return "unbound"
	case Listening:
		return "listening"
	}
	return "unknown"
}

// Lifecycle tracks whether a server's listener has been bound. The zero value
// is Unbound. The only transition is Unbound -> Listening, and it happens at
// most once.
type Lifecycle struct {
	state atomic.Int32
}

var process Lifecycle

// Process returns the lifecycle of this process' server.
func Process() *Lifecycle { return &process }

func (l *Lifecycle) State() State {
	return State(l.state.Load())
}

func (l *Lifecycle) MarkListening() error {
	if !l.state.CompareAndSwap(int32(Unbound), int32(Listening)) {
		return fnerrors.InternalError("listener is already bound (state is %s)", l.State())
	}
	return nil
}
