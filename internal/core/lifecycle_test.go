// Copyright 2022 Namespace Labs Inc; All rights reserved.
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.

package core

import (
	"sync"
	"testing"

	"gotest.tools/assert"
)

func TestSingleTransition(t *testing.T) {
	var lc Lifecycle
	assert.Equal(t, lc.State(), Unbound)

	assert.NilError(t, lc.MarkListening())
	assert.Equal(t, lc.State(), Listening)

	assert.ErrorContains(t, lc.MarkListening(), "already bound")
	assert.Equal(t, lc.State(), Listening)
}

func TestConcurrentTransitions(t *testing.T) {
	var lc Lifecycle

	const n = 16
	errs := make([]error, n)

	var wg sync.WaitGroup
	for k := 0; k < n; k++ {
		wg.Add(1)
		go func(k int) {
			defer wg.Done()
			errs[k] = lc.MarkListening()
		}(k)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
		}
	}

	assert.Equal(t, succeeded, 1)
}

func TestStateString(t *testing.T) {
	assert.Equal(t, Unbound.String(), "unbound")
	assert.Equal(t, Listening.String(), "listening")
	assert.Equal(t, State(7).String(), "unknown")
}
