// Copyright 2022 Namespace Labs Inc; All rights reserved.
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.

package servercore

import (
	"context"
	"net"
	"testing"

	"gotest.tools/assert"
	"namespacelabs.dev/greeter/internal/core"
	"namespacelabs.dev/greeter/internal/greeter"
)

func TestRunFailsWhenPortIsTaken(t *testing.T) {
	taken, err := net.Listen("tcp", "127.0.0.1:0")
	assert.NilError(t, err)
	defer taken.Close()

	var ready syncBuffer
	err = Run(context.Background(), RunOpts{
		ServerName:   "greeter",
		WireServices: greeter.Register,
	}, ListenOpts{
		CreateListener: MakeTCPListener("127.0.0.1", taken.Addr().(*net.TCPAddr).Port),
		Ready:          &ready,
	})

	assert.ErrorContains(t, err, "address already in use")
	assert.Equal(t, core.Process().State(), core.Unbound)
	assert.Equal(t, ready.String(), "")
}
