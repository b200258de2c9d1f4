// Copyright 2022 Namespace Labs Inc; All rights reserved.
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.

package main

import (
	"context"
	"os"

	"namespacelabs.dev/greeter/internal/cli/fncobra"
	"namespacelabs.dev/greeter/internal/greeter"
	"namespacelabs.dev/greeter/internal/servercore"
)

func main() {
	fncobra.DoMain("greeter", func(ctx context.Context) error {
		return servercore.Run(ctx, servercore.RunOpts{
			ServerName:   "greeter",
			WireServices: greeter.Register,
		}, servercore.ListenOpts{
			CreateListener: servercore.MakeTCPListener("", greeter.Port),
			Ready:          os.Stdout,
		})
	})
}
