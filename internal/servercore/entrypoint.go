// Copyright 2022 Namespace Labs Inc; All rights reserved.
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.

package servercore

import (
	"context"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
	"go.uber.org/automaxprocs/maxprocs"
	"namespacelabs.dev/greeter/internal/core"
)

type RunOpts struct {
	ServerName   string
	WireServices func(*mux.Router)
}

// Run serves the process' single server. It only returns if the listener
// could not be bound or serving failed.
func Run(ctx context.Context, opts RunOpts, listenOpts ListenOpts) error {
	logger := zerolog.Ctx(ctx).With().Str("server", opts.ServerName).Logger()
	ctx = logger.WithContext(ctx)

	// Set runtime.GOMAXPROCS to respect container limits if the env var GOMAXPROCS is not set or is invalid, preventing CPU throttling.
	if _, err := maxprocs.Set(maxprocs.Logger(logger.Printf)); err != nil {
		logger.Debug().Msgf("Failed to reset GOMAXPROCS: %v", err)
	}

	return Listen(ctx, core.Process(), listenOpts, opts.WireServices)
}
