// Copyright 2022 Namespace Labs Inc; All rights reserved.
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.

package servercore

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/hlog"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"
	"namespacelabs.dev/greeter/internal/core"
	"namespacelabs.dev/greeter/internal/fnerrors"
	"namespacelabs.dev/greeter/internal/requestid"
)

type ListenOpts struct {
	CreateListener func(context.Context) (net.Listener, error)

	// Receives a single "Listening on <port>" line once the listener is bound.
	Ready io.Writer
}

func MakeTCPListener(address string, port int) func(context.Context) (net.Listener, error) {
	return func(ctx context.Context) (net.Listener, error) {
		var lc net.ListenConfig
		addr := net.JoinHostPort(address, fmt.Sprintf("%d", port))

		lis, err := lc.Listen(ctx, "tcp", addr)
		if err != nil {
			return nil, fnerrors.Wrapf(err, "failed to listen on %s", addr)
		}

		return lis, nil
	}
}

func NewHTTPMux(ctx context.Context, middleware ...mux.MiddlewareFunc) *mux.Router {
	httpMux := mux.NewRouter()

	httpMux.Use(proxyHeaders)
	httpMux.Use(middleware...)

	httpMux.Use(hlog.NewHandler(*zerolog.Ctx(ctx)))

	httpMux.Use(func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, rdata := requestid.AllocateRequestID(r.Context())

			logger := zerolog.Ctx(ctx).With().Str("ns.rid", string(rdata.RequestID)).Logger()

			h.ServeHTTP(w, r.WithContext(logger.WithContext(ctx)))
		})
	})

	httpMux.Use(hlog.AccessHandler(func(r *http.Request, status, size int, duration time.Duration) {
		hlog.FromRequest(r).Info().
			Str("method", r.Method).
			Stringer("url", r.URL).
			Int("status", status).
			Int("size", size).
			Dur("duration", duration).
			Send()
	}))

	return httpMux
}

// Listen binds the listener, announces readiness and serves until the
// listener fails or ctx is cancelled. Failing to bind leaves lc Unbound.
func Listen(ctx context.Context, lc *core.Lifecycle, opts ListenOpts, registerServices func(*mux.Router)) error {
	lis, err := opts.CreateListener(ctx)
	if err != nil {
		return err
	}

	if err := lc.MarkListening(); err != nil {
		_ = lis.Close()
		return err
	}

	httpMux := NewHTTPMux(ctx)
	registerServices(httpMux)

	srv := &http.Server{
		Handler: h2c.NewHandler(httpMux, &http2.Server{}),
		// OPTIONS * is answered like any other request.
		DisableGeneralOptionsHandler: true,
		BaseContext:                  func(net.Listener) context.Context { return ctx },
	}

	zerolog.Ctx(ctx).Info().Stringer("state", lc.State()).Msgf("Starting to listen on %v", lis.Addr())

	if opts.Ready != nil {
		fmt.Fprintf(opts.Ready, "Listening on %d\n", portOf(lis.Addr()))
	}

	stop := make(chan struct{})
	defer close(stop)

	go func() {
		select {
		case <-ctx.Done():
			_ = srv.Close()
		case <-stop:
		}
	}()

	if err := srv.Serve(lis); err != nil && !(errors.Is(err, http.ErrServerClosed) && ctx.Err() != nil) {
		return fnerrors.Wrapf(err, "serving failed")
	}

	return nil
}

func portOf(addr net.Addr) int {
	if tcp, ok := addr.(*net.TCPAddr); ok {
		return tcp.Port
	}
	return 0
}

func proxyHeaders(h http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if forwardedFor := r.Header.Get("X-Forwarded-For"); forwardedFor != "" {
			r.RemoteAddr = forwardedFor
		}

		if host := r.Header.Get("X-Forwarded-Host"); host != "" {
			r.URL.Host = host

			// Set the scheme (proto) with the value passed from the proxy.
			// But only do so if there's a host present.
			if scheme := r.Header.Get("X-Forwarded-Scheme"); scheme != "" {
				r.URL.Scheme = scheme
			}
		}

		h.ServeHTTP(w, r)
	})
}
