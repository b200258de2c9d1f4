// Copyright 2022 Namespace Labs Inc; All rights reserved.
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.

// Package greeter answers every HTTP request with the same plaintext greeting.
package greeter

import (
	"net/http"

	"github.com/gorilla/mux"
)

const (
	Greeting    = "Hello from EKS via Jenkins CI/CD! 🚀\n"
	ContentType = "text/plain"
	Port        = 3000
)

var greeting = []byte(Greeting)

type responder struct{}

// The request, including its body, is never inspected.
func (responder) ServeHTTP(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", ContentType)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(greeting)
}

func Handler() http.Handler { return responder{} }

// Register makes the greeting the answer to every request r sees, including
// those no route would match.
func Register(r *mux.Router) {
	h := Handler()

	r.SkipClean(true)
	r.PathPrefix("/").Handler(h)
	r.NotFoundHandler = h
	r.MethodNotAllowedHandler = h
}
