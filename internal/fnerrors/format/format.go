// Copyright 2022 Namespace Labs Inc; All rights reserved.
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.

package format

import (
	"fmt"
	"io"
	"strings"

	"github.com/kr/text"
	"github.com/morikuni/aec"
	"namespacelabs.dev/greeter/internal/fnerrors"
	"namespacelabs.dev/greeter/internal/fnerrors/stacktrace"
)

type FormatOptions struct {
	// true to use ANSI colors.
	colors bool
	// If true, we show the chain of errors leading to the root cause, each
	// with the source location where it was created.
	tracing bool
}

type FormatOption func(*FormatOptions)

func WithColors(colors bool) FormatOption {
	return func(opts *FormatOptions) {
		opts.colors = colors
	}
}

func WithTracing(tracing bool) FormatOption {
	return func(opts *FormatOptions) {
		opts.tracing = tracing
	}
}

func Format(w io.Writer, err error, args ...FormatOption) {
	opts := &FormatOptions{}
	for _, opt := range args {
		opt(opts)
	}

	if opts.colors {
		fmt.Fprint(w, aec.RedF.With(aec.Bold).Apply("Failed: "))
	} else {
		fmt.Fprint(w, "Failed: ")
	}

	if !opts.tracing {
		fmt.Fprintln(w, render(err, opts))
		return
	}

	fmt.Fprintln(w)
	for cause := err; cause != nil; {
		label, what, next := fnerrors.Explain(cause)
		w = indent(w)
		if what != "" {
			fmt.Fprintln(w, withLabel(label, what, opts))
		}
		writeSourceFileAndLine(w, cause, opts.colors)
		cause = next
	}
}

func render(err error, opts *FormatOptions) string {
	var parts []string
	for cause := err; cause != nil; {
		label, what, next := fnerrors.Explain(cause)
		if what != "" {
			parts = append(parts, withLabel(label, what, opts))
		}
		cause = next
	}
	return strings.Join(parts, ": ")
}

func withLabel(label, what string, opts *FormatOptions) string {
	if label == "" {
		return what
	}
	if opts.colors {
		label = aec.CyanF.Apply(label)
	}
	return label + ": " + what
}

func writeSourceFileAndLine(w io.Writer, err error, colors bool) {
	type stackTracer interface {
		StackTrace() stacktrace.StackTrace
	}

	st, ok := err.(stackTracer)
	if !ok {
		return
	}

	stack := st.StackTrace()
	if len(stack) == 0 {
		return
	}

	sourceInfo := fmt.Sprintf("%s:%d", stack[0].File(), stack[0].Line())
	if colors {
		fmt.Fprintf(w, "%s\n", aec.LightBlackF.Apply(sourceInfo))
	} else {
		fmt.Fprintf(w, "%s\n", sourceInfo)
	}
}

func indent(w io.Writer) io.Writer { return text.NewIndentWriter(w, []byte("  ")) }
