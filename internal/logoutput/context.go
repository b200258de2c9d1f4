// Copyright 2022 Namespace Labs Inc; All rights reserved.
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.

package logoutput

import (
	"context"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
	"golang.org/x/term"
)

const StampMilliTZ = "Jan _2 15:04:05.000 MST"

func init() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnixMs
}

type logoutputKey string

var _logoutputKey logoutputKey = "greeter.log.output"

type OutputTo struct {
	Writer     io.Writer
	WithColors bool
	OutputType OutputType
}

type OutputType string

const OutputText OutputType = "greeter.log.output.text"
const OutputJSON OutputType = "greeter.log.output.json"

func (o OutputTo) MakeWriter() io.Writer {
	if o.OutputType == OutputJSON {
		return o.Writer
	}

	return zerolog.ConsoleWriter{Out: o.Writer, TimeFormat: StampMilliTZ, NoColor: !o.WithColors}
}

func (o OutputTo) ZeroLogger() *zerolog.Logger {
	l := withZerologWriter(o.MakeWriter())
	return &l
}

// WithOutput attaches o to ctx, along with a zerolog logger writing to it.
func WithOutput(ctx context.Context, o OutputTo) context.Context {
	return withZerolog(context.WithValue(ctx, _logoutputKey, o))
}

// OutputFrom returns the output attached to ctx, or the default: stderr,
// formatted per `log_format`, with colors if stderr is a terminal and
// `console_no_colors` is not set.
func OutputFrom(ctx context.Context) OutputTo {
	if outputTo, ok := ctx.Value(_logoutputKey).(OutputTo); ok {
		return outputTo
	}

	outputType := OutputText
	if viper.GetString("log_format") == "json" {
		outputType = OutputJSON
	}

	withColors := term.IsTerminal(int(os.Stderr.Fd())) && !viper.GetBool("console_no_colors")

	return OutputTo{Writer: os.Stderr, OutputType: outputType, WithColors: withColors}
}

func withZerolog(ctx context.Context) context.Context {
	return OutputFrom(ctx).ZeroLogger().WithContext(ctx)
}

func withZerologWriter(w io.Writer) zerolog.Logger {
	defLevel := zerolog.InfoLevel
	if lvl := viper.GetString("log_level"); lvl != "" {
		l, err := zerolog.ParseLevel(lvl)
		if err == nil {
			defLevel = l
		}
	}

	return zerolog.New(w).With().Timestamp().Logger().Level(defLevel)
}
