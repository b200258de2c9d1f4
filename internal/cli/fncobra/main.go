// Copyright 2022 Namespace Labs Inc; All rights reserved.
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.

package fncobra

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"namespacelabs.dev/greeter/internal/fnerrors"
	"namespacelabs.dev/greeter/internal/fnerrors/format"
	"namespacelabs.dev/greeter/internal/logoutput"
)

// DoMain runs a binary whose only behavior is run, and exits the process with
// the status implied by its result.
func DoMain(name string, run func(context.Context) error) {
	if err := SetupViper(name); err != nil {
		format.Format(os.Stderr, err)
		os.Exit(fnerrors.ExitCodeOf(err))
	}

	ctx := logoutput.WithOutput(context.Background(), logoutput.OutputFrom(context.Background()))

	os.Exit(Execute(ctx, NewRoot(name, run), os.Stderr))
}

func NewRoot(name string, run func(context.Context) error) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:  name,
		Args: cobra.ArbitraryArgs,

		SilenceUsage:  true,
		SilenceErrors: true,

		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return fnerrors.New("%s: '%s' is not a %s command.\nSee '%s --help'", name, args[0], name, name)
			}

			return run(cmd.Context())
		},
	}

	rootCmd.CompletionOptions.DisableDefaultCmd = true

	return rootCmd
}

// Execute runs rootCmd, renders any failure to stderr, and returns the exit
// code the process should terminate with.
func Execute(ctx context.Context, rootCmd *cobra.Command, stderr io.Writer) int {
	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		format.Format(stderr, err,
			format.WithColors(logoutput.OutputFrom(ctx).WithColors),
			format.WithTracing(viper.GetBool("error_tracing")))
	}

	return fnerrors.ExitCodeOf(err)
}

// SetupViper loads the optional $XDG_CONFIG_HOME/<name>/config.json. Only
// ambient behavior (logging, error rendering) is configurable.
func SetupViper(name string) error {
	viper.SetConfigName("config")
	viper.SetConfigType("json")

	if cfg, err := os.UserConfigDir(); err == nil {
		viper.AddConfigPath(filepath.Join(cfg, name))
	}

	viper.SetDefault("log_level", "info")
	viper.SetDefault("log_format", "text")
	viper.SetDefault("console_no_colors", false)
	viper.SetDefault("error_tracing", false)

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fnerrors.Wrapf(err, "failed to load configuration")
		}
	}

	return nil
}
