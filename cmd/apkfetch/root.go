// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/MKhiriev/go-apk-fetcher/internal/config"
	"github.com/MKhiriev/go-apk-fetcher/internal/logger"
	"github.com/MKhiriev/go-apk-fetcher/models"
)

const appName = "apkfetch"

// app holds what the commands share: parsed global flags, build info and
// the process streams.
type app struct {
	buildInfo models.AppBuildInfo
	flags     *config.FlagValues

	in     io.Reader
	out    io.Writer
	errOut io.Writer

	isTerminal func() bool
}

func newApp(info models.AppBuildInfo, in io.Reader, out, errOut io.Writer) *app {
	return &app{
		buildInfo: info,
		in:        in,
		out:       out,
		errOut:    errOut,
		isTerminal: func() bool {
			f, ok := in.(*os.File)
			return ok && term.IsTerminal(int(f.Fd()))
		},
	}
}

func (a *app) newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "Download APKs and their splits from an app store",
		Long: `apkfetch logs into an app store once, then downloads packages with the
resulting session. Every package ends up in <out>/download/<pkg>-<version>/
as a base APK plus its split APKs, and is bundled into
<out>/bundled/<pkg>-<version>.zip.`,
		Version:       a.buildInfo.String(),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	a.flags = config.BindFlags(root.PersistentFlags())

	root.SetIn(a.in)
	root.SetOut(a.out)
	root.SetErr(a.errOut)

	root.AddCommand(
		a.newLoginCmd(),
		a.newDownloadCmd(),
		a.newHistoryCmd(),
		a.newVersionCmd(),
	)

	return root
}

// execute runs the command line and maps the outcome to a process exit code.
func (a *app) execute(ctx context.Context, args []string) int {
	root := a.newRootCmd()
	root.SetArgs(args)

	err := root.ExecuteContext(ctx)
	if err == nil {
		return exitOK
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		if exitErr.Err != nil {
			fmt.Fprintln(a.errOut, "Error:", exitErr.Err)
		}
		return exitErr.Code
	}

	fmt.Fprintln(a.errOut, "Error:", err)
	return exitFailure
}

// loadConfig merges every configuration source and opens the diagnostic
// logger the configuration asks for.
func (a *app) loadConfig() (*config.ClientConfig, *logger.Logger, error) {
	cfg, err := config.GetClientConfig(a.flags)
	if err != nil {
		return nil, nil, fmt.Errorf("error getting configs: %w", err)
	}

	log := logger.NewClientLogger(appName, cfg.Log.File, cfg.Log.Level)
	return cfg, log, nil
}
