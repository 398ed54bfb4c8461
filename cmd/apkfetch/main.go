// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-apk-fetcher/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	a := newApp(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit), os.Stdin, os.Stdout, os.Stderr)
	code := a.execute(ctx, os.Args[1:])

	stop()
	os.Exit(code)
}
