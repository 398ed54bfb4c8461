// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-apk-fetcher/internal/adapter"
	"github.com/MKhiriev/go-apk-fetcher/internal/config"
	"github.com/MKhiriev/go-apk-fetcher/internal/service"
	"github.com/MKhiriev/go-apk-fetcher/internal/store"
	"github.com/MKhiriev/go-apk-fetcher/internal/tui"
	"github.com/MKhiriev/go-apk-fetcher/models"
)

type downloadOptions struct {
	pkg    string
	out    string
	strict bool
}

func (a *app) newDownloadCmd() *cobra.Command {
	opts := &downloadOptions{}

	cmd := &cobra.Command{
		Use:   "download",
		Short: "Download apk",
		Long: `Download one package, or every package listed in a file (one identifier
per line), and bundle each into a zip archive under <out>/bundled.

A package that the store fails to deliver is reported and skipped; local
filesystem errors stop the run.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runDownload(cmd, opts)
		},
	}

	// GSFID and AUTHSUBTOKEN make the session flags optional
	envSession, _ := config.EnvSession()
	a.flags.BindSessionFlags(cmd.Flags(), envSession)
	if !config.SessionFromEnv() {
		_ = cmd.MarkFlagRequired(config.FlagGsfID)
		_ = cmd.MarkFlagRequired(config.FlagAuthSubToken)
	}

	cmd.Flags().StringVar(&opts.pkg, "package", "", "Package identifier or file containing list of packages")
	cmd.Flags().StringVar(&opts.out, "out", ".", "Directory to download package to")
	cmd.Flags().BoolVar(&opts.strict, "strict", false, "Exit with status 2 when any package fails")
	_ = cmd.MarkFlagRequired("package")

	return cmd
}

func (a *app) runDownload(cmd *cobra.Command, opts *downloadOptions) error {
	ctx := cmd.Context()

	cfg, log, err := a.loadConfig()
	if err != nil {
		return err
	}
	if err = cfg.ValidateSession(); err != nil {
		return err
	}

	packageIDs, err := service.ReadPackageList(opts.pkg)
	if err != nil {
		return err
	}

	storeAdapter, err := adapter.NewHTTPStoreAdapter(cfg.Store, log)
	if err != nil {
		return fmt.Errorf("create store adapter: %w", err)
	}

	var ledger store.DownloadLedger
	if cfg.Ledger.DSN != "" {
		ledger, err = store.NewLedger(ctx, cfg.Ledger.DSN, log)
		if err != nil {
			return fmt.Errorf("open download ledger: %w", err)
		}
		defer ledger.Close()
	}

	reporter := tui.NewReporter(cmd.OutOrStdout())
	services := service.NewServices(storeAdapter, store.NewPackageFileStorage(0, log), ledger, reporter, log)

	session := models.Session{GsfID: cfg.Session.GsfID, AuthSubToken: cfg.Session.AuthSubToken}
	results, err := services.FetchService.FetchAndArchive(ctx, session, packageIDs, opts.out)

	summary := models.Summarize(results)
	reporter.Summary(summary)

	if err != nil {
		return err
	}
	if opts.strict && summary.Failed > 0 {
		return &ExitError{
			Code: exitPackagesFailed,
			Err:  fmt.Errorf("%d of %d packages failed", summary.Failed, len(results)),
		}
	}

	return nil
}
