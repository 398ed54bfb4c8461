// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-apk-fetcher/internal/store"
	"github.com/MKhiriev/go-apk-fetcher/internal/tui"
)

func (a *app) newHistoryCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recorded downloads",
		Long:  "List the downloads recorded in the ledger configured with --ledger-dsn or STORAGE_LEDGER_DSN, newest first.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			cfg, log, err := a.loadConfig()
			if err != nil {
				return err
			}
			if err = cfg.ValidateLedger(); err != nil {
				return err
			}

			ledger, err := store.NewLedger(ctx, cfg.Ledger.DSN, log)
			if err != nil {
				return err
			}
			defer ledger.Close()

			records, err := ledger.List(ctx, limit)
			if err != nil {
				return err
			}

			tui.NewReporter(cmd.OutOrStdout()).History(records)
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "Maximum number of records to show (0 for all)")

	return cmd
}
