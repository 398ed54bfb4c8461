// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-apk-fetcher/internal/adapter"
	"github.com/MKhiriev/go-apk-fetcher/internal/service"
	"github.com/MKhiriev/go-apk-fetcher/internal/tui"
	"github.com/MKhiriev/go-apk-fetcher/models"
)

var errPasswordRequired = errors.New("--password is required when stdin is not a terminal")

type loginOptions struct {
	email     string
	password  string
	clipboard bool
}

func (a *app) newLoginCmd() *cobra.Command {
	opts := &loginOptions{}

	cmd := &cobra.Command{
		Use:   "login",
		Short: "First time login",
		Long: `Log into the store with an account email and password and print the
gsfId and authSubToken that the download command reuses. Pass them to
download with --gsfid/--authsubtoken or export them as GSFID and
AUTHSUBTOKEN.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runLogin(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.email, "email", "", "Store account email")
	cmd.Flags().StringVar(&opts.password, "password", "", "Store account password (prompted when omitted)")
	cmd.Flags().BoolVar(&opts.clipboard, "clipboard", false, "Copy GSFID/AUTHSUBTOKEN assignments to the clipboard")
	_ = cmd.MarkFlagRequired("email")

	return cmd
}

func (a *app) runLogin(cmd *cobra.Command, opts *loginOptions) error {
	ctx := cmd.Context()

	cfg, log, err := a.loadConfig()
	if err != nil {
		return err
	}

	password := opts.password
	if password == "" {
		if !a.isTerminal() {
			return errPasswordRequired
		}
		password, err = tui.PromptPassword(ctx, cmd.InOrStdin(), cmd.ErrOrStderr(), "Password for "+opts.email)
		if err != nil {
			return err
		}
	}

	storeAdapter, err := adapter.NewHTTPStoreAdapter(cfg.Store, log)
	if err != nil {
		return fmt.Errorf("create store adapter: %w", err)
	}

	session, err := service.NewSessionService(storeAdapter, log).Login(ctx, models.Credentials{
		Email:    opts.email,
		Password: password,
	})
	if err != nil {
		return err
	}

	tui.NewReporter(cmd.OutOrStdout()).Session(session)

	if opts.clipboard {
		if err = tui.CopySession(session); err != nil {
			log.Warn().Err(err).Str("func", "runLogin").Msg("clipboard export failed")
			fmt.Fprintln(cmd.ErrOrStderr(), "Warning:", err)
		}
	}

	return nil
}
