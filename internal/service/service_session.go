// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-apk-fetcher/internal/adapter"
	"github.com/MKhiriev/go-apk-fetcher/internal/logger"
	"github.com/MKhiriev/go-apk-fetcher/models"
)

type sessionService struct {
	adapter adapter.StoreAdapter
	logger  *logger.Logger
}

func NewSessionService(storeAdapter adapter.StoreAdapter, log *logger.Logger) SessionService {
	return &sessionService{adapter: storeAdapter, logger: log}
}

func (s *sessionService) Login(ctx context.Context, creds models.Credentials) (models.Session, error) {
	session, err := s.adapter.Login(ctx, creds)
	if err != nil {
		s.logger.Err(err).Str("func", "sessionService.Login").Msg("store login failed")
		return models.Session{}, fmt.Errorf("%w: %w", ErrLogin, err)
	}

	s.logger.Info().
		Str("func", "sessionService.Login").
		Str("gsf_id", session.GsfIDString()).
		Msg("store session established")

	return session, nil
}
