// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-apk-fetcher/internal/adapter"
	"github.com/MKhiriev/go-apk-fetcher/internal/logger"
	"github.com/MKhiriev/go-apk-fetcher/internal/mock"
	"github.com/MKhiriev/go-apk-fetcher/models"
)

func TestSessionService_Login_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	a := mock.NewMockStoreAdapter(ctrl)
	svc := NewSessionService(a, logger.Nop())

	creds := models.Credentials{Email: "user@example.com", Password: "secret"}
	a.EXPECT().Login(gomock.Any(), creds).Return(testSession, nil)

	session, err := svc.Login(context.Background(), creds)
	require.NoError(t, err)
	assert.Equal(t, testSession, session)
}

func TestSessionService_Login_Unauthorized(t *testing.T) {
	ctrl := gomock.NewController(t)
	a := mock.NewMockStoreAdapter(ctrl)
	svc := NewSessionService(a, logger.Nop())

	authErr := fmt.Errorf("login: %w: %w", adapter.ErrRequest, adapter.ErrUnauthorized)
	a.EXPECT().Login(gomock.Any(), gomock.Any()).Return(models.Session{}, authErr)

	session, err := svc.Login(context.Background(), models.Credentials{Email: "user@example.com"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrLogin)
	assert.ErrorIs(t, err, adapter.ErrUnauthorized)
	assert.True(t, session.IsZero())
}

func TestNewServices(t *testing.T) {
	ctrl := gomock.NewController(t)
	svcs := NewServices(mock.NewMockStoreAdapter(ctrl), mock.NewMockPackageFileStorage(ctrl), nil, mock.NewMockReporter(ctrl), logger.Nop())

	require.NotNil(t, svcs)
	assert.NotNil(t, svcs.SessionService)
	assert.NotNil(t, svcs.FetchService)
}
