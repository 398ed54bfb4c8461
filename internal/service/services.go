// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-apk-fetcher/internal/adapter"
	"github.com/MKhiriev/go-apk-fetcher/internal/logger"
	"github.com/MKhiriev/go-apk-fetcher/internal/store"
	"github.com/MKhiriev/go-apk-fetcher/internal/utils"
)

type Services struct {
	SessionService SessionService
	FetchService   FetchService
}

func NewServices(
	storeAdapter adapter.StoreAdapter,
	storage store.PackageFileStorage,
	ledger store.DownloadLedger,
	reporter Reporter,
	log *logger.Logger,
) *Services {
	return &Services{
		SessionService: NewSessionService(storeAdapter, log),
		FetchService:   NewFetchService(storeAdapter, storage, ledger, reporter, utils.NewUUIDGenerator(), log),
	}
}
