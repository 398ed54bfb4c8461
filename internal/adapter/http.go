// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/url"
	"strings"
	"sync"

	"github.com/MKhiriev/go-apk-fetcher/internal/config"
	"github.com/MKhiriev/go-apk-fetcher/internal/logger"
	"github.com/MKhiriev/go-apk-fetcher/internal/utils"
	"github.com/MKhiriev/go-apk-fetcher/models"
	"github.com/go-resty/resty/v2"
)

// Gateway endpoints.
const (
	loginPath    = "/auth/login"
	checkPath    = "/auth/check"
	detailsPath  = "/details"
	deliveryPath = "/delivery"
)

// Session and device headers understood by the gateway.
const (
	headerGsfID         = "X-GSF-ID"
	headerAuthorization = "Authorization"
	headerDevice        = "X-Device"
	headerTimezone      = "X-Timezone"
	headerLocale        = "Accept-Language"
)

type httpStoreAdapter struct {
	// client is used for JSON requests and is bounded by the request timeout.
	client *utils.HTTPClient
	// streamClient is used for payload bodies and has no overall timeout, so
	// large APKs are not cut off mid-transfer. Cancellation goes through ctx.
	streamClient *utils.HTTPClient

	mu      sync.RWMutex
	session models.Session

	logger *logger.Logger
}

// NewHTTPStoreAdapter constructs a REST implementation of [StoreAdapter].
// It normalises and validates the base URL from cfg.URL and configures the
// device profile headers sent with every request.
//
// Returns an error if cfg.URL is empty or cannot be parsed as a valid URL.
func NewHTTPStoreAdapter(cfg config.ClientStore, log *logger.Logger) (StoreAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("invalid store url: %w", err)
	}

	headers := map[string]string{
		headerDevice:   cfg.Device,
		headerTimezone: cfg.Timezone,
		headerLocale:   strings.ReplaceAll(cfg.Locale, "_", "-"),
	}

	client := utils.NewHTTPClient().WithHeaders(headers)
	client.
		SetBaseURL(baseURL).
		SetTimeout(cfg.RequestTimeout)

	streamClient := utils.NewHTTPClient().WithHeaders(headers)
	streamClient.SetBaseURL(baseURL)

	return &httpStoreAdapter{client: client, streamClient: streamClient, logger: log}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	GsfID        uint64 `json:"gsfId,string"`
	AuthSubToken string `json:"authSubToken"`
}

type detailsResponse struct {
	Details struct {
		AppDetails struct {
			VersionString string `json:"versionString"`
			VersionCode   int64  `json:"versionCode"`
			Title         string `json:"title"`
		} `json:"appDetails"`
	} `json:"details"`
}

type fileRef struct {
	URL  string `json:"url"`
	Size int64  `json:"size"`
}

type deliveryResponse struct {
	DocID  string  `json:"docId"`
	File   fileRef `json:"file"`
	Splits []struct {
		Name string  `json:"name"`
		File fileRef `json:"file"`
	} `json:"splits"`
	AdditionalData []struct {
		Type        string  `json:"type"`
		VersionCode int64   `json:"versionCode"`
		File        fileRef `json:"file"`
	} `json:"additionalData"`
}

// Login implements [StoreAdapter]. It POSTs the credentials to
// POST /auth/login and stores the issued session.
func (h *httpStoreAdapter) Login(ctx context.Context, creds models.Credentials) (models.Session, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(loginRequest{Email: creds.Email, Password: creds.Password}).
		Post(loginPath)
	if err != nil {
		return models.Session{}, requestError("login request", err)
	}
	if err = mapHTTPError(resp.StatusCode(), resp.String()); err != nil {
		return models.Session{}, requestError("login", err)
	}

	var lr loginResponse
	if err = json.Unmarshal(resp.Body(), &lr); err != nil {
		return models.Session{}, requestError("decode login response", err)
	}

	session := models.Session{GsfID: lr.GsfID, AuthSubToken: lr.AuthSubToken}
	if session.GsfID == 0 || session.AuthSubToken == "" {
		return models.Session{}, requestError("login", ErrMalformedResponse)
	}

	h.setSession(session)
	h.logger.Debug().Str("func", "httpStoreAdapter.Login").Uint64("gsf_id", session.GsfID).Msg("logged in")
	return session, nil
}

// Resume implements [StoreAdapter]. It checks the session against
// GET /auth/check and keeps it on success.
func (h *httpStoreAdapter) Resume(ctx context.Context, session models.Session) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeaders(sessionHeaders(session)).
		Get(checkPath)
	if err != nil {
		return requestError("resume request", err)
	}
	if err = mapHTTPError(resp.StatusCode(), resp.String()); err != nil {
		return requestError("resume", err)
	}

	h.setSession(session)
	return nil
}

// Session implements [StoreAdapter].
func (h *httpStoreAdapter) Session() models.Session {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.session
}

// Details implements [StoreAdapter]. It GETs /details?doc=<packageID>.
func (h *httpStoreAdapter) Details(ctx context.Context, packageID string) (models.PackageMetadata, error) {
	req, err := h.authedRequest(ctx, h.client)
	if err != nil {
		return models.PackageMetadata{}, requestError("details", err)
	}

	resp, err := req.
		SetQueryParam("doc", packageID).
		Get(detailsPath)
	if err != nil {
		return models.PackageMetadata{}, requestError("details request", err)
	}
	if err = mapHTTPError(resp.StatusCode(), resp.String()); err != nil {
		return models.PackageMetadata{}, requestError("details", err)
	}

	var dr detailsResponse
	if err = json.Unmarshal(resp.Body(), &dr); err != nil {
		return models.PackageMetadata{}, requestError("decode details response", err)
	}

	app := dr.Details.AppDetails
	if app.VersionString == "" {
		return models.PackageMetadata{}, requestError("details", fmt.Errorf("%w: missing versionString", ErrMalformedResponse))
	}

	return models.PackageMetadata{
		PackageID:     packageID,
		VersionString: app.VersionString,
		VersionCode:   app.VersionCode,
		Title:         app.Title,
	}, nil
}

// Download implements [StoreAdapter]. It GETs /delivery?doc=<packageID> and
// turns every file reference into a lazily opened [models.FileStream].
func (h *httpStoreAdapter) Download(ctx context.Context, packageID string) (models.PackagePayload, error) {
	req, err := h.authedRequest(ctx, h.client)
	if err != nil {
		return models.PackagePayload{}, requestError("delivery", err)
	}

	resp, err := req.
		SetQueryParam("doc", packageID).
		Get(deliveryPath)
	if err != nil {
		return models.PackagePayload{}, requestError("delivery request", err)
	}
	if err = mapHTTPError(resp.StatusCode(), resp.String()); err != nil {
		return models.PackagePayload{}, requestError("delivery", err)
	}

	var dr deliveryResponse
	if err = json.Unmarshal(resp.Body(), &dr); err != nil {
		return models.PackagePayload{}, requestError("decode delivery response", err)
	}
	if dr.File.URL == "" {
		return models.PackagePayload{}, requestError("delivery", fmt.Errorf("%w: missing base file", ErrMalformedResponse))
	}

	payload := models.PackagePayload{
		DocID: dr.DocID,
		File:  h.fileStream(dr.File),
	}
	for _, s := range dr.Splits {
		payload.Splits = append(payload.Splits, models.Split{Name: s.Name, File: h.fileStream(s.File)})
	}
	for _, a := range dr.AdditionalData {
		payload.AdditionalData = append(payload.AdditionalData, models.AdditionalData{
			Type:        a.Type,
			VersionCode: a.VersionCode,
			File:        h.fileStream(a.File),
		})
	}

	return payload, nil
}

func (h *httpStoreAdapter) fileStream(ref fileRef) models.FileStream {
	return models.NewFileStream(ref.URL, ref.Size, func(ctx context.Context) (io.ReadCloser, error) {
		return h.openStream(ctx, ref.URL)
	})
}

// openStream GETs location without buffering the body. The caller owns the
// returned reader.
func (h *httpStoreAdapter) openStream(ctx context.Context, location string) (io.ReadCloser, error) {
	req, err := h.authedRequest(ctx, h.streamClient)
	if err != nil {
		return nil, requestError("stream", err)
	}

	resp, err := req.
		SetDoNotParseResponse(true).
		Get(location)
	if err != nil {
		return nil, requestError("stream request", err)
	}

	body := resp.RawBody()
	if statusErr := mapHTTPError(resp.StatusCode(), ""); statusErr != nil {
		if body != nil {
			msg, _ := io.ReadAll(io.LimitReader(body, 512))
			body.Close()
			statusErr = mapHTTPError(resp.StatusCode(), string(msg))
		}
		return nil, requestError("stream", statusErr)
	}

	return &streamBody{ReadCloser: body}, nil
}

// streamBody marks read failures of a payload body as store request errors.
type streamBody struct {
	io.ReadCloser
}

func (s *streamBody) Read(p []byte) (int, error) {
	n, err := s.ReadCloser.Read(p)
	if err != nil && err != io.EOF {
		err = requestError("stream read", err)
	}
	return n, err
}

func (h *httpStoreAdapter) authedRequest(ctx context.Context, client *utils.HTTPClient) (*resty.Request, error) {
	session := h.Session()
	if session.IsZero() {
		return nil, ErrNoSession
	}

	return client.R().
		SetContext(ctx).
		SetHeaders(sessionHeaders(session)), nil
}

func (h *httpStoreAdapter) setSession(session models.Session) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.session = models.Session{GsfID: session.GsfID, AuthSubToken: strings.TrimSpace(session.AuthSubToken)}
}

func sessionHeaders(session models.Session) map[string]string {
	return map[string]string{
		headerGsfID:         session.GsfIDString(),
		headerAuthorization: "GoogleLogin auth=" + strings.TrimSpace(session.AuthSubToken),
	}
}
