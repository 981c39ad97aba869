package client

import (
	"context"
	"net/http"
	"time"

	"github.com/dmitrijs2005/bankcli/internal/common"
	"github.com/dmitrijs2005/bankcli/internal/logging"
	"github.com/google/uuid"
)

// CredentialSource supplies the bearer credential and is told when the
// backend rejects it. *session.Store implements it.
type CredentialSource interface {
	Credential() string
	Invalidate(ctx context.Context, sent string) bool
}

// authTransport attaches the current credential to each request and
// invalidates the session on 401. It never retries or follows up; the
// response is returned to the caller as received.
type authTransport struct {
	next  http.RoundTripper
	creds CredentialSource
	log   logging.Logger
}

func (t *authTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	ctx := req.Context()

	sent := t.creds.Credential()
	reqID := uuid.NewString()

	r := req.Clone(ctx)
	r.Header.Set(common.RequestIDHeader, reqID)
	if sent != "" {
		r.Header.Set(common.AuthorizationHeader, common.BearerPrefix+sent)
	} else {
		r.Header.Del(common.AuthorizationHeader)
	}

	start := time.Now()
	resp, err := t.next.RoundTrip(r)
	elapsed := time.Since(start).Milliseconds()

	log := t.log.With(
		logging.FieldRequestID, reqID,
		logging.FieldMethod, r.Method,
		logging.FieldPath, r.URL.Path,
		logging.FieldDuration, elapsed,
	)
	if err != nil {
		log.Warn(ctx, "request failed", logging.FieldError, err)
		return nil, err
	}
	log.Debug(ctx, "request completed", logging.FieldStatusCode, resp.StatusCode)

	if resp.StatusCode == http.StatusUnauthorized {
		t.creds.Invalidate(ctx, sent)
	}
	return resp, nil
}
