package handlers

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"art-gallery/internal/models"
	"art-gallery/internal/testutil"

	"go.uber.org/mock/gomock"
)

func TestAuthStatusHandler_AnonymousIsNotAnError(t *testing.T) {
	tc := testutil.NewTestContext(t, "GET", "/api/auth/status")
	defer tc.Finish()

	tc.MockScheme.EXPECT().Name().Return("local")

	tc.CallHandler(GETAuthStatusHandler)

	tc.AssertStatus(t, http.StatusOK)
	tc.AssertJSONField(t, "authenticated", false)
	tc.AssertJSONField(t, "scheme", "local")
}

func TestAuthStatusHandler_ReportsValidSession(t *testing.T) {
	tc := testutil.NewTestContext(t, "GET", "/api/auth/status")
	defer tc.Finish()
	tc.WithCookie("valid-token")

	expiresAt := time.Now().Add(time.Hour).UTC()

	tc.MockScheme.EXPECT().Name().Return("local")
	tc.MockScheme.EXPECT().Verify(gomock.Any(), "valid-token").
		Return(&models.Claims{Subject: "admin", Role: models.RoleAdmin, ExpiresAt: expiresAt}, nil)

	tc.CallHandler(GETAuthStatusHandler)

	tc.AssertStatus(t, http.StatusOK)
	tc.AssertJSONField(t, "authenticated", true)
	tc.AssertJSONField(t, "subject", "admin")
	tc.AssertJSONField(t, "role", models.RoleAdmin)
	tc.AssertJSONField(t, "expires_at", expiresAt.Format(time.RFC3339))
}

func TestAuthStatusHandler_ClearsInvalidCookie(t *testing.T) {
	tc := testutil.NewTestContext(t, "GET", "/api/auth/status")
	defer tc.Finish()
	tc.WithCookie("expired-token")

	tc.MockScheme.EXPECT().Name().Return("local")
	tc.MockScheme.EXPECT().Verify(gomock.Any(), "expired-token").
		Return(nil, errors.New("token expired"))

	tc.CallHandler(GETAuthStatusHandler)

	tc.AssertStatus(t, http.StatusOK)
	tc.AssertJSONField(t, "authenticated", false)
	tc.AssertCookieCleared(t)
}
