package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"testing"

	"art-gallery/internal/auth"
	"art-gallery/internal/config"
	"art-gallery/internal/middlewares"
	"art-gallery/internal/mocks"
	"art-gallery/internal/models"
	"art-gallery/internal/testutil"

	"go.uber.org/mock/gomock"
)

// callWithFlowSession runs a handler under a live memory-backed flow session,
// the way the router's LoadAndSave middleware does in production.
func callWithFlowSession(t *testing.T, tc *testutil.TestContext, handler middlewares.AppHandler) {
	t.Helper()

	cfg := &config.Config{Sessions: config.DefaultSessionConfig}
	flow, err := auth.NewFlowSessionManager(slog.Default(), cfg)
	if err != nil {
		t.Fatalf("failed to create flow session manager: %v", err)
	}
	tc.AppContext.FlowSessions = flow

	wrapped := flow.LoadAndSave(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tc.WithRequest(r)
		tc.AppContext.Response = w
		handler(tc.AppContext)
	}))

	wrapped.ServeHTTP(tc.Response, tc.Request)
}

func TestOIDCLoginHandler_RedirectsToProvider(t *testing.T) {
	tc := testutil.NewTestContext(t, "GET", "/api/auth/login")
	defer tc.Finish()

	mockFlow := mocks.NewMockOIDCFlowProvider(tc.MockController)
	tc.AppContext.OIDCFlow = mockFlow

	mockFlow.EXPECT().StartLogin(gomock.Any()).
		Return("https://auth.example.com/authorize?state=xyz", nil)

	callWithFlowSession(t, tc, GETOIDCLoginHandler)

	tc.AssertRedirect(t, http.StatusFound, "https://auth.example.com/authorize?state=xyz")
}

func TestOIDCCallbackHandler_SetsCookieAndRedirects(t *testing.T) {
	tc := testutil.NewTestContext(t, "GET", "/api/auth/callback?code=abc&state=xyz")
	defer tc.Finish()

	mockFlow := mocks.NewMockOIDCFlowProvider(tc.MockController)
	tc.AppContext.OIDCFlow = mockFlow

	tc.MockScheme.EXPECT().Name().Return("oidc").AnyTimes()
	mockFlow.EXPECT().HandleCallback(gomock.Any(), gomock.Any()).
		Return("raw-id-token", &models.Claims{Subject: "curator", Role: models.RoleAdmin}, nil)
	tc.MockStorage.EXPECT().InsertLoginAudit(gomock.Any(), gomock.Any()).Return(nil)

	callWithFlowSession(t, tc, GETOIDCCallbackHandler)

	tc.AssertRedirect(t, http.StatusFound, "/admin")

	var found bool
	for _, cookie := range tc.Response.Result().Cookies() {
		if cookie.Name == tc.AppContext.Config.Auth.CookieName {
			found = true
			if cookie.Value != "raw-id-token" {
				t.Errorf("expected cookie to carry the raw ID token, got %q", cookie.Value)
			}
			if !cookie.HttpOnly {
				t.Error("session cookie must be http-only")
			}
		}
	}
	if !found {
		t.Fatal("expected a session cookie after a successful callback")
	}
}

func TestOIDCCallbackHandler_RedirectsToLoginOnFailure(t *testing.T) {
	tc := testutil.NewTestContext(t, "GET", "/api/auth/callback?error=access_denied")
	defer tc.Finish()

	mockFlow := mocks.NewMockOIDCFlowProvider(tc.MockController)
	tc.AppContext.OIDCFlow = mockFlow

	tc.MockScheme.EXPECT().Name().Return("oidc").AnyTimes()
	mockFlow.EXPECT().HandleCallback(gomock.Any(), gomock.Any()).
		Return("", nil, errors.New("state parameter mismatch"))
	tc.MockStorage.EXPECT().InsertLoginAudit(gomock.Any(), gomock.Any()).Return(nil)

	callWithFlowSession(t, tc, GETOIDCCallbackHandler)

	tc.AssertRedirect(t, http.StatusFound, "/admin/login")

	for _, cookie := range tc.Response.Result().Cookies() {
		if cookie.Name == tc.AppContext.Config.Auth.CookieName {
			t.Fatal("no session cookie may be set on a failed callback")
		}
	}
}
