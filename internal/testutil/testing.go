package testutil

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"art-gallery/internal/auth"
	"art-gallery/internal/config"
	"art-gallery/internal/middlewares"
	"art-gallery/internal/mocks"
	"art-gallery/internal/models"

	"github.com/go-chi/chi/v5"
	"go.uber.org/mock/gomock"
)

// TestContext holds everything needed for handler and middleware tests.
type TestContext struct {
	AppContext     *middlewares.AppContext
	Request        *http.Request
	Response       *httptest.ResponseRecorder
	MockController *gomock.Controller
	MockScheme     *mocks.MockScheme
	MockStorage    *mocks.MockStorageProvider
	MockCache      *mocks.MockCacheProvider
	MockReviewer   *mocks.MockReviewProvider
	MockUploader   *mocks.MockUploadProvider
	LogHandler     *TestLogHandler
}

// NewTestContext creates a test setup around the given request. The config
// carries the default auth section so the cookie manager behaves like a real
// deployment.
func NewTestContext(t *testing.T, method, url string) *TestContext {
	cfg := &config.Config{
		Auth:    config.DefaultAuthConfig,
		Uploads: &config.DefaultUploadsConfig,
	}
	cfg.Auth.TokenLifetime = time.Hour

	logHandler := NewTestLogHandler()
	logger := slog.New(logHandler)

	ctrl := gomock.NewController(t)

	mockScheme := mocks.NewMockScheme(ctrl)
	mockStorage := mocks.NewMockStorageProvider(ctrl)
	mockCache := mocks.NewMockCacheProvider(ctrl)
	mockReviewer := mocks.NewMockReviewProvider(ctrl)
	mockUploader := mocks.NewMockUploadProvider(ctrl)

	req := httptest.NewRequest(method, url, nil)
	rr := httptest.NewRecorder()

	appCtx := &middlewares.AppContext{
		Context:  req.Context(),
		Config:   cfg,
		Logger:   logger,
		Auth:     mockScheme,
		Cookies:  auth.NewCookieManager(cfg.Auth),
		Storage:  mockStorage,
		Cache:    mockCache,
		Reviewer: mockReviewer,
		Uploader: mockUploader,
		Request:  req,
		Response: rr,
	}

	return &TestContext{
		AppContext:     appCtx,
		Request:        req,
		Response:       rr,
		MockController: ctrl,
		MockScheme:     mockScheme,
		MockStorage:    mockStorage,
		MockCache:      mockCache,
		MockReviewer:   mockReviewer,
		MockUploader:   mockUploader,
		LogHandler:     logHandler,
	}
}

// Finish should be called at the end of tests to clean up mocks.
func (tc *TestContext) Finish() {
	if tc.MockController != nil {
		tc.MockController.Finish()
	}
}

// WithJSONBody replaces the request body with the JSON encoding of v.
func (tc *TestContext) WithJSONBody(t *testing.T, v any) *TestContext {
	payload, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("failed to marshal request body: %v", err)
	}

	req := httptest.NewRequest(tc.Request.Method, tc.Request.URL.String(), bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	return tc.WithRequest(req)
}

// WithRequest swaps in a custom request.
func (tc *TestContext) WithRequest(req *http.Request) *TestContext {
	tc.Request = req
	tc.AppContext.Request = req
	tc.AppContext.Context = req.Context()
	return tc
}

// WithCookie attaches a session cookie carrying the given token.
func (tc *TestContext) WithCookie(token string) *TestContext {
	tc.Request.AddCookie(&http.Cookie{
		Name:  tc.AppContext.Config.Auth.CookieName,
		Value: token,
	})
	return tc
}

// WithURLParam adds a chi route parameter to the request context.
func (tc *TestContext) WithURLParam(key, value string) *TestContext {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)

	req := tc.Request.WithContext(context.WithValue(tc.Request.Context(), chi.RouteCtxKey, rctx))
	return tc.WithRequest(req)
}

// WithClaims attaches verified admin claims, as the route guard would after
// a successful verification.
func (tc *TestContext) WithClaims(subject string) *TestContext {
	tc.AppContext.SetClaims(&models.Claims{
		Subject:   subject,
		Role:      models.RoleAdmin,
		IssuedAt:  time.Now(),
		ExpiresAt: time.Now().Add(time.Hour),
	})
	return tc
}

// WithHeader sets a request header.
func (tc *TestContext) WithHeader(key, value string) *TestContext {
	tc.Request.Header.Set(key, value)
	return tc
}

// CallHandler executes a handler with the test context.
func (tc *TestContext) CallHandler(handler middlewares.AppHandler) {
	handler(tc.AppContext)
}

// AssertStatus checks the HTTP status code.
func (tc *TestContext) AssertStatus(t *testing.T, expectedStatus int) {
	if tc.Response.Code != expectedStatus {
		t.Errorf("Expected status %d, got %d", expectedStatus, tc.Response.Code)
	}
}

// AssertContentType checks the content type header.
func (tc *TestContext) AssertContentType(t *testing.T, expectedType string) {
	if ct := tc.Response.Header().Get("Content-Type"); ct != expectedType {
		t.Errorf("Expected content type %s, got %s", expectedType, ct)
	}
}

// GetJSONResponse parses the response body as a JSON object.
func (tc *TestContext) GetJSONResponse(t *testing.T) map[string]interface{} {
	var response map[string]interface{}
	if err := json.Unmarshal(tc.Response.Body.Bytes(), &response); err != nil {
		t.Fatalf("Could not parse JSON response: %v", err)
	}
	return response
}

// GetJSONResponseArray parses the response body as a JSON array.
func (tc *TestContext) GetJSONResponseArray(t *testing.T) []interface{} {
	var response []interface{}
	if err := json.Unmarshal(tc.Response.Body.Bytes(), &response); err != nil {
		t.Fatalf("Could not parse JSON array response: %v", err)
	}
	return response
}

// AssertJSONField checks a specific field in a JSON response.
func (tc *TestContext) AssertJSONField(t *testing.T, field string, expected any) {
	response := tc.GetJSONResponse(t)
	if actual, ok := response[field]; !ok || actual != expected {
		t.Errorf("Expected %s to be %v, got %v", field, expected, response[field])
	}
}

// AssertRedirect checks that the response is a redirect to the given location.
func (tc *TestContext) AssertRedirect(t *testing.T, expectedStatus int, expectedLocation string) {
	tc.AssertStatus(t, expectedStatus)
	if location := tc.Response.Header().Get("Location"); location != expectedLocation {
		t.Errorf("Expected redirect to %s, got %s", expectedLocation, location)
	}
}

// AssertCookieCleared checks that the response expires the session cookie.
func (tc *TestContext) AssertCookieCleared(t *testing.T) {
	name := tc.AppContext.Config.Auth.CookieName
	for _, cookie := range tc.Response.Result().Cookies() {
		if cookie.Name == name {
			if cookie.MaxAge >= 0 {
				t.Errorf("Expected cookie %s to be expired, got MaxAge %d", name, cookie.MaxAge)
			}
			return
		}
	}
	t.Errorf("Expected a Set-Cookie clearing %s, found none", name)
}

// AssertLogContains checks that a log record at the given level contains the
// message substring.
func (tc *TestContext) AssertLogContains(t *testing.T, level slog.Level, message string) {
	if !tc.LogHandler.ContainsMessage(level, message) {
		t.Errorf("Expected to find log entry with level %v containing message: %s", level, message)
	}
}
