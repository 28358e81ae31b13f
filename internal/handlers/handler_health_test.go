package handlers

import (
	"errors"
	"net/http"
	"testing"

	"art-gallery/internal/testutil"

	"go.uber.org/mock/gomock"
)

func TestHealthHandler_HealthyWhenDatabaseReachable(t *testing.T) {
	tc := testutil.NewTestContext(t, "GET", "/api/v1/health")
	defer tc.Finish()

	tc.MockStorage.EXPECT().Ping(gomock.Any()).Return(nil)

	tc.CallHandler(GETHealthHandler)

	tc.AssertStatus(t, http.StatusOK)
	tc.AssertJSONField(t, "status", "healthy")
}

func TestHealthHandler_UnhealthyWhenDatabaseDown(t *testing.T) {
	tc := testutil.NewTestContext(t, "GET", "/api/v1/health")
	defer tc.Finish()

	tc.MockStorage.EXPECT().Ping(gomock.Any()).Return(errors.New("connection refused"))

	tc.CallHandler(GETHealthHandler)

	tc.AssertStatus(t, http.StatusServiceUnavailable)
	tc.AssertJSONField(t, "status", "unhealthy")
}
