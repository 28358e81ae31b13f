package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestExtractClientIP(t *testing.T) {
	tests := []struct {
		name       string
		remoteAddr string
		headers    map[string]string
		expected   string
	}{
		{
			name:       "direct connection",
			remoteAddr: "203.0.113.1:54321",
			expected:   "203.0.113.1",
		},
		{
			name:       "direct connection without port",
			remoteAddr: "203.0.113.1",
			expected:   "203.0.113.1",
		},
		{
			name:       "x-real-ip header",
			remoteAddr: "10.0.0.1:12345",
			headers:    map[string]string{"X-Real-IP": "198.51.100.2"},
			expected:   "198.51.100.2",
		},
		{
			name:       "x-forwarded-for single IP",
			remoteAddr: "10.0.0.1:12345",
			headers:    map[string]string{"X-Forwarded-For": "198.51.100.3"},
			expected:   "198.51.100.3",
		},
		{
			name:       "x-forwarded-for multiple IPs",
			remoteAddr: "10.0.0.1:12345",
			headers:    map[string]string{"X-Forwarded-For": "198.51.100.4, 10.0.0.2, 10.0.0.3"},
			expected:   "198.51.100.4",
		},
		{
			name:       "x-real-ip wins over x-forwarded-for",
			remoteAddr: "10.0.0.1:12345",
			headers: map[string]string{
				"X-Real-IP":       "198.51.100.5",
				"X-Forwarded-For": "198.51.100.6",
			},
			expected: "198.51.100.5",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/", nil)
			req.RemoteAddr = tt.remoteAddr
			for key, value := range tt.headers {
				req.Header.Set(key, value)
			}

			if got := extractClientIP(req); got != tt.expected {
				t.Errorf("extractClientIP() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestClientIPMiddleware_StoresIPOnContext(t *testing.T) {
	var got string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = GetClientIP(r)
	})

	req := httptest.NewRequest("GET", "/", nil)
	req.RemoteAddr = "10.0.0.1:12345"
	req.Header.Set("X-Real-IP", "198.51.100.7")

	ClientIPMiddleware(next).ServeHTTP(httptest.NewRecorder(), req)

	if got != "198.51.100.7" {
		t.Errorf("GetClientIP() = %q, want %q", got, "198.51.100.7")
	}
}
