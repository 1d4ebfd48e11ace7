package metrics

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestComputeApproximateRequestSize(t *testing.T) {
	req := httptest.NewRequest("GET", "http://example.com/api/v1/plans", nil)
	req.Host = "example.com"
	req.Header.Set("X-Request-ID", "abc")

	// method + path + proto + header name/value + host, no body
	want := len("GET") + len("/api/v1/plans") + len("HTTP/1.1") +
		len("X-Request-Id") + len("abc") + len("example.com")
	require.Equal(t, want, computeApproximateRequestSize(req))

	req.ContentLength = 42
	require.Equal(t, want+42, computeApproximateRequestSize(req))

	// unknown body length contributes nothing
	req.ContentLength = -1
	require.Equal(t, want, computeApproximateRequestSize(req))
}

func TestMillisecondsSince(t *testing.T) {
	start := time.Now().Add(-250 * time.Millisecond)
	got := MillisecondsSince(start)
	require.GreaterOrEqual(t, got, 250.0)
	require.Less(t, got, 10_000.0)
}
