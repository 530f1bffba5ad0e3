package hackerrank

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/youruser/hrcerts/internal/apperr"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, 2*time.Second, "hrcerts-test", zaptest.NewLogger(t)), srv
}

func TestFetchCertificates(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, certificatesPath, r.URL.Path)
		assert.Equal(t, "hrcerts-test", r.Header.Get("User-Agent"))

		switch r.URL.Query().Get("username") {
		case "alice":
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"data": [` + sampleCertificate + `]}`))
		case "broken":
			w.WriteHeader(http.StatusServiceUnavailable)
			_, _ = w.Write([]byte("maintenance"))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})

	certs, err := client.FetchCertificates(context.Background(), "alice")
	require.NoError(t, err)
	require.Len(t, certs, 1)
	assert.Equal(t, "a1b2c3d4e5f6", certs[0].ID)
	assert.Equal(t, "Python (Basic)", certs[0].DenormalizedTitle())

	_, err = client.FetchCertificates(context.Background(), "nobody")
	assert.True(t, apperr.Is(err, apperr.KindNotFound), "got %v", err)

	_, err = client.FetchCertificates(context.Background(), "broken")
	assert.True(t, apperr.Is(err, apperr.KindUpstreamUnavailable), "got %v", err)
	assert.Contains(t, err.Error(), "maintenance")

	_, err = client.FetchCertificates(context.Background(), "  ")
	assert.True(t, apperr.Is(err, apperr.KindInvalidArgument), "got %v", err)
}

func TestFetchCertificatesMalformedBody(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data": "nope"`))
	})

	_, err := client.FetchCertificates(context.Background(), "alice")
	assert.True(t, apperr.Is(err, apperr.KindUpstreamUnavailable), "got %v", err)
}

func TestStatusMessageKeepsRunesWhole(t *testing.T) {
	long := strings.Repeat("a", 199) + strings.Repeat("é", 10)
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte(long))
	})

	_, err := client.FetchCertificates(context.Background(), "alice")
	require.Error(t, err)
	assert.True(t, utf8.ValidString(err.Error()))
	assert.Contains(t, err.Error(), strings.Repeat("a", 199)+"é")
	assert.NotContains(t, err.Error(), "éé")
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "héllo", truncate("héllo", 5))
	assert.Equal(t, "hé", truncate("héllo", 2))
	assert.Equal(t, "", truncate("", 3))
}

func TestFetchProfile(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/rest/contests/master/hackers/alice/profile" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"model": {"username": "alice", "personal_first_name": "Alice", "personal_last_name": "Liddell", "created_at": "2019-03-01T00:00:00Z"}}`))
	})

	profile, err := client.FetchProfile(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, "alice", profile.Username)
	assert.Equal(t, "Alice Liddell", profile.FullName())

	_, err = client.FetchProfile(context.Background(), "bob")
	assert.True(t, apperr.Is(err, apperr.KindNotFound), "got %v", err)
}

func TestFetchRawImage(t *testing.T) {
	payload := []byte{0xff, 0xd8, 0xff, 0xe0, 0x00, 0x10, 'J', 'F', 'I', 'F'}
	client, srv := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/img/ok.jpg" {
			w.Header().Set("Content-Type", "image/jpeg")
			_, _ = w.Write(payload)
			return
		}
		w.WriteHeader(http.StatusForbidden)
	})

	body, err := client.FetchRawImage(context.Background(), srv.URL+"/img/ok.jpg")
	require.NoError(t, err)
	assert.Equal(t, payload, body)

	_, err = client.FetchRawImage(context.Background(), srv.URL+"/img/missing.jpg")
	assert.True(t, apperr.Is(err, apperr.KindUpstreamUnavailable), "got %v", err)

	_, err = client.FetchRawImage(context.Background(), "")
	assert.True(t, apperr.Is(err, apperr.KindInvalidArgument), "got %v", err)
}

func TestFetchTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-time.After(time.Second):
		case <-r.Context().Done():
		}
	}))
	t.Cleanup(srv.Close)

	client := NewClient(srv.URL, 50*time.Millisecond, "hrcerts-test", zaptest.NewLogger(t))
	_, err := client.FetchProfile(context.Background(), "alice")
	assert.True(t, apperr.Is(err, apperr.KindUpstreamUnavailable), "got %v", err)
}
