package backend

import (
	"bytes"
	"chamber-portal-service/internal/app/config"
	"chamber-portal-service/internal/pkg/constvars"
	"chamber-portal-service/internal/pkg/exceptions"
	"compress/gzip"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/andybalholm/brotli"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return NewClient(&config.InternalConfig{
		Backend: config.AppBackend{
			BaseUrl:                 server.URL + "/",
			RequestTimeoutInSeconds: 5,
		},
	}, zap.NewNop())
}

func TestNewClientResponseLimit(t *testing.T) {
	assert.Equal(t, int64(defaultMaxResponseBytes), NewClient(&config.InternalConfig{}, zap.NewNop()).MaxResponseBytes)

	client := NewClient(&config.InternalConfig{Backend: config.AppBackend{MaxResponseBodyInMegabyte: 2}}, zap.NewNop())
	assert.Equal(t, int64(2<<20), client.MaxResponseBytes)
}

func TestClientDo(t *testing.T) {
	ctx := context.WithValue(context.Background(), constvars.CONTEXT_REQUEST_ID_KEY, "req-1")

	t.Run("Decodes Data And Forwards Headers", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/doctors", r.URL.Path)
			assert.Equal(t, "cardio", r.URL.Query().Get("search"))
			assert.Equal(t, "Bearer backend-token", r.Header.Get(constvars.HeaderAuthorization))
			assert.Equal(t, "req-1", r.Header.Get(constvars.HeaderXRequestID))
			w.Write([]byte(`{"success":true,"message":"ok","data":[{"id":"doc-1"}]}`))
		})

		var out []map[string]interface{}
		err := client.Do(ctx, &Request{
			Method:   constvars.MethodGet,
			Path:     "/doctors",
			Query:    url.Values{"search": []string{"cardio"}},
			Token:    "backend-token",
			Resource: constvars.ResourceDoctor,
		}, &out)
		require.NoError(t, err)
		require.Len(t, out, 1)
		assert.Equal(t, "doc-1", out[0]["id"])
	})

	t.Run("Sends JSON Body", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, constvars.MethodPost, r.Method)
			assert.Equal(t, constvars.MIMEApplicationJSON, r.Header.Get(constvars.HeaderContentType))
			assert.Empty(t, r.Header.Get(constvars.HeaderAuthorization))
			w.WriteHeader(http.StatusCreated)
			w.Write([]byte(`{"success":true,"data":null}`))
		})

		err := client.Do(ctx, &Request{
			Method:   constvars.MethodPost,
			Path:     "/appointments",
			Body:     map[string]string{"time_slot": "9:00 AM - 12:00 PM"},
			Resource: constvars.ResourceAppointment,
		}, nil)
		assert.NoError(t, err)
	})

	t.Run("Not Found", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"success":false,"message":"Doctor not found"}`))
		})

		err := client.Do(ctx, &Request{Method: constvars.MethodGet, Path: "/doctors/x", Resource: constvars.ResourceDoctor}, nil)
		var customErr *exceptions.CustomError
		require.True(t, errors.As(err, &customErr))
		assert.Equal(t, constvars.StatusNotFound, customErr.StatusCode)
		assert.Equal(t, constvars.ErrClientResourceNotFound, customErr.ClientMessage)
		assert.Contains(t, customErr.DevMessage, "Doctor not found")
	})

	t.Run("Validation Message Passes Through", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"success":false,"message":"Appointment already exists for this slot"}`))
		})

		err := client.Do(ctx, &Request{Method: constvars.MethodPost, Path: "/appointments", Resource: constvars.ResourceAppointment}, nil)
		var customErr *exceptions.CustomError
		require.True(t, errors.As(err, &customErr))
		assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode)
		assert.Equal(t, "Appointment already exists for this slot", customErr.ClientMessage)
	})

	t.Run("Compressed Responses", func(t *testing.T) {
		payload := []byte(`{"success":true,"data":{"id":"doc-9"}}`)

		var brBody bytes.Buffer
		brWriter := brotli.NewWriter(&brBody)
		_, err := brWriter.Write(payload)
		require.NoError(t, err)
		require.NoError(t, brWriter.Close())

		var gzBody bytes.Buffer
		gzWriter := gzip.NewWriter(&gzBody)
		_, err = gzWriter.Write(payload)
		require.NoError(t, err)
		require.NoError(t, gzWriter.Close())

		for encoding, body := range map[string][]byte{"br": brBody.Bytes(), "gzip": gzBody.Bytes()} {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "br, gzip", r.Header.Get(constvars.HeaderAcceptEncoding))
				w.Header().Set(constvars.HeaderContentEncoding, encoding)
				w.Write(body)
			})

			var out struct {
				ID string `json:"id"`
			}
			require.NoError(t, client.Do(ctx, &Request{Method: constvars.MethodGet, Path: "/doctors/doc-9", Resource: constvars.ResourceDoctor}, &out), encoding)
			assert.Equal(t, "doc-9", out.ID, encoding)
		}
	})

	t.Run("Error Field Without Envelope", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusConflict)
			w.Write([]byte(`{"error":"Slot already taken"}`))
		})

		err := client.Do(ctx, &Request{Method: constvars.MethodPost, Path: "/appointments", Resource: constvars.ResourceAppointment}, nil)
		var customErr *exceptions.CustomError
		require.True(t, errors.As(err, &customErr))
		assert.Equal(t, constvars.StatusConflict, customErr.StatusCode)
		assert.Equal(t, "Slot already taken", customErr.ClientMessage)
	})

	t.Run("Non JSON Error Body Stays Out Of Client Message", func(t *testing.T) {
		page := "<html><body>" + strings.Repeat("proxy error ", 100) + "</body></html>"
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusConflict)
			w.Write([]byte(page))
		})

		err := client.Do(ctx, &Request{Method: constvars.MethodPost, Path: "/appointments", Resource: constvars.ResourceAppointment}, nil)
		var customErr *exceptions.CustomError
		require.True(t, errors.As(err, &customErr))
		assert.Equal(t, http.StatusConflict, customErr.StatusCode)
		assert.Equal(t, constvars.ErrClientCannotProcessRequest, customErr.ClientMessage)
		assert.Contains(t, customErr.DevMessage, "<html><body>proxy error")
		assert.NotContains(t, customErr.DevMessage, "</body></html>")
	})

	t.Run("Decoded Body Over Limit", func(t *testing.T) {
		var gzBody bytes.Buffer
		gzWriter := gzip.NewWriter(&gzBody)
		_, err := gzWriter.Write(bytes.Repeat([]byte(" "), 64<<10))
		require.NoError(t, err)
		require.NoError(t, gzWriter.Close())

		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set(constvars.HeaderContentEncoding, "gzip")
			w.Write(gzBody.Bytes())
		})
		client.MaxResponseBytes = 1 << 10

		var out map[string]interface{}
		err = client.Do(ctx, &Request{Method: constvars.MethodGet, Path: "/doctors", Resource: constvars.ResourceDoctor}, &out)
		var customErr *exceptions.CustomError
		require.True(t, errors.As(err, &customErr))
		assert.Equal(t, constvars.StatusBadGateway, customErr.StatusCode)
		assert.ErrorIs(t, err, errResponseTooLarge)
	})

	t.Run("Server Error Becomes Bad Gateway", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(`upstream exploded`))
		})

		err := client.Do(ctx, &Request{Method: constvars.MethodGet, Path: "/stats/admin", Resource: constvars.ResourceStatistics}, nil)
		var customErr *exceptions.CustomError
		require.True(t, errors.As(err, &customErr))
		assert.Equal(t, constvars.StatusBadGateway, customErr.StatusCode)
		assert.Contains(t, customErr.DevMessage, "upstream exploded")
	})

	t.Run("Malformed Body", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`<html>`))
		})

		var out map[string]interface{}
		err := client.Do(ctx, &Request{Method: constvars.MethodGet, Path: "/doctors/1", Resource: constvars.ResourceDoctor}, &out)
		var customErr *exceptions.CustomError
		require.True(t, errors.As(err, &customErr))
		assert.Equal(t, constvars.StatusBadGateway, customErr.StatusCode)
	})

	t.Run("Deadline Exceeded", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(200 * time.Millisecond)
			w.Write([]byte(`{"success":true}`))
		})

		shortCtx, cancel := context.WithTimeout(ctx, 20*time.Millisecond)
		defer cancel()

		err := client.Do(shortCtx, &Request{Method: constvars.MethodGet, Path: "/doctors", Resource: constvars.ResourceDoctor}, nil)
		var customErr *exceptions.CustomError
		require.True(t, errors.As(err, &customErr))
		assert.Equal(t, constvars.StatusGatewayTimeout, customErr.StatusCode)
	})
}
