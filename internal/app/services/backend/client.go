// Package backend talks to the REST backend that owns doctors, appointments,
// patients, records and prescriptions. Every response is wrapped in
// {success, message, data}.
package backend

import (
	"bytes"
	"compress/gzip"
	"chamber-portal-service/internal/app/config"
	"chamber-portal-service/internal/pkg/constvars"
	"chamber-portal-service/internal/pkg/dto/responses"
	"chamber-portal-service/internal/pkg/exceptions"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/andybalholm/brotli"
	"github.com/goccy/go-json"
	"github.com/tidwall/gjson"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

type Client struct {
	BaseUrl          string
	HTTPClient       *http.Client
	Limiter          *rate.Limiter
	MaxResponseBytes int64
	Log              *zap.Logger
}

// Request describes one backend call. Token is forwarded as a bearer token
// when set, Body is sent as JSON when non-nil.
type Request struct {
	Method   string
	Path     string
	Query    url.Values
	Token    string
	Body     interface{}
	Resource string
}

// Setting Accept-Encoding turns off the transport's transparent gzip, so
// readBody decodes both encodings.
const acceptedEncodings = "br, gzip"

const (
	defaultMaxResponseBytes = 10 << 20
	maxErrorDetailLength    = 200
)

var errResponseTooLarge = errors.New("backend response body too large")

func NewClient(internalConfig *config.InternalConfig, logger *zap.Logger) *Client {
	backendConfig := internalConfig.Backend
	limit := rate.Inf
	if backendConfig.RateLimitPerSecond > 0 {
		limit = rate.Limit(backendConfig.RateLimitPerSecond)
	}
	burst := backendConfig.RateLimitBurst
	if burst <= 0 {
		burst = 1
	}
	maxResponseBytes := int64(defaultMaxResponseBytes)
	if backendConfig.MaxResponseBodyInMegabyte > 0 {
		maxResponseBytes = int64(backendConfig.MaxResponseBodyInMegabyte) << 20
	}

	return &Client{
		BaseUrl: strings.TrimRight(backendConfig.BaseUrl, "/"),
		HTTPClient: &http.Client{
			Timeout: time.Duration(backendConfig.RequestTimeoutInSeconds) * time.Second,
		},
		Limiter:          rate.NewLimiter(limit, burst),
		MaxResponseBytes: maxResponseBytes,
		Log:              logger,
	}
}

// Do sends request and decodes the envelope data into out. out may be nil.
func (c *Client) Do(ctx context.Context, request *Request, out interface{}) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	if err := c.Limiter.Wait(ctx); err != nil {
		c.Log.Warn("backend.Client.Do rate limiter wait aborted",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingEndpointKey, request.Path),
			zap.Error(err),
		)
		return exceptions.ErrBackendRateLimitWait(err)
	}

	endpoint := c.BaseUrl + request.Path
	if len(request.Query) > 0 {
		endpoint += "?" + request.Query.Encode()
	}

	var body io.Reader
	if request.Body != nil {
		requestJSON, err := json.Marshal(request.Body)
		if err != nil {
			return exceptions.ErrCannotMarshalJSON(err)
		}
		body = bytes.NewReader(requestJSON)
	}

	req, err := http.NewRequestWithContext(ctx, request.Method, endpoint, body)
	if err != nil {
		return exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderAccept, constvars.MIMEApplicationJSON)
	req.Header.Set(constvars.HeaderAcceptEncoding, acceptedEncodings)
	if request.Body != nil {
		req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	}
	if request.Token != "" {
		req.Header.Set(constvars.HeaderAuthorization, constvars.AuthorizationBearerPrefix+request.Token)
	}
	if requestID != "" {
		req.Header.Set(constvars.HeaderXRequestID, requestID)
	}

	start := time.Now()
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return exceptions.ErrServerDeadlineExceeded(err)
		}
		return exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	c.Log.Debug("backend.Client.Do responded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingMethodKey, request.Method),
		zap.String(constvars.LoggingBackendURLKey, endpoint),
		zap.Int(constvars.LoggingBackendStatusKey, resp.StatusCode),
		zap.Duration(constvars.LoggingDurationKey, time.Since(start)),
	)

	bodyBytes, err := readBody(resp, c.MaxResponseBytes)
	if err != nil {
		return exceptions.ErrBackendDecodeResponse(err, request.Resource)
	}

	if resp.StatusCode < constvars.StatusOK || resp.StatusCode >= 300 {
		message, detail := backendErrorMessage(bodyBytes)
		cause := fmt.Errorf("%s %s", request.Method, request.Path)
		if detail != "" {
			cause = fmt.Errorf("%s %s: %s", request.Method, request.Path, detail)
		}
		return exceptions.ErrBackendResponse(cause, resp.StatusCode, request.Resource, message)
	}

	var envelope responses.BackendEnvelope
	decodeErr := json.Unmarshal(bodyBytes, &envelope)

	if decodeErr != nil {
		return exceptions.ErrBackendDecodeResponse(decodeErr, request.Resource)
	}
	if !envelope.Success {
		return exceptions.ErrBackendResponse(nil, constvars.StatusBadRequest, request.Resource, envelope.Message)
	}

	if out == nil || len(envelope.Data) == 0 || string(envelope.Data) == "null" {
		return nil
	}
	if err := json.Unmarshal(envelope.Data, out); err != nil {
		return exceptions.ErrBackendDecodeResponse(err, request.Resource)
	}
	return nil
}

// backendErrorMessage returns the "message" or "error" field of a JSON body.
// Any other body yields no client message, only a truncated detail for logs.
func backendErrorMessage(body []byte) (message, detail string) {
	if gjson.ValidBytes(body) {
		for _, path := range []string{"message", "error"} {
			if result := gjson.GetBytes(body, path); result.Type == gjson.String && result.String() != "" {
				return result.String(), ""
			}
		}
	}

	detail = strings.TrimSpace(string(body))
	if len(detail) > maxErrorDetailLength {
		detail = strings.ToValidUTF8(detail[:maxErrorDetailLength], "") + "..."
	}
	return "", detail
}

// readBody decodes br and gzip bodies and fails once the decoded size passes limit.
func readBody(resp *http.Response, limit int64) ([]byte, error) {
	var reader io.Reader = resp.Body
	switch strings.ToLower(strings.TrimSpace(resp.Header.Get(constvars.HeaderContentEncoding))) {
	case "br":
		reader = brotli.NewReader(resp.Body)
	case "gzip":
		gzipReader, err := gzip.NewReader(resp.Body)
		if err != nil {
			return nil, err
		}
		defer gzipReader.Close()
		reader = gzipReader
	}

	body, err := io.ReadAll(io.LimitReader(reader, limit+1))
	if err != nil {
		return nil, err
	}
	if int64(len(body)) > limit {
		return nil, errResponseTooLarge
	}
	return body, nil
}
