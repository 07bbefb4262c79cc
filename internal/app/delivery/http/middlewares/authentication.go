package middlewares

import (
	"chamber-portal-service/internal/pkg/constvars"
	"chamber-portal-service/internal/pkg/exceptions"
	"chamber-portal-service/internal/pkg/rbac"
	"chamber-portal-service/internal/pkg/utils"
	"context"
	"fmt"
	"net/http"
	"strings"

	"go.uber.org/zap"
)

// Authenticate resolves the bearer session token to the session stored in
// redis and puts the raw session JSON in the request context.
func (m *Middlewares) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		requestID := utils.GetRequestID(ctx)

		authHeader := r.Header.Get(constvars.HeaderAuthorization)
		token := strings.TrimSpace(strings.TrimPrefix(authHeader, constvars.AuthorizationBearerPrefix))
		if authHeader == "" || token == "" || token == authHeader {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenMissing(nil))
			return
		}

		sessionID, err := utils.ParseSessionJWT(token, m.InternalConfig.JWT.Secret)
		if err != nil {
			m.Log.Warn("Middlewares.Authenticate invalid session token",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenInvalidOrExpired(err))
			return
		}

		sessionData, err := m.SessionService.GetSessionData(ctx, sessionID)
		if err != nil {
			utils.BuildErrorResponse(m.Log, w, err)
			return
		}

		ctx = context.WithValue(ctx, constvars.CONTEXT_SESSION_ID_KEY, sessionID)
		ctx = context.WithValue(ctx, constvars.CONTEXT_SESSION_DATA_KEY, sessionData)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// Authorize checks the session role against the route policy. It must run
// after Authenticate.
func (m *Middlewares) Authorize(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		session, err := m.SessionService.ParseSessionData(ctx, utils.GetSessionData(ctx))
		if err != nil {
			utils.BuildErrorResponse(m.Log, w, err)
			return
		}

		path := m.routePath(r.URL.Path)
		if !rbac.Allowed(m.Enforcer, session.Role.String(), r.Method, path) {
			m.Log.Warn("Middlewares.Authorize role not allowed",
				zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
				zap.String(constvars.LoggingRoleKey, session.Role.String()),
				zap.String(constvars.LoggingMethodKey, r.Method),
				zap.String(constvars.LoggingEndpointKey, path),
			)
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrRoleNotAllowed(nil, session.Role.String()))
			return
		}

		next.ServeHTTP(w, r)
	})
}

// routePath strips the versioned API prefix and any trailing slash.
func (m *Middlewares) routePath(urlPath string) string {
	prefix := fmt.Sprintf("/%s/%s", m.InternalConfig.App.EndpointPrefix, m.InternalConfig.App.Version)
	path := strings.TrimPrefix(urlPath, prefix)
	if len(path) > 1 {
		path = strings.TrimSuffix(path, "/")
	}
	if path == "" {
		path = "/"
	}
	return path
}
