package auth

import (
	"chamber-portal-service/internal/app/contracts"
	"chamber-portal-service/internal/app/services/backend"
	"chamber-portal-service/internal/pkg/constvars"
	"chamber-portal-service/internal/pkg/dto/requests"
	"chamber-portal-service/internal/pkg/dto/responses"
	"chamber-portal-service/internal/pkg/exceptions"
	"context"
	"errors"
)

type authBackendClient struct {
	Client *backend.Client
}

func NewAuthBackendClient(client *backend.Client) contracts.AuthBackendClient {
	return &authBackendClient{Client: client}
}

// Login maps a backend 401 to invalid credentials.
func (c *authBackendClient) Login(ctx context.Context, request *requests.BackendLogin) (*responses.BackendLogin, error) {
	response := new(responses.BackendLogin)
	err := c.Client.Do(ctx, &backend.Request{
		Method:   constvars.MethodPost,
		Path:     constvars.BackendPathLogin,
		Body:     request,
		Resource: constvars.ResourceAuth,
	}, response)
	if err != nil {
		var customErr *exceptions.CustomError
		if errors.As(err, &customErr) && customErr.StatusCode == constvars.StatusUnauthorized {
			return nil, exceptions.ErrInvalidCredentials(err)
		}
		return nil, err
	}
	return response, nil
}
