package backend

import (
	"context"
	"net/http"

	"dashboard/internal/entities"
)

func (g *Gateway) SignIn(ctx context.Context, credentials entities.Credentials) (*entities.AuthGrant, error) {
	var dto authDTO
	err := g.execute(ctx, request{
		method: http.MethodPost,
		route:  "/users/security/sign-in",
		path:   "/users/security/sign-in",
		body: signInRequest{
			Email:    credentials.Email,
			Password: credentials.Password,
		},
	}, &dto)
	if err != nil {
		return nil, err
	}
	return toAuthGrant(dto), nil
}

func (g *Gateway) SignUp(ctx context.Context, registration entities.Registration) (*entities.AuthGrant, error) {
	var dto authDTO
	err := g.execute(ctx, request{
		method: http.MethodPost,
		route:  "/users/security/sign-up",
		path:   "/users/security/sign-up",
		body: signUpRequest{
			Name:     registration.Name,
			Email:    registration.Email,
			Phone:    registration.Phone,
			Password: registration.Password,
		},
	}, &dto)
	if err != nil {
		return nil, err
	}
	return toAuthGrant(dto), nil
}
