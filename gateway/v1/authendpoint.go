package v1

import (
	"context"

	"timesheet.app/timesheet/timesheet/model"
)

type AuthEndpoint struct {
	transport *Transport
}

type loginResponse struct {
	Success bool        `json:"success"`
	User    *model.User `json:"user"`
}

func (this *AuthEndpoint) Login(ctx context.Context, username, password string) (*model.User, error) {
	var result loginResponse
	err := this.transport.Get(ctx, "login", map[string]string{
		"username": username,
		"password": password,
	}, &result)
	if err != nil {
		return nil, err
	}
	if !result.Success || result.User == nil {
		return nil, ErrInvalidCredentials
	}
	return result.User, nil
}
