package backend

import (
	"context"
	"net/http"

	"github.com/RoyceAzure/lab/santoral/internal/apperr"
	"github.com/RoyceAzure/lab/santoral/internal/model"
)

type IAuthAPI interface {
	// Login establishes the backend session cookie and returns the identity
	// read back from /auth/me.
	Login(ctx context.Context, req model.LoginRequest) (*model.User, error)
	Register(ctx context.Context, req model.RegisterRequest) error
	Logout(ctx context.Context) error
	// Me returns nil without error when the backend reports no user.
	Me(ctx context.Context) (*model.User, error)
	ForgotPassword(ctx context.Context, email string) (string, error)
	VerifyResetToken(ctx context.Context, token string) (*model.VerifyResetTokenResponse, error)
	ResetPassword(ctx context.Context, req model.ResetPasswordRequest) (string, error)
}

var _ IAuthAPI = (*Client)(nil)

func (c *Client) Login(ctx context.Context, req model.LoginRequest) (*model.User, error) {
	if err := c.do(ctx, apperr.OpLogin, http.MethodPost, "/auth/login", nil, req, nil); err != nil {
		return nil, err
	}
	var me model.MeResponse
	if err := c.do(ctx, apperr.OpLogin, http.MethodGet, "/auth/me", nil, nil, &me); err != nil {
		return nil, err
	}
	return me.User, nil
}

func (c *Client) Register(ctx context.Context, req model.RegisterRequest) error {
	return c.do(ctx, apperr.OpRegister, http.MethodPost, "/auth/register", nil, req, nil)
}

func (c *Client) Logout(ctx context.Context) error {
	return c.do(ctx, apperr.OpLogout, http.MethodPost, "/auth/logout", nil, nil, nil)
}

func (c *Client) Me(ctx context.Context) (*model.User, error) {
	var me model.MeResponse
	if err := c.do(ctx, apperr.OpMe, http.MethodGet, "/auth/me", nil, nil, &me); err != nil {
		return nil, err
	}
	return me.User, nil
}

func (c *Client) ForgotPassword(ctx context.Context, email string) (string, error) {
	var res model.MessageResponse
	if err := c.do(ctx, apperr.OpForgotPassword, http.MethodPost, "/auth/forgot-password", nil, model.ForgotPasswordRequest{Email: email}, &res); err != nil {
		return "", err
	}
	return res.Message, nil
}

func (c *Client) VerifyResetToken(ctx context.Context, token string) (*model.VerifyResetTokenResponse, error) {
	var res model.VerifyResetTokenResponse
	if err := c.do(ctx, apperr.OpVerifyResetToken, http.MethodPost, "/auth/verify-reset-token", nil, model.VerifyResetTokenRequest{Token: token}, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) ResetPassword(ctx context.Context, req model.ResetPasswordRequest) (string, error) {
	var res model.MessageResponse
	if err := c.do(ctx, apperr.OpResetPassword, http.MethodPost, "/auth/reset-password", nil, req, &res); err != nil {
		return "", err
	}
	return res.Message, nil
}
