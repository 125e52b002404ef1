package backend

import "context"

// SendCode requests a one-time code for action (login or register)
func (c *Client) SendCode(ctx context.Context, phone, action string) (*CodeIssued, error) {
	var out CodeIssued
	if err := c.post(ctx, EndpointSendCode, sendCodeRequest{PhoneNumber: phone, Action: action}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SendRegisterCode requests a registration code
func (c *Client) SendRegisterCode(ctx context.Context, phone string) (*CodeIssued, error) {
	var out CodeIssued
	if err := c.post(ctx, EndpointSendRegisterCode, sendCodeRequest{PhoneNumber: phone, Source: "register"}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ForgotPassword requests a password recovery code
func (c *Client) ForgotPassword(ctx context.Context, phone string) (*CodeIssued, error) {
	var out CodeIssued
	if err := c.post(ctx, EndpointForgotPassword, sendCodeRequest{PhoneNumber: phone, Source: "bot"}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// VerifyCode checks a recovery or registration code
func (c *Client) VerifyCode(ctx context.Context, phone, code string) (*Verification, error) {
	var out Verification
	if err := c.post(ctx, EndpointVerifyCode, verifyCodeRequest{PhoneNumber: phone, Code: code}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// VerifyCodeAuth checks a login code
func (c *Client) VerifyCodeAuth(ctx context.Context, phone, code string) error {
	return c.post(ctx, EndpointVerifyCodeAuth, verifyCodeRequest{PhoneNumber: phone, Code: code}, nil)
}

// Login authenticates with a password
func (c *Client) Login(ctx context.Context, phone, password string) (*AuthSession, error) {
	return c.login(ctx, loginRequest{PhoneNumber: phone, Password: password})
}

// LoginWithCode authenticates with an already verified code
func (c *Client) LoginWithCode(ctx context.Context, phone, code string) (*AuthSession, error) {
	return c.login(ctx, loginRequest{PhoneNumber: phone, Code: code})
}

func (c *Client) login(ctx context.Context, req loginRequest) (*AuthSession, error) {
	var out AuthSession
	if err := c.post(ctx, EndpointLogin, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Register creates an account
func (c *Client) Register(ctx context.Context, req RegisterRequest) (*AuthSession, error) {
	var out AuthSession
	if err := c.post(ctx, EndpointRegister, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ResetPassword sets a new password using a reset token
func (c *Client) ResetPassword(ctx context.Context, resetToken, newPassword string) error {
	return c.post(ctx, EndpointResetPassword, resetPasswordRequest{ResetToken: resetToken, NewPassword: newPassword}, nil)
}
