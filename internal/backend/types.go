package backend

import (
	"encoding/json"

	"github.com/spf13/cast"
)

// Endpoints of the authentication API
const (
	EndpointSendCode         = "auth/send-code"
	EndpointSendRegisterCode = "auth/send-register-code"
	EndpointForgotPassword   = "auth/forgot-password"
	EndpointVerifyCode       = "auth/verify-code"
	EndpointVerifyCodeAuth   = "auth/verify-code-auth"
	EndpointLogin            = "auth/login"
	EndpointRegister         = "auth/register"
	EndpointResetPassword    = "auth/reset-password"
)

// envelope is the common response shape
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
}

// FlexString decodes a JSON string or number into a string
type FlexString string

func (f *FlexString) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	s, err := cast.ToStringE(v)
	if err != nil {
		return err
	}
	*f = FlexString(s)
	return nil
}

func (f FlexString) String() string {
	return string(f)
}

// CodeIssued is returned by the code issuing endpoints
type CodeIssued struct {
	Code FlexString `json:"code"`
}

// Verification is returned by auth/verify-code
type Verification struct {
	ResetToken string `json:"resetToken"`
}

// AuthSession is returned by auth/login and auth/register
type AuthSession struct {
	PhoneNumber  string     `json:"phoneNumber"`
	FullName     string     `json:"fullName"`
	Role         string     `json:"role"`
	Balans       FlexString `json:"balans"`
	AccessToken  string     `json:"accessToken"`
	RefreshToken string     `json:"refreshToken"`
}

// RegisterRequest is the payload of auth/register
type RegisterRequest struct {
	FullName    string `json:"fullName"`
	PhoneNumber string `json:"phoneNumber"`
	Password    string `json:"password"`
	Role        string `json:"role"`
	Code        string `json:"code"`
}

type sendCodeRequest struct {
	PhoneNumber string `json:"phoneNumber"`
	Action      string `json:"action,omitempty"`
	Source      string `json:"source,omitempty"`
}

type verifyCodeRequest struct {
	PhoneNumber string `json:"phoneNumber"`
	Code        string `json:"code"`
}

type loginRequest struct {
	PhoneNumber string `json:"phoneNumber"`
	Password    string `json:"password,omitempty"`
	Code        string `json:"code,omitempty"`
}

type resetPasswordRequest struct {
	ResetToken  string `json:"resetToken"`
	NewPassword string `json:"newPassword"`
}
