package vo

import "errors"

var ErrInvalidCredentials = errors.New("invalid credentials")

type AuthLogin struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}
