package models

// Token is the body returned by /register and /login.
type Token struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// BearerToken wraps a signed token string in the response shape clients expect.
func BearerToken(signed string) Token {
	return Token{AccessToken: signed, TokenType: "bearer"}
}
