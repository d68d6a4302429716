package domain

// TokenPair is the result of a successful authentication or refresh: a
// short-lived access token plus a longer-lived refresh token, both signed.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}
