package gateway

// loginRequest is the payload the login service expects.
type loginRequest struct {
	Audience     string `json:"audience"`
	UserEmail    string `json:"userEmail"`
	UserPassword string `json:"userPassword"`
}

// tokenResponse holds the only field read from the login answer.
// encoding/json matches keys case-insensitively, so "AccessToken" is accepted too.
type tokenResponse struct {
	AccessToken string `json:"accessToken"`
}
