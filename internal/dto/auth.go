package dto

// RegisterRequest creates a new user profile with an empty ledger.
type RegisterRequest struct {
	Name string `json:"name" binding:"required"`
	PIN  string `json:"pin" binding:"required,len=4,numeric"`
}

// LoginRequest checks a name/PIN pair against the stored profile.
type LoginRequest struct {
	Name string `json:"name" binding:"required"`
	PIN  string `json:"pin" binding:"required"`
}

// AuthResponse returns the session token and the profile for the UI.
type AuthResponse struct {
	Token   string          `json:"token"`
	Profile ProfileResponse `json:"profile"`
}

// ProfileResponse is the profile as exposed to the client. The PIN is never
// echoed back.
type ProfileResponse struct {
	Name         string `json:"name"`
	Theme        string `json:"theme"`
	HasOnboarded bool   `json:"hasOnboarded"`
}
