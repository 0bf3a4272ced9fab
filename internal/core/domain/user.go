package domain

// Theme is the user's display preference.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// UserProfile holds the per-user settings created at registration.
// The PIN is a UI gate, stored as the opaque string the user entered; it is
// not a cryptographic credential.
type UserProfile struct {
	Name         string `json:"name"`
	PIN          string `json:"pin"`
	Theme        Theme  `json:"theme"`
	HasOnboarded bool   `json:"hasOnboarded"`
}

// UserRecord is the whole persisted state of one user: profile plus ledger.
// The persistence collaborator reads and writes it as a unit; there is no
// partial-update protocol.
type UserRecord struct {
	Profile UserProfile `json:"profile"`
	Entries []Entry     `json:"transactions"`
}
