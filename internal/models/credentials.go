package models

// CredentialMode selects which credential fields the first onboarding step uses.
type CredentialMode string

const (
	// ModeLogin uses email and password. No credential check is performed.
	ModeLogin CredentialMode = "LOGIN"
	// ModeSignup uses phone and a one-time code and creates an Account.
	ModeSignup CredentialMode = "SIGNUP"
)

// Credentials is the input of the first onboarding step. EmailOrPhone holds
// the email in login mode and the phone number in signup mode; Secret holds
// the password or the one-time code respectively.
type Credentials struct {
	Mode         CredentialMode `json:"mode"`
	EmailOrPhone string         `json:"emailOrPhone"`
	Secret       string         `json:"secret"`
}
