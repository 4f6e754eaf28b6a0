package model

// ProviderUserInfo is the decoded userinfo document returned by the identity
// provider after a successful code exchange. Only the subject is required;
// the rest is profile sugar.
type ProviderUserInfo struct {
	Subject string `json:"sub"`
	Email   string `json:"email"`
	Name    string `json:"name"`
	Picture string `json:"picture"`
}
