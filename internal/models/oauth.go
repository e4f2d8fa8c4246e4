package models

// OAuthUser is the identity returned by an OAuth provider.
type OAuthUser struct {
	Provider      string
	ProviderID    string
	Email         string
	EmailVerified bool
	Name          string
	Picture       string
}
