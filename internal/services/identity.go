package services

// Identity is the authenticated caller, built by the auth middleware from
// validated JWT claims and passed to every protected operation. Admin is
// derived from the configured allow-list, not from the token.
type Identity struct {
	UserID string
	Email  string
	Admin  bool
}
