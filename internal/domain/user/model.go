package user

// Principal is the authenticated member behind a bearer token.
type Principal struct {
	UserID string
	Email  string
	Role   string
}
