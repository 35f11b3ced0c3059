package entity

// Caller is the verified identity attached to a request.
// It is an immutable value passed explicitly to every access check.
type Caller struct {
	Subject  string // External identity; empty for anonymous callers.
	Issuer   string
	Email    string
	Name     string
	ImageURL string
}

// Anonymous returns a caller without identity claims.
func Anonymous() Caller {
	return Caller{}
}

// IsAuthenticated reports whether the caller carries a subject.
func (c Caller) IsAuthenticated() bool {
	return c.Subject != ""
}
