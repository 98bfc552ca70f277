package domain

// Actor identifies who is making a request: an authenticated user, an
// anonymous wizard session, or both while a fresh login has not claimed its
// session's cases yet.
type Actor struct {
	// UserID is set for authenticated requests.
	UserID UserID
	// SessionID is the anonymous session supplied by the client, if any.
	SessionID SessionID
}

// Authenticated reports whether the actor carries a user identity.
func (a Actor) Authenticated() bool {
	return !a.UserID.IsZero()
}

// Owns reports whether the actor may act on the case. Users own the cases
// carrying their ID. A session owns the unclaimed cases it created, which
// also covers a just-logged-in user still holding pre-login cases.
func (a Actor) Owns(c *Case) bool {
	if c == nil {
		return false
	}
	if a.Authenticated() && c.UserID == a.UserID {
		return true
	}

	return c.Anonymous() && !a.SessionID.IsZero() && c.AnonSessionID == a.SessionID
}
