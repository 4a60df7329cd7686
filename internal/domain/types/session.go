package types

// Session is the persisted "who is logged in" marker.
// The zero value means nobody is logged in.
type Session struct {
	Email string `json:"email,omitempty"`
}

// Active reports whether a user is logged in.
func (s Session) Active() bool { return s.Email != "" }
