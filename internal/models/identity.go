package models

// Identity is a verified Google account.
type Identity struct {
	UID   string `json:"uid"`
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

// Credential carries whatever the caller presented: a bearer ID token or a
// session cookie.
type Credential struct {
	Bearer  string
	Session string
}

func (c Credential) Empty() bool {
	return c.Bearer == "" && c.Session == ""
}
