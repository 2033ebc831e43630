package domain

const (
	// RoleCustomer is the role name resolved against the server's role list
	// during customer registration.
	RoleCustomer = "customer"
	RoleProvider = "provider"
)

// Role is a server-defined category tag attached to a user. Roles are owned
// by the remote API; the client only resolves names to ids for submission.
type Role struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// ProviderProfile carries the business extension data attached to users
// registered as providers.
type ProviderProfile struct {
	BusinessName string `json:"businessName"`
	Rating       int    `json:"rating,omitempty"`
}

// ClientProfile is the customer-side extension record. The client never
// inspects its contents; presence alone marks role-specific data.
type ClientProfile struct {
	Notes string `json:"notes,omitempty"`
}

// User is the session record. ID is zero only in the window before the first
// successful registration or lookup; once assigned by the server it never
// changes. PhoneNumber is always the canonical +1XXXXXXXXXX form.
type User struct {
	ID              int              `json:"id"`
	PhoneNumber     string           `json:"phoneNumber"`
	Name            string           `json:"name"`
	Location        string           `json:"location"`
	Email           string           `json:"email,omitempty"`
	Roles           []Role           `json:"roles"`
	ProviderProfile *ProviderProfile `json:"providerProfile,omitempty"`
	ClientProfile   *ClientProfile   `json:"clientProfile,omitempty"`
}

// HasRole reports whether the user carries the named role.
func (u *User) HasRole(name string) bool {
	for _, r := range u.Roles {
		if r.Name == name {
			return true
		}
	}
	return false
}
