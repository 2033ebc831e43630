package domain

// CustomProfile is a user-authored record kept entirely on this device.
// UserID links it to the owning User; the link is filtered by, never
// enforced. CreatedAt is an RFC 3339 timestamp stamped at creation time.
// Custom profiles are append-only: this client never updates or deletes one.
type CustomProfile struct {
	UserID      int    `json:"userId"`
	Title       string `json:"title"`
	Description string `json:"description"`
	CreatedAt   string `json:"createdAt"`
}
