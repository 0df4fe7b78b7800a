package entity

// UserProfile is the stored profile for an account. The document ID equals
// the auth provider's account ID.
type UserProfile struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Phone     string `json:"phone"`
	PushToken string `json:"push_token"` // Opaque device token; empty when the device never registered one.
}

// HasPushToken reports whether push delivery can be attempted for this user.
// Without a token, dispatch degrades to record-only.
func (u *UserProfile) HasPushToken() bool {
	return u != nil && u.PushToken != ""
}
