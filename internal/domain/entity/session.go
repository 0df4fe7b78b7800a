package entity

// Session identifies the authenticated caller of a workflow operation.
// It is built once from a verified ID token and passed explicitly into every
// use case; nothing reads the current user from ambient global state.
type Session struct {
	UserID string `json:"user_id"`
}
