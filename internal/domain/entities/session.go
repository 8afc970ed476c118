package entities

// LocalSessionID is the fixed identity of the single-tenant session. Login is
// a placeholder: any email/name pair succeeds and always maps to this id.
const LocalSessionID = "local"

// Session is the single persisted "who is using the application" marker.
type Session struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}
