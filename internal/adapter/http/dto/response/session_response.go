package response

import "github.com/santluz/Oficina-sub000/internal/domain/entities"

type SessionResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

func FromSession(s entities.Session) SessionResponse {
	return SessionResponse{ID: s.ID, Email: s.Email, Name: s.Name}
}
