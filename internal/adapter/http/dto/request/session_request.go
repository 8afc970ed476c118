package request

type LoginRequest struct {
	Email string `json:"email" binding:"required"`
	Name  string `json:"name"`
}
