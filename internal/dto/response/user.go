package response

import "video-rental/internal/data/entity"

// UserResponse never carries the password hash
type UserResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	IsAdmin bool   `json:"isAdmin"`
}

func UserToResponse(user *entity.User) UserResponse {
	return UserResponse{
		ID:      user.ID.String(),
		Name:    user.Name,
		Email:   user.Email,
		IsAdmin: user.IsAdmin,
	}
}

func UsersToResponse(users []*entity.User) []UserResponse {
	out := make([]UserResponse, len(users))
	for i, user := range users {
		out[i] = UserToResponse(user)
	}
	return out
}
