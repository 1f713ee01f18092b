package models

import "github.com/asidorov/MRS-ReservationService/internal/domain"

// UserRequest запрос на создание или изменение пользователя
type UserRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// UserResponse ответ с данными пользователя
type UserResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// UserListResponse ответ со списком пользователей
type UserListResponse struct {
	Users []UserResponse `json:"users"`
}

// ToDomainUser конвертирует запрос в domain модель
func (r *UserRequest) ToDomainUser() *domain.User {
	return &domain.User{
		Name:  r.Name,
		Email: r.Email,
	}
}

// FromDomainUser конвертирует domain модель в DTO
func FromDomainUser(user *domain.User) *UserResponse {
	if user == nil {
		return nil
	}
	return &UserResponse{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
	}
}

// FromDomainUserList конвертирует список domain моделей в DTO
func FromDomainUserList(users []*domain.User) *UserListResponse {
	resp := &UserListResponse{Users: make([]UserResponse, 0, len(users))}
	for _, user := range users {
		if userResp := FromDomainUser(user); userResp != nil {
			resp.Users = append(resp.Users, *userResp)
		}
	}
	return resp
}
