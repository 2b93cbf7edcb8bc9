package presenter

import (
	authDTO "github.com/johnquangdev/tubeblog/internal/adapter/dto/auth"
	"github.com/johnquangdev/tubeblog/internal/domain/entities"
	"github.com/johnquangdev/tubeblog/internal/usecase/auth"
)

// ToUserResponse converts a User entity to UserResponse DTO
func ToUserResponse(u *entities.User) *authDTO.UserResponse {
	if u == nil {
		return nil
	}

	return &authDTO.UserResponse{
		ID:          u.ID.String(),
		Username:    u.Username,
		Email:       u.Email,
		LastLoginAt: u.LastLoginAt,
		CreatedAt:   u.CreatedAt,
	}
}

// ToAuthRefreshTokenResponse converts a usecase AuthResult to the refresh endpoint DTO
func ToAuthRefreshTokenResponse(result *auth.AuthResult) *authDTO.RefreshTokenResponse {
	if result == nil {
		return nil
	}
	return &authDTO.RefreshTokenResponse{
		AccessToken: result.AccessToken,
		ExpiresIn:   int(result.ExpiresIn),
		TokenType:   "Bearer",
	}
}

// ToAuthResponse converts a usecase AuthResult to DTO AuthResponse
func ToAuthResponse(result *auth.AuthResult) *authDTO.AuthResponse {
	if result == nil {
		return nil
	}

	return &authDTO.AuthResponse{
		AccessToken:  result.AccessToken,
		RefreshToken: result.RefreshToken,
		ExpiresIn:    int(result.ExpiresIn),
		TokenType:    "Bearer",
		User:         ToUserResponse(result.User),
	}
}
