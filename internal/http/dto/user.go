package dto

import (
	"time"

	"atlasorg.app/console/internal/model"
	"atlasorg.app/console/internal/service"
)

type UserResponse struct {
	ID          int64     `json:"id,string"`
	Name        string    `json:"name"`
	Username    string    `json:"username"`
	Email       string    `json:"email"`
	IsActive    bool      `json:"is_active"`
	IsSuperuser bool      `json:"is_superuser"`
	DateJoined  time.Time `json:"date_joined"`
}

func ToUserResponse(u *model.User) *UserResponse {
	return &UserResponse{
		ID:          u.ID,
		Name:        u.Name,
		Username:    u.Username,
		Email:       u.Email,
		IsActive:    u.IsActive,
		IsSuperuser: u.IsSuperuser,
		DateJoined:  u.CreatedAt,
	}
}

type IdentityResponse struct {
	ID         int64     `json:"id,string"`
	Provider   string    `json:"provider"`
	ExternalID string    `json:"external_id"`
	DateAdded  time.Time `json:"date_added"`
}

type UserDetailsResponse struct {
	UserResponse
	Identities []IdentityResponse `json:"identities,omitempty"`
}

func ToUserDetailsResponse(details *service.UserDetails) *UserDetailsResponse {
	resp := &UserDetailsResponse{UserResponse: *ToUserResponse(details.User)}
	if details.Identities != nil {
		resp.Identities = make([]IdentityResponse, len(details.Identities))
		for i, identity := range details.Identities {
			resp.Identities[i] = IdentityResponse{
				ID:         identity.ID,
				Provider:   identity.Provider,
				ExternalID: identity.ExternalID,
				DateAdded:  identity.CreatedAt,
			}
		}
	}
	return resp
}

type UpdateUserOptions struct {
	SeenReleaseBroadcast *bool `json:"seen_release_broadcast,omitempty"`
}

type UpdateUserRequest struct {
	Name     *string            `json:"name,omitempty" binding:"omitempty,min=1,max=255"`
	Username *string            `json:"username,omitempty" binding:"omitempty,min=1,max=128"`
	Email    *string            `json:"email,omitempty" binding:"omitempty,email,max=255"`
	IsActive *bool              `json:"is_active,omitempty"`
	Options  *UpdateUserOptions `json:"options,omitempty"`
}

func (r *UpdateUserRequest) ToProfileUpdate() service.ProfileUpdate {
	update := service.ProfileUpdate{
		Name:     r.Name,
		Username: r.Username,
		Email:    r.Email,
		IsActive: r.IsActive,
	}
	if r.Options != nil {
		update.SeenReleaseBroadcast = r.Options.SeenReleaseBroadcast
	}
	return update
}

type CloseAccountRequest struct {
	// Slugs of owned organizations to delete along with the account.
	Organizations []string `json:"organizations"`
}
