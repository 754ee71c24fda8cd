package dto

import (
	"quranku_backend/internals/features/users/profile/model"
)

type ProfileUpdateRequest struct {
	ProfileTimezone       *string                `json:"profile_timezone" validate:"omitempty,max=64"`
	ProfileHasanatVisible *bool                  `json:"profile_hasanat_visible"`
	ProfileFavoriteSurahs []int64                `json:"profile_favorite_surahs" validate:"omitempty,dive,min=1,max=114"`
	ProfilePreferences    map[string]interface{} `json:"profile_preferences"`
}

type ProfileResponse struct {
	ProfileUserID         string                 `json:"profile_user_id"`
	ProfileTimezone       string                 `json:"profile_timezone"`
	ProfileHasanatVisible bool                   `json:"profile_hasanat_visible"`
	ProfileFavoriteSurahs []int64                `json:"profile_favorite_surahs"`
	ProfilePreferences    map[string]interface{} `json:"profile_preferences"`
}

func ToProfileResponse(m *model.UserProfileModel) *ProfileResponse {
	return &ProfileResponse{
		ProfileUserID:         m.UserProfileUserID.String(),
		ProfileTimezone:       m.UserProfileTimezone,
		ProfileHasanatVisible: m.UserProfileHasanatVisible,
		ProfileFavoriteSurahs: m.UserProfileFavoriteSurahs,
		ProfilePreferences:    m.UserProfilePreferences,
	}
}
