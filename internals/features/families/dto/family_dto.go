package dto

import (
	"time"

	"github.com/google/uuid"

	"quranku_backend/internals/features/families/model"
	"quranku_backend/internals/features/families/service"
)

type CreateFamilyRequest struct {
	FamilyName string `json:"family_name" validate:"required,min=1,max=80"`
}

type CreateInviteRequest struct {
	InviteTTLMinutes int `json:"invite_ttl_minutes" validate:"omitempty,min=5,max=10080"` // default: 1440 (24 jam)
}

type RedeemInviteRequest struct {
	InviteCode string `json:"invite_code" validate:"required,min=4,max=12"`
}

type FamilyResponse struct {
	FamilyID        uint      `json:"family_id"`
	FamilyName      string    `json:"family_name"`
	FamilyCreatedBy uuid.UUID `json:"family_created_by"`
	FamilyRole      string    `json:"family_role,omitempty"` // role requester, hanya di listing
}

type FamilyMemberResponse struct {
	FamilyMemberUserID uuid.UUID `json:"family_member_user_id"`
	FamilyMemberRole   string    `json:"family_member_role"`
	JoinedAt           time.Time `json:"joined_at"`
}

type FamilyInviteResponse struct {
	FamilyInviteCode      string    `json:"family_invite_code"`
	FamilyInviteExpiresAt time.Time `json:"family_invite_expires_at"`
}

// Convert model → response
func ToFamilyResponse(m *model.FamilyModel) *FamilyResponse {
	return &FamilyResponse{
		FamilyID:        m.FamilyID,
		FamilyName:      m.FamilyName,
		FamilyCreatedBy: m.FamilyCreatedBy,
	}
}

func ToFamilyResponseList(rows []service.FamilyWithRole) []FamilyResponse {
	result := make([]FamilyResponse, 0, len(rows))
	for _, r := range rows {
		resp := ToFamilyResponse(&r.Family)
		resp.FamilyRole = r.Role
		result = append(result, *resp)
	}
	return result
}

func ToFamilyMemberResponseList(rows []model.FamilyMemberModel) []FamilyMemberResponse {
	result := make([]FamilyMemberResponse, 0, len(rows))
	for _, r := range rows {
		result = append(result, FamilyMemberResponse{
			FamilyMemberUserID: r.FamilyMemberUserID,
			FamilyMemberRole:   r.FamilyMemberRole,
			JoinedAt:           r.CreatedAt,
		})
	}
	return result
}

func ToFamilyInviteResponse(m *model.FamilyInviteModel) *FamilyInviteResponse {
	return &FamilyInviteResponse{
		FamilyInviteCode:      m.FamilyInviteCode,
		FamilyInviteExpiresAt: m.FamilyInviteExpiresAt,
	}
}
