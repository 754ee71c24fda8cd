package model

import (
	"time"

	"github.com/google/uuid"
)

// FamilyModel: grup kecil untuk saling menyemangati baca Qur'an. Pembuat
// otomatis jadi member dengan role owner.
type FamilyModel struct {
	FamilyID        uint      `gorm:"column:family_id;primaryKey" json:"family_id"`
	FamilyName      string    `gorm:"column:family_name;type:varchar(80);not null" json:"family_name"`
	FamilyCreatedBy uuid.UUID `gorm:"column:family_created_by;type:uuid;not null" json:"family_created_by"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (FamilyModel) TableName() string {
	return "families"
}

// FamilyMemberModel: keanggotaan user di satu family. Maksimal satu baris
// per (family, user); redeem undangan ulang tidak bikin duplikat.
type FamilyMemberModel struct {
	FamilyMemberID       uint      `gorm:"column:family_member_id;primaryKey" json:"family_member_id"`
	FamilyMemberFamilyID uint      `gorm:"column:family_member_family_id;not null;uniqueIndex:idx_family_member_family_user" json:"family_member_family_id"`
	FamilyMemberUserID   uuid.UUID `gorm:"column:family_member_user_id;type:uuid;not null;uniqueIndex:idx_family_member_family_user" json:"family_member_user_id"`
	FamilyMemberRole     string    `gorm:"column:family_member_role;type:varchar(16);not null;default:'member'" json:"family_member_role"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (FamilyMemberModel) TableName() string {
	return "family_members"
}

// FamilyInviteModel: kode undangan sekali-generate dengan masa berlaku.
// Kode tidak dihapus saat dipakai; satu kode boleh dipakai beberapa orang
// selama belum kedaluwarsa (keluarga biasanya di-invite barengan).
type FamilyInviteModel struct {
	FamilyInviteID        uint      `gorm:"column:family_invite_id;primaryKey" json:"family_invite_id"`
	FamilyInviteFamilyID  uint      `gorm:"column:family_invite_family_id;not null;index" json:"family_invite_family_id"`
	FamilyInviteCode      string    `gorm:"column:family_invite_code;type:varchar(12);not null;uniqueIndex" json:"family_invite_code"`
	FamilyInviteExpiresAt time.Time `gorm:"column:family_invite_expires_at;not null" json:"family_invite_expires_at"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (FamilyInviteModel) TableName() string {
	return "family_invites"
}
