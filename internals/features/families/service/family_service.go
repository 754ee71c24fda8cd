package service

import (
	"crypto/rand"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"quranku_backend/internals/features/families/model"
)

var (
	// ErrNotFamilyMember: requester bukan anggota family tsb.
	ErrNotFamilyMember = errors.New("family: bukan anggota family ini")
	// ErrInviteInvalid: kode undangan tidak ada atau sudah kedaluwarsa.
	ErrInviteInvalid = errors.New("family: kode undangan tidak valid atau kedaluwarsa")
)

// DefaultInviteTTL masa berlaku kode undangan kalau client tidak minta.
const DefaultInviteTTL = 24 * time.Hour

// charset tanpa karakter ambigu (0/O, 1/I/L), kode sering dibacakan lisan
// antar anggota keluarga.
const inviteCharset = "ABCDEFGHJKMNPQRSTUVWXYZ23456789"

const inviteCodeLen = 8

// GenerateInviteCode bikin kode undangan acak 8 karakter.
func GenerateInviteCode() (string, error) {
	buf := make([]byte, inviteCodeLen)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("family: gagal generate kode: %w", err)
	}
	for i, b := range buf {
		buf[i] = inviteCharset[int(b)%len(inviteCharset)]
	}
	return string(buf), nil
}

// CreateFamily membuat family baru; pembuat langsung masuk sebagai owner
// dalam transaksi yang sama.
func CreateFamily(db *gorm.DB, ownerID uuid.UUID, name string) (*model.FamilyModel, error) {
	family := model.FamilyModel{
		FamilyName:      name,
		FamilyCreatedBy: ownerID,
	}
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&family).Error; err != nil {
			return err
		}
		owner := model.FamilyMemberModel{
			FamilyMemberFamilyID: family.FamilyID,
			FamilyMemberUserID:   ownerID,
			FamilyMemberRole:     "owner",
		}
		return tx.Create(&owner).Error
	})
	if err != nil {
		return nil, err
	}
	return &family, nil
}

// MemberOf cek keanggotaan; dipakai semua endpoint family sebagai guard.
func MemberOf(db *gorm.DB, familyID uint, userID uuid.UUID) (bool, error) {
	var n int64
	err := db.Model(&model.FamilyMemberModel{}).
		Where("family_member_family_id = ? AND family_member_user_id = ?", familyID, userID).
		Count(&n).Error
	return n > 0, err
}

// FamilyWithRole: family + role user yang bertanya di dalamnya.
type FamilyWithRole struct {
	Family model.FamilyModel
	Role   string
}

// MyFamilies daftar family yang diikuti user.
func MyFamilies(db *gorm.DB, userID uuid.UUID) ([]FamilyWithRole, error) {
	var members []model.FamilyMemberModel
	if err := db.Where("family_member_user_id = ?", userID).
		Order("created_at ASC").
		Find(&members).Error; err != nil {
		return nil, err
	}
	if len(members) == 0 {
		return []FamilyWithRole{}, nil
	}

	ids := make([]uint, 0, len(members))
	roleByFamily := make(map[uint]string, len(members))
	for _, m := range members {
		ids = append(ids, m.FamilyMemberFamilyID)
		roleByFamily[m.FamilyMemberFamilyID] = m.FamilyMemberRole
	}

	var families []model.FamilyModel
	if err := db.Where("family_id IN ?", ids).Find(&families).Error; err != nil {
		return nil, err
	}

	out := make([]FamilyWithRole, 0, len(families))
	for _, f := range families {
		out = append(out, FamilyWithRole{Family: f, Role: roleByFamily[f.FamilyID]})
	}
	return out, nil
}

// Members daftar anggota satu family (requester wajib anggota).
func Members(db *gorm.DB, familyID uint, requesterID uuid.UUID) ([]model.FamilyMemberModel, error) {
	ok, err := MemberOf(db, familyID, requesterID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrNotFamilyMember
	}

	var rows []model.FamilyMemberModel
	err = db.Where("family_member_family_id = ?", familyID).
		Order("created_at ASC").
		Find(&rows).Error
	return rows, err
}

// CreateInvite bikin kode undangan baru untuk family (requester wajib
// anggota, tidak harus owner — semua anggota boleh mengajak).
func CreateInvite(db *gorm.DB, familyID uint, requesterID uuid.UUID, ttl time.Duration) (*model.FamilyInviteModel, error) {
	ok, err := MemberOf(db, familyID, requesterID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrNotFamilyMember
	}
	if ttl <= 0 {
		ttl = DefaultInviteTTL
	}

	// retry kecil kalau kode tabrakan dengan yang sudah ada
	for attempt := 0; attempt < 3; attempt++ {
		code, err := GenerateInviteCode()
		if err != nil {
			return nil, err
		}
		invite := model.FamilyInviteModel{
			FamilyInviteFamilyID:  familyID,
			FamilyInviteCode:      code,
			FamilyInviteExpiresAt: time.Now().UTC().Add(ttl),
		}
		result := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "family_invite_code"}},
			DoNothing: true,
		}).Create(&invite)
		if result.Error != nil {
			return nil, result.Error
		}
		if result.RowsAffected > 0 {
			return &invite, nil
		}
	}
	return nil, errors.New("family: gagal generate kode unik")
}

// RedeemInvite gabung ke family lewat kode. Idempotent: redeem ulang oleh
// anggota yang sudah masuk bukan error.
func RedeemInvite(db *gorm.DB, userID uuid.UUID, code string) (*model.FamilyModel, error) {
	var invite model.FamilyInviteModel
	err := db.Where("family_invite_code = ? AND family_invite_expires_at > ?",
		code, time.Now().UTC()).
		First(&invite).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrInviteInvalid
	}
	if err != nil {
		return nil, err
	}

	member := model.FamilyMemberModel{
		FamilyMemberFamilyID: invite.FamilyInviteFamilyID,
		FamilyMemberUserID:   userID,
		FamilyMemberRole:     "member",
	}
	if err := db.Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "family_member_family_id"},
			{Name: "family_member_user_id"},
		},
		DoNothing: true,
	}).Create(&member).Error; err != nil {
		return nil, err
	}

	var family model.FamilyModel
	if err := db.First(&family, "family_id = ?", invite.FamilyInviteFamilyID).Error; err != nil {
		return nil, err
	}
	return &family, nil
}
