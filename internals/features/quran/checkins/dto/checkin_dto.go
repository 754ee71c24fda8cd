package dto

import (
	"quranku_backend/internals/features/quran/checkins/model"
	"quranku_backend/internals/helpers/dateonly"
)

type CheckinRequest struct {
	CheckinDate      string `json:"checkin_date" validate:"omitempty,datetime=2006-01-02"` // default: hari ini (timezone user)
	CheckinAyatCount int    `json:"checkin_ayat_count" validate:"required,min=1"`
}

type CheckinResponse struct {
	CheckinDate         string `json:"checkin_date"`
	CheckinAyatCount    int    `json:"checkin_ayat_count"`
	CheckinLetterCount  int    `json:"checkin_letter_count"`
	CheckinHasanatCount int    `json:"checkin_hasanat_count"`
	CheckinSessionCount int    `json:"checkin_session_count"`
}

// Convert model → response
func ToCheckinResponse(m *model.QuranCheckinModel) *CheckinResponse {
	return &CheckinResponse{
		CheckinDate:         m.QuranCheckinDate.Format(dateonly.Layout),
		CheckinAyatCount:    m.QuranCheckinAyatCount,
		CheckinLetterCount:  m.QuranCheckinLetterCount,
		CheckinHasanatCount: m.QuranCheckinHasanatCount,
		CheckinSessionCount: m.QuranCheckinSessionCount,
	}
}

// Convert slice model → slice response
func ToCheckinResponseList(models []model.QuranCheckinModel) []CheckinResponse {
	result := make([]CheckinResponse, 0, len(models))
	for _, m := range models {
		result = append(result, *ToCheckinResponse(&m))
	}
	return result
}
