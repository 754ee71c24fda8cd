package dto

import (
	"time"

	"quranku_backend/internals/features/quran/sessions/model"
	"quranku_backend/internals/helpers/dateonly"
)

type ReadingSessionRequest struct {
	SessionSurahNumber int    `json:"session_surah_number" validate:"required,min=1,max=114"`
	SessionAyatStart   int    `json:"session_ayat_start" validate:"required,min=1"`
	SessionAyatEnd     int    `json:"session_ayat_end" validate:"required,gtefield=SessionAyatStart"`
	SessionOccurredAt  string `json:"session_occurred_at" validate:"omitempty"` // RFC3339, default: sekarang
}

type ReadingSessionResponse struct {
	SessionID            uint   `json:"session_id"`
	SessionSurahNumber   int    `json:"session_surah_number"`
	SessionAyatStart     int    `json:"session_ayat_start"`
	SessionAyatEnd       int    `json:"session_ayat_end"`
	SessionOccurredAt    string `json:"session_occurred_at"`
	SessionDerivedDate   string `json:"session_derived_date"`
	SessionLetterCount   int    `json:"session_letter_count"`
	SessionHasanatEarned int    `json:"session_hasanat_earned"`
}

func ToReadingSessionResponse(m *model.QuranReadingSessionModel) *ReadingSessionResponse {
	return &ReadingSessionResponse{
		SessionID:            m.QuranReadingSessionID,
		SessionSurahNumber:   m.QuranReadingSessionSurahNumber,
		SessionAyatStart:     m.QuranReadingSessionAyatStart,
		SessionAyatEnd:       m.QuranReadingSessionAyatEnd,
		SessionOccurredAt:    m.QuranReadingSessionOccurredAt.UTC().Format(time.RFC3339),
		SessionDerivedDate:   m.QuranReadingSessionDerivedDate.Format(dateonly.Layout),
		SessionLetterCount:   m.QuranReadingSessionLetterCount,
		SessionHasanatEarned: m.QuranReadingSessionHasanatEarned,
	}
}

func ToReadingSessionResponseList(models []model.QuranReadingSessionModel) []ReadingSessionResponse {
	result := make([]ReadingSessionResponse, 0, len(models))
	for _, m := range models {
		result = append(result, *ToReadingSessionResponse(&m))
	}
	return result
}
