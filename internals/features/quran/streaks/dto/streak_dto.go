package dto

import (
	"time"

	"quranku_backend/internals/features/quran/streaks/model"
	streakSvc "quranku_backend/internals/features/quran/streaks/service"
	"quranku_backend/internals/helpers/dateonly"
)

type StreakResponse struct {
	StreakCurrent     int     `json:"streak_current"`
	StreakLongest     int     `json:"streak_longest"`
	StreakLastDate    *string `json:"streak_last_date"`
	StreakLapsed      bool    `json:"streak_lapsed"`
	StreakTreeStage   string  `json:"streak_tree_stage"`
	StreakTreeVariant string  `json:"streak_tree_variant"`
}

// ToStreakResponse mengevaluasi lapse terhadap "hari ini" di timezone user:
// record yang tersimpan tidak diubah, hanya tampilannya yang jadi 0.
func ToStreakResponse(m *model.QuranStreakModel, today time.Time) *StreakResponse {
	state := streakSvc.StreakState{
		Current: m.QuranStreakCurrent,
		Longest: m.QuranStreakLongest,
	}
	if m.QuranStreakLastDate != nil && !m.QuranStreakLastDate.Time.IsZero() {
		t := dateonly.Normalize(m.QuranStreakLastDate.Time)
		state.LastDate = &t
	}

	lapsed := streakSvc.IsLapsed(state, today)
	current := state.Current
	if lapsed {
		current = 0
	}

	resp := &StreakResponse{
		StreakCurrent:     current,
		StreakLongest:     state.Longest,
		StreakLapsed:      lapsed,
		StreakTreeStage:   string(streakSvc.StageFor(current)),
		StreakTreeVariant: string(streakSvc.VariantFor(lapsed)),
	}
	if state.LastDate != nil {
		s := state.LastDate.Format(dateonly.Layout)
		resp.StreakLastDate = &s
	}
	return resp
}
