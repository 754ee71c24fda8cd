package service

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	checkinModel "quranku_backend/internals/features/quran/checkins/model"
	streakModel "quranku_backend/internals/features/quran/streaks/model"
	streakSvc "quranku_backend/internals/features/quran/streaks/service"
	"quranku_backend/internals/helpers/dateonly"
)

// MemberStat: ringkasan satu anggota dalam window leaderboard. Streak
// dievaluasi live (lapsed tampil 0) seperti di endpoint streak sendiri.
type MemberStat struct {
	UserID        uuid.UUID `json:"user_id"`
	Role          string    `json:"role"`
	TotalAyat     int       `json:"total_ayat"`
	TotalHasanat  int       `json:"total_hasanat"`
	CurrentStreak int       `json:"current_streak"`
	LongestStreak int       `json:"longest_streak"`
	ReadToday     bool      `json:"read_today"`
}

// FamilyStats: agregat satu family, bentuknya mengikuti layar family lama.
type FamilyStats struct {
	MemberCount      int          `json:"member_count"`
	MembersReadToday int          `json:"members_read_today"`
	TotalFamilyAyat  int          `json:"total_family_ayat"`
	AvgAyatPerMember int          `json:"avg_ayat_per_member"`
	FamilyStreakDays int          `json:"family_streak_days"`
	HouseLight       HouseLight   `json:"house_light"`
	HouseLightLabel  string       `json:"house_light_label"`
	Leaderboard      []MemberStat `json:"leaderboard"`
}

// SortLeaderboard urut hasanat terbanyak dulu; seri → ayat terbanyak, lalu
// user id supaya deterministik.
func SortLeaderboard(stats []MemberStat) {
	sort.Slice(stats, func(i, j int) bool {
		if stats[i].TotalHasanat != stats[j].TotalHasanat {
			return stats[i].TotalHasanat > stats[j].TotalHasanat
		}
		if stats[i].TotalAyat != stats[j].TotalAyat {
			return stats[i].TotalAyat > stats[j].TotalAyat
		}
		return stats[i].UserID.String() < stats[j].UserID.String()
	})
}

// FamilyStreakDays: streak "bareng" = semua anggota masih menjaga
// streak-nya, jadi minimum dari current streak live tiap anggota.
func FamilyStreakDays(currents []int) int {
	if len(currents) == 0 {
		return 0
	}
	min := currents[0]
	for _, c := range currents[1:] {
		if c < min {
			min = c
		}
	}
	return min
}

type memberTotals struct {
	UserID       uuid.UUID `gorm:"column:quran_checkin_user_id"`
	TotalAyat    int       `gorm:"column:total_ayat"`
	TotalHasanat int       `gorm:"column:total_hasanat"`
}

// Stats merangkum satu family untuk window [from, to]: leaderboard
// per anggota + agregat + visual rumah. "Hari ini" dipakai timezone
// requester — satu keluarga di-assume satu rumah tangga, bukan lintas benua.
func Stats(db *gorm.DB, familyID uint, requesterID uuid.UUID, from, to, today time.Time) (*FamilyStats, error) {
	members, err := Members(db, familyID, requesterID)
	if err != nil {
		return nil, err
	}

	userIDs := make([]uuid.UUID, 0, len(members))
	roleByUser := make(map[uuid.UUID]string, len(members))
	for _, m := range members {
		userIDs = append(userIDs, m.FamilyMemberUserID)
		roleByUser[m.FamilyMemberUserID] = m.FamilyMemberRole
	}

	// Total ayat & hasanat per anggota dalam window, satu query group-by
	var totals []memberTotals
	if err := db.Model(&checkinModel.QuranCheckinModel{}).
		Select("quran_checkin_user_id, "+
			"COALESCE(SUM(quran_checkin_ayat_count), 0) AS total_ayat, "+
			"COALESCE(SUM(quran_checkin_hasanat_count), 0) AS total_hasanat").
		Where("quran_checkin_user_id IN ?", userIDs).
		Where("quran_checkin_date BETWEEN ? AND ?", dateonly.From(from), dateonly.From(to)).
		Group("quran_checkin_user_id").
		Scan(&totals).Error; err != nil {
		return nil, err
	}
	totalsByUser := make(map[uuid.UUID]memberTotals, len(totals))
	for _, t := range totals {
		totalsByUser[t.UserID] = t
	}

	// Siapa saja yang sudah baca hari ini
	var readToday []uuid.UUID
	if err := db.Model(&checkinModel.QuranCheckinModel{}).
		Where("quran_checkin_user_id IN ?", userIDs).
		Where("quran_checkin_date = ?", dateonly.From(today)).
		Pluck("quran_checkin_user_id", &readToday).Error; err != nil {
		return nil, err
	}
	readTodaySet := make(map[uuid.UUID]struct{}, len(readToday))
	for _, id := range readToday {
		readTodaySet[id] = struct{}{}
	}

	// Streak row semua anggota sekali jalan, lapse dievaluasi live
	var streaks []streakModel.QuranStreakModel
	if err := db.Where("quran_streak_user_id IN ?", userIDs).
		Find(&streaks).Error; err != nil {
		return nil, err
	}
	streakByUser := make(map[uuid.UUID]streakModel.QuranStreakModel, len(streaks))
	for _, s := range streaks {
		streakByUser[s.QuranStreakUserID] = s
	}

	stats := &FamilyStats{MemberCount: len(members)}
	leaderboard := make([]MemberStat, 0, len(members))
	currents := make([]int, 0, len(members))
	for _, id := range userIDs {
		entry := MemberStat{UserID: id, Role: roleByUser[id]}
		if t, ok := totalsByUser[id]; ok {
			entry.TotalAyat = t.TotalAyat
			entry.TotalHasanat = t.TotalHasanat
		}
		if row, ok := streakByUser[id]; ok {
			state := streakSvc.StreakState{
				Current: row.QuranStreakCurrent,
				Longest: row.QuranStreakLongest,
			}
			if row.QuranStreakLastDate != nil {
				t := dateonly.Normalize(row.QuranStreakLastDate.Time)
				state.LastDate = &t
			}
			entry.LongestStreak = state.Longest
			if !streakSvc.IsLapsed(state, today) {
				entry.CurrentStreak = state.Current
			}
		}
		if _, ok := readTodaySet[id]; ok {
			entry.ReadToday = true
			stats.MembersReadToday++
		}
		stats.TotalFamilyAyat += entry.TotalAyat
		currents = append(currents, entry.CurrentStreak)
		leaderboard = append(leaderboard, entry)
	}
	SortLeaderboard(leaderboard)
	stats.Leaderboard = leaderboard

	if stats.MemberCount > 0 {
		stats.AvgAyatPerMember = stats.TotalFamilyAyat / stats.MemberCount
	}
	stats.FamilyStreakDays = FamilyStreakDays(currents)
	stats.HouseLight = CalcHouseLight(stats.MembersReadToday, stats.MemberCount, stats.FamilyStreakDays)
	stats.HouseLightLabel = HouseLightLabel(stats.HouseLight, stats.MembersReadToday, stats.MemberCount)
	return stats, nil
}
