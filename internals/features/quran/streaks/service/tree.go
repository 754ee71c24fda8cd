package service

// Visual "pohon Qur'an" di home screen: stage mengikuti panjang streak,
// variant jadi wilting kalau streak sedang lapsed.

type TreeStage string

const (
	TreeSprout  TreeStage = "sprout"  // 1–2 hari
	TreeSapling TreeStage = "sapling" // 3–9 hari
	TreeYoung   TreeStage = "young"   // 10–29 hari
	TreeMature  TreeStage = "mature"  // 30–99 hari
	TreeAncient TreeStage = "ancient" // >= 100 hari
)

type TreeVariant string

const (
	TreeHealthy TreeVariant = "healthy"
	TreeWilting TreeVariant = "wilting"
)

func StageFor(currentStreakDays int) TreeStage {
	switch {
	case currentStreakDays >= 100:
		return TreeAncient
	case currentStreakDays >= 30:
		return TreeMature
	case currentStreakDays >= 10:
		return TreeYoung
	case currentStreakDays >= 3:
		return TreeSapling
	default:
		return TreeSprout
	}
}

func VariantFor(lapsed bool) TreeVariant {
	if lapsed {
		return TreeWilting
	}
	return TreeHealthy
}
