package core

// Lookup fields are closed sets. The zero value of every lookup type is
// invalid so an unset field fails validation instead of persisting as a
// meaningless 0.

type SkillCategory int

const (
	SkillCategoryMental SkillCategory = iota + 1
	SkillCategoryMentalHealth
	SkillCategoryPhysical
	SkillCategoryPhysicalHealth
)

func (c SkillCategory) Valid() bool {
	return c >= SkillCategoryMental && c <= SkillCategoryPhysicalHealth
}

func (c SkillCategory) String() string {
	switch c {
	case SkillCategoryMental:
		return "Mental"
	case SkillCategoryMentalHealth:
		return "Mental (health)"
	case SkillCategoryPhysical:
		return "Physical"
	case SkillCategoryPhysicalHealth:
		return "Physical (health)"
	}
	return "Unknown"
}

type SkillDifficulty int

const (
	SkillDifficultyEasy SkillDifficulty = iota + 1
	SkillDifficultyAverage
	SkillDifficultyHard
	SkillDifficultyVeryHard
)

func (d SkillDifficulty) Valid() bool {
	return d >= SkillDifficultyEasy && d <= SkillDifficultyVeryHard
}

func (d SkillDifficulty) String() string {
	switch d {
	case SkillDifficultyEasy:
		return "Easy"
	case SkillDifficultyAverage:
		return "Average"
	case SkillDifficultyHard:
		return "Hard"
	case SkillDifficultyVeryHard:
		return "Very Hard"
	}
	return "Unknown"
}

type SpellDifficulty int

const (
	SpellDifficultyHard SpellDifficulty = iota + 1
	SpellDifficultyVeryHard
)

func (d SpellDifficulty) Valid() bool {
	return d == SpellDifficultyHard || d == SpellDifficultyVeryHard
}

func (d SpellDifficulty) String() string {
	switch d {
	case SpellDifficultyHard:
		return "Hard"
	case SpellDifficultyVeryHard:
		return "Very Hard"
	}
	return "Unknown"
}

// Appearance levels follow the GURPS 3e reaction ladder.
type Appearance int

const (
	AppearanceHideous Appearance = iota + 1
	AppearanceUgly
	AppearanceUnattractive
	AppearanceAverage
	AppearanceAttractive
	AppearanceHandsome
	AppearanceVeryHandsome
)

func (a Appearance) Valid() bool {
	return a >= AppearanceHideous && a <= AppearanceVeryHandsome
}

func (a Appearance) String() string {
	switch a {
	case AppearanceHideous:
		return "Hideous"
	case AppearanceUgly:
		return "Ugly"
	case AppearanceUnattractive:
		return "Unattractive"
	case AppearanceAverage:
		return "Average"
	case AppearanceAttractive:
		return "Attractive"
	case AppearanceHandsome:
		return "Handsome"
	case AppearanceVeryHandsome:
		return "Very Handsome"
	}
	return "Unknown"
}

// Wealth levels follow the GURPS 3e wealth ladder.
type Wealth int

const (
	WealthDeadBroke Wealth = iota + 1
	WealthPoor
	WealthStruggling
	WealthAverage
	WealthComfortable
	WealthWealthy
	WealthVeryWealthy
	WealthFilthyRich
)

func (w Wealth) Valid() bool {
	return w >= WealthDeadBroke && w <= WealthFilthyRich
}

func (w Wealth) String() string {
	switch w {
	case WealthDeadBroke:
		return "Dead Broke"
	case WealthPoor:
		return "Poor"
	case WealthStruggling:
		return "Struggling"
	case WealthAverage:
		return "Average"
	case WealthComfortable:
		return "Comfortable"
	case WealthWealthy:
		return "Wealthy"
	case WealthVeryWealthy:
		return "Very Wealthy"
	case WealthFilthyRich:
		return "Filthy Rich"
	}
	return "Unknown"
}

type EideticMemory int

const (
	EideticMemoryNone EideticMemory = iota + 1
	EideticMemoryPartial
	EideticMemoryFull
)

func (m EideticMemory) Valid() bool {
	return m >= EideticMemoryNone && m <= EideticMemoryFull
}

func (m EideticMemory) String() string {
	switch m {
	case EideticMemoryNone:
		return "None"
	case EideticMemoryPartial:
		return "Partial"
	case EideticMemoryFull:
		return "Full"
	}
	return "Unknown"
}

type MuscleMemory int

const (
	MuscleMemoryNone MuscleMemory = iota + 1
	MuscleMemoryPartial
	MuscleMemoryFull
)

func (m MuscleMemory) Valid() bool {
	return m >= MuscleMemoryNone && m <= MuscleMemoryFull
}

func (m MuscleMemory) String() string {
	switch m {
	case MuscleMemoryNone:
		return "None"
	case MuscleMemoryPartial:
		return "Partial"
	case MuscleMemoryFull:
		return "Full"
	}
	return "Unknown"
}
