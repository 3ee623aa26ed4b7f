package types

// SkillLevel is the closed set of proficiency levels for a skill.
type SkillLevel string

// Known skill levels, in ascending order of proficiency.
const (
	LevelBeginner     SkillLevel = "Beginner"
	LevelIntermediate SkillLevel = "Intermediate"
	LevelAdvanced     SkillLevel = "Advanced"
	LevelExpert       SkillLevel = "Expert"
)

// Valid reports whether the level is one of the four known values.
func (l SkillLevel) Valid() bool {
	switch l {
	case LevelBeginner, LevelIntermediate, LevelAdvanced, LevelExpert:
		return true
	}
	return false
}

// StyleClass returns the display style descriptor for the level. The
// mapping is presentation-only and has no effect on scoring. Unknown
// levels fall back to the Beginner style.
func (l SkillLevel) StyleClass() string {
	switch l {
	case LevelIntermediate:
		return "bg-slate-300 text-slate-800"
	case LevelAdvanced:
		return "bg-slate-400 text-slate-800"
	case LevelExpert:
		return "bg-slate-500 text-white"
	default:
		return "bg-slate-200 text-slate-800"
	}
}
