package types

import "fmt"

// ErrDuplicateSkill indicates a skill name already appears in the list
// under case-insensitive comparison.
type ErrDuplicateSkill struct {
	Name string
}

func (e *ErrDuplicateSkill) Error() string {
	return fmt.Sprintf("duplicate skill name: %s", e.Name)
}

// ErrInvalidSkillLevel indicates a level outside the known set.
type ErrInvalidSkillLevel struct {
	Level SkillLevel
}

func (e *ErrInvalidSkillLevel) Error() string {
	return fmt.Sprintf("invalid skill level: %q", string(e.Level))
}

// ErrDuplicateTechnology indicates a project lists the same technology
// twice after trimming.
type ErrDuplicateTechnology struct {
	Project    string
	Technology string
}

func (e *ErrDuplicateTechnology) Error() string {
	return fmt.Sprintf("duplicate technology %q in project %q", e.Technology, e.Project)
}
