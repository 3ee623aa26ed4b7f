package types

import "strings"

// ValidateSkills checks a full skills replacement against the section
// invariants: names unique under case-insensitive comparison, levels from
// the known set. Callers validate before handing the list to the store;
// the store itself never holds an invalid section.
func ValidateSkills(skills []SkillItem) error {
	seen := make(map[string]bool, len(skills))
	for _, s := range skills {
		if !s.Level.Valid() {
			return &ErrInvalidSkillLevel{Level: s.Level}
		}
		key := strings.ToLower(strings.TrimSpace(s.Name))
		if seen[key] {
			return &ErrDuplicateSkill{Name: s.Name}
		}
		seen[key] = true
	}
	return nil
}

// ValidateProjects checks that each project's technologies contain no
// duplicate entries after trimming.
func ValidateProjects(projects []ProjectItem) error {
	for _, p := range projects {
		seen := make(map[string]bool, len(p.Technologies))
		for _, tech := range p.Technologies {
			key := strings.TrimSpace(tech)
			if seen[key] {
				return &ErrDuplicateTechnology{Project: p.Title, Technology: tech}
			}
			seen[key] = true
		}
	}
	return nil
}

// NormalizeExperience trims achievement entries and drops the empty ones,
// returning a new slice. Achievements are never persisted empty.
func NormalizeExperience(items []ExperienceItem) []ExperienceItem {
	normalized := make([]ExperienceItem, len(items))
	for i, item := range items {
		achievements := make([]string, 0, len(item.Achievements))
		for _, a := range item.Achievements {
			trimmed := strings.TrimSpace(a)
			if trimmed != "" {
				achievements = append(achievements, trimmed)
			}
		}
		item.Achievements = achievements
		normalized[i] = item
	}
	return normalized
}

// NormalizeProjects trims each project's technology entries, returning a
// new slice. Order is preserved.
func NormalizeProjects(projects []ProjectItem) []ProjectItem {
	normalized := make([]ProjectItem, len(projects))
	for i, p := range projects {
		technologies := make([]string, 0, len(p.Technologies))
		for _, tech := range p.Technologies {
			trimmed := strings.TrimSpace(tech)
			if trimmed != "" {
				technologies = append(technologies, trimmed)
			}
		}
		p.Technologies = technologies
		normalized[i] = p
	}
	return normalized
}
