package lawyer

import (
	"strings"

	"legalassist/models"
)

// MatchSpecialization is the single place the specialization rule lives.
// The profile's specialization must equal want exactly. With includeExpertise,
// membership in the expertise list also counts.
func MatchSpecialization(p *models.LawyerProfile, want string, includeExpertise bool) bool {
	if want == "" {
		return true
	}
	if p.Specialization == want {
		return true
	}
	if !includeExpertise {
		return false
	}
	for _, e := range p.Expertise {
		if e == want {
			return true
		}
	}
	return false
}

// MatchLocation is a case-insensitive substring test.
func MatchLocation(p *models.LawyerProfile, want string) bool {
	if want == "" {
		return true
	}
	return strings.Contains(strings.ToLower(p.Location), strings.ToLower(want))
}

// MatchExperience applies the bucket for level. Unknown levels do not filter.
func MatchExperience(p *models.LawyerProfile, level string) bool {
	min, max, ok := ExperienceRange(level)
	if !ok {
		return true
	}
	return p.YearsOfExperience >= min && p.YearsOfExperience <= max
}

// Matches reports whether a lawyer satisfies every supplied criterion.
// Users without a profile never match.
func Matches(u *models.User, c models.SearchCriteria) bool {
	p := u.LawyerProfile
	if p == nil {
		return false
	}
	return MatchSpecialization(p, c.Specialization, c.IncludeExpertise) &&
		MatchLocation(p, c.Location) &&
		MatchExperience(p, c.ExperienceLevel)
}

// Filter returns the lawyers matching c in input order. It never returns nil.
func Filter(lawyers []models.User, c models.SearchCriteria) []models.User {
	out := make([]models.User, 0, len(lawyers))
	for i := range lawyers {
		if Matches(&lawyers[i], c) {
			out = append(out, lawyers[i])
		}
	}
	return out
}
