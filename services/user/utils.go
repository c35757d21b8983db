package user

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"legalassist/models"
	"legalassist/utils"
)

var (
	emailPattern  = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	upperPattern  = regexp.MustCompile(`[A-Z]`)
	lowerPattern  = regexp.MustCompile(`[a-z]`)
	numberPattern = regexp.MustCompile(`[0-9]`)
	symbolPattern = regexp.MustCompile(`[\W_]`)
)

// VerifyPasswordComplexity checks that the password meets complexity requirements.
func VerifyPasswordComplexity(pw string) error {
	switch {
	case len(pw) < 8:
		return utils.ValidationError("password must be at least 8 characters long")
	case !upperPattern.MatchString(pw):
		return utils.ValidationError("password must include at least one uppercase letter")
	case !lowerPattern.MatchString(pw):
		return utils.ValidationError("password must include at least one lowercase letter")
	case !numberPattern.MatchString(pw):
		return utils.ValidationError("password must include at least one number")
	case !symbolPattern.MatchString(pw):
		return utils.ValidationError("password must include at least one symbol")
	}
	return nil
}

func validateRegistration(req *models.RegisterRequest) error {
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	req.FirstName = strings.TrimSpace(req.FirstName)
	req.LastName = strings.TrimSpace(req.LastName)

	if req.Email == "" || req.Password == "" || req.FirstName == "" || req.LastName == "" {
		return utils.ValidationError("email, password, firstName and lastName are required")
	}
	if !emailPattern.MatchString(req.Email) {
		return utils.ValidationError("invalid email address")
	}
	if req.UserType != models.UserTypeLawyer && req.UserType != models.UserTypeClient {
		return utils.ValidationError("userType must be lawyer or client")
	}
	if req.UserType == models.UserTypeLawyer {
		if req.Profile == nil {
			return utils.ValidationError("lawyer registration requires a profile")
		}
		if err := validateLawyerProfile(req.Profile); err != nil {
			return err
		}
	}
	return VerifyPasswordComplexity(req.Password)
}

// validateLawyerProfile normalises p in place. Ratings cannot be self-declared.
func validateLawyerProfile(p *models.LawyerProfile) error {
	p.Specialization = strings.TrimSpace(p.Specialization)
	p.Location = strings.TrimSpace(p.Location)
	p.Rating = 0
	p.ReviewCount = 0
	switch {
	case p.Specialization == "":
		return utils.ValidationError("specialization is required")
	case p.Location == "":
		return utils.ValidationError("location is required")
	case p.YearsOfExperience < 0:
		return utils.ValidationError("yearsOfExperience cannot be negative")
	case p.HourlyRate < 0:
		return utils.ValidationError("hourlyRate cannot be negative")
	}
	return nil
}

// baseUsername keeps lower-case letters and digits of the full name.
func baseUsername(first, last string) string {
	var sb strings.Builder
	for _, r := range strings.ToLower(first + last) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			sb.WriteRune(r)
		}
	}
	if sb.Len() == 0 {
		return "user"
	}
	return sb.String()
}

// uniqueUsername appends the first free numeric suffix to the base name.
func (s *DefaultUserService) uniqueUsername(ctx context.Context, first, last string) (string, error) {
	base := baseUsername(first, last)
	candidate := base
	for i := 1; i <= 1000; i++ {
		taken, err := s.Repo.UsernameExists(ctx, candidate)
		if err != nil {
			return "", err
		}
		if !taken {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s%d", base, i)
	}
	return "", fmt.Errorf("no free username for %s", base)
}
