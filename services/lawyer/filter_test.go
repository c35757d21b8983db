package lawyer

import (
	"fmt"
	"testing"

	"legalassist/models"

	"github.com/stretchr/testify/assert"
)

func lawyerWith(id string, p models.LawyerProfile) models.User {
	return models.User{ID: id, UserType: models.UserTypeLawyer, LawyerProfile: &p}
}

func ids(users []models.User) []string {
	out := make([]string, 0, len(users))
	for _, u := range users {
		out = append(out, u.ID)
	}
	return out
}

func TestExperienceRange(t *testing.T) {
	tests := []struct {
		level    string
		min, max int
		ok       bool
	}{
		{"junior", 0, 3, true},
		{"mid", 4, 7, true},
		{"senior", 8, 15, true},
		{"expert", 15, MaxExperienceYears, true},
		{"", 0, MaxExperienceYears, false},
		{"grandmaster", 0, MaxExperienceYears, false},
		{"Junior", 0, MaxExperienceYears, false},
	}
	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			min, max, ok := ExperienceRange(tt.level)
			assert.Equal(t, tt.min, min)
			assert.Equal(t, tt.max, max)
			assert.Equal(t, tt.ok, ok)
		})
	}
}

func TestMatchExperienceBoundaries(t *testing.T) {
	tests := []struct {
		years int
		level string
		want  bool
	}{
		{3, "junior", true},
		{4, "junior", false},
		{4, "mid", true},
		{7, "mid", true},
		{8, "mid", false},
		{8, "senior", true},
		{15, "senior", true},
		{15, "expert", true},
		{14, "expert", false},
		{16, "senior", false},
		{40, "unknown", true},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d_%s", tt.years, tt.level), func(t *testing.T) {
			p := &models.LawyerProfile{YearsOfExperience: tt.years}
			assert.Equal(t, tt.want, MatchExperience(p, tt.level))
		})
	}
}

func TestExperienceBucketsReturnsCopy(t *testing.T) {
	b := ExperienceBuckets()
	b[0].Max = 99

	min, max, ok := ExperienceRange("junior")
	assert.True(t, ok)
	assert.Equal(t, 0, min)
	assert.Equal(t, 3, max)
}

func TestFilterEmptyCriteriaKeepsEveryProfiledLawyer(t *testing.T) {
	lawyers := []models.User{
		lawyerWith("a", models.LawyerProfile{Specialization: "Tax Law"}),
		{ID: "no-profile", UserType: models.UserTypeLawyer},
		lawyerWith("b", models.LawyerProfile{Specialization: "Family Law"}),
	}

	got := Filter(lawyers, models.SearchCriteria{})
	assert.Equal(t, []string{"a", "b"}, ids(got))
}

func TestFilterNeverReturnsNil(t *testing.T) {
	got := Filter(nil, models.SearchCriteria{Specialization: "Family Law"})
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestFilterSpecializationIsExact(t *testing.T) {
	lawyers := []models.User{
		lawyerWith("1", models.LawyerProfile{Specialization: "Family Law"}),
		lawyerWith("2", models.LawyerProfile{Specialization: "Corporate Law"}),
		lawyerWith("3", models.LawyerProfile{Specialization: "Family Law"}),
		lawyerWith("4", models.LawyerProfile{Specialization: "family law"}),
		lawyerWith("5", models.LawyerProfile{Specialization: "Tax Law", Expertise: []string{"Family Law"}}),
	}

	got := Filter(lawyers, models.SearchCriteria{Specialization: "Family Law"})
	assert.Equal(t, []string{"1", "3"}, ids(got))

	got = Filter(lawyers, models.SearchCriteria{Specialization: "Family Law", IncludeExpertise: true})
	assert.Equal(t, []string{"1", "3", "5"}, ids(got))
}

func TestFilterLocationIsCaseInsensitiveSubstring(t *testing.T) {
	lawyers := []models.User{
		lawyerWith("bos", models.LawyerProfile{Location: "Boston, MA"}),
		lawyerWith("nyc", models.LawyerProfile{Location: "New York, NY"}),
	}

	assert.Equal(t, []string{"bos"}, ids(Filter(lawyers, models.SearchCriteria{Location: "boston"})))
	assert.Equal(t, []string{"bos"}, ids(Filter(lawyers, models.SearchCriteria{Location: ", ma"})))
	assert.Empty(t, Filter(lawyers, models.SearchCriteria{Location: "Chicago"}))
}

func TestFilterExpertLevel(t *testing.T) {
	var lawyers []models.User
	for _, years := range []int{2, 5, 9, 15, 20} {
		lawyers = append(lawyers, lawyerWith(fmt.Sprint(years), models.LawyerProfile{YearsOfExperience: years}))
	}

	got := Filter(lawyers, models.SearchCriteria{ExperienceLevel: "expert"})
	assert.Equal(t, []string{"15", "20"}, ids(got))

	got = Filter(lawyers, models.SearchCriteria{ExperienceLevel: "not-a-level"})
	assert.Len(t, got, 5)
}

func TestFilterCombinesCriteria(t *testing.T) {
	lawyers := []models.User{
		lawyerWith("match", models.LawyerProfile{Specialization: "Family Law", Location: "Boston, MA", YearsOfExperience: 5}),
		lawyerWith("wrong-city", models.LawyerProfile{Specialization: "Family Law", Location: "Denver, CO", YearsOfExperience: 5}),
		lawyerWith("too-senior", models.LawyerProfile{Specialization: "Family Law", Location: "Boston, MA", YearsOfExperience: 12}),
	}

	got := Filter(lawyers, models.SearchCriteria{Specialization: "Family Law", Location: "boston", ExperienceLevel: "mid"})
	assert.Equal(t, []string{"match"}, ids(got))
}
