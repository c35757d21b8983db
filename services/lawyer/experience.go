package lawyer

import "legalassist/models"

// MaxExperienceYears stands in for "no upper bound" on the expert bucket.
const MaxExperienceYears = 100

// Senior and expert overlap at 15 years; such a lawyer matches both.
var experienceBuckets = []models.ExperienceBucket{
	{Level: "junior", Min: 0, Max: 3},
	{Level: "mid", Min: 4, Max: 7},
	{Level: "senior", Min: 8, Max: 15},
	{Level: "expert", Min: 15, Max: MaxExperienceYears},
}

// ExperienceBuckets returns a copy of the bucket table.
func ExperienceBuckets() []models.ExperienceBucket {
	out := make([]models.ExperienceBucket, len(experienceBuckets))
	copy(out, experienceBuckets)
	return out
}

// ExperienceRange translates a level name into an inclusive year range. Unknown
// or empty levels report ok=false and the full 0..MaxExperienceYears range.
func ExperienceRange(level string) (min, max int, ok bool) {
	for _, b := range experienceBuckets {
		if b.Level == level {
			return b.Min, b.Max, true
		}
	}
	return 0, MaxExperienceYears, false
}
