package models

import "time"

// LawyerProfile is the professional record the directory searches over.
type LawyerProfile struct {
	Specialization           string            `bson:"specialization" json:"specialization"`
	YearsOfExperience        int               `bson:"yearsOfExperience" json:"yearsOfExperience"`
	Location                 string            `bson:"location" json:"location"`
	HourlyRate               int               `bson:"hourlyRate" json:"hourlyRate"`
	Expertise                []string          `bson:"expertise,omitempty" json:"expertise,omitempty"`
	Languages                []string          `bson:"languages,omitempty" json:"languages,omitempty"`
	Biography                string            `bson:"biography,omitempty" json:"biography,omitempty"`
	Education                []EducationRecord `bson:"education,omitempty" json:"education,omitempty"`
	LawSchool                string            `bson:"lawSchool,omitempty" json:"lawSchool,omitempty"`
	BarNumber                string            `bson:"barNumber,omitempty" json:"barNumber,omitempty"`
	Availability             string            `bson:"availability,omitempty" json:"availability,omitempty"`
	Awards                   []string          `bson:"awards,omitempty" json:"awards,omitempty"`
	Publications             []string          `bson:"publications,omitempty" json:"publications,omitempty"`
	ProfessionalAssociations []string          `bson:"professionalAssociations,omitempty" json:"professionalAssociations,omitempty"`
	ProfilePicture           string            `bson:"profilePicture,omitempty" json:"profilePicture,omitempty"`
	Rating                   float64           `bson:"rating" json:"rating"`
	ReviewCount              int               `bson:"reviewCount" json:"reviewCount"`
	CreatedAt                time.Time         `bson:"createdAt" json:"createdAt"`
}

type EducationRecord struct {
	Degree      string `bson:"degree" json:"degree"`
	Institution string `bson:"institution" json:"institution"`
	Year        int    `bson:"year,omitempty" json:"year,omitempty"`
}

// SearchCriteria narrows a directory query. Empty fields match everything.
type SearchCriteria struct {
	Specialization   string `form:"specialization" json:"specialization,omitempty"`
	Location         string `form:"location" json:"location,omitempty"`
	ExperienceLevel  string `form:"experienceLevel" json:"experienceLevel,omitempty"`
	IncludeExpertise bool   `form:"includeExpertise" json:"includeExpertise,omitempty"`
}

// ExperienceBucket is an inclusive years-of-experience range.
type ExperienceBucket struct {
	Level string `json:"level"`
	Min   int    `json:"min"`
	Max   int    `json:"max"`
}
