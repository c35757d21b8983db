package models

import "time"

const (
	UserTypeLawyer = "lawyer"
	UserTypeClient = "client"
)

// User is a platform account. Lawyers carry exactly one LawyerProfile, clients
// at most one ClientProfile; both live inside the user document.
type User struct {
	ID                string    `bson:"id" json:"id"`
	Email             string    `bson:"email" json:"email"`
	PasswordHash      string    `bson:"passwordHash" json:"-"`
	FirstName         string    `bson:"firstName" json:"firstName"`
	LastName          string    `bson:"lastName" json:"lastName"`
	Username          string    `bson:"username" json:"username"`
	UserType          string    `bson:"userType" json:"userType"`
	Phone             string    `bson:"phone,omitempty" json:"phone,omitempty"`
	Address           string    `bson:"address,omitempty" json:"address,omitempty"`
	Bio               string    `bson:"bio,omitempty" json:"bio,omitempty"`
	ProfilePicture    string    `bson:"profilePicture,omitempty" json:"profilePicture,omitempty"`
	PreferredLanguage string    `bson:"preferredLanguage,omitempty" json:"preferredLanguage,omitempty"`
	Timezone          string    `bson:"timezone,omitempty" json:"timezone,omitempty"`
	CreatedAt         time.Time `bson:"createdAt" json:"createdAt"`

	LawyerProfile *LawyerProfile `bson:"lawyerProfile,omitempty" json:"profile,omitempty"`
	ClientProfile *ClientProfile `bson:"clientProfile,omitempty" json:"clientProfile,omitempty"`
}

func (u *User) IsLawyer() bool { return u.UserType == UserTypeLawyer }

func (u *User) FullName() string { return u.FirstName + " " + u.LastName }

// ClientProfile holds client contact preferences.
type ClientProfile struct {
	Phone                  string    `bson:"phone,omitempty" json:"phone,omitempty"`
	Address                string    `bson:"address,omitempty" json:"address,omitempty"`
	PreferredContactMethod string    `bson:"preferredContactMethod" json:"preferredContactMethod"`
	CreatedAt              time.Time `bson:"createdAt" json:"createdAt"`
}
