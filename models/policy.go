package models

import "time"

// Policy audiences.
const (
	AudienceAll    = "all"
	AudienceClient = UserTypeClient
	AudienceLawyer = UserTypeLawyer
)

// PolicySection is one published platform document.
type PolicySection struct {
	ID       string    `json:"id"`
	Title    string    `json:"title"`
	Summary  string    `json:"summary"`
	Content  string    `json:"content"`
	Audience string    `json:"audience"`
	Version  string    `json:"version"`
	Updated  time.Time `json:"updated"`
}
