package models

import "time"

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// ChatTurn is one stored message of a consultation session. Turns are append-only.
type ChatTurn struct {
	ID        string    `bson:"id" json:"id"`
	SessionID string    `bson:"sessionId" json:"sessionId"`
	UserID    string    `bson:"userId,omitempty" json:"userId,omitempty"`
	Content   string    `bson:"content" json:"content"`
	IsFromAI  bool      `bson:"isFromAI" json:"isFromAI"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}

// Role maps the stored flag to the conversational role sent to the generator.
func (t ChatTurn) Role() string {
	if t.IsFromAI {
		return RoleAssistant
	}
	return RoleUser
}

// ChatMessage is a role-tagged history entry.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ChatRequest struct {
	Message   string `json:"message"`
	SessionID string `json:"sessionId,omitempty"`
}

type ChatResponse struct {
	Response  string `json:"response"`
	SessionID string `json:"sessionId"`
}

// DocumentAnalysis is the structured result of analysing legal text.
type DocumentAnalysis struct {
	Summary          string   `json:"summary"`
	KeyPoints        []string `json:"keyPoints"`
	SuggestedActions []string `json:"suggestedActions"`
}

// LawyerRecommendation suggests which specializations fit a described legal issue.
type LawyerRecommendation struct {
	Specializations   []string `json:"specializations"`
	RelevantQuestions []string `json:"relevantQuestions"`
}
