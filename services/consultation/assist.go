package consultation

import (
	"context"
	"encoding/json"
	"strings"

	"legalassist/models"
	"legalassist/services/intelligence"
	"legalassist/utils"

	"go.uber.org/zap"
)

// AnalyzeDocument summarises legal text. Generation failures yield a fixed
// fallback analysis rather than an error.
func (s *DefaultConsultationService) AnalyzeDocument(ctx context.Context, text string) (*models.DocumentAnalysis, error) {
	if strings.TrimSpace(text) == "" {
		return nil, utils.ValidationError("Document text is required")
	}

	reply := s.complete(context.WithoutCancel(ctx), "analysis", intelligence.GenerationRequest{
		SystemInstruction: analysisInstruction,
		Message:           text,
		JSON:              true,
	})
	if reply.failed() {
		return analysisFallback(), nil
	}

	var parsed struct {
		Summary          string   `json:"summary"`
		KeyPoints        []string `json:"keyPoints"`
		SuggestedActions []string `json:"suggestedActions"`
	}
	if err := json.Unmarshal([]byte(stripCodeFence(reply.text)), &parsed); err != nil {
		utils.GetLogger().Warn("AnalyzeDocument: unparsable reply", zap.Error(err))
		return analysisFallback(), nil
	}

	out := &models.DocumentAnalysis{
		Summary:          parsed.Summary,
		KeyPoints:        parsed.KeyPoints,
		SuggestedActions: parsed.SuggestedActions,
	}
	if out.Summary == "" {
		out.Summary = noSummary
	}
	if out.KeyPoints == nil {
		out.KeyPoints = []string{}
	}
	if out.SuggestedActions == nil {
		out.SuggestedActions = []string{}
	}
	return out, nil
}

func analysisFallback() *models.DocumentAnalysis {
	return &models.DocumentAnalysis{
		Summary:          analysisFailedSummary,
		KeyPoints:        []string{},
		SuggestedActions: []string{contactSupportAction},
	}
}

// RecommendLawyers suggests specializations and intake questions for an issue.
func (s *DefaultConsultationService) RecommendLawyers(ctx context.Context, issue string) (*models.LawyerRecommendation, error) {
	if strings.TrimSpace(issue) == "" {
		return nil, utils.ValidationError("Legal issue description is required")
	}

	reply := s.complete(context.WithoutCancel(ctx), "recommendation", intelligence.GenerationRequest{
		SystemInstruction: recommendationInstruction,
		Message:           issue,
		JSON:              true,
	})
	if reply.failed() {
		return recommendationFallback(), nil
	}

	var parsed models.LawyerRecommendation
	if err := json.Unmarshal([]byte(stripCodeFence(reply.text)), &parsed); err != nil {
		utils.GetLogger().Warn("RecommendLawyers: unparsable reply", zap.Error(err))
		return recommendationFallback(), nil
	}
	if len(parsed.Specializations) == 0 {
		parsed.Specializations = []string{generalPractice}
	}
	if len(parsed.RelevantQuestions) == 0 {
		parsed.RelevantQuestions = []string{experienceQuestion}
	}
	return &parsed, nil
}

func recommendationFallback() *models.LawyerRecommendation {
	return &models.LawyerRecommendation{
		Specializations:   []string{generalPractice},
		RelevantQuestions: []string{experienceQuestion},
	}
}

// stripCodeFence removes a ```json fence some models wrap JSON output in.
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}
