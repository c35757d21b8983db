package consultation

import (
	"context"
	"errors"
	"testing"

	"legalassist/models"
	"legalassist/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyzeDocumentParsesReply(t *testing.T) {
	gen := &fakeGenerator{replies: []string{"```json\n{\"summary\":\"A lease\",\"keyPoints\":[\"12 months\"],\"suggestedActions\":[\"Review clause 4\"]}\n```"}}
	svc, _, _ := newService(gen)

	got, err := svc.AnalyzeDocument(context.Background(), "This lease is made between...")
	require.NoError(t, err)
	assert.Equal(t, &models.DocumentAnalysis{
		Summary:          "A lease",
		KeyPoints:        []string{"12 months"},
		SuggestedActions: []string{"Review clause 4"},
	}, got)
	assert.True(t, gen.calls()[0].JSON)
}

func TestAnalyzeDocumentFallbacks(t *testing.T) {
	for name, gen := range map[string]*fakeGenerator{
		"error":       {err: errors.New("boom")},
		"not json":    {replies: []string{"I cannot help with that"}},
		"empty reply": {replies: []string{""}},
	} {
		t.Run(name, func(t *testing.T) {
			svc, _, _ := newService(gen)
			got, err := svc.AnalyzeDocument(context.Background(), "text")
			require.NoError(t, err)
			assert.Equal(t, analysisFallback(), got)
		})
	}
}

func TestAnalyzeDocumentFillsMissingFields(t *testing.T) {
	svc, _, _ := newService(&fakeGenerator{replies: []string{`{"keyPoints":["a"]}`}})

	got, err := svc.AnalyzeDocument(context.Background(), "text")
	require.NoError(t, err)
	assert.Equal(t, noSummary, got.Summary)
	assert.Equal(t, []string{"a"}, got.KeyPoints)
	assert.NotNil(t, got.SuggestedActions)
}

func TestAnalyzeDocumentRequiresText(t *testing.T) {
	svc, _, _ := newService(&fakeGenerator{})
	_, err := svc.AnalyzeDocument(context.Background(), "  ")
	assert.ErrorIs(t, err, utils.ErrValidation)
}

func TestRecommendLawyers(t *testing.T) {
	svc, _, _ := newService(&fakeGenerator{replies: []string{`{"specializations":["Family Law"],"relevantQuestions":["Have you handled custody disputes?"]}`}})

	got, err := svc.RecommendLawyers(context.Background(), "My ex wants full custody")
	require.NoError(t, err)
	assert.Equal(t, []string{"Family Law"}, got.Specializations)
	assert.Equal(t, []string{"Have you handled custody disputes?"}, got.RelevantQuestions)
}

func TestRecommendLawyersFallbacks(t *testing.T) {
	svc, _, _ := newService(&fakeGenerator{err: errors.New("boom")})
	got, err := svc.RecommendLawyers(context.Background(), "issue")
	require.NoError(t, err)
	assert.Equal(t, []string{generalPractice}, got.Specializations)
	assert.Equal(t, []string{experienceQuestion}, got.RelevantQuestions)

	svc, _, _ = newService(&fakeGenerator{replies: []string{`{"specializations":[]}`}})
	got, err = svc.RecommendLawyers(context.Background(), "issue")
	require.NoError(t, err)
	assert.Equal(t, []string{generalPractice}, got.Specializations)
	assert.Equal(t, []string{experienceQuestion}, got.RelevantQuestions)

	_, err = svc.RecommendLawyers(context.Background(), "")
	assert.ErrorIs(t, err, utils.ErrValidation)
}

func TestStripCodeFence(t *testing.T) {
	assert.Equal(t, `{"a":1}`, stripCodeFence("```json\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, stripCodeFence("```\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, stripCodeFence(`  {"a":1} `))
}
