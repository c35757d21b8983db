package policy

import (
	"testing"

	"legalassist/models"
	"legalassist/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ids(sections []models.PolicySection) []string {
	out := make([]string, 0, len(sections))
	for _, s := range sections {
		out = append(out, s.ID)
	}
	return out
}

func TestSectionsByAudience(t *testing.T) {
	svc := &DefaultPolicyService{}

	all, err := svc.Sections("")
	require.NoError(t, err)
	assert.Equal(t, []string{"tos", "ai-disclaimer", "privacy", "payments", "lawyer-conduct"}, ids(all))

	client, err := svc.Sections(models.AudienceClient)
	require.NoError(t, err)
	assert.Equal(t, []string{"tos", "ai-disclaimer", "privacy", "payments"}, ids(client))

	lawyer, err := svc.Sections(models.AudienceLawyer)
	require.NoError(t, err)
	assert.Equal(t, []string{"tos", "ai-disclaimer", "privacy", "lawyer-conduct"}, ids(lawyer))

	for _, s := range all {
		assert.Equal(t, "v1.0", s.Version)
		assert.False(t, s.Updated.IsZero())
	}
}

func TestSectionsRejectsUnknownAudience(t *testing.T) {
	_, err := (&DefaultPolicyService{}).Sections("admin")
	assert.ErrorIs(t, err, utils.ErrValidation)
}
