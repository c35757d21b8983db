package userRepo

import (
	"testing"

	"legalassist/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func TestUserIndexes(t *testing.T) {
	indexes := userIndexes()
	require.Len(t, indexes, 4)

	unique := map[string]bool{}
	for _, idx := range indexes {
		require.NotNil(t, idx.Options)
		require.NotNil(t, idx.Options.Name)
		unique[*idx.Options.Name] = idx.Options.Unique != nil && *idx.Options.Unique
	}
	assert.Equal(t, map[string]bool{
		"user_id":          true,
		"user_email":       true,
		"user_username":    true,
		"lawyer_directory": false,
	}, unique)

	directory := indexes[3]
	assert.Equal(t, bson.M{"userType": models.UserTypeLawyer}, directory.Options.PartialFilterExpression)
}
