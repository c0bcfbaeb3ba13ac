package models

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserOmitsUnsetProfileFields(t *testing.T) {
	user := User{ID: uuid.New(), Email: "ada@example.com"}

	body, err := json.Marshal(user)
	require.NoError(t, err)

	var decoded map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(body, &decoded))
	assert.Contains(t, decoded, "id")
	assert.Contains(t, decoded, "email")
	assert.NotContains(t, decoded, "name")
	assert.NotContains(t, decoded, "avatarUrl")
	assert.NotContains(t, decoded, "createdAt")
	assert.NotContains(t, decoded, "updatedAt")
}

func TestUserRoundTrip(t *testing.T) {
	name := "Ada"
	original := User{ID: uuid.New(), Email: "ada@example.com", Name: &name}

	body, err := json.Marshal(original)
	require.NoError(t, err)

	var restored User
	require.NoError(t, json.Unmarshal(body, &restored))
	assert.Equal(t, original.ID, restored.ID)
	assert.Equal(t, original.Email, restored.Email)
	require.NotNil(t, restored.Name)
	assert.Equal(t, "Ada", *restored.Name)
}
