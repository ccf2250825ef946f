package validate

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientCreateRequiresName(t *testing.T) {
	fields, fieldErrs := ClientCreate().Validate(map[string]any{
		"email": "dana@example.com",
	})

	assert.Nil(t, fields)
	require.Contains(t, fieldErrs, "name")
	assert.Equal(t, []string{"is required"}, fieldErrs["name"])
}

func TestClientCreateWithoutStatusLeavesStatusUnset(t *testing.T) {
	fields, fieldErrs := ClientCreate().Validate(map[string]any{
		"name": "Acme Corp",
	})

	require.Nil(t, fieldErrs)
	assert.Equal(t, "Acme Corp", fields["name"])
	_, present := fields["status"]
	assert.False(t, present)
}

func TestClientCreateRejectsUnknownStatus(t *testing.T) {
	_, fieldErrs := ClientCreate().Validate(map[string]any{
		"name":   "Acme Corp",
		"status": "hibernating",
	})

	require.Contains(t, fieldErrs, "status")
}

func TestClientUpdateAcceptsPartialPayload(t *testing.T) {
	fields, fieldErrs := ClientUpdate().Validate(map[string]any{
		"city": "Lisbon",
	})

	require.Nil(t, fieldErrs)
	assert.Equal(t, Fields{"city": "Lisbon"}, fields)
}

func TestProjectBlankTeamBecomesNull(t *testing.T) {
	owner := uuid.New()
	fields, fieldErrs := ProjectCreate().Validate(map[string]any{
		"name":   "Website redesign",
		"userId": owner.String(),
		"teamId": "",
	})

	require.Nil(t, fieldErrs)
	require.Contains(t, fields, "team_id")
	assert.Nil(t, fields["team_id"])
	assert.Equal(t, owner, fields["user_id"])
}

func TestTaskBlankTeamBecomesNull(t *testing.T) {
	fields, fieldErrs := TaskCreate().Validate(map[string]any{
		"title":     "Draft brief",
		"projectId": uuid.NewString(),
		"userId":    uuid.NewString(),
		"teamId":    "",
	})

	require.Nil(t, fieldErrs)
	require.Contains(t, fields, "team_id")
	assert.Nil(t, fields["team_id"])
}

func TestProjectRejectsMalformedClientID(t *testing.T) {
	_, fieldErrs := ProjectCreate().Validate(map[string]any{
		"name":     "Website redesign",
		"userId":   uuid.NewString(),
		"clientId": "not-a-uuid",
	})

	require.Contains(t, fieldErrs, "clientId")
	assert.Equal(t, []string{"must be a valid id"}, fieldErrs["clientId"])
}

func TestTaskStatusToggleVocabulary(t *testing.T) {
	schema := TaskStatusToggle()

	fields, fieldErrs := schema.Validate(map[string]any{"status": "in_progress"})
	require.Nil(t, fieldErrs)
	assert.Equal(t, "in_progress", fields["status"])

	_, fieldErrs = schema.Validate(map[string]any{"status": "done"})
	require.Contains(t, fieldErrs, "status")
}

func TestCommentCreateAcceptsSingleCharacter(t *testing.T) {
	fields, fieldErrs := CommentCreate().Validate(map[string]any{
		"content": "k",
		"userId":  uuid.NewString(),
	})

	require.Nil(t, fieldErrs)
	assert.Equal(t, "k", fields["content"])
}

func TestCommentCreateRejectsEmptyContent(t *testing.T) {
	_, fieldErrs := CommentCreate().Validate(map[string]any{
		"content": "",
		"userId":  uuid.NewString(),
	})

	require.Contains(t, fieldErrs, "content")
}

func TestCommentEditLengthBoundary(t *testing.T) {
	_, fieldErrs := CommentEdit().Validate(map[string]any{
		"content": "too short",
	})
	require.Contains(t, fieldErrs, "content")
	assert.Equal(t, []string{"must be at least 10 characters"}, fieldErrs["content"])

	fields, fieldErrs := CommentEdit().Validate(map[string]any{
		"content": "ten chars!",
	})
	require.Nil(t, fieldErrs)
	assert.Equal(t, "ten chars!", fields["content"])
}

func TestValidateIgnoresUndeclaredKeys(t *testing.T) {
	fields, fieldErrs := ClientCreate().Validate(map[string]any{
		"name":  "Acme Corp",
		"admin": "true",
	})

	require.Nil(t, fieldErrs)
	_, present := fields["admin"]
	assert.False(t, present)
}

func TestValidateRejectsNonStringValues(t *testing.T) {
	_, fieldErrs := ClientCreate().Validate(map[string]any{
		"name": 42,
	})

	require.Contains(t, fieldErrs, "name")
	assert.Equal(t, []string{"must be a string"}, fieldErrs["name"])
}

func TestUserRegisterPasswordComplexity(t *testing.T) {
	input := map[string]any{
		"name":     "Dana",
		"email":    "dana@example.com",
		"password": "lettersonly",
	}
	_, fieldErrs := UserRegister().Validate(input)
	require.Contains(t, fieldErrs, "password")

	input["password"] = "letters4nd1"
	fields, fieldErrs := UserRegister().Validate(input)
	require.Nil(t, fieldErrs)
	assert.Equal(t, "letters4nd1", fields["password"])
}
