package validate

import (
	"github.com/taskdeck-app/taskdeck/backend/models"
)

// One schema per entity operation. Create schemas require the entity's
// mandatory fields; update schemas accept partial payloads but still run the
// rules on whatever is present.

func ClientCreate() Schema {
	return New("client.create", clientFields(true)...)
}

func ClientUpdate() Schema {
	return New("client.update", clientFields(false)...)
}

func clientFields(create bool) []Field {
	return []Field{
		{Name: "name", Column: "name", Required: create, Rules: []Rule{NonEmpty(), MaxLen(120)}},
		{Name: "email", Column: "email", Rules: []Rule{Email(), MaxLen(254)}},
		{Name: "phone", Column: "phone", Rules: []Rule{MaxLen(40)}},
		{Name: "address", Column: "address", Rules: []Rule{MaxLen(200)}},
		{Name: "zipcode", Column: "zipcode", Rules: []Rule{MaxLen(20)}},
		{Name: "state", Column: "state", Rules: []Rule{MaxLen(80)}},
		{Name: "city", Column: "city", Rules: []Rule{MaxLen(80)}},
		{Name: "status", Column: "status", Rules: []Rule{OneOf(models.ClientStatuses()...)}},
	}
}

func ProjectCreate() Schema {
	fields := append(projectFields(true), Field{
		Name: "userId", Column: "user_id", Required: true, Rules: []Rule{UUID()}, Normalize: AsUUID,
	})
	return New("project.create", fields...)
}

func ProjectUpdate() Schema {
	return New("project.update", projectFields(false)...)
}

func projectFields(create bool) []Field {
	return []Field{
		{Name: "name", Column: "name", Required: create, Rules: []Rule{NonEmpty(), MaxLen(160)}},
		{Name: "description", Column: "description", Rules: []Rule{MaxLen(4000)}},
		{Name: "status", Column: "status", Rules: []Rule{OneOf(models.Statuses()...)}},
		{Name: "dueDate", Column: "due_date", Rules: []Rule{Date()}, Normalize: AsDate},
		{Name: "clientId", Column: "client_id", Rules: []Rule{UUID()}, Normalize: NullIfEmpty},
		{Name: "teamId", Column: "team_id", Rules: []Rule{UUID()}, Normalize: NullIfEmpty},
	}
}

func TaskCreate() Schema {
	fields := append(taskFields(true),
		Field{Name: "projectId", Column: "project_id", Required: true, Rules: []Rule{UUID()}, Normalize: AsUUID},
		Field{Name: "userId", Column: "user_id", Required: true, Rules: []Rule{UUID()}, Normalize: AsUUID},
	)
	return New("task.create", fields...)
}

func TaskUpdate() Schema {
	return New("task.update", taskFields(false)...)
}

func taskFields(create bool) []Field {
	return []Field{
		{Name: "title", Column: "title", Required: create, Rules: []Rule{NonEmpty(), MaxLen(160)}},
		{Name: "description", Column: "description", Rules: []Rule{MaxLen(4000)}},
		{Name: "status", Column: "status", Rules: []Rule{OneOf(models.Statuses()...)}},
		{Name: "priority", Column: "priority", Rules: []Rule{OneOf(models.Priorities()...)}},
		{Name: "dueDate", Column: "due_date", Rules: []Rule{Date()}, Normalize: AsDate},
		{Name: "teamId", Column: "team_id", Rules: []Rule{UUID()}, Normalize: NullIfEmpty},
	}
}

// TaskStatusToggle is the narrow schema for the status-only mutation.
func TaskStatusToggle() Schema {
	return New("task.status",
		Field{Name: "status", Column: "status", Required: true, Rules: []Rule{OneOf(models.Statuses()...)}},
	)
}

// CommentCreate accepts any non-empty content.
func CommentCreate() Schema {
	return New("comment.create",
		Field{Name: "content", Column: "content", Required: true, Rules: []Rule{MinLen(1), MaxLen(2000)}},
		Field{Name: "userId", Column: "user_id", Required: true, Rules: []Rule{UUID()}, Normalize: AsUUID},
		Field{Name: "projectId", Column: "project_id", Rules: []Rule{UUID()}, Normalize: NullIfEmpty},
		Field{Name: "taskId", Column: "task_id", Rules: []Rule{UUID()}, Normalize: NullIfEmpty},
	)
}

// CommentEdit requires substantially more content than create; the asymmetry
// is deliberate.
func CommentEdit() Schema {
	return New("comment.edit",
		Field{Name: "content", Column: "content", Required: true, Rules: []Rule{MinLen(10), MaxLen(2000)}},
	)
}

func SubTaskCreate() Schema {
	return New("subtask.create",
		Field{Name: "name", Column: "name", Required: true, Rules: []Rule{NonEmpty(), MaxLen(160)}},
		Field{Name: "taskId", Column: "task_id", Required: true, Rules: []Rule{UUID()}, Normalize: AsUUID},
	)
}

func TagCreate() Schema {
	return New("tag.create",
		Field{Name: "name", Column: "name", Required: true, Rules: []Rule{NonEmpty(), MaxLen(60)}},
		Field{Name: "color", Column: "color", Rules: []Rule{MaxLen(20)}},
		Field{Name: "taskId", Column: "task_id", Required: true, Rules: []Rule{UUID()}, Normalize: AsUUID},
	)
}

func TimeEntryCreate() Schema {
	return New("time_entry.create",
		Field{Name: "startedAt", Column: "started_at", Required: true, Rules: []Rule{Timestamp()}, Normalize: AsTime},
		Field{Name: "endedAt", Column: "ended_at", Rules: []Rule{Timestamp()}, Normalize: AsTime},
		Field{Name: "note", Column: "note", Rules: []Rule{MaxLen(500)}},
		Field{Name: "taskId", Column: "task_id", Required: true, Rules: []Rule{UUID()}, Normalize: AsUUID},
		Field{Name: "userId", Column: "user_id", Required: true, Rules: []Rule{UUID()}, Normalize: AsUUID},
	)
}

func TeamCreate() Schema {
	return New("team.create",
		Field{Name: "name", Column: "name", Required: true, Rules: []Rule{NonEmpty(), MaxLen(120)}},
	)
}

// MemberAdd covers both team membership and project shares.
func MemberAdd() Schema {
	return New("member.add",
		Field{Name: "userId", Column: "user_id", Required: true, Rules: []Rule{UUID()}, Normalize: AsUUID},
	)
}

func UserRegister() Schema {
	return New("user.register",
		Field{Name: "name", Column: "name", Required: true, Rules: []Rule{NonEmpty(), MaxLen(120)}},
		Field{Name: "surname", Column: "surname", Rules: []Rule{MaxLen(120)}},
		Field{Name: "email", Column: "email", Required: true, Rules: []Rule{Email(), MaxLen(254)}},
		Field{Name: "password", Column: "password", Required: true, Rules: []Rule{Password()}},
	)
}

func PasswordResetRequest() Schema {
	return New("user.forgot_password",
		Field{Name: "email", Column: "email", Required: true, Rules: []Rule{Email()}},
	)
}

func PasswordReset() Schema {
	return New("user.reset_password",
		Field{Name: "code", Column: "code", Required: true, Rules: []Rule{NonEmpty()}},
		Field{Name: "password", Column: "password", Required: true, Rules: []Rule{Password()}},
	)
}
