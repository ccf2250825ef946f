package database

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/taskdeck-app/taskdeck/backend/models"
	"github.com/taskdeck-app/taskdeck/backend/validate"
)

func newTestDB(t *testing.T) (*gorm.DB, Database) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, models.Migrate(db))

	return db, New(db)
}

func seedUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()

	user := &models.User{
		ID:    uuid.New(),
		Name:  "Dana",
		Email: fmt.Sprintf("%s@example.com", uuid.NewString()),
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func seedProject(t *testing.T, db *gorm.DB, owner *models.User) *models.Project {
	t.Helper()

	project := &models.Project{
		ID:     uuid.New(),
		Name:   "Website redesign",
		UserID: owner.ID,
	}
	require.NoError(t, db.Create(project).Error)
	return project
}

func seedTask(t *testing.T, db *gorm.DB, project *models.Project, owner *models.User) *models.Task {
	t.Helper()

	task := &models.Task{
		ID:        uuid.New(),
		Title:     "Draft wireframes",
		ProjectID: project.ID,
		UserID:    owner.ID,
	}
	require.NoError(t, db.Create(task).Error)
	return task
}

func TestClientCreateFieldsAppliesStoreDefaults(t *testing.T) {
	_, d := newTestDB(t)
	ctx := context.Background()

	id := uuid.New()
	err := d.ClientRepo().CreateFields(ctx, validate.Fields{
		"id":   id,
		"name": "Acme Corp",
	})
	require.NoError(t, err)

	client, err := d.ClientRepo().FindByID(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, client)
	assert.Equal(t, "Acme Corp", client.Name)
	assert.Equal(t, models.ClientActive, client.Status)
}

func TestClientFindByIDMissingReturnsNilNil(t *testing.T) {
	_, d := newTestDB(t)

	client, err := d.ClientRepo().FindByID(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Nil(t, client)
}

func TestClientUpdateFieldsChangesOnlyGivenColumns(t *testing.T) {
	_, d := newTestDB(t)
	ctx := context.Background()

	id := uuid.New()
	require.NoError(t, d.ClientRepo().CreateFields(ctx, validate.Fields{
		"id":   id,
		"name": "Acme Corp",
		"city": "Lisbon",
	}))

	require.NoError(t, d.ClientRepo().UpdateFields(ctx, id, validate.Fields{
		"name": "Acme Corporation",
	}))

	client, err := d.ClientRepo().FindByID(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, client)
	assert.Equal(t, "Acme Corporation", client.Name)
	require.NotNil(t, client.City)
	assert.Equal(t, "Lisbon", *client.City)
}

func TestClientDeleteRestrictedWhileReferenced(t *testing.T) {
	// foreign keys are enforced here to mirror the production store; the
	// default test DSN leaves them off
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_fk=1", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, models.Migrate(db))
	d := New(db)
	ctx := context.Background()

	owner := seedUser(t, db)
	client := &models.Client{ID: uuid.New(), Name: "Acme Corp", Status: models.ClientActive}
	require.NoError(t, db.Create(client).Error)
	project := &models.Project{ID: uuid.New(), Name: "Website redesign", UserID: owner.ID, ClientID: &client.ID}
	require.NoError(t, db.Create(project).Error)

	err = d.ClientRepo().Delete(ctx, client.ID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "FOREIGN KEY constraint")

	// with the referencing project gone the delete goes through
	require.NoError(t, d.ProjectRepo().Delete(ctx, project.ID))
	require.NoError(t, d.ClientRepo().Delete(ctx, client.ID))
}

func TestProjectFindAllByUserIncludesSharedProjects(t *testing.T) {
	db, d := newTestDB(t)
	ctx := context.Background()

	owner := seedUser(t, db)
	collaborator := seedUser(t, db)
	stranger := seedUser(t, db)

	owned := seedProject(t, db, owner)
	shared := seedProject(t, db, stranger)
	seedProject(t, db, stranger) // not shared, must stay invisible

	err := db.Exec("INSERT INTO project_shares (project_id, user_id) VALUES (?, ?)", shared.ID, collaborator.ID).Error
	require.NoError(t, err)
	require.NoError(t, db.Exec("INSERT INTO project_shares (project_id, user_id) VALUES (?, ?)", owned.ID, collaborator.ID).Error)

	ownerProjects, err := d.ProjectRepo().FindAllByUser(ctx, owner.ID)
	require.NoError(t, err)
	require.Len(t, ownerProjects, 1)
	assert.Equal(t, owned.ID, ownerProjects[0].ID)

	collaboratorProjects, err := d.ProjectRepo().FindAllByUser(ctx, collaborator.ID)
	require.NoError(t, err)
	assert.Len(t, collaboratorProjects, 2)
}

func TestProjectFindDetailLoadsFullGraph(t *testing.T) {
	db, d := newTestDB(t)
	ctx := context.Background()

	owner := seedUser(t, db)
	project := seedProject(t, db, owner)
	task := seedTask(t, db, project, owner)

	require.NoError(t, db.Create(&models.SubTask{ID: uuid.New(), TaskID: task.ID, Name: "Sketch header"}).Error)
	require.NoError(t, db.Create(&models.Comment{ID: uuid.New(), Content: "looks good", UserID: owner.ID, ProjectID: &project.ID}).Error)
	require.NoError(t, db.Create(&models.Comment{ID: uuid.New(), Content: "on it", UserID: owner.ID, TaskID: &task.ID}).Error)

	detail, err := d.ProjectRepo().FindDetail(ctx, project.ID)
	require.NoError(t, err)
	assert.Equal(t, owner.Name, detail.Owner.Name)
	require.Len(t, detail.Tasks, 1)
	assert.Len(t, detail.Tasks[0].SubTasks, 1)
	require.Len(t, detail.Tasks[0].Comments, 1)
	assert.Equal(t, owner.Name, detail.Tasks[0].Comments[0].Author.Name)
	require.Len(t, detail.Comments, 1)
	assert.Equal(t, "looks good", detail.Comments[0].Content)
}

func TestProjectFindDetailMissingRootRaises(t *testing.T) {
	_, d := newTestDB(t)

	_, err := d.ProjectRepo().FindDetail(context.Background(), uuid.New())
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestProjectDeleteRemovesOwnedGraph(t *testing.T) {
	db, d := newTestDB(t)
	ctx := context.Background()

	owner := seedUser(t, db)
	project := seedProject(t, db, owner)
	task := seedTask(t, db, project, owner)

	require.NoError(t, db.Create(&models.SubTask{ID: uuid.New(), TaskID: task.ID, Name: "Sketch header"}).Error)
	require.NoError(t, db.Create(&models.TimeEntry{ID: uuid.New(), TaskID: task.ID, UserID: owner.ID}).Error)
	require.NoError(t, db.Create(&models.Comment{ID: uuid.New(), Content: "bye", UserID: owner.ID, ProjectID: &project.ID}).Error)

	require.NoError(t, d.ProjectRepo().Delete(ctx, project.ID))

	gone, err := d.ProjectRepo().FindByID(ctx, project.ID)
	require.NoError(t, err)
	assert.Nil(t, gone)

	var subTasks, timeEntries, comments, tasks int64
	require.NoError(t, db.Model(&models.SubTask{}).Count(&subTasks).Error)
	require.NoError(t, db.Model(&models.TimeEntry{}).Count(&timeEntries).Error)
	require.NoError(t, db.Model(&models.Comment{}).Count(&comments).Error)
	require.NoError(t, db.Model(&models.Task{}).Count(&tasks).Error)
	assert.Zero(t, subTasks)
	assert.Zero(t, timeEntries)
	assert.Zero(t, comments)
	assert.Zero(t, tasks)
}

func TestTaskDeleteKeepsSiblings(t *testing.T) {
	db, d := newTestDB(t)
	ctx := context.Background()

	owner := seedUser(t, db)
	project := seedProject(t, db, owner)
	doomed := seedTask(t, db, project, owner)
	survivor := seedTask(t, db, project, owner)

	require.NoError(t, db.Create(&models.SubTask{ID: uuid.New(), TaskID: doomed.ID, Name: "gone with the task"}).Error)
	require.NoError(t, db.Create(&models.SubTask{ID: uuid.New(), TaskID: survivor.ID, Name: "stays"}).Error)

	require.NoError(t, d.TaskRepo().Delete(ctx, doomed.ID))

	var subTasks []models.SubTask
	require.NoError(t, db.Find(&subTasks).Error)
	require.Len(t, subTasks, 1)
	assert.Equal(t, survivor.ID, subTasks[0].TaskID)

	remaining, err := d.TaskRepo().FindByID(ctx, survivor.ID)
	require.NoError(t, err)
	assert.NotNil(t, remaining)
}

func TestTaskCreateFieldsBlankTeamStoresNull(t *testing.T) {
	db, d := newTestDB(t)
	ctx := context.Background()

	owner := seedUser(t, db)
	project := seedProject(t, db, owner)

	fields, fieldErrs := validate.TaskCreate().Validate(map[string]any{
		"title":     "Draft brief",
		"projectId": project.ID.String(),
		"userId":    owner.ID.String(),
		"teamId":    "",
	})
	require.Nil(t, fieldErrs)

	id := uuid.New()
	fields["id"] = id
	require.NoError(t, d.TaskRepo().CreateFields(ctx, fields))

	task, err := d.TaskRepo().FindByID(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, task)
	assert.Nil(t, task.TeamID)
}

func TestSubTaskSetCompleted(t *testing.T) {
	db, d := newTestDB(t)
	ctx := context.Background()

	owner := seedUser(t, db)
	project := seedProject(t, db, owner)
	task := seedTask(t, db, project, owner)
	subTask := &models.SubTask{ID: uuid.New(), TaskID: task.ID, Name: "Sketch header"}
	require.NoError(t, db.Create(subTask).Error)

	require.NoError(t, d.SubTaskRepo().SetCompleted(ctx, subTask.ID, true))

	reloaded, err := d.SubTaskRepo().FindByID(ctx, subTask.ID)
	require.NoError(t, err)
	require.NotNil(t, reloaded)
	assert.True(t, reloaded.Completed)
}

func TestUserRepoFindByEmail(t *testing.T) {
	db, d := newTestDB(t)
	ctx := context.Background()

	user := seedUser(t, db)

	found, err := d.UserRepo().FindByEmail(ctx, user.Email)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, user.ID, found.ID)

	missing, err := d.UserRepo().FindByEmail(ctx, "nobody@example.com")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestNotificationMarkRead(t *testing.T) {
	db, d := newTestDB(t)
	ctx := context.Background()

	user := seedUser(t, db)
	notification := &models.Notification{
		ID:      uuid.New(),
		UserID:  user.ID,
		Kind:    "task_assigned",
		Payload: datatypes.JSON(`{"taskId":"` + uuid.NewString() + `"}`),
	}
	require.NoError(t, d.NotificationRepo().Add(ctx, notification))

	require.NoError(t, d.NotificationRepo().MarkRead(ctx, notification.ID))

	reloaded, err := d.NotificationRepo().FindByID(ctx, notification.ID)
	require.NoError(t, err)
	require.NotNil(t, reloaded)
	assert.True(t, reloaded.Read)
}

func TestPasswordResetCodeIsSingleUse(t *testing.T) {
	db, d := newTestDB(t)
	ctx := context.Background()

	user := seedUser(t, db)
	code := &models.PasswordResetCode{
		ID:        uuid.New(),
		UserID:    user.ID,
		Code:      "a1b2c3",
		ExpiresAt: time.Now().Add(30 * time.Minute),
	}
	require.NoError(t, d.PasswordResetRepo().Add(ctx, code))

	found, err := d.PasswordResetRepo().FindByCode(ctx, "a1b2c3")
	require.NoError(t, err)
	require.NotNil(t, found)

	require.NoError(t, d.PasswordResetRepo().MarkUsed(ctx, found.ID))

	consumed, err := d.PasswordResetRepo().FindByCode(ctx, "a1b2c3")
	require.NoError(t, err)
	assert.Nil(t, consumed)
}
