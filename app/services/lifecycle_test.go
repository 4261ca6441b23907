package services

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskdesk/taskdesk/app/models"
	"github.com/taskdesk/taskdesk/app/store"
)

/*
End-to-end lifecycle against a real JSON file store:

1. TestLifecycle_BootstrapToStatusUpdate
   - Bootstrap manager, login succeeds, wrong password is nil
   - Manager registers employee and assigns a task
   - Employee sees it as ToDo, moves it to InProgress
   - Foreign user cannot move it

2. TestLifecycle_DurabilityAsymmetry
   - A task created without Persist is lost across a restart
   - A user created the same way is not (synchronous save)
*/

type fixture struct {
	storage *store.JSONFile
	auth    *AuthService
	users   *UserService
	tasks   *TaskService
}

func startProcess(t *testing.T, dir string) *fixture {
	t.Helper()
	storage := store.NewJSONFile(dir)
	auth := NewAuthService(storage, NewSHA256Hasher(), zerolog.Nop())
	users := NewUserService(auth)
	tasks := NewTaskService(storage, zerolog.Nop())

	ctx := context.Background()
	require.NoError(t, auth.Init(ctx))
	require.NoError(t, tasks.Init(ctx))
	return &fixture{storage: storage, auth: auth, users: users, tasks: tasks}
}

func TestLifecycle_BootstrapToStatusUpdate(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	app := startProcess(t, dir)

	// First run: empty roster, bootstrap the manager.
	require.Empty(t, app.users.All())
	_, err := app.users.RegisterManager(ctx, "admin", "pw1")
	require.NoError(t, err)

	require.NotNil(t, app.auth.Login("admin", "pw1"))
	assert.Nil(t, app.auth.Login("admin", "wrong"))

	employee, err := app.users.RegisterEmployee(ctx, "eve", "pw2")
	require.NoError(t, err)

	task := app.tasks.Create("Fix bug", "crash on startup", employee.ID)
	require.NoError(t, app.tasks.Persist(ctx))

	list := app.tasks.TasksForList(employee.ID)
	require.Len(t, list, 1)
	assert.Equal(t, "Fix bug", list[0].Title)
	assert.Equal(t, models.StatusToDo, list[0].Status)

	// A different user's id does not authorize the update.
	manager := app.auth.Login("admin", "pw1")
	require.Error(t, app.tasks.UpdateStatus(task.ID, models.StatusInProgress, manager.ID))

	require.NoError(t, app.tasks.UpdateStatus(task.ID, models.StatusInProgress, employee.ID))
	require.NoError(t, app.tasks.Persist(ctx))

	// Restart: everything survives.
	restarted := startProcess(t, dir)
	assert.NotNil(t, restarted.auth.Login("eve", "pw2"))
	list = restarted.tasks.TasksForList(employee.ID)
	require.Len(t, list, 1)
	assert.Equal(t, models.StatusInProgress, list[0].Status)
}

func TestLifecycle_DurabilityAsymmetry(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	app := startProcess(t, dir)

	employee, err := app.users.RegisterEmployee(ctx, "eve", "pw1")
	require.NoError(t, err)
	app.tasks.Create("unsaved", "", employee.ID)
	// Simulated crash: no Persist call before the restart.

	restarted := startProcess(t, dir)
	assert.NotNil(t, restarted.auth.Login("eve", "pw1"), "user creation persists synchronously")
	assert.Empty(t, restarted.tasks.TasksForList(employee.ID), "unpersisted task is lost")
}
