package services

import (
	"context"
	"sort"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	appErrors "github.com/taskdesk/taskdesk/app/errors"
	"github.com/taskdesk/taskdesk/app/models"
	"github.com/taskdesk/taskdesk/app/store"
)

// TaskService owns the in-memory task roster. Unlike user creation, task
// mutations are not durable until Persist is called; the caller decides
// when to flush.
type TaskService struct {
	store store.Storage
	log   zerolog.Logger
	tasks []models.Task
}

// NewTaskService creates a new TaskService
func NewTaskService(storage store.Storage, log zerolog.Logger) *TaskService {
	return &TaskService{
		store: storage,
		log:   log,
	}
}

// Init loads the roster from storage. It must be called exactly once before
// any other operation.
func (s *TaskService) Init(ctx context.Context) error {
	tasks, err := s.store.LoadTasks(ctx)
	if err != nil {
		return err
	}
	s.tasks = tasks
	s.log.Debug().Int("count", len(tasks)).Msg("task roster loaded")
	return nil
}

// Create appends a new ToDo task. The task exists only in memory until
// Persist is called.
func (s *TaskService) Create(title, description string, assigneeID uuid.UUID) models.Task {
	task := models.Task{
		ID:          uuid.New(),
		Title:       title,
		Description: description,
		AssigneeID:  assigneeID,
		Status:      models.StatusToDo,
	}
	s.tasks = append(s.tasks, task)
	return task
}

// TasksFor returns the tasks assigned to userID in insertion order.
func (s *TaskService) TasksFor(userID uuid.UUID) []models.Task {
	var tasks []models.Task
	for _, t := range s.tasks {
		if t.AssigneeID == userID {
			tasks = append(tasks, t)
		}
	}
	return tasks
}

// TasksForList returns tasks for userID sorted ascending by status (ToDo,
// InProgress, Done), with insertion order preserved within each status
// group. uuid.Nil selects every task, for administrative listings.
func (s *TaskService) TasksForList(userID uuid.UUID) []models.Task {
	var tasks []models.Task
	for _, t := range s.tasks {
		if userID == uuid.Nil || t.AssigneeID == userID {
			tasks = append(tasks, t)
		}
	}
	sort.SliceStable(tasks, func(i, j int) bool {
		return tasks[i].Status.Rank() < tasks[j].Status.Rank()
	})
	return tasks
}

// UpdateStatus replaces the status of the task matching both taskID and
// assignee. A task that exists but is assigned to someone else is reported
// the same way as a missing one. The record is replaced wholesale; every
// field except Status carries over.
func (s *TaskService) UpdateStatus(taskID uuid.UUID, status models.Status, requestingUserID uuid.UUID) error {
	for i := range s.tasks {
		if s.tasks[i].ID == taskID && s.tasks[i].AssigneeID == requestingUserID {
			updated := s.tasks[i]
			updated.Status = status
			s.tasks[i] = updated
			return nil
		}
	}
	return appErrors.NewNotFound("task")
}

// Persist overwrites the durable task collection with the in-memory roster.
// Callers must invoke it after Create or UpdateStatus or the mutation is
// lost on exit.
func (s *TaskService) Persist(ctx context.Context) error {
	if err := s.store.SaveTasks(ctx, s.tasks); err != nil {
		s.log.Error().Err(err).Msg("failed to persist tasks")
		return err
	}
	s.log.Debug().Int("count", len(s.tasks)).Msg("tasks persisted")
	return nil
}
