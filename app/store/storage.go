package store

import (
	"context"

	"github.com/taskdesk/taskdesk/app/models"
)

// Storage is the durable contract for the two collections. Loads of a
// collection that was never saved return an empty slice, not an error.
// A save fully overwrites the collection; there is no incremental path.
type Storage interface {
	LoadUsers(ctx context.Context) ([]models.User, error)
	SaveUsers(ctx context.Context, users []models.User) error
	LoadTasks(ctx context.Context) ([]models.Task, error)
	SaveTasks(ctx context.Context, tasks []models.Task) error
}
