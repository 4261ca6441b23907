package store

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"

	appErrors "github.com/taskdesk/taskdesk/app/errors"
	"github.com/taskdesk/taskdesk/app/models"
)

const (
	usersFile = "users.json"
	tasksFile = "tasks.json"
)

// JSONFile persists each collection as a pretty-printed JSON array in its
// own file under dir. The two files are fully independent.
type JSONFile struct {
	dir string
}

func NewJSONFile(dir string) *JSONFile {
	return &JSONFile{dir: dir}
}

func (s *JSONFile) LoadUsers(ctx context.Context) ([]models.User, error) {
	users := []models.User{}
	if err := s.load(ctx, usersFile, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (s *JSONFile) SaveUsers(ctx context.Context, users []models.User) error {
	if users == nil {
		users = []models.User{}
	}
	return s.save(ctx, usersFile, users)
}

func (s *JSONFile) LoadTasks(ctx context.Context) ([]models.Task, error) {
	tasks := []models.Task{}
	if err := s.load(ctx, tasksFile, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

func (s *JSONFile) SaveTasks(ctx context.Context, tasks []models.Task) error {
	if tasks == nil {
		tasks = []models.Task{}
	}
	return s.save(ctx, tasksFile, tasks)
}

func (s *JSONFile) load(ctx context.Context, name string, out any) error {
	if err := ctx.Err(); err != nil {
		return appErrors.NewStorage("load "+name, err)
	}
	data, err := os.ReadFile(filepath.Join(s.dir, name))
	if err != nil {
		if os.IsNotExist(err) {
			// Nothing persisted yet; the collection is empty.
			return nil
		}
		return appErrors.NewStorage("read "+name, err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return appErrors.NewStorage("decode "+name, err)
	}
	return nil
}

func (s *JSONFile) save(ctx context.Context, name string, in any) error {
	if err := ctx.Err(); err != nil {
		return appErrors.NewStorage("save "+name, err)
	}
	data, err := json.MarshalIndent(in, "", "  ")
	if err != nil {
		return appErrors.NewStorage("encode "+name, err)
	}
	if err := writeFileAtomic(filepath.Join(s.dir, name), data, 0o644); err != nil {
		return appErrors.NewStorage("write "+name, err)
	}
	return nil
}

// writeFileAtomic writes data to a temp file in the target directory, syncs
// it, and renames it over path. Readers see either the previous content or
// the new content, never a partial write.
func writeFileAtomic(path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp.*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	committed := false
	defer func() {
		_ = tmp.Close()
		if !committed {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		return err
	}
	if err := tmp.Chmod(perm); err != nil {
		return err
	}
	if err := tmp.Sync(); err != nil {
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Rename(tmpName, path); err != nil {
		return err
	}
	committed = true
	return fsyncDir(dir)
}

func fsyncDir(dir string) error {
	f, err := os.Open(dir)
	if err != nil {
		return err
	}
	defer f.Close()
	return f.Sync()
}
