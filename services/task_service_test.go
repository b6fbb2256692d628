package services

import (
	"errors"
	"testing"

	"task-manager/database"
	"task-manager/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// ==================== MOCKS ====================

// MockTaskRepository is a mock implementation of TaskRepository interface
type MockTaskRepository struct {
	mock.Mock
}

// Ensure MockTaskRepository implements TaskRepository interface
var _ TaskRepository = (*MockTaskRepository)(nil)

func (m *MockTaskRepository) InsertTask(title, category string, priority int) (*models.Task, error) {
	args := m.Called(title, category, priority)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Task), args.Error(1)
}

func (m *MockTaskRepository) ListTasks() ([]models.Task, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Task), args.Error(1)
}

func (m *MockTaskRepository) ToggleTask(id int64) error {
	args := m.Called(id)
	return args.Error(0)
}

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }
func idPtr(i int64) *int64    { return &i }

// ==================== TESTS ====================

func TestTaskService_Add(t *testing.T) {
	t.Run("Creates task through repository", func(t *testing.T) {
		repo := new(MockTaskRepository)
		service := NewTaskService(repo)

		expected := &models.Task{ID: idPtr(1), Title: "Buy milk", Category: "errands", Priority: 2}
		repo.On("InsertTask", "Buy milk", "errands", 2).Return(expected, nil)

		task, err := service.Add(models.CreateTaskRequest{
			Title:    strPtr("Buy milk"),
			Category: strPtr("errands"),
			Priority: intPtr(2),
		})

		require.NoError(t, err)
		assert.Equal(t, expected, task)
		repo.AssertExpectations(t)
	})

	t.Run("Rejects request with missing fields", func(t *testing.T) {
		repo := new(MockTaskRepository)
		service := NewTaskService(repo)

		task, err := service.Add(models.CreateTaskRequest{Title: strPtr("Buy milk")})

		assert.Nil(t, task)
		assert.ErrorIs(t, err, ErrInvalidRequest)
		repo.AssertNotCalled(t, "InsertTask", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Storage error is passed through unchanged", func(t *testing.T) {
		repo := new(MockTaskRepository)
		service := NewTaskService(repo)

		storageErr := &database.StorageError{Op: "insert task", Err: errors.New("disk I/O error")}
		repo.On("InsertTask", "a", "b", 1).Return(nil, storageErr)

		task, err := service.Add(models.CreateTaskRequest{
			Title:    strPtr("a"),
			Category: strPtr("b"),
			Priority: intPtr(1),
		})

		assert.Nil(t, task)
		var target *database.StorageError
		require.True(t, errors.As(err, &target))
		assert.Equal(t, "failed to insert task: disk I/O error", err.Error())
	})
}

func TestTaskService_List(t *testing.T) {
	t.Run("Returns tasks from repository", func(t *testing.T) {
		repo := new(MockTaskRepository)
		service := NewTaskService(repo)

		expected := []models.Task{
			{ID: idPtr(1), Title: "Buy milk", Category: "errands", Priority: 2},
			{ID: idPtr(2), Title: "Fix sink", Category: "home", Priority: 1, Completed: true},
		}
		repo.On("ListTasks").Return(expected, nil)

		tasks, err := service.List()

		require.NoError(t, err)
		assert.Equal(t, expected, tasks)
	})

	t.Run("Nil result becomes empty list", func(t *testing.T) {
		repo := new(MockTaskRepository)
		service := NewTaskService(repo)

		repo.On("ListTasks").Return([]models.Task(nil), nil)

		tasks, err := service.List()

		require.NoError(t, err)
		assert.NotNil(t, tasks)
		assert.Empty(t, tasks)
	})

	t.Run("Repository error", func(t *testing.T) {
		repo := new(MockTaskRepository)
		service := NewTaskService(repo)

		repo.On("ListTasks").Return(nil, &database.StorageError{Op: "list tasks", Err: errors.New("database is locked")})

		tasks, err := service.List()

		assert.Nil(t, tasks)
		assert.EqualError(t, err, "failed to list tasks: database is locked")
	})
}

func TestTaskService_Toggle(t *testing.T) {
	t.Run("Delegates to repository", func(t *testing.T) {
		repo := new(MockTaskRepository)
		service := NewTaskService(repo)

		repo.On("ToggleTask", int64(7)).Return(nil)

		assert.NoError(t, service.Toggle(7))
		repo.AssertExpectations(t)
	})

	t.Run("Repository error", func(t *testing.T) {
		repo := new(MockTaskRepository)
		service := NewTaskService(repo)

		repo.On("ToggleTask", int64(7)).Return(&database.StorageError{Op: "toggle task", Err: errors.New("readonly database")})

		err := service.Toggle(7)
		assert.EqualError(t, err, "failed to toggle task: readonly database")
	})
}
