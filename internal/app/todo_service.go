// Package app provides application services that orchestrate use cases by
// coordinating between domain logic and infrastructure through port
// interfaces.
package app

import (
	"context"
	"log/slog"

	"github.com/ymatsuda/todo-backend/internal/domain"
	"github.com/ymatsuda/todo-backend/internal/domain/todo"
	"github.com/ymatsuda/todo-backend/internal/domain/user"
	"github.com/ymatsuda/todo-backend/internal/platform/logging"
	"github.com/ymatsuda/todo-backend/internal/platform/telemetry"
	"github.com/ymatsuda/todo-backend/internal/ports"
)

// Compile-time check that TodoService implements ports.TodoService.
var _ ports.TodoService = (*TodoService)(nil)

// TodoService implements ports.TodoService. It converts raw input into
// domain values, delegates state changes to the todo entity, and persists
// through the repository port. Errors from the repository pass through
// unchanged so callers can rely on the adapter's error contract.
type TodoService struct {
	repo    ports.TodoRepository
	logger  *slog.Logger
	metrics *telemetry.Metrics
}

// NewTodoService creates a TodoService. A nil logger disables logging and a
// nil metrics disables command counters.
func NewTodoService(repo ports.TodoRepository, logger *slog.Logger, metrics *telemetry.Metrics) *TodoService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &TodoService{
		repo:    repo,
		logger:  logger,
		metrics: metrics,
	}
}

// CreateTodo validates the input, builds a new todo in its initial state and
// persists it.
func (s *TodoService) CreateTodo(ctx context.Context, p ports.CreateTodoParams) (*ports.TodoResult, error) {
	s.logger.InfoContext(ctx, "creating todo",
		slog.String("user_id", p.UserID),
		slog.String("title", p.Title),
		slog.Bool("has_body", p.Body != nil),
	)

	userID, err := user.ParseID(p.UserID)
	if err != nil {
		return nil, s.fail(ctx, "create_todo", "failed to create todo", err,
			slog.String("user_id", p.UserID))
	}

	title, err := todo.NewTitle(p.Title)
	if err != nil {
		return nil, s.fail(ctx, "create_todo", "failed to create todo", err,
			slog.String("user_id", p.UserID))
	}

	body := todo.EmptyBody()
	if p.Body != nil {
		body, err = todo.NewBody(*p.Body)
		if err != nil {
			return nil, s.fail(ctx, "create_todo", "failed to create todo", err,
				slog.String("user_id", p.UserID))
		}
	}

	item := todo.New(userID, title, body)
	if err := s.repo.Save(ctx, item); err != nil {
		return nil, s.fail(ctx, "create_todo", "failed to create todo", err,
			slog.String("todo_id", item.ID().Value()),
			slog.String("user_id", p.UserID))
	}

	s.metrics.RecordCommand(ctx, "create_todo", telemetry.ResultOK)
	s.logger.InfoContext(ctx, "todo created",
		slog.String("todo_id", item.ID().Value()),
		slog.String("user_id", item.UserID().Value()),
		slog.String("title", item.Title().Value()),
	)
	return todoResult(item), nil
}

// GetTodo fetches a single todo by ID.
func (s *TodoService) GetTodo(ctx context.Context, todoID string) (*ports.TodoResult, error) {
	s.logger.InfoContext(ctx, "fetching todo", slog.String("todo_id", todoID))

	id, err := todo.ParseID(todoID)
	if err != nil {
		return nil, s.fail(ctx, "get_todo", "failed to fetch todo", err,
			slog.String("todo_id", todoID))
	}

	item, err := s.repo.Find(ctx, id)
	if err != nil {
		return nil, s.fail(ctx, "get_todo", "failed to fetch todo", err,
			slog.String("todo_id", todoID))
	}
	if item == nil {
		err := &domain.NotFoundError{Kind: "Todo", ID: todoID}
		return nil, s.fail(ctx, "get_todo", "failed to fetch todo", err,
			slog.String("todo_id", todoID))
	}

	return todoResult(item), nil
}

// UpdateTodo applies the provided fields to an existing todo. Fields left
// nil stay unchanged; a body explicitly set to the empty string clears it.
func (s *TodoService) UpdateTodo(ctx context.Context, p ports.UpdateTodoParams) (*ports.TodoResult, error) {
	s.logger.InfoContext(ctx, "updating todo",
		slog.String("todo_id", p.TodoID),
		slog.Bool("has_title", p.Title != nil),
		slog.Bool("has_body", p.Body != nil),
		slog.Bool("has_status", p.Status != nil),
	)

	id, err := todo.ParseID(p.TodoID)
	if err != nil {
		return nil, s.fail(ctx, "update_todo", "failed to update todo", err,
			slog.String("todo_id", p.TodoID))
	}

	item, err := s.repo.Find(ctx, id)
	if err != nil {
		return nil, s.fail(ctx, "update_todo", "failed to update todo", err,
			slog.String("todo_id", p.TodoID))
	}
	if item == nil {
		err := &domain.NotFoundError{Kind: "Todo", ID: p.TodoID}
		return nil, s.fail(ctx, "update_todo", "failed to update todo", err,
			slog.String("todo_id", p.TodoID))
	}

	if p.Title != nil {
		title, err := todo.NewTitle(*p.Title)
		if err != nil {
			return nil, s.fail(ctx, "update_todo", "failed to update todo", err,
				slog.String("todo_id", p.TodoID))
		}
		item = item.ChangeTitle(title)
	}

	if p.Body != nil {
		body := todo.EmptyBody()
		if *p.Body != "" {
			body, err = todo.NewBody(*p.Body)
			if err != nil {
				return nil, s.fail(ctx, "update_todo", "failed to update todo", err,
					slog.String("todo_id", p.TodoID))
			}
		}
		item = item.ChangeBody(body)
	}

	if p.Status != nil {
		status, err := todo.ParseStatus(*p.Status)
		if err != nil {
			return nil, s.fail(ctx, "update_todo", "failed to update todo", err,
				slog.String("todo_id", p.TodoID))
		}
		item = item.ChangeStatus(status)
	}

	if err := s.repo.Save(ctx, item); err != nil {
		return nil, s.fail(ctx, "update_todo", "failed to update todo", err,
			slog.String("todo_id", p.TodoID))
	}

	s.metrics.RecordCommand(ctx, "update_todo", telemetry.ResultOK)
	s.logger.InfoContext(ctx, "todo updated",
		slog.String("todo_id", item.ID().Value()),
		slog.String("status", item.Status().String()),
	)
	return todoResult(item), nil
}

// DeleteTodo removes a todo by ID. The repository decides how a missing row
// is reported and that error passes through unchanged.
func (s *TodoService) DeleteTodo(ctx context.Context, todoID string) error {
	s.logger.InfoContext(ctx, "deleting todo", slog.String("todo_id", todoID))

	id, err := todo.ParseID(todoID)
	if err != nil {
		return s.fail(ctx, "delete_todo", "failed to delete todo", err,
			slog.String("todo_id", todoID))
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return s.fail(ctx, "delete_todo", "failed to delete todo", err,
			slog.String("todo_id", todoID))
	}

	s.metrics.RecordCommand(ctx, "delete_todo", telemetry.ResultOK)
	s.logger.InfoContext(ctx, "todo deleted", slog.String("todo_id", todoID))
	return nil
}

// fail records the failed command, logs the error with its correlation
// attributes and returns it unchanged.
func (s *TodoService) fail(ctx context.Context, command, msg string, err error, attrs ...slog.Attr) error {
	s.metrics.RecordCommand(ctx, command, telemetry.ResultError)
	attrs = append(attrs, logging.ErrorAttrs(err)...)
	s.logger.LogAttrs(ctx, slog.LevelError, msg, attrs...)
	return err
}

// todoResult maps a todo entity to the primitive result shape exposed at the
// service boundary.
func todoResult(t *todo.Todo) *ports.TodoResult {
	return &ports.TodoResult{
		ID:        t.ID().Value(),
		UserID:    t.UserID().Value(),
		Title:     t.Title().Value(),
		Body:      t.Body().Value(),
		Status:    t.Status().String(),
		CreatedAt: t.CreatedAt(),
		UpdatedAt: t.UpdatedAt(),
	}
}
