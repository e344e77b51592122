package app

import (
	"context"
	"log/slog"

	"github.com/ymatsuda/todo-backend/internal/domain"
	"github.com/ymatsuda/todo-backend/internal/domain/user"
	"github.com/ymatsuda/todo-backend/internal/platform/logging"
	"github.com/ymatsuda/todo-backend/internal/platform/telemetry"
	"github.com/ymatsuda/todo-backend/internal/ports"
)

// Compile-time check that UserService implements ports.UserService.
var _ ports.UserService = (*UserService)(nil)

// UserService implements ports.UserService following the same orchestration
// shape as TodoService.
type UserService struct {
	repo    ports.UserRepository
	logger  *slog.Logger
	metrics *telemetry.Metrics
}

// NewUserService creates a UserService. A nil logger disables logging and a
// nil metrics disables command counters.
func NewUserService(repo ports.UserRepository, logger *slog.Logger, metrics *telemetry.Metrics) *UserService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &UserService{
		repo:    repo,
		logger:  logger,
		metrics: metrics,
	}
}

// CreateUser validates the input and persists a new user.
func (s *UserService) CreateUser(ctx context.Context, p ports.CreateUserParams) (*ports.UserResult, error) {
	s.logger.InfoContext(ctx, "creating user",
		slog.String("email", p.Email),
		slog.String("name", p.Name),
	)

	email, err := user.NewEmail(p.Email)
	if err != nil {
		return nil, s.fail(ctx, "create_user", "failed to create user", err)
	}

	name, err := user.NewUsername(p.Name)
	if err != nil {
		return nil, s.fail(ctx, "create_user", "failed to create user", err)
	}

	u := user.New(email, name)
	if err := s.repo.Save(ctx, u); err != nil {
		return nil, s.fail(ctx, "create_user", "failed to create user", err,
			slog.String("user_id", u.ID().Value()))
	}

	s.metrics.RecordCommand(ctx, "create_user", telemetry.ResultOK)
	s.logger.InfoContext(ctx, "user created",
		slog.String("user_id", u.ID().Value()),
		slog.String("name", u.Name().Value()),
	)
	return userResult(u), nil
}

// GetUser fetches a single user by ID.
func (s *UserService) GetUser(ctx context.Context, userID string) (*ports.UserResult, error) {
	s.logger.InfoContext(ctx, "fetching user", slog.String("user_id", userID))

	id, err := user.ParseID(userID)
	if err != nil {
		return nil, s.fail(ctx, "get_user", "failed to fetch user", err,
			slog.String("user_id", userID))
	}

	u, err := s.repo.Find(ctx, id)
	if err != nil {
		return nil, s.fail(ctx, "get_user", "failed to fetch user", err,
			slog.String("user_id", userID))
	}
	if u == nil {
		err := &domain.NotFoundError{Kind: "User", ID: userID}
		return nil, s.fail(ctx, "get_user", "failed to fetch user", err,
			slog.String("user_id", userID))
	}

	return userResult(u), nil
}

// UpdateUser applies the provided fields to an existing user. Fields left
// nil stay unchanged.
func (s *UserService) UpdateUser(ctx context.Context, p ports.UpdateUserParams) (*ports.UserResult, error) {
	s.logger.InfoContext(ctx, "updating user",
		slog.String("user_id", p.UserID),
		slog.Bool("has_email", p.Email != nil),
		slog.Bool("has_name", p.Name != nil),
	)

	id, err := user.ParseID(p.UserID)
	if err != nil {
		return nil, s.fail(ctx, "update_user", "failed to update user", err,
			slog.String("user_id", p.UserID))
	}

	u, err := s.repo.Find(ctx, id)
	if err != nil {
		return nil, s.fail(ctx, "update_user", "failed to update user", err,
			slog.String("user_id", p.UserID))
	}
	if u == nil {
		err := &domain.NotFoundError{Kind: "User", ID: p.UserID}
		return nil, s.fail(ctx, "update_user", "failed to update user", err,
			slog.String("user_id", p.UserID))
	}

	if p.Email != nil {
		email, err := user.NewEmail(*p.Email)
		if err != nil {
			return nil, s.fail(ctx, "update_user", "failed to update user", err,
				slog.String("user_id", p.UserID))
		}
		u = u.ChangeEmail(email)
	}

	if p.Name != nil {
		name, err := user.NewUsername(*p.Name)
		if err != nil {
			return nil, s.fail(ctx, "update_user", "failed to update user", err,
				slog.String("user_id", p.UserID))
		}
		u = u.ChangeName(name)
	}

	if err := s.repo.Save(ctx, u); err != nil {
		return nil, s.fail(ctx, "update_user", "failed to update user", err,
			slog.String("user_id", p.UserID))
	}

	s.metrics.RecordCommand(ctx, "update_user", telemetry.ResultOK)
	s.logger.InfoContext(ctx, "user updated", slog.String("user_id", u.ID().Value()))
	return userResult(u), nil
}

// DeleteUser removes a user by ID. The repository decides how a missing row
// is reported and that error passes through unchanged.
func (s *UserService) DeleteUser(ctx context.Context, userID string) error {
	s.logger.InfoContext(ctx, "deleting user", slog.String("user_id", userID))

	id, err := user.ParseID(userID)
	if err != nil {
		return s.fail(ctx, "delete_user", "failed to delete user", err,
			slog.String("user_id", userID))
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return s.fail(ctx, "delete_user", "failed to delete user", err,
			slog.String("user_id", userID))
	}

	s.metrics.RecordCommand(ctx, "delete_user", telemetry.ResultOK)
	s.logger.InfoContext(ctx, "user deleted", slog.String("user_id", userID))
	return nil
}

func (s *UserService) fail(ctx context.Context, command, msg string, err error, attrs ...slog.Attr) error {
	s.metrics.RecordCommand(ctx, command, telemetry.ResultError)
	attrs = append(attrs, logging.ErrorAttrs(err)...)
	s.logger.LogAttrs(ctx, slog.LevelError, msg, attrs...)
	return err
}

func userResult(u *user.User) *ports.UserResult {
	return &ports.UserResult{
		ID:        u.ID().Value(),
		Email:     u.Email().Value(),
		Name:      u.Name().Value(),
		CreatedAt: u.CreatedAt(),
		UpdatedAt: u.UpdatedAt(),
	}
}
