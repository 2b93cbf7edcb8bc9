package auth

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/johnquangdev/tubeblog/internal/domain/entities"
	ucerrors "github.com/johnquangdev/tubeblog/internal/usecase/errors"
	"github.com/johnquangdev/tubeblog/pkg/jwt"
)

type memUserRepo struct {
	mu    sync.Mutex
	users map[uuid.UUID]*entities.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: map[uuid.UUID]*entities.User{}}
}

func (r *memUserRepo) Create(ctx context.Context, user *entities.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Username == user.Username {
			return entities.ErrUserAlreadyExists
		}
	}
	r.users[user.ID] = user
	return nil
}

func (r *memUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u, ok := r.users[id]; ok {
		return u, nil
	}
	return nil, entities.ErrUserNotFound
}

func (r *memUserRepo) FindByUsername(ctx context.Context, username string) (*entities.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, entities.ErrUserNotFound
}

func (r *memUserRepo) UpdateLastLogin(ctx context.Context, userID uuid.UUID) error {
	return nil
}

func (r *memUserRepo) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[id]; !ok {
		return entities.ErrUserNotFound
	}
	delete(r.users, id)
	return nil
}

func newTestService(repo *memUserRepo) *Service {
	s := NewService(repo, jwt.NewManager("access", "refresh", 15*time.Minute, time.Hour), zap.NewNop())
	s.hashCost = bcrypt.MinCost
	return s
}

func TestSignupAndLogin(t *testing.T) {
	s := newTestService(newMemUserRepo())
	ctx := context.Background()

	res, err := s.Signup(ctx, "alice", "alice@example.com", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, "alice", res.User.Username)
	assert.NotEqual(t, "s3cret", res.User.PasswordHash)
	assert.NotEmpty(t, res.AccessToken)
	assert.NotEmpty(t, res.RefreshToken)
	assert.Equal(t, int64(900), res.ExpiresIn)

	login, err := s.Login(ctx, "alice", "s3cret")
	require.NoError(t, err)
	assert.NotNil(t, login.User.LastLoginAt)

	user, err := s.ValidateAccessToken(ctx, login.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, res.User.ID, user.ID)
}

func TestSignup_Duplicate(t *testing.T) {
	s := newTestService(newMemUserRepo())
	ctx := context.Background()

	_, err := s.Signup(ctx, "alice", "", "pw")
	require.NoError(t, err)

	_, err = s.Signup(ctx, "alice", "", "pw")
	assert.ErrorIs(t, err, ucerrors.ErrAlreadyExists)
}

func TestSignup_InvalidInput(t *testing.T) {
	s := newTestService(newMemUserRepo())

	_, err := s.Signup(context.Background(), "  ", "", "pw")
	assert.ErrorIs(t, err, ucerrors.ErrInvalidInput)

	_, err = s.Signup(context.Background(), "bob", "", "")
	assert.ErrorIs(t, err, ucerrors.ErrInvalidInput)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	s := newTestService(newMemUserRepo())
	ctx := context.Background()
	_, err := s.Signup(ctx, "alice", "", "right")
	require.NoError(t, err)

	_, err = s.Login(ctx, "alice", "wrong")
	assert.ErrorIs(t, err, ucerrors.ErrInvalidCredentials)

	_, err = s.Login(ctx, "nobody", "right")
	assert.ErrorIs(t, err, ucerrors.ErrInvalidCredentials)
}

func TestLogin_InactiveUser(t *testing.T) {
	repo := newMemUserRepo()
	s := newTestService(repo)
	ctx := context.Background()

	user, err := s.Register(ctx, "alice", "", "pw")
	require.NoError(t, err)
	user.IsActive = false

	_, err = s.Login(ctx, "alice", "pw")
	assert.ErrorIs(t, err, ucerrors.ErrUserNotActive)
}

func TestRefresh(t *testing.T) {
	s := newTestService(newMemUserRepo())
	ctx := context.Background()

	res, err := s.Signup(ctx, "alice", "", "pw")
	require.NoError(t, err)

	refreshed, err := s.Refresh(ctx, res.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, refreshed.AccessToken)
	assert.Equal(t, res.User.ID, refreshed.User.ID)

	_, err = s.Refresh(ctx, res.AccessToken)
	assert.ErrorIs(t, err, ucerrors.ErrTokenInvalid)
}

func TestValidateAccessToken_DeletedUser(t *testing.T) {
	s := newTestService(newMemUserRepo())
	ctx := context.Background()

	res, err := s.Signup(ctx, "alice", "", "pw")
	require.NoError(t, err)

	_, err = s.DeleteUser(ctx, "alice")
	require.NoError(t, err)

	_, err = s.ValidateAccessToken(ctx, res.AccessToken)
	assert.ErrorIs(t, err, ucerrors.ErrUnauthorized)

	_, err = s.Me(ctx, res.User.ID)
	assert.ErrorIs(t, err, ucerrors.ErrNotFound)
}
