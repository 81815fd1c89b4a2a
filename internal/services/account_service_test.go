package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"voyago/internal/models/db_models"
	"voyago/internal/models/request_models"
	"voyago/pkg/utils"
)

type accountRepoMock struct {
	insertFn      func(ctx context.Context, account *db_models.Account) error
	findByIDFn    func(ctx context.Context, id string) (*db_models.Account, error)
	findByEmailFn func(ctx context.Context, email string) (*db_models.Account, error)
}

func (m *accountRepoMock) Insert(ctx context.Context, account *db_models.Account) error {
	if m.insertFn == nil {
		return nil
	}
	return m.insertFn(ctx, account)
}

func (m *accountRepoMock) FindByID(ctx context.Context, id string) (*db_models.Account, error) {
	if m.findByIDFn == nil {
		return nil, nil
	}
	return m.findByIDFn(ctx, id)
}

func (m *accountRepoMock) FindByEmail(ctx context.Context, email string) (*db_models.Account, error) {
	if m.findByEmailFn == nil {
		return nil, nil
	}
	return m.findByEmailFn(ctx, email)
}

func hashedAccount(t *testing.T, email, password string) *db_models.Account {
	t.Helper()
	hash, err := utils.HashPassword(password)
	require.NoError(t, err)

	account := &db_models.Account{
		Name:         "Test User",
		Email:        email,
		PasswordHash: hash,
		Role:         "user",
	}
	account.ID = uuid.New()
	return account
}

func TestLoginUnknownEmailIsInvalidCredentials(t *testing.T) {
	svc := NewAccountService(&accountRepoMock{})

	_, err := svc.Login(context.Background(), request_models.LoginRequest{
		Email:    "nobody@example.com",
		Password: "whatever1",
	})
	assert.ErrorIs(t, err, utils.ErrInvalidCredentials)
}

func TestLoginWrongPassword(t *testing.T) {
	account := hashedAccount(t, "traveler@example.com", "right-horse")
	repo := &accountRepoMock{
		findByEmailFn: func(ctx context.Context, email string) (*db_models.Account, error) { return account, nil },
	}
	svc := NewAccountService(repo)

	_, err := svc.Login(context.Background(), request_models.LoginRequest{
		Email:    account.Email,
		Password: "wrong-horse",
	})
	assert.ErrorIs(t, err, utils.ErrInvalidCredentials)
}

func TestLoginIssuesToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	account := hashedAccount(t, "traveler@example.com", "right-horse")
	repo := &accountRepoMock{
		findByEmailFn: func(ctx context.Context, email string) (*db_models.Account, error) { return account, nil },
	}
	svc := NewAccountService(repo)

	resp, err := svc.Login(context.Background(), request_models.LoginRequest{
		Email:    account.Email,
		Password: "right-horse",
	})
	require.NoError(t, err)
	require.NotEmpty(t, resp.Token)
	assert.Equal(t, "user", resp.Role)

	claims, err := utils.ValidateToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, account.ID.String(), claims.UserID)
	assert.Equal(t, "user", claims.Role)
}

func TestCreateAccountDuplicateEmail(t *testing.T) {
	account := hashedAccount(t, "taken@example.com", "whatever1")
	repo := &accountRepoMock{
		findByEmailFn: func(ctx context.Context, email string) (*db_models.Account, error) { return account, nil },
	}
	svc := NewAccountService(repo)

	err := svc.CreateAccount(context.Background(), request_models.SignUpRequest{
		DisplayName: "New User",
		Email:       account.Email,
		Password:    "whatever1",
	})
	assert.ErrorIs(t, err, utils.ErrEmailAlreadyExists)
}

func TestCreateAccountHashesPassword(t *testing.T) {
	var inserted *db_models.Account
	repo := &accountRepoMock{
		insertFn: func(ctx context.Context, account *db_models.Account) error {
			inserted = account
			return nil
		},
	}
	svc := NewAccountService(repo)

	err := svc.CreateAccount(context.Background(), request_models.SignUpRequest{
		DisplayName: "New User",
		Email:       "new@example.com",
		Password:    "plain-text-pw",
	})
	require.NoError(t, err)
	require.NotNil(t, inserted)

	assert.Equal(t, "user", inserted.Role)
	assert.NotEqual(t, "plain-text-pw", inserted.PasswordHash)
	assert.NoError(t, utils.ComparePasswords(inserted.PasswordHash, "plain-text-pw"))
}

func TestCreateAccountRepoFailure(t *testing.T) {
	repo := &accountRepoMock{
		findByEmailFn: func(ctx context.Context, email string) (*db_models.Account, error) {
			return nil, errors.New("connection refused")
		},
	}
	svc := NewAccountService(repo)

	err := svc.CreateAccount(context.Background(), request_models.SignUpRequest{
		DisplayName: "New User",
		Email:       "new@example.com",
		Password:    "whatever1",
	})
	assert.ErrorIs(t, err, utils.ErrDatabaseError)
}

func TestGetAccountNotFound(t *testing.T) {
	svc := NewAccountService(&accountRepoMock{})

	_, err := svc.GetAccount(context.Background(), uuid.NewString())
	assert.ErrorIs(t, err, utils.ErrAccountNotFound)
}
