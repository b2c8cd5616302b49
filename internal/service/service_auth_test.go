package service

import (
	"context"
	"testing"
	"time"

	"github.com/mvoronin/clinic-sync/internal/config"
	"github.com/mvoronin/clinic-sync/internal/logger"
	"github.com/mvoronin/clinic-sync/internal/mock"
	"github.com/mvoronin/clinic-sync/internal/store"
	"github.com/mvoronin/clinic-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

func newTestAuthSvc(t *testing.T, ctrl *gomock.Controller) (AuthService, *mock.MockUserRepository) {
	t.Helper()
	mockRepo := mock.NewMockUserRepository(ctrl)
	cfg := config.App{
		TokenSignKey:  "test-sign-key",
		TokenIssuer:   "clinic-sync-test",
		TokenDuration: time.Hour,
	}
	return NewAuthService(mockRepo, cfg, logger.Nop()), mockRepo
}

func TestAuthService_RegisterUser_HashesPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	mockRepo.EXPECT().CreateUser(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, user models.User) (models.User, error) {
			assert.Empty(t, user.Password, "plaintext must be cleared before persistence")
			require.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("s3cret-pass")))
			user.UserID = 7
			return user, nil
		},
	)

	registered, err := svc.RegisterUser(ctx, models.User{Login: "nurse@clinic.example", Password: "s3cret-pass"})
	require.NoError(t, err)
	assert.Equal(t, int64(7), registered.UserID)
}

func TestAuthService_RegisterUser_EmptyCredentials(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestAuthSvc(t, ctrl)

	_, err := svc.RegisterUser(context.Background(), models.User{Login: "nurse@clinic.example"})
	require.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestAuthService_RegisterUser_LoginTaken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	mockRepo.EXPECT().CreateUser(ctx, gomock.Any()).Return(models.User{}, store.ErrLoginAlreadyExists)

	_, err := svc.RegisterUser(ctx, models.User{Login: "nurse@clinic.example", Password: "s3cret-pass"})
	require.ErrorIs(t, err, store.ErrLoginAlreadyExists)
}

func TestAuthService_Login_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret-pass"), bcrypt.MinCost)
	require.NoError(t, err)

	stored := models.User{UserID: 7, Login: "nurse@clinic.example", PasswordHash: string(hash)}
	mockRepo.EXPECT().FindUserByLogin(ctx, "nurse@clinic.example").Return(stored, nil)

	found, err := svc.Login(ctx, models.User{Login: "nurse@clinic.example", Password: "s3cret-pass"})
	require.NoError(t, err)
	assert.Equal(t, int64(7), found.UserID)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret-pass"), bcrypt.MinCost)
	require.NoError(t, err)

	stored := models.User{UserID: 7, Login: "nurse@clinic.example", PasswordHash: string(hash)}
	mockRepo.EXPECT().FindUserByLogin(ctx, "nurse@clinic.example").Return(stored, nil)

	_, err = svc.Login(ctx, models.User{Login: "nurse@clinic.example", Password: "not-it"})
	require.ErrorIs(t, err, ErrWrongPassword)
}

func TestAuthService_Login_UnknownLoginIndistinguishableFromWrongPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	mockRepo.EXPECT().FindUserByLogin(ctx, "ghost@clinic.example").Return(models.User{}, store.ErrNoUserWasFound)

	_, err := svc.Login(ctx, models.User{Login: "ghost@clinic.example", Password: "anything"})
	require.ErrorIs(t, err, ErrWrongPassword)
}

func TestAuthService_TokenRoundTrip(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	token, err := svc.CreateToken(ctx, models.User{UserID: 7})
	require.NoError(t, err)
	require.NotEmpty(t, token.SignedString)

	parsed, err := svc.ParseToken(ctx, token.SignedString)
	require.NoError(t, err)
	assert.Equal(t, int64(7), parsed.UserID)
}

func TestAuthService_ParseToken_WrongSignature(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	otherCfg := config.App{TokenSignKey: "other-key", TokenIssuer: "clinic-sync-test", TokenDuration: time.Hour}
	other, _ := newTestAuthSvcWithConfig(t, ctrl, otherCfg)

	token, err := other.CreateToken(ctx, models.User{UserID: 7})
	require.NoError(t, err)

	_, err = svc.ParseToken(ctx, token.SignedString)
	require.Error(t, err)
}

func newTestAuthSvcWithConfig(t *testing.T, ctrl *gomock.Controller, cfg config.App) (AuthService, *mock.MockUserRepository) {
	t.Helper()
	mockRepo := mock.NewMockUserRepository(ctrl)
	return NewAuthService(mockRepo, cfg, logger.Nop()), mockRepo
}
