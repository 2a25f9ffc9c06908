package user

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"recipebox/domain"
	"recipebox/entities"
	"recipebox/pkg/jwt"
)

type fakeUserRepository struct {
	users  map[uint]*entities.User
	nextID uint
}

func newFakeUserRepository() *fakeUserRepository {
	return &fakeUserRepository{users: map[uint]*entities.User{}, nextID: 1}
}

func (f *fakeUserRepository) CreateUser(_ context.Context, user *entities.User) error {
	user.ID = f.nextID
	f.nextID++
	cp := *user
	f.users[user.ID] = &cp
	return nil
}

func (f *fakeUserRepository) GetUserByID(_ context.Context, id uint) (*entities.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUserRepository) GetUserByEmail(_ context.Context, email string) (*entities.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepository) GetUserByVerifyToken(_ context.Context, token string) (*entities.User, error) {
	for _, u := range f.users {
		if u.VerifyToken != nil && *u.VerifyToken == token {
			cp := *u
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepository) UpdateUser(_ context.Context, user *entities.User) error {
	cp := *user
	f.users[user.ID] = &cp
	return nil
}

func newTestUserService(t *testing.T) (UserService, *fakeUserRepository) {
	t.Setenv("JWT_SECRET", "test-secret")
	repo := newFakeUserRepository()
	return NewUserService(repo, jwt.NewJWTService()), repo
}

func TestRegisterNormalizesEmail(t *testing.T) {
	svc, _ := newTestUserService(t)

	res, err := svc.Register(context.Background(), domain.RegisterRequest{
		Email:    "Test@TEStINPUt.cOM",
		Password: "pass123",
	})

	require.NoError(t, err)
	assert.Equal(t, "test@testinput.com", res.Email)
}

func TestRegisterEmptyEmailFails(t *testing.T) {
	svc, repo := newTestUserService(t)

	_, err := svc.Register(context.Background(), domain.RegisterRequest{
		Email:    "",
		Password: "pass123",
	})

	assert.ErrorIs(t, err, domain.ErrEmailRequired)
	assert.Empty(t, repo.users)
}

func TestRegisterDuplicateEmailCaseInsensitive(t *testing.T) {
	svc, _ := newTestUserService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, domain.RegisterRequest{Email: "test@x.com", Password: "pass123"})
	require.NoError(t, err)

	_, err = svc.Register(ctx, domain.RegisterRequest{Email: "Test@X.com", Password: "pass456"})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestRegisterStoresHashedPassword(t *testing.T) {
	svc, repo := newTestUserService(t)

	res, err := svc.Register(context.Background(), domain.RegisterRequest{
		Email:    "test@test.com",
		Password: "pass123",
	})
	require.NoError(t, err)

	stored := repo.users[res.ID]
	assert.NotEqual(t, "pass123", stored.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("pass123")))
}

func TestRegisterSuperuserSetsFlags(t *testing.T) {
	svc, repo := newTestUserService(t)

	res, err := svc.RegisterSuperuser(context.Background(), "admin@test.com", "pass123")
	require.NoError(t, err)

	stored := repo.users[res.ID]
	assert.True(t, stored.IsStaff)
	assert.True(t, stored.IsSuperuser)
}

func TestRegularUserHasNoElevatedFlags(t *testing.T) {
	svc, repo := newTestUserService(t)

	res, err := svc.Register(context.Background(), domain.RegisterRequest{
		Email:    "plain@test.com",
		Password: "pass123",
	})
	require.NoError(t, err)

	stored := repo.users[res.ID]
	assert.False(t, stored.IsStaff)
	assert.False(t, stored.IsSuperuser)
}

func TestLogin(t *testing.T) {
	svc, _ := newTestUserService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, domain.RegisterRequest{Email: "test@test.com", Password: "pass123"})
	require.NoError(t, err)

	tests := []struct {
		name     string
		email    string
		password string
		wantErr  error
	}{
		{"valid credentials", "test@test.com", "pass123", nil},
		{"mixed case email", "TEST@Test.com", "pass123", nil},
		{"wrong password", "test@test.com", "nope", domain.ErrCredentialsInvalid},
		{"unknown email", "ghost@test.com", "pass123", domain.ErrCredentialsInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := svc.Login(ctx, domain.LoginRequest{Email: tt.email, Password: tt.password})
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.NotEmpty(t, res.Token)
			assert.Equal(t, domain.RoleUser, res.Role)
		})
	}
}

func TestUpdateUserChangesPassword(t *testing.T) {
	svc, _ := newTestUserService(t)
	ctx := context.Background()

	res, err := svc.Register(ctx, domain.RegisterRequest{Email: "test@test.com", Password: "pass123"})
	require.NoError(t, err)

	err = svc.UpdateUser(ctx, domain.UpdateUserRequest{Password: "newpass1"}, "1")
	require.NoError(t, err)

	_, err = svc.Login(ctx, domain.LoginRequest{Email: res.Email, Password: "pass123"})
	assert.ErrorIs(t, err, domain.ErrCredentialsInvalid)

	_, err = svc.Login(ctx, domain.LoginRequest{Email: res.Email, Password: "newpass1"})
	assert.NoError(t, err)
}

func TestVerifyEmail(t *testing.T) {
	svc, repo := newTestUserService(t)
	ctx := context.Background()

	res, err := svc.Register(ctx, domain.RegisterRequest{Email: "test@test.com", Password: "pass123"})
	require.NoError(t, err)

	token := "some-verify-token"
	stored := repo.users[res.ID]
	stored.VerifyToken = &token

	require.NoError(t, svc.VerifyEmail(ctx, token))
	assert.True(t, repo.users[res.ID].IsVerified)
	assert.Nil(t, repo.users[res.ID].VerifyToken)

	assert.ErrorIs(t, svc.VerifyEmail(ctx, ""), domain.ErrVerifyTokenInvalid)
	assert.ErrorIs(t, svc.VerifyEmail(ctx, "unknown"), domain.ErrVerifyTokenInvalid)
}
