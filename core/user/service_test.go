package user_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BurhanAsghar/teacherportal/core"
	"github.com/BurhanAsghar/teacherportal/core/user"
	inmemdb "github.com/BurhanAsghar/teacherportal/storage/database/inmem"
)

func newService() *user.Service {
	return user.NewService(inmemdb.NewUserRepository(inmemdb.NewDB()))
}

func TestService_Register(t *testing.T) {
	ctx := context.Background()
	svc := newService()

	usr, err := svc.Register(ctx, user.NewUser{Username: "jdoe", Email: "jdoe@test.cd", Password: "secret123"})
	require.NoError(t, err)
	assert.NotEmpty(t, usr.ID)
	assert.Equal(t, "jdoe", usr.Username)
	assert.False(t, usr.CreatedAt.IsZero())

	// the raw password is never stored
	assert.NotEqual(t, []byte("secret123"), usr.PasswordHash)
	assert.NoError(t, usr.CheckPassword("secret123"))
	assert.Error(t, usr.CheckPassword("secret456"))

	t.Run("hashing is salted", func(t *testing.T) {
		usr2, err := svc.Register(ctx, user.NewUser{Username: "jdoe2", Email: "jdoe2@test.cd", Password: "secret123"})
		require.NoError(t, err)
		assert.NotEqual(t, usr.PasswordHash, usr2.PasswordHash)
	})
}

func TestService_CheckUniqueness(t *testing.T) {
	ctx := context.Background()
	svc := newService()

	_, err := svc.Register(ctx, user.NewUser{Username: "jdoe", Email: "jdoe@test.cd", Password: "secret123"})
	require.NoError(t, err)

	tests := []struct {
		name      string
		uname     string
		email     string
		wantField string
	}{
		{name: "all clear", uname: "other", email: "other@test.cd"},
		{name: "duplicate username", uname: "jdoe", email: "other@test.cd", wantField: "username"},
		{name: "duplicate email", uname: "other", email: "jdoe@test.cd", wantField: "email"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := svc.CheckUniqueness(ctx, tt.uname, tt.email)
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}
			var vErr *core.ValidationError
			require.ErrorAs(t, err, &vErr)
			require.Len(t, vErr.Fields, 1)
			assert.Equal(t, tt.wantField, vErr.Fields[0].Field)
		})
	}
}

func TestService_GetByEmail(t *testing.T) {
	ctx := context.Background()
	svc := newService()

	usr, err := svc.Register(ctx, user.NewUser{Username: "jdoe", Email: "jdoe@test.cd", Password: "secret123"})
	require.NoError(t, err)

	// lookup cleans & lowers the email
	got, err := svc.GetByEmail(ctx, "  JDoe@Test.cd ")
	require.NoError(t, err)
	assert.Equal(t, usr.ID, got.ID)

	_, err = svc.GetByEmail(ctx, "nobody@test.cd")
	assert.Equal(t, user.ErrNotFound, err)
}

func TestService_GetByID(t *testing.T) {
	ctx := context.Background()
	svc := newService()

	usr, err := svc.Register(ctx, user.NewUser{Username: "jdoe", Email: "jdoe@test.cd", Password: "secret123"})
	require.NoError(t, err)

	got, err := svc.GetByID(ctx, usr.ID)
	require.NoError(t, err)
	assert.Equal(t, usr.Email, got.Email)

	_, err = svc.GetByID(ctx, "no-such-id")
	assert.Equal(t, user.ErrNotFound, err)
}
