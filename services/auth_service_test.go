package services

import (
	"testing"
	"time"

	"github.com/Ashitosh2004/hotellucky/entity"
	"github.com/Ashitosh2004/hotellucky/repository"
	"github.com/Ashitosh2004/hotellucky/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func seedUser(t *testing.T, db *gorm.DB, email, password, role string) *entity.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	u := &entity.User{Email: email, Password: string(hash), Role: role}
	require.NoError(t, db.Create(u).Error)
	return u
}

func TestLogin(t *testing.T) {
	db := newTestDB(t)
	auth := NewAuthService(repository.NewUserRepository(db), "test-secret", time.Hour)
	seedUser(t, db, "south@hotellucky.in", "pass123", entity.RoleSouthKitchen)

	token, user, err := auth.Login("south@hotellucky.in", "pass123")
	require.NoError(t, err)
	assert.Equal(t, entity.RoleSouthKitchen, user.Role)

	// the role in the token comes from the user row
	claims, err := utils.ParseToken(token, "test-secret")
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, entity.RoleSouthKitchen, claims.Role)

	// email lookup is case-insensitive
	_, _, err = auth.Login("  SOUTH@hotellucky.in ", "pass123")
	require.NoError(t, err)
}

func TestLoginFailures(t *testing.T) {
	db := newTestDB(t)
	auth := NewAuthService(repository.NewUserRepository(db), "test-secret", time.Hour)
	seedUser(t, db, "admin@hotellucky.in", "correct", entity.RoleAdmin)

	_, _, err := auth.Login("admin@hotellucky.in", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, err = auth.Login("ghost@hotellucky.in", "whatever")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginRateLimit(t *testing.T) {
	db := newTestDB(t)
	auth := NewAuthService(repository.NewUserRepository(db), "test-secret", time.Hour)
	seedUser(t, db, "admin@hotellucky.in", "correct", entity.RoleAdmin)

	for i := 0; i < maxLoginAttempts; i++ {
		_, _, err := auth.Login("admin@hotellucky.in", "wrong")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	}

	// window saturated: even the right password is refused now
	_, _, err := auth.Login("admin@hotellucky.in", "correct")
	assert.ErrorIs(t, err, ErrTooManyAttempts)

	// other accounts are unaffected
	seedUser(t, db, "other@hotellucky.in", "pass", entity.RoleAdmin)
	_, _, err = auth.Login("other@hotellucky.in", "pass")
	require.NoError(t, err)
}

func TestParseTokenRejectsBadSecret(t *testing.T) {
	token, err := utils.GenerateToken("u1", entity.RoleAdmin, "secret-a", time.Hour)
	require.NoError(t, err)

	_, err = utils.ParseToken(token, "secret-b")
	assert.Error(t, err)
}
