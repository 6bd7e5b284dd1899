package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chefhub-in/ChefHub-BookingService/internal/infra/storage/session"
	"github.com/chefhub-in/ChefHub-BookingService/internal/integrations/otp"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fakeDirectoryLoader struct {
	loadedTokens      []string
	invalidatedTokens []string
}

func (f *fakeDirectoryLoader) LoadAsync(sessionToken string) {
	f.loadedTokens = append(f.loadedTokens, sessionToken)
}

func (f *fakeDirectoryLoader) Invalidate(sessionToken string) {
	f.invalidatedTokens = append(f.invalidatedTokens, sessionToken)
}

func newTestService() (*Service, *session.Store, *fakeDirectoryLoader) {
	sessions := session.NewStore(time.Hour)
	loader := &fakeDirectoryLoader{}
	svc := NewService(otp.NewStubProvider(6, nopLogger{}), sessions, loader, nopLogger{})
	return svc, sessions, loader
}

func TestService_RequestCode_PhoneValidation(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	// Валидный индийский мобильный
	assert.NoError(t, svc.RequestCode(ctx, "9876543210"))
	assert.NoError(t, svc.RequestCode(ctx, "6000000000"))

	// Первая цифра вне диапазона 6-9
	assert.ErrorIs(t, svc.RequestCode(ctx, "1234567890"), ErrInvalidPhone)
	// Неверная длина
	assert.ErrorIs(t, svc.RequestCode(ctx, "98765"), ErrInvalidPhone)
	assert.ErrorIs(t, svc.RequestCode(ctx, "98765432100"), ErrInvalidPhone)
	// Не цифры
	assert.ErrorIs(t, svc.RequestCode(ctx, "98765abcde"), ErrInvalidPhone)
	assert.ErrorIs(t, svc.RequestCode(ctx, ""), ErrInvalidPhone)
}

func TestService_VerifyCode_CreatesSessionAndStartsDirectoryLoad(t *testing.T) {
	svc, sessions, loader := newTestService()

	sess, err := svc.VerifyCode(context.Background(), "9876543210", "123456")
	require.NoError(t, err)

	assert.Equal(t, "9876543210", sess.Phone)
	assert.NotEmpty(t, sess.Token)
	assert.True(t, sessions.IsAlive(sess.Token))

	// Загрузка каталога запускается для нового токена
	require.Len(t, loader.loadedTokens, 1)
	assert.Equal(t, sess.Token, loader.loadedTokens[0])
}

func TestService_VerifyCode_RejectsBadCode(t *testing.T) {
	svc, _, loader := newTestService()
	ctx := context.Background()

	// Заглушка принимает любой код нужной длины из цифр
	_, err := svc.VerifyCode(ctx, "9876543210", "12345")
	assert.ErrorIs(t, err, ErrInvalidCode)

	_, err = svc.VerifyCode(ctx, "9876543210", "12345a")
	assert.ErrorIs(t, err, ErrInvalidCode)

	_, err = svc.VerifyCode(ctx, "1234567890", "123456")
	assert.ErrorIs(t, err, ErrInvalidPhone)

	assert.Empty(t, loader.loadedTokens)
}

func TestService_Logout(t *testing.T) {
	svc, sessions, loader := newTestService()
	ctx := context.Background()

	sess, err := svc.VerifyCode(ctx, "9876543210", "000000")
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx, sess.Token))

	// Сессия закрыта, каталог сброшен
	assert.False(t, sessions.IsAlive(sess.Token))
	require.Len(t, loader.invalidatedTokens, 1)
	assert.Equal(t, sess.Token, loader.invalidatedTokens[0])

	// Повторный logout по тому же токену
	assert.ErrorIs(t, svc.Logout(ctx, sess.Token), ErrSessionNotFound)
}
