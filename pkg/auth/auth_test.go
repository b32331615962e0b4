package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenManagerRoundTrip(t *testing.T) {
	m := NewTokenManager("segredo", time.Hour)

	token, err := m.Issue("sessao-1", time.Now())
	require.NoError(t, err)

	sid, err := m.Parse(token, time.Now())
	require.NoError(t, err)
	assert.Equal(t, "sessao-1", sid)
}

func TestTokenManagerRejectsExpired(t *testing.T) {
	m := NewTokenManager("segredo", time.Minute)

	token, err := m.Issue("sessao-1", time.Now().Add(-time.Hour))
	require.NoError(t, err)

	_, err = m.Parse(token, time.Now())
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenManagerRejectsForeignKey(t *testing.T) {
	token, err := NewTokenManager("outro", time.Hour).Issue("sessao-1", time.Now())
	require.NoError(t, err)

	_, err = NewTokenManager("segredo", time.Hour).Parse(token, time.Now())
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenManagerRejectsMissingSession(t *testing.T) {
	claims := jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour))}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("segredo"))
	require.NoError(t, err)

	_, err = NewTokenManager("segredo", time.Hour).Parse(token, time.Now())
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenManagerUsesGivenClock(t *testing.T) {
	m := NewTokenManager("segredo", time.Hour)
	issued := time.Date(2024, 6, 3, 10, 0, 0, 0, time.FixedZone("BRT", -3*60*60))

	token, err := m.Issue("sessao-1", issued)
	require.NoError(t, err)

	sid, err := m.Parse(token, issued.Add(30*time.Minute))
	require.NoError(t, err)
	assert.Equal(t, "sessao-1", sid)

	_, err = m.Parse(token, issued.Add(2*time.Hour))
	assert.ErrorIs(t, err, ErrInvalidToken)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestFingerprint(t *testing.T) {
	f := NewFingerprinter("chave")

	a := f.Fingerprint("52998224725")
	assert.Len(t, a, 16)
	assert.Equal(t, a, f.Fingerprint("52998224725"))
	assert.NotEqual(t, a, f.Fingerprint("12345678909"))
	assert.NotEqual(t, a, NewFingerprinter("outra").Fingerprint("52998224725"))
	assert.Empty(t, f.Fingerprint(""))
}
