package api

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionVerifier_RoundTrip(t *testing.T) {
	v, err := NewSessionVerifier("s3cret")
	require.NoError(t, err)

	tok, err := v.Issue("athena@olympus.test", "Athena", time.Hour)
	require.NoError(t, err)

	var claims *SessionClaims
	claims, err = v.Parse(tok)
	require.NoError(t, err)
	assert.Equal(t, "athena@olympus.test", claims.Subject)
	assert.Equal(t, "Athena", claims.Name)
}

func TestSessionVerifier_Rejects(t *testing.T) {
	v, _ := NewSessionVerifier("s3cret")
	other, _ := NewSessionVerifier("different")

	foreign, err := other.Issue("a@e.com", "A", time.Hour)
	require.NoError(t, err)
	_, err = v.Parse(foreign)
	assert.Error(t, err, "wrong secret")

	expired, err := v.Issue("a@e.com", "A", -time.Minute)
	require.NoError(t, err)
	_, err = v.Parse(expired)
	assert.Error(t, err, "expired")

	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{"sub": "a@e.com", "exp": time.Now().Add(time.Hour).Unix()}).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)
	_, err = v.Parse(unsigned)
	assert.Error(t, err, "alg none")

	noSubject, err := v.Issue("", "A", time.Hour)
	require.NoError(t, err)
	_, err = v.Parse(noSubject)
	assert.Error(t, err, "missing subject")

	_, err = v.Parse("   ")
	assert.Error(t, err)
}

func TestSessionVerifier_DevSecret(t *testing.T) {
	a, err := NewSessionVerifier("")
	require.NoError(t, err)
	b, err := NewSessionVerifier("")
	require.NoError(t, err)

	tok, err := a.Issue("a@e.com", "A", time.Hour)
	require.NoError(t, err)
	_, err = a.Parse(tok)
	assert.NoError(t, err)
	_, err = b.Parse(tok)
	assert.Error(t, err, "each dev secret is random")
}

func TestNormalizeKeys(t *testing.T) {
	out, err := MarshalIntoSnakeKeys([]struct {
		ID        uint
		CreatedAt time.Time
		Name      string `json:"name"`
	}{{ID: 3, Name: "Thor"}})
	require.NoError(t, err)

	rows := out.([]interface{})
	row := rows[0].(map[string]interface{})
	assert.EqualValues(t, 3, row["id"])
	assert.Contains(t, row, "created_at")
	assert.NotContains(t, row, "ID")
	assert.Equal(t, "Thor", row["name"])
}
