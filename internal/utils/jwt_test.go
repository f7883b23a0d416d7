package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testIssuer = "vitrine-test"
	testKey    = "0123456789abcdef"
	testEmail  = "admin@cabinet.fr"
)

func TestGenerateJWTToken_Success(t *testing.T) {
	token, err := GenerateJWTToken(testIssuer, testEmail, time.Hour, testKey)
	require.NoError(t, err)

	assert.NotEmpty(t, token.SignedString)
	assert.Equal(t, token.SignedString, token.String())
	require.NotNil(t, token.Token)
	assert.Equal(t, testEmail, token.Email)
	assert.Equal(t, testIssuer, token.Issuer)
	assert.WithinDuration(t, time.Now().Add(time.Hour), token.ExpiresAt.Time, 2*time.Second)
}

func TestGenerateJWTToken_InvalidParams(t *testing.T) {
	tests := []struct {
		name     string
		issuer   string
		email    string
		duration time.Duration
		key      string
	}{
		{"empty issuer", "", testEmail, time.Hour, testKey},
		{"empty email", testIssuer, "", time.Hour, testKey},
		{"zero duration", testIssuer, testEmail, 0, testKey},
		{"empty key", testIssuer, testEmail, time.Hour, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateJWTToken(tt.issuer, tt.email, tt.duration, tt.key)
			assert.Error(t, err)
		})
	}
}

func TestValidateAndParseJWTToken_Success(t *testing.T) {
	genToken, err := GenerateJWTToken(testIssuer, testEmail, 5*time.Minute, testKey)
	require.NoError(t, err)

	parsed, err := ValidateAndParseJWTToken(genToken.SignedString, testKey, testIssuer)
	require.NoError(t, err)
	assert.Equal(t, testEmail, parsed.Email)
	assert.True(t, parsed.Valid)
}

func TestValidateAndParseJWTToken_Rejections(t *testing.T) {
	valid, _ := GenerateJWTToken(testIssuer, testEmail, time.Hour, testKey)
	expired, _ := GenerateJWTToken(testIssuer, testEmail, -time.Second, testKey)

	none := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{Issuer: testIssuer, Subject: testEmail})
	noneString, err := none.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	tests := []struct {
		name   string
		token  string
		key    string
		issuer string
	}{
		{"wrong key", valid.SignedString, "another-key-0000", testIssuer},
		{"wrong issuer", valid.SignedString, testKey, "fake-issuer"},
		{"expired", expired.SignedString, testKey, testIssuer},
		{"unsigned", noneString, testKey, testIssuer},
		{"malformed", "not.a.token", testKey, testIssuer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ValidateAndParseJWTToken(tt.token, tt.key, tt.issuer)
			assert.Error(t, err)
		})
	}
}

func TestValidateAndParseJWTToken_EmptySubject(t *testing.T) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Issuer:    testIssuer,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	signed, err := token.SignedString([]byte(testKey))
	require.NoError(t, err)

	_, err = ValidateAndParseJWTToken(signed, testKey, testIssuer)
	assert.Error(t, err)
}

func TestParseBearerToken(t *testing.T) {
	token, err := ParseBearerToken("Bearer abc.def.ghi")
	require.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", token)

	token, err = ParseBearerToken("bearer   abc")
	require.NoError(t, err)
	assert.Equal(t, "abc", token)

	for _, header := range []string{"", "Bearer", "Basic abc", "Bearer a b"} {
		_, err := ParseBearerToken(header)
		assert.Error(t, err, header)
	}
}
