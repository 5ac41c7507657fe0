package main

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func TestConfigArgs(t *testing.T) {
	cases := map[string]struct {
		args []string
		want []string
	}{
		"short before command": {args: []string{"-c", "prod.yml", "serve"}, want: []string{"-c", "prod.yml"}},
		"long after command":   {args: []string{"check", "--config", "prod.yml", "a@b.co"}, want: []string{"-c", "prod.yml"}},
		"equals":               {args: []string{"migrate", "--config=prod.yml"}, want: []string{"-c", "prod.yml"}},
		"short equals":         {args: []string{"-c=prod.yml", "jwt"}, want: []string{"-c", "prod.yml"}},
		"absent":               {args: []string{"check", "--persist", "a@b.co"}, want: nil},
		"dangling":             {args: []string{"serve", "-c"}, want: nil},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			require.Equal(t, tc.want, configArgs(tc.args))
		})
	}
}

func TestSignToken(t *testing.T) {
	priv, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	privPEM := pem.EncodeToMemory(&pem.Block{Type: "RSA PRIVATE KEY", Bytes: x509.MarshalPKCS1PrivateKey(priv)})

	now := time.Now()
	signed, err := signToken(string(privPEM), "billing-service", time.Hour, now)
	require.NoError(t, err)

	var claims jwt.RegisteredClaims
	_, err = jwt.ParseWithClaims(signed, &claims, func(*jwt.Token) (any, error) { return &priv.PublicKey, nil },
		jwt.WithValidMethods([]string{"RS256"}))
	require.NoError(t, err)
	require.Equal(t, "billing-service", claims.Subject)
	require.Equal(t, now.Add(time.Hour).Unix(), claims.ExpiresAt.Unix())

	_, err = signToken("not a key", "billing-service", time.Hour, now)
	require.Error(t, err)
}
