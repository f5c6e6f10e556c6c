package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTLSFilesFromEnv(t *testing.T) {
	tests := []struct {
		name     string
		certFile string
		keyFile  string
		wantOK   bool
	}{
		{name: "both set", certFile: "/etc/hangman/cert.pem", keyFile: "/etc/hangman/key.pem", wantOK: true},
		{name: "key missing", certFile: "/etc/hangman/cert.pem"},
		{name: "cert missing", keyFile: "/etc/hangman/key.pem"},
		{name: "neither set"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("HANGMAN_TLS_CERT_FILE", tt.certFile)
			t.Setenv("HANGMAN_TLS_KEY_FILE", tt.keyFile)

			certFile, keyFile, ok := tlsFilesFromEnv()
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.certFile, certFile)
			assert.Equal(t, tt.keyFile, keyFile)
		})
	}
}
