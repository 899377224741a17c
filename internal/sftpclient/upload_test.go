package sftpclient

import (
	"context"
	"path/filepath"
	"strings"
	"testing"
)

func TestConfigValidate(t *testing.T) {
	cfg, err := Config{Host: "test-host", User: "test-user", Pass: "test-pass"}.validate()
	if err != nil {
		t.Fatalf("validate() error = %v", err)
	}
	if cfg.Port != 22 {
		t.Errorf("Expected default Port 22, got %d", cfg.Port)
	}
	if cfg.RemoteDir != "/" {
		t.Errorf("Expected default RemoteDir '/', got %q", cfg.RemoteDir)
	}

	if _, err := (Config{Host: "h"}).validate(); err == nil {
		t.Error("Expected error for missing credentials")
	}
}

func TestHostKeyCallback(t *testing.T) {
	if _, err := (Config{InsecureIgnoreHostKey: true}).hostKeyCallback(); err != nil {
		t.Errorf("Expected insecure callback, got %v", err)
	}

	missing := filepath.Join(t.TempDir(), "known_hosts")
	if _, err := (Config{KnownHosts: missing}).hostKeyCallback(); err == nil {
		t.Error("Expected error for missing known_hosts file")
	}
}

func TestUploadValidation(t *testing.T) {
	ctx := context.Background()

	const (
		testHost = "127.0.0.1"
		testUser = "test-user"
		testPass = "test-pass"
		testFile = "index.html"
	)

	testCases := []struct {
		name          string
		run           func() error
		errorContains string
	}{
		{
			name:          "Missing credentials",
			run:           func() error { return UploadFiles(ctx, Config{}, []string{testFile}) },
			errorContains: "sftp: missing sftp_host / sftp_user / sftp_pass",
		},
		{
			name: "Nothing to upload",
			run: func() error {
				return UploadFiles(ctx, Config{Host: testHost, User: testUser, Pass: testPass}, nil)
			},
		},
		{
			name: "Unreachable host",
			run: func() error {
				cfg := Config{Host: testHost, Port: 1, User: testUser, Pass: testPass, InsecureIgnoreHostKey: true}
				return UploadFiles(ctx, cfg, []string{testFile})
			},
			errorContains: "sftp: dial error",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.run()
			if tc.errorContains == "" {
				if err != nil {
					t.Errorf("Expected no error, got %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("Expected error containing %q, got nil", tc.errorContains)
			}
			if !strings.Contains(err.Error(), tc.errorContains) {
				t.Errorf("Expected error to contain %q, got %q", tc.errorContains, err.Error())
			}
		})
	}
}

func TestUploadCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	cfg := Config{Host: "10.255.255.1", User: "u", Pass: "p", InsecureIgnoreHostKey: true}
	err := UploadFiles(ctx, cfg, []string{"index.html"})
	if err == nil {
		t.Fatal("Expected error for canceled context")
	}
	if !strings.Contains(err.Error(), "sftp:") {
		t.Errorf("Unexpected error %v", err)
	}
}
