package core

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNewConfig(t *testing.T) {
	t.Setenv("CONFIG_DIR", t.TempDir())
	t.Setenv("ENV", "")

	conf := NewConfig()
	if conf.Env != "DEV" {
		t.Errorf("NewConfig() Env = %q, want %q", conf.Env, "DEV")
	}
	if !conf.Debug {
		t.Error("NewConfig() Debug = false, want true")
	}
	if conf.Schedule.ConflictPolicy != PolicyReject {
		t.Errorf("NewConfig() ConflictPolicy = %q, want %q", conf.Schedule.ConflictPolicy, PolicyReject)
	}
	if err := conf.Validate(); err != nil {
		t.Errorf("Validate() unexpected error = %v", err)
	}
}

func TestNewConfig_env(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("CONFIG_DIR", dir)
	t.Setenv("ENV", "test")
	t.Setenv("TEST_SCHEDULE_CONFLICTPOLICY", " WARN ")
	t.Setenv("TEST_DEBUG", "false")

	dotEnv := "TEST_SCHEDULE_TWELVEHOUR=true\nTEST_BUILD=v1.2.3\n"
	if err := os.WriteFile(filepath.Join(dir, ".env.test"), []byte(dotEnv), 0o600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}
	t.Cleanup(func() {
		_ = os.Unsetenv("TEST_SCHEDULE_TWELVEHOUR")
		_ = os.Unsetenv("TEST_BUILD")
	})

	conf := NewConfig()
	if conf.Env != "TEST" || !conf.TestMode {
		t.Errorf("NewConfig() Env = %q, TestMode = %v", conf.Env, conf.TestMode)
	}
	if conf.Debug {
		t.Error("NewConfig() Debug = true, want false")
	}
	if conf.Schedule.ConflictPolicy != PolicyWarn {
		t.Errorf("NewConfig() ConflictPolicy = %q, want %q", conf.Schedule.ConflictPolicy, PolicyWarn)
	}
	if !conf.Schedule.TwelveHour {
		t.Error("NewConfig() TwelveHour = false, want true (from .env.test)")
	}
	if conf.Build != "v1.2.3" {
		t.Errorf("NewConfig() Build = %q, want %q", conf.Build, "v1.2.3")
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		policy  string
		wantErr bool
	}{
		{name: "reject", policy: PolicyReject},
		{name: "warn", policy: PolicyWarn},
		{name: "unknown", policy: "ignore", wantErr: true},
		{name: "empty", policy: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conf := &Config{Env: "DEV", Schedule: ScheduleConfig{ConflictPolicy: tt.policy}}
			if err := conf.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
