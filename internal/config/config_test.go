package config

import (
	"errors"
	"testing"
)

func TestDefaults(t *testing.T) {
	c := &Config{}
	if got := c.MaxResults(); got != 50 {
		t.Errorf("MaxResults() = %d, want 50", got)
	}
	if !c.LogEnabled() {
		t.Error("LogEnabled() = false, want true by default")
	}
	if c.Library() != "" {
		t.Errorf("Library() = %q, want empty", c.Library())
	}
}

func TestValidateBounds(t *testing.T) {
	tests := []struct {
		name    string
		max     int
		wantErr bool
	}{
		{"lower bound", 1, false},
		{"upper bound", 500, false},
		{"typical", 50, false},
		{"zero", 0, true},
		{"negative", -1, true},
		{"above upper", 501, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &Config{Defaults: Defaults{MaxResults: &tt.max}}
			err := c.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr && !errors.Is(err, ErrInvalidValue) {
				t.Errorf("Validate() error = %v, want ErrInvalidValue", err)
			}
		})
	}
}

func TestGetSet(t *testing.T) {
	c := &Config{}

	if err := c.Set("defaults.max_results", "100"); err != nil {
		t.Fatalf("Set(max_results): %v", err)
	}
	if got, _ := c.Get("defaults.max_results"); got != "100" {
		t.Errorf("Get(max_results) = %q, want 100", got)
	}

	if err := c.Set("log.enabled", "false"); err != nil {
		t.Fatalf("Set(log.enabled): %v", err)
	}
	if c.LogEnabled() {
		t.Error("LogEnabled() = true after setting false")
	}

	if err := c.Set("engine.library", `D:\tools\Everything64.dll`); err != nil {
		t.Fatalf("Set(engine.library): %v", err)
	}
	if got := c.Library(); got != `D:\tools\Everything64.dll` {
		t.Errorf("Library() = %q", got)
	}
}

func TestSetInvalid(t *testing.T) {
	c := &Config{}

	if err := c.Set("defaults.max_results", "9999"); !errors.Is(err, ErrInvalidValue) {
		t.Errorf("Set(max_results 9999) error = %v, want ErrInvalidValue", err)
	}
	if err := c.Set("log.enabled", "maybe"); !errors.Is(err, ErrInvalidValue) {
		t.Errorf("Set(log.enabled maybe) error = %v, want ErrInvalidValue", err)
	}
	if err := c.Set("nope.nope", "x"); !errors.Is(err, ErrUnknownKey) {
		t.Errorf("Set(unknown key) error = %v, want ErrUnknownKey", err)
	}
	if _, err := c.Get("nope.nope"); !errors.Is(err, ErrUnknownKey) {
		t.Errorf("Get(unknown key) error = %v, want ErrUnknownKey", err)
	}
}

func TestIsSet(t *testing.T) {
	c := &Config{}
	for _, k := range ValidKeys() {
		if c.IsSet(k) {
			t.Errorf("IsSet(%q) = true on zero config", k)
		}
	}

	if err := c.Set("defaults.max_results", "20"); err != nil {
		t.Fatal(err)
	}
	if !c.IsSet("defaults.max_results") {
		t.Error("IsSet(defaults.max_results) = false after Set")
	}
}
