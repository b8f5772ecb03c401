package env

import "testing"

func TestGetFallsBackWhenUnset(t *testing.T) {
	t.Setenv("TDAH_ENV_TEST_VALUE", "")
	if got := Get("TDAH_ENV_TEST_VALUE", "fallback"); got != "fallback" {
		t.Fatalf("expected fallback, got %q", got)
	}

	t.Setenv("TDAH_ENV_TEST_VALUE", "set")
	if got := Get("TDAH_ENV_TEST_VALUE", "fallback"); got != "set" {
		t.Fatalf("expected set value, got %q", got)
	}
}

func TestGetBool(t *testing.T) {
	t.Setenv("TDAH_ENV_TEST_BOOL", "true")
	if !GetBool("TDAH_ENV_TEST_BOOL", false) {
		t.Fatal("expected true")
	}

	t.Setenv("TDAH_ENV_TEST_BOOL", "nope")
	if !GetBool("TDAH_ENV_TEST_BOOL", true) {
		t.Fatal("expected fallback for malformed value")
	}
}
