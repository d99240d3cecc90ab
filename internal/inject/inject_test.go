package inject

import "testing"

var allKeys = []Key{
	KeySpace, KeyShift, KeyControl, KeyTab, KeyEscape, KeyF5, KeySlash,
	KeyA, KeyB, KeyD, KeyE, KeyQ, KeyS, KeyV, KeyW,
}

func TestRobotgoTokenTableComplete(t *testing.T) {
	for _, k := range allKeys {
		tok, ok := robotgoKeys[k]
		if !ok || tok == "" {
			t.Fatalf("key %v has no robotgo token", k)
		}
	}
}

func TestKeyString(t *testing.T) {
	seen := make(map[string]Key, len(allKeys))
	for _, k := range allKeys {
		s := k.String()
		if s == "invalid" {
			t.Fatalf("key %d stringifies as invalid", k)
		}
		if prev, dup := seen[s]; dup {
			t.Fatalf("keys %d and %d share name %q", prev, k, s)
		}
		seen[s] = k
	}
	if got := KeyInvalid.String(); got != "invalid" {
		t.Fatalf("KeyInvalid.String() = %q, want %q", got, "invalid")
	}
}

func TestMouseButtonString(t *testing.T) {
	if got := MouseLeft.String(); got != "left" {
		t.Fatalf("MouseLeft.String() = %q, want %q", got, "left")
	}
	if got := MouseRight.String(); got != "right" {
		t.Fatalf("MouseRight.String() = %q, want %q", got, "right")
	}
}

func TestNewRejectsUnknownBackend(t *testing.T) {
	if _, err := New("telepathy"); err == nil {
		t.Fatal("New with unknown backend returned nil error")
	}
}
