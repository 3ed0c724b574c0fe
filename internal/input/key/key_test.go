package key

import (
	"testing"
)

func TestLookup(t *testing.T) {
	tests := []struct {
		name string
		want Token
	}{
		{"LSHIFT", LShift},
		{"lshift", LShift},
		{" LShift ", LShift},
		{"X", X},
		{"x", X},
		{"F", F},
		{"f12", F12},
		{"0", Num0},
		{"9", Num9},
		{"LMENU", LMenu},
		{"lalt", LMenu},
		{"LCTRL", LControl},
		{"enter", Return},
		{"esc", Escape},
		{"pgup", Prior},
		{"NUMPAD5", Numpad5},
		{"grave", Grave},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Lookup(tt.name)
			if !ok {
				t.Fatalf("Lookup(%q) not found", tt.name)
			}
			if got != tt.want {
				t.Errorf("Lookup(%q) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}

func TestLookupUnknown(t *testing.T) {
	for _, name := range []string{"", "NONE", "SHIFT", "F13", "XX", "ctrl+s"} {
		if tok, ok := Lookup(name); ok {
			t.Errorf("Lookup(%q) = %v, want not found", name, tok)
		}
	}
}

func TestTokenString(t *testing.T) {
	tests := []struct {
		tok  Token
		want string
	}{
		{None, "NONE"},
		{A, "A"},
		{Z, "Z"},
		{Num3, "3"},
		{F1, "F1"},
		{LShift, "LSHIFT"},
		{LMenu, "LMENU"},
		{Prior, "PRIOR"},
		{Grave, "GRAVE"},
		{Token(9999), "Token(9999)"},
	}

	for _, tt := range tests {
		if got := tt.tok.String(); got != tt.want {
			t.Errorf("Token(%d).String() = %q, want %q", tt.tok, got, tt.want)
		}
	}
}

func TestEveryTokenRoundTrips(t *testing.T) {
	for _, tok := range All() {
		name := tok.String()
		if name == "" {
			t.Fatalf("token %d has no name", tok)
		}
		got, ok := Lookup(name)
		if !ok || got != tok {
			t.Errorf("Lookup(%q) = %v, %v; want %v", name, got, ok, tok)
		}
	}
}

func TestTokenClasses(t *testing.T) {
	if !LShift.IsModifier() || !RMeta.IsModifier() {
		t.Error("shift and meta should be modifiers")
	}
	if X.IsModifier() || Space.IsModifier() {
		t.Error("X and SPACE should not be modifiers")
	}
	if !Q.IsLetter() || Num1.IsLetter() {
		t.Error("IsLetter mismatch")
	}
	if !F5.IsFunctionKey() || F.IsFunctionKey() {
		t.Error("IsFunctionKey mismatch")
	}
	if None.IsValid() || !A.IsValid() || Token(9999).IsValid() {
		t.Error("IsValid mismatch")
	}
}
