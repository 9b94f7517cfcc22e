package guard

import "testing"

type customName string

func TestStr(t *testing.T) {
	if got := Str("plain"); got != "plain" {
		t.Errorf("Str(string) = %q", got)
	}
	if got := Str([]byte("bytes")); got != "bytes" {
		t.Errorf("Str([]byte) = %q", got)
	}
	if got := Str([]rune("runes")); got != "runes" {
		t.Errorf("Str([]rune) = %q", got)
	}
	if got := Str(customName("named")); got != "named" {
		t.Errorf("Str(named string) = %q", got)
	}
}
