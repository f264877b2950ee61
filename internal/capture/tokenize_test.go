package capture

import (
	"reflect"
	"testing"
)

func TestTokenizeKeepsPositions(t *testing.T) {
	got := Tokenize("a  b c \r")
	want := []string{"a", "", "b", "c", ""}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Tokenize = %q, want %q", got, want)
	}
}

func TestSweepValuesDropsTrailingEmptyToken(t *testing.T) {
	tokens := Tokenize("-90.5 -88.0 -91.0 ")
	if len(tokens) != 4 {
		t.Fatalf("expected trailing empty token, got %q", tokens)
	}
	got := SweepValues(tokens)
	want := []string{"-90.5", "-88.0", "-91.0"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("SweepValues = %q, want %q", got, want)
	}
}

func TestSweepValuesEmptyLine(t *testing.T) {
	if got := SweepValues(Tokenize("")); len(got) != 0 {
		t.Fatalf("expected no values, got %q", got)
	}
}
