package recognition

import "testing"

func TestParseModelSize_Valid(t *testing.T) {
	for _, m := range ModelSizes {
		got, err := ParseModelSize(string(m))
		if err != nil {
			t.Fatalf("ParseModelSize(%q): %v", m, err)
		}
		if got != m {
			t.Errorf("ParseModelSize(%q) = %q", m, got)
		}
	}
}

func TestParseModelSize_EmptyDefaultsToLarge(t *testing.T) {
	got, err := ParseModelSize("")
	if err != nil {
		t.Fatal(err)
	}
	if got != ModelLarge {
		t.Errorf("expected large, got %q", got)
	}
}

func TestParseModelSize_Unknown(t *testing.T) {
	for _, s := range []string{"huge", "LARGE", "tiny "} {
		if _, err := ParseModelSize(s); err == nil {
			t.Errorf("ParseModelSize(%q): expected error", s)
		}
	}
}
