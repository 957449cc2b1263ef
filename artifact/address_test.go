package artifact

import "testing"

func TestAddress(t *testing.T) {
	got := Address("nyc_airbnb", "clean_sample.csv", "latest")
	want := "nyc_airbnb/clean_sample.csv:latest"
	if got != want {
		t.Errorf("Address() = %q, want %q", got, want)
	}
}

func TestParse(t *testing.T) {
	project, name, tag, err := Parse("nyc_airbnb/clean_sample.csv:reference")
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if project != "nyc_airbnb" || name != "clean_sample.csv" || tag != "reference" {
		t.Errorf("Parse() = %q/%q:%q", project, name, tag)
	}
}

func TestParse_Invalid(t *testing.T) {
	for _, addr := range []string{"", "no-tag", "project/name:", "name:tag", "/name:tag"} {
		if _, _, _, err := Parse(addr); err == nil {
			t.Errorf("Parse(%q) expected error", addr)
		}
	}
}
