package util

import "testing"

func TestParse(t *testing.T) {
	tests := []struct {
		input    string
		expected Semver
	}{
		{"1.0.0", Semver{Major: 1, Minor: 0, Patch: 0}},
		{"2.13.7", Semver{Major: 2, Minor: 13, Patch: 7}},
		{"1.2.3-beta.4", Semver{Major: 1, Minor: 2, Patch: 3, Beta: true, Prerelease: 4}},
		{"0.1.0-alpha.1", Semver{Major: 0, Minor: 1, Patch: 0, Alpha: true, Prerelease: 1}},
	}

	for _, tt := range tests {
		got, err := Parse(tt.input)
		if err != nil {
			t.Errorf("Parse(%q) failed: %s", tt.input, err)
			continue
		}
		if got != tt.expected {
			t.Errorf("Parse(%q) = %+v, expected %+v", tt.input, got, tt.expected)
		}
	}
}

func TestParseInvalid(t *testing.T) {
	for _, input := range []string{"", "1", "1.2", "a.b.c", "1.2.x", "1.2.3-rc.1", "1.2.3-beta"} {
		if _, err := Parse(input); err == nil {
			t.Errorf("Parse(%q) should have failed", input)
		}
	}
}

func TestString(t *testing.T) {
	tests := []struct {
		version  Semver
		expected string
	}{
		{Semver{Major: 1, Minor: 0, Patch: 0}, "1.0.0"},
		{Semver{Major: 1, Minor: 2, Patch: 3, Beta: true, Prerelease: 4}, "1.2.3-beta.4"},
		{Semver{Major: 0, Minor: 1, Patch: 0, Alpha: true, Prerelease: 1}, "0.1.0-alpha.1"},
	}

	for _, tt := range tests {
		if got := tt.version.String(); got != tt.expected {
			t.Errorf("%+v.String() = %q, expected %q", tt.version, got, tt.expected)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	for _, input := range []string{"1.0.0", "4.5.6-beta.2", "0.0.1-alpha.3"} {
		parsed, err := Parse(input)
		if err != nil {
			t.Fatalf("Parse(%q) failed: %s", input, err)
		}
		if parsed.String() != input {
			t.Errorf("round trip of %q produced %q", input, parsed.String())
		}
	}
}
