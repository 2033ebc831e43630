package domain

import "testing"

func TestFormatPhone_Boundaries(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"1", "1"},
		{"12", "12"},
		{"123", "123"},
		{"1234", "(123) 4"},
		{"123456", "(123) 456"},
		{"1234567", "(123) 456-7"},
		{"1234567890", "(123) 456-7890"},
		{"12345678901234", "(123) 456-7890"},
		{"(123) 456-7890", "(123) 456-7890"},
		{"abc123def456ghi7890", "(123) 456-7890"},
	}
	for _, tc := range cases {
		if got := FormatPhone(tc.in); got != tc.want {
			t.Errorf("FormatPhone(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestFormatPhone_PreservesDigits(t *testing.T) {
	inputs := []string{"", "5", "555 01", "call me at 3035550123 today", "+1 (720) 555-0199 x42"}
	for _, in := range inputs {
		if got, want := PhoneDigits(FormatPhone(in)), PhoneDigits(in); got != want {
			t.Errorf("digits(FormatPhone(%q)) = %q, want %q", in, got, want)
		}
	}
}

func TestFormatPhone_Idempotent(t *testing.T) {
	inputs := []string{"12", "12345", "1234567890", "(303) 555-0123"}
	for _, in := range inputs {
		once := FormatPhone(in)
		if twice := FormatPhone(once); twice != once {
			t.Errorf("FormatPhone not idempotent: %q → %q → %q", in, once, twice)
		}
	}
}

func TestValidPhone(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"1234567890", true},
		{"(123) 456-7890", true},
		{"123456789", false},
		{"12345678901", false},
		{"", false},
		{"phone", false},
	}
	for _, tc := range cases {
		if got := ValidPhone(tc.in); got != tc.want {
			t.Errorf("ValidPhone(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestCanonicalPhone(t *testing.T) {
	if got := CanonicalPhone("(123) 456-7890"); got != "+11234567890" {
		t.Errorf("CanonicalPhone = %q, want +11234567890", got)
	}
	if got := CanonicalPhone("1234567890"); got != "+11234567890" {
		t.Errorf("CanonicalPhone = %q, want +11234567890", got)
	}
}
