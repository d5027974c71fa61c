package utils

import "testing"

func TestHasLetterAndNumber(t *testing.T) {
	if !HasLetter("abc123") || !HasNumber("abc123") {
		t.Fatalf("expected abc123 to have both")
	}
	if HasLetter("123456") {
		t.Fatalf("digits only must not count as letters")
	}
	if HasNumber("secret") {
		t.Fatalf("letters only must not count as digits")
	}
}

func TestIsValidEmail(t *testing.T) {
	valid := []string{"a@b.co", "user.name+tag@example.com"}
	for _, e := range valid {
		if !IsValidEmail(e) {
			t.Fatalf("expected %q to be valid", e)
		}
	}
	invalid := []string{"", "not-an-email", "a@", "Name <a@b.co>"}
	for _, e := range invalid {
		if IsValidEmail(e) {
			t.Fatalf("expected %q to be invalid", e)
		}
	}
}
