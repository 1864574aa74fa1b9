package normalize_test

import (
	"testing"

	"crosswalk/internal/normalize"
	"crosswalk/internal/vocab"
)

func TestName(t *testing.T) {
	cases := map[string]string{
		"  John   DOE ": "john doe",
		"John-Doe":      "john doe",
		"O'Brien":       "o brien",
		"José García":   "jose garcia",
		"":              "",
	}
	for input, want := range cases {
		if got := normalize.Name(input); got != want {
			t.Errorf("Name(%q) = %q, want %q", input, got, want)
		}
	}
}

func TestAddress(t *testing.T) {
	tables := vocab.Default()
	cases := map[string]string{
		"123 Main Street":       "123 main st",
		"123 Main St.":          "123 main st",
		"456 Oak Avenue, Apt 2": "456 oak ave apt 2",
		"789 ELM BLVD":          "789 elm blvd",
	}
	for input, want := range cases {
		if got := normalize.Address(input, tables); got != want {
			t.Errorf("Address(%q) = %q, want %q", input, got, want)
		}
	}
}

func TestEmail(t *testing.T) {
	cases := map[string]string{
		"  John.Doe@Email.COM ": "john.doe@email.com",
		"not-an-email":          "",
		"missing@tld":           "",
		"a@b.co":                "a@b.co",
		"":                      "",
	}
	for input, want := range cases {
		if got := normalize.Email(input); got != want {
			t.Errorf("Email(%q) = %q, want %q", input, got, want)
		}
	}
}

func TestPhone(t *testing.T) {
	cases := map[string]string{
		"(555) 123-4567":   "5551234567",
		"1-555-123-4567":   "5551234567",
		"555.123.4567":     "5551234567",
		"+44 20 7946 0958 ": "2079460958",
		"12345":            "12345",
		"":                 "",
	}
	for input, want := range cases {
		if got := normalize.Phone(input); got != want {
			t.Errorf("Phone(%q) = %q, want %q", input, got, want)
		}
	}
}

func TestParseAddress(t *testing.T) {
	tables := vocab.Default()

	parsed := normalize.ParseAddress("123 Main St, Anytown, California", tables)
	if parsed.Street != "123 Main St" {
		t.Fatalf("unexpected street: %q", parsed.Street)
	}
	if parsed.City != "Anytown" {
		t.Fatalf("unexpected city: %q", parsed.City)
	}
	if parsed.State != "CA" {
		t.Fatalf("unexpected state: %q", parsed.State)
	}
}

func TestParseAddressMultiWordCity(t *testing.T) {
	tables := vocab.Default()
	parsed := normalize.ParseAddress("9 Elm Rd, San Jose, CA", tables)
	if parsed.City != "San Jose" {
		t.Fatalf("unexpected city: %q", parsed.City)
	}
	if parsed.State != "CA" {
		t.Fatalf("unexpected state: %q", parsed.State)
	}
}

func TestParseAddressDegenerate(t *testing.T) {
	tables := vocab.Default()
	if parsed := normalize.ParseAddress("", tables); parsed != (normalize.ParsedAddress{}) {
		t.Fatalf("expected zero value for empty input, got %+v", parsed)
	}
	parsed := normalize.ParseAddress("123 Main St", tables)
	if parsed.Street != "123 Main St" || parsed.City != "" || parsed.State != "" {
		t.Fatalf("expected street-only parse, got %+v", parsed)
	}
}

func TestFold(t *testing.T) {
	if got := normalize.Fold("Müller"); got != "Muller" {
		t.Fatalf("Fold(Müller) = %q", got)
	}
	if got := normalize.Fold("plain"); got != "plain" {
		t.Fatalf("Fold(plain) = %q", got)
	}
}
