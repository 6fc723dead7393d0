package aadhar

import "testing"

func TestIsValid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want bool
	}{
		{in: "123456789012", want: true},
		{in: "  123456789012  ", want: true},
		{in: "12345678901", want: false},
		{in: "1234567890123", want: false},
		{in: "12345678901a", want: false},
		{in: "1234 5678 9012", want: false},
		{in: "", want: false},
	}

	for _, tt := range tests {
		if got := IsValid(tt.in); got != tt.want {
			t.Fatalf("IsValid(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestMask(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{in: "123456789012", want: "XXXX-XXXX-9012"},
		{in: " 123456789012 ", want: "XXXX-XXXX-9012"},
		{in: "", want: ""},
		{in: "1234567", want: "XXX4567"},
		{in: "987", want: "987"},
		{in: "12345678901234", want: "XXXXXXXXXX1234"},
	}

	for _, tt := range tests {
		if got := Mask(tt.in); got != tt.want {
			t.Fatalf("Mask(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
