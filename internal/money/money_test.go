package money

import (
	"errors"
	"testing"
)

func TestParseMinorUnits(t *testing.T) {
	tests := []struct {
		in      string
		want    int64
		wantErr bool
	}{
		{"12.34", 1234, false},
		{"12,34", 1234, false},
		{"108", 10800, false},
		{" 67.00 ", 6700, false},
		{"12.345", 1235, false},
		{"12.344", 1234, false},
		{"0.01", 1, false},
		{"0", 0, true},
		{"0.004", 0, true},
		{"-5", 0, true},
		{"+5", 0, true},
		{"", 0, true},
		{"abc", 0, true},
		{"1.2.3", 0, true},
		{"1e30", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseMinorUnits(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseMinorUnits(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidAmount) {
					t.Errorf("error %v does not wrap ErrInvalidAmount", err)
				}
				return
			}
			if got != tt.want {
				t.Errorf("ParseMinorUnits(%q) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}

func TestFormat(t *testing.T) {
	tests := map[int64]string{
		1234:  "12.34",
		5:     "0.05",
		10800: "108.00",
		0:     "0.00",
		-333:  "-3.33",
	}
	for in, want := range tests {
		if got := Format(in); got != want {
			t.Errorf("Format(%d) = %q, want %q", in, got, want)
		}
	}
}
