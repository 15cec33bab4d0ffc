package taxlot

import (
	"errors"
	"testing"
)

func TestParseDate(t *testing.T) {
	testCases := []struct {
		input string
		want  string // expected String() of the parsed date, "" when an error is expected
	}{
		{input: "2021-01-01", want: "2021-01-01"},
		{input: "2024-02-29", want: "2024-02-29"}, // leap day
		{input: "1999-12-31", want: "1999-12-31"},
		{input: "invalid-date"},
		{input: ""},
		{input: "2021-13-01"}, // no 13th month
		{input: "2021-02-30"}, // February has no 30th
		{input: "2023-02-29"}, // not a leap year
		{input: "2021-00-10"},
		{input: "2021-01-00"},
		{input: "21-01-01"},   // 2-digit year
		{input: "2021-1-1"},   // single-digit month and day
		{input: "2021/01/01"}, // wrong separator
		{input: "2021-01-01 "},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			got, err := ParseDate(tc.input)
			if tc.want == "" {
				if err == nil {
					t.Fatalf("ParseDate(%q) = %s, want error", tc.input, got)
				}
				if !errors.Is(err, ErrInvalidDate) {
					t.Errorf("ParseDate(%q) error = %v, want ErrInvalidDate", tc.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseDate(%q) unexpected error: %v", tc.input, err)
			}
			if got.String() != tc.want {
				t.Errorf("ParseDate(%q) = %s, want %s", tc.input, got, tc.want)
			}
		})
	}
}

func TestDate_Ordering(t *testing.T) {
	a := MustParseDate("2021-01-01")
	b := MustParseDate("2021-01-02")

	if !a.Before(b) {
		t.Errorf("%s should be before %s", a, b)
	}
	if !b.After(a) {
		t.Errorf("%s should be after %s", b, a)
	}
	if a.Before(a) || a.After(a) {
		t.Errorf("%s should be neither before nor after itself", a)
	}
}

func TestDate_JSONRoundtrip(t *testing.T) {
	day := MustParseDate("2021-06-15")
	data, err := day.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON: %v", err)
	}
	if string(data) != `"2021-06-15"` {
		t.Errorf("MarshalJSON = %s, want %q", data, `"2021-06-15"`)
	}

	var back Date
	if err := back.UnmarshalJSON(data); err != nil {
		t.Fatalf("UnmarshalJSON: %v", err)
	}
	if back != day {
		t.Errorf("roundtrip = %s, want %s", back, day)
	}
}
