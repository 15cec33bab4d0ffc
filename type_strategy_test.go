package taxlot

import (
	"errors"
	"testing"
)

func TestParseStrategy(t *testing.T) {
	testCases := []struct {
		input   string
		want    Strategy
		wantErr bool
	}{
		{input: "fifo", want: FIFO},
		{input: "hifo", want: HIFO},
		{input: "lifo", wantErr: true},
		{input: "FIFO", wantErr: true}, // strategies are lowercase on the command surface
		{input: "", wantErr: true},
		{input: "invalid-action", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			got, err := ParseStrategy(tc.input)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("ParseStrategy(%q) = %v, want error", tc.input, got)
				}
				if !errors.Is(err, ErrUnknownStrategy) {
					t.Errorf("ParseStrategy(%q) error = %v, want ErrUnknownStrategy", tc.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseStrategy(%q) unexpected error: %v", tc.input, err)
			}
			if got != tc.want {
				t.Errorf("ParseStrategy(%q) = %v, want %v", tc.input, got, tc.want)
			}
		})
	}
}

func TestStrategy_Order(t *testing.T) {
	cheapOld := Lot{ID: 1, Price: M(100, "USD")}
	dearMid := Lot{ID: 2, Price: M(300, "USD")}
	dearNew := Lot{ID: 3, Price: M(300, "USD")}

	fifo := FIFO.order()
	if fifo(cheapOld, dearMid) >= 0 {
		t.Error("FIFO should order by ascending id")
	}

	hifo := HIFO.order()
	if hifo(dearMid, cheapOld) >= 0 {
		t.Error("HIFO should put the higher price first")
	}
	if hifo(dearMid, dearNew) >= 0 {
		t.Error("HIFO should break price ties by ascending id")
	}

	if Strategy(42).order() != nil {
		t.Error("unrecognized strategy should have no ordering")
	}
}
