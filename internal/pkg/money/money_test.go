package money

import "testing"

func TestMulDivRoundsHalfUp(t *testing.T) {
	t.Parallel()

	tests := []struct {
		amount Cents
		num    int64
		den    int64
		want   Cents
	}{
		{amount: 30000, num: 14, den: 23, want: 18261}, // 182.608... -> 182.61
		{amount: 30000, num: 23, den: 23, want: 30000},
		{amount: 100, num: 1, den: 2, want: 50},
		{amount: 101, num: 1, den: 2, want: 51}, // 50.5 rounds up
		{amount: 0, num: 5, den: 7, want: 0},
		{amount: -101, num: 1, den: 2, want: -51},
	}

	for _, tt := range tests {
		if got := MulDiv(tt.amount, tt.num, tt.den); got != tt.want {
			t.Fatalf("MulDiv(%d, %d, %d) = %d, want %d", tt.amount, tt.num, tt.den, got, tt.want)
		}
	}
}

func TestApplyBasisPoints(t *testing.T) {
	t.Parallel()

	if got := ApplyBasisPoints(10000, 825); got != 825 {
		t.Fatalf("expected 825, got %d", got)
	}
	if got := ApplyBasisPoints(18261, 825); got != 1507 {
		// 18261 * 0.0825 = 1506.53 -> 1507
		t.Fatalf("expected 1507, got %d", got)
	}
}

func TestExtractBasisPoints(t *testing.T) {
	t.Parallel()

	// 108.25 gross at 8.25% contains 8.25 tax.
	if got := ExtractBasisPoints(10825, 825); got != 825 {
		t.Fatalf("expected 825, got %d", got)
	}
	if got := ExtractBasisPoints(10000, 0); got != 0 {
		t.Fatalf("expected 0 for zero rate, got %d", got)
	}
}

func TestFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   Cents
		want string
	}{
		{in: 18261, want: "182.61"},
		{in: 0, want: "0.00"},
		{in: 5, want: "0.05"},
		{in: -30000, want: "-300.00"},
	}
	for _, tt := range tests {
		if got := tt.in.Format(); got != tt.want {
			t.Fatalf("Format(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    Cents
		wantErr bool
	}{
		{in: "300", want: 30000},
		{in: "300.5", want: 30050},
		{in: "300.50", want: 30050},
		{in: "-12.34", want: -1234},
		{in: ".99", want: 99},
		{in: "1.999", wantErr: true},
		{in: "", wantErr: true},
		{in: "abc", wantErr: true},
	}
	for _, tt := range tests {
		got, err := Parse(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Fatalf("Parse(%q) expected error", tt.in)
			}
			continue
		}
		if err != nil {
			t.Fatalf("Parse(%q) unexpected error: %v", tt.in, err)
		}
		if got != tt.want {
			t.Fatalf("Parse(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
