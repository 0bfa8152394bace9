package asset

import (
	"errors"
	"testing"

	"github.com/govalues/decimal"
)

func TestNewRate(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			b, q Token
			r    string
		}{
			{tkna, tknb, "0.5"},
			{tkna, tknb, "3120.555555"},
			{tknb, tkna, "0.0000000000000000001"},
			{tkna, tkna, "1"},
			{tkna, tkna, "1.000"},
		}
		for _, tt := range tests {
			d := decimal.MustParse(tt.r)
			got, err := NewRate(tt.b, tt.q, d)
			if err != nil {
				t.Errorf("NewRate(%v, %v, %v) failed: %v", tt.b, tt.q, d, err)
				continue
			}
			if got.Base() != tt.b {
				t.Errorf("NewRate(%v, %v, %v).Base() = %v, want %v", tt.b, tt.q, d, got.Base(), tt.b)
			}
			if got.Quote() != tt.q {
				t.Errorf("NewRate(%v, %v, %v).Quote() = %v, want %v", tt.b, tt.q, d, got.Quote(), tt.q)
			}
			if got.Decimal() != d {
				t.Errorf("NewRate(%v, %v, %v).Decimal() = %v, want %v", tt.b, tt.q, d, got.Decimal(), d)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := map[string]struct {
			b, q Token
			r    string
		}{
			"zero":       {tkna, tknb, "0"},
			"negative":   {tkna, tknb, "-1"},
			"same token": {tkna, tkna, "2"},
		}
		for name, tt := range tests {
			t.Run(name, func(t *testing.T) {
				d := decimal.MustParse(tt.r)
				_, err := NewRate(tt.b, tt.q, d)
				if err == nil {
					t.Errorf("NewRate(%v, %v, %v) did not fail", tt.b, tt.q, d)
				}
			})
		}
	})
}

func TestParseRate(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		got, err := ParseRate(tkna, tknb, "1.25")
		if err != nil {
			t.Fatalf("ParseRate(%v, %v, \"1.25\") failed: %v", tkna, tknb, err)
		}
		if want := decimal.MustParse("1.25"); got.Decimal() != want {
			t.Errorf("ParseRate(%v, %v, \"1.25\").Decimal() = %v, want %v", tkna, tknb, got.Decimal(), want)
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := []struct {
			b, q Token
			r    string
		}{
			{tkna, tknb, ""},
			{tkna, tknb, "abc"},
			{tkna, tknb, "0"},
			{tkna, tknb, "-0.5"},
			{tkna, tkna, "0.9"},
		}
		for _, tt := range tests {
			_, err := ParseRate(tt.b, tt.q, tt.r)
			if err == nil {
				t.Errorf("ParseRate(%v, %v, %q) did not fail", tt.b, tt.q, tt.r)
			}
		}
	})
}

func TestMustParseRate(t *testing.T) {
	t.Run("error", func(t *testing.T) {
		defer func() {
			if r := recover(); r == nil {
				t.Errorf("MustParseRate(%v, %v, \"0\") did not panic", tkna, tknb)
			}
		}()
		MustParseRate(tkna, tknb, "0")
	})
}

func TestRate_Inv(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			r, want string
		}{
			{"0.5", "2"},
			{"4", "0.25"},
			{"8", "0.125"},
		}
		for _, tt := range tests {
			r := MustParseRate(tkna, tknb, tt.r)
			got, err := r.Inv()
			if err != nil {
				t.Errorf("%v.Inv() failed: %v", r, err)
				continue
			}
			if got.Base() != tknb || got.Quote() != tkna {
				t.Errorf("%v.Inv() = %v, want tokens swapped", r, got)
			}
			if want := decimal.MustParse(tt.want); got.Decimal().Cmp(want) != 0 {
				t.Errorf("%v.Inv().Decimal() = %v, want %v", r, got.Decimal(), want)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		r := Rate{}
		_, err := r.Inv()
		if !errors.Is(err, ErrDivisionByZero) {
			t.Errorf("%v.Inv() error = %v, want %v", r, err, ErrDivisionByZero)
		}
	})
}

func TestRate_CanConv(t *testing.T) {
	r := MustParseRate(tkna, tknb, "2")
	tests := []struct {
		r    Rate
		q    Quantity
		want bool
	}{
		{r, one, true},
		{r, tknb.MustNewQuantity("1", true), false},
		{r, MustNewToken("TKNA", "0xAAA", 6).MustNewQuantity("1", true), false},
		{Rate{}, Quantity{}, false},
	}
	for _, tt := range tests {
		if got := tt.r.CanConv(tt.q); got != tt.want {
			t.Errorf("%v.CanConv(%v) = %v, want %v", tt.r, tt.q, got, tt.want)
		}
	}
}

func TestRate_Conv(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			b, q       Token
			r, amount  string
			want       string
			wantRawInt int64
		}{
			{tkna, tknb, "2", "1.5", "3", 3_000_000_000_000_000_000},
			{tknb, tkna, "3120.555555", "1.5", "4680.833332", 4_680_833_332},
			{tkna, tknz, "0.5", "0.000001", "0", 0},
			{tkna, tknz, "3", "1.999999", "5", 5},
			{tkna, tkna, "1", "2.5", "2.5", 2_500_000},
		}
		for _, tt := range tests {
			r := MustParseRate(tt.b, tt.q, tt.r)
			q := tt.b.MustNewQuantity(tt.amount, true)
			got, err := r.Conv(q)
			if err != nil {
				t.Errorf("%v.Conv(%v) failed: %v", r, q, err)
				continue
			}
			if got.Token() != tt.q {
				t.Errorf("%v.Conv(%v).Token() = %v, want %v", r, q, got.Token(), tt.q)
			}
			if got.String() != tt.want {
				t.Errorf("%v.Conv(%v) = %v, want %v", r, q, got, tt.want)
			}
			if got.RawInt() != tt.wantRawInt {
				t.Errorf("%v.Conv(%v).RawInt() = %v, want %v", r, q, got.RawInt(), tt.wantRawInt)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		r := MustParseRate(tkna, tknb, "2")
		q := tknb.MustNewQuantity("1", true)
		_, err := r.Conv(q)
		if !errors.Is(err, ErrTokenMismatch) {
			t.Errorf("%v.Conv(%v) error = %v, want %v", r, q, err, ErrTokenMismatch)
		}
	})
}

func TestRate_String(t *testing.T) {
	tests := []struct {
		r    Rate
		want string
	}{
		{MustParseRate(tkna, tknb, "0.5"), "TKNA/TKNB 0.5"},
		{MustParseRate(tknb, tkna, "3120.555555"), "TKNB/TKNA 3120.555555"},
		{MustParseRate(tkna, tkna, "1"), "TKNA/TKNA 1"},
	}
	for _, tt := range tests {
		if got := tt.r.String(); got != tt.want {
			t.Errorf("%v.String() = %q, want %q", tt.r, got, tt.want)
		}
	}
}
