package sharedstring

import (
	"errors"
	"testing"
)

func TestParseInt(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		base    int
		want    int64
		wantErr error
	}{
		{"decimal", "42", 10, 42, nil},
		{"negative", "-17", 10, -17, nil},
		{"hex", "ff", 16, 255, nil},
		{"auto base hex", "0x1f", 0, 31, nil},
		{"malformed", "12ab", 10, 0, ErrInvalidArgument},
		{"empty", "", 10, 0, ErrInvalidArgument},
		{"overflow", "99999999999999999999", 10, 0, ErrOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := New(tt.input).Int64(tt.base)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Int64 = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestParseInvalidBase(t *testing.T) {
	if _, err := New("10").Int(99); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("Int(99) error = %v, want ErrInvalidArgument", err)
	}
	if _, err := New("10").Int64(1); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("Int64(1) error = %v, want ErrInvalidArgument", err)
	}
}

func TestParseUint64(t *testing.T) {
	if v, err := New("18446744073709551615").Uint64(10); err != nil || v != 1<<64-1 {
		t.Errorf("Uint64 max = %d, %v", v, err)
	}
	if _, err := New("-1").Uint64(10); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("negative uint error = %v, want ErrInvalidArgument", err)
	}
}

func TestParseFloat64(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    float64
		wantErr error
	}{
		{"simple", "3.25", 3.25, nil},
		{"exponent", "1e3", 1000, nil},
		{"malformed", "not a number", 0, ErrInvalidArgument},
		{"overflow", "1e500", 0, ErrOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := New(tt.input).Float64()
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Float64 = %g, want %g", got, tt.want)
			}
		})
	}
}

func TestParseBool(t *testing.T) {
	if v, err := New("true").Bool(); err != nil || !v {
		t.Errorf("Bool(true) = %v, %v", v, err)
	}
	if _, err := New("maybe").Bool(); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("Bool(maybe) error = %v, want ErrInvalidArgument", err)
	}
}

func TestParseDoesNotRebind(t *testing.T) {
	s := New("12ab")
	if _, err := s.Int(10); err == nil {
		t.Fatal("expected parse failure")
	}
	if s.Str() != "12ab" {
		t.Errorf("parse failure modified value: %q", s.Str())
	}
}
