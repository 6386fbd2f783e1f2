package sharedstring

import (
	"testing"
	"testing/quick"
)

func TestConcat(t *testing.T) {
	tests := []struct {
		name  string
		parts []string
		want  string
	}{
		{"none", nil, ""},
		{"single", []string{"abc"}, "abc"},
		{"pair", []string{"hello ", "world"}, "hello world"},
		{"with empties", []string{"", "a", "", "b", ""}, "ab"},
		{"all empty", []string{"", "", ""}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parts := make([]String, len(tt.parts))
			for i, p := range tt.parts {
				parts[i] = New(p)
			}
			got := Concat(parts...)
			if got.Str() != tt.want {
				t.Errorf("Concat = %q, want %q", got.Str(), tt.want)
			}
			// Inputs must be untouched.
			for i, p := range parts {
				if p.Str() != tt.parts[i] {
					t.Errorf("input %d modified: %q", i, p.Str())
				}
			}
		})
	}
}

func TestConcatProperties(t *testing.T) {
	f := func(a, b, c string) bool {
		got := Concat(New(a), New(b), New(c))
		return got.Str() == a+b+c && got.Len() == len(a)+len(b)+len(c)
	}
	if err := quick.Check(f, nil); err != nil {
		t.Error(err)
	}
}

func TestConcatSingleNonEmptyAliases(t *testing.T) {
	a := New("only content")
	empty := New("")

	got := Concat(empty, a, empty)
	if !got.Aliases(a) {
		t.Error("concat with one non-empty part should alias it")
	}
}

func TestAppend(t *testing.T) {
	a := New("foo")
	b := New("bar")

	got := a.Append(b)
	if got.Str() != "foobar" {
		t.Errorf("Append = %q", got.Str())
	}
	if a.Str() != "foo" || b.Str() != "bar" {
		t.Error("Append modified an input")
	}
}

func TestAppendString(t *testing.T) {
	a := New("foo")

	if got := a.AppendString("bar"); got.Str() != "foobar" {
		t.Errorf("AppendString = %q", got.Str())
	}
	if got := a.AppendString(""); !got.Aliases(a) {
		t.Error("appending empty should alias the receiver")
	}

	var unbound String
	if got := unbound.AppendString("x"); got.Str() != "x" {
		t.Errorf("AppendString on unbound = %q", got.Str())
	}
	if got := unbound.AppendString(""); !got.IsEmpty() {
		t.Errorf("empty append on unbound = %q", got.Str())
	}
}
