package coerce

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNewRegistry_RegistersBuiltins(t *testing.T) {
	reg := NewRegistry()

	want := []string{TagBoolean, TagInteger, TagNumber, TagString}
	if diff := cmp.Diff(want, reg.Tags()); diff != "" {
		t.Fatalf("builtin tags mismatch (-want +got):\n%s", diff)
	}

	for _, tag := range want {
		if _, ok := reg.Lookup(tag); !ok {
			t.Fatalf("builtin tag %q not resolvable", tag)
		}
	}
}

func TestRegister_RejectsDuplicatesAndBadInput(t *testing.T) {
	reg := NewRegistry()

	if err := reg.Register(TagString, ToString); err == nil {
		t.Fatal("duplicate tag must be rejected")
	}
	if err := reg.Register("", ToString); err == nil {
		t.Fatal("empty tag must be rejected")
	}
	if err := reg.Register("custom", nil); err == nil {
		t.Fatal("nil coercer must be rejected")
	}
}

func TestRegister_CustomTagResolves(t *testing.T) {
	reg := NewRegistry()
	reg.MustRegister("upcase", func(value any) (any, error) {
		return strings.ToUpper(value.(string)), nil
	})

	fn, ok := reg.Lookup("upcase")
	if !ok {
		t.Fatal("registered tag must resolve")
	}
	got, err := fn("abc")
	if err != nil || got != "ABC" {
		t.Fatalf("custom coercer: got %v, %v", got, err)
	}
}

func TestLookup_UnknownTag(t *testing.T) {
	if _, ok := NewRegistry().Lookup("datetime"); ok {
		t.Fatal("unknown tag must not resolve")
	}
}

func TestNoCoercionError_NamesTag(t *testing.T) {
	err := &NoCoercionError{Tag: "datetime"}
	if !strings.Contains(err.Error(), `"datetime"`) {
		t.Fatalf("message should name the tag, got %q", err.Error())
	}
}
