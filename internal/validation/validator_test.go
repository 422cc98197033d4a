package validation

import (
	"errors"
	"testing"
)

type sample struct {
	Name  *string `json:"name" validate:"required"`
	Kind  string  `json:"kind" validate:"omitempty,oneof=a b"`
	Inner string  `validate:"max=3"`
}

func strPtr(s string) *string { return &s }

func TestStructValid(t *testing.T) {
	if err := Struct(sample{Name: strPtr(""), Kind: "a"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestStructErrors(t *testing.T) {
	err := Struct(sample{Kind: "c", Inner: "long"})
	if err == nil {
		t.Fatal("expected error")
	}

	var verr *Error
	if !errors.As(err, &verr) {
		t.Fatalf("expected *Error, got %T", err)
	}
	if len(verr.Fields) != 3 {
		t.Fatalf("expected 3 field errors, got %d: %v", len(verr.Fields), verr)
	}

	want := map[string]string{
		"name":  "field required",
		"kind":  "failed on oneof",
		"Inner": "failed on max",
	}
	for _, f := range verr.Fields {
		if want[f.Field] != f.Message {
			t.Errorf("%s: got %q, want %q", f.Field, f.Message, want[f.Field])
		}
	}
}
