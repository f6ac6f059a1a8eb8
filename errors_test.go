package hxhead

import (
	"errors"
	"fmt"
	"testing"
)

func TestSentinelErrors(t *testing.T) {
	if errors.Is(ErrInvalidAttributeCombination, ErrMissingPrerequisite) ||
		errors.Is(ErrMissingPrerequisite, ErrInvalidAttributeCombination) {
		t.Error("sentinel errors should be distinct")
	}
}

func TestIsInvalidAttributeCombination(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		expect bool
	}{
		{"nil error", nil, false},
		{"sentinel", ErrInvalidAttributeCombination, true},
		{"wrapped", fmt.Errorf("wrapped: %w", ErrInvalidAttributeCombination), true},
		{"other error", errors.New("other error"), false},
		{"missing prerequisite", ErrMissingPrerequisite, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsInvalidAttributeCombination(tt.err); got != tt.expect {
				t.Errorf("IsInvalidAttributeCombination(%v) = %v, want %v", tt.err, got, tt.expect)
			}
		})
	}
}

func TestIsMissingPrerequisite(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		expect bool
	}{
		{"nil error", nil, false},
		{"sentinel", ErrMissingPrerequisite, true},
		{"wrapped", fmt.Errorf("wrapped: %w", ErrMissingPrerequisite), true},
		{"other error", errors.New("other error"), false},
		{"invalid combination", ErrInvalidAttributeCombination, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsMissingPrerequisite(tt.err); got != tt.expect {
				t.Errorf("IsMissingPrerequisite(%v) = %v, want %v", tt.err, got, tt.expect)
			}
		})
	}
}

func TestNewMetaErrors(t *testing.T) {
	tests := []struct {
		name    string
		attrs   MetaAttrs
		wantErr bool
	}{
		{"name only", MetaAttrs{Name: "author", Content: "x"}, false},
		{"property only", MetaAttrs{Property: "og:title", Content: "x"}, false},
		{"http-equiv only", MetaAttrs{HTTPEquiv: "refresh", Content: "5"}, false},
		{"none", MetaAttrs{Content: "x"}, true},
		{"name and property", MetaAttrs{Name: "a", Property: "b", Content: "x"}, true},
		{"all three", MetaAttrs{Name: "a", HTTPEquiv: "b", Property: "c"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewMeta(tt.attrs)
			if tt.wantErr {
				if !IsInvalidAttributeCombination(err) {
					t.Errorf("NewMeta(%+v) error = %v, want ErrInvalidAttributeCombination", tt.attrs, err)
				}
				return
			}
			if err != nil {
				t.Errorf("NewMeta(%+v) unexpected error: %v", tt.attrs, err)
			}
		})
	}
}

func TestMustMetaPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustMeta should panic without a discriminator")
		}
	}()
	MustMeta(MetaAttrs{Content: "x"})
}

func TestAppendTitleWithoutTitle(t *testing.T) {
	h := New(Description("d"))

	err := h.AppendTitle("Site", " | ")
	if !IsMissingPrerequisite(err) {
		t.Fatalf("AppendTitle error = %v, want ErrMissingPrerequisite", err)
	}
	if err := h.PrependTitle("Site", " | "); !IsMissingPrerequisite(err) {
		t.Fatalf("PrependTitle error = %v, want ErrMissingPrerequisite", err)
	}
	if got, want := h.Compile(), `<meta name="description" content="d">`; got != want {
		t.Errorf("head changed after failed edit: %q", got)
	}
}
