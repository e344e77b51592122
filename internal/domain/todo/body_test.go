package todo

import (
	"strings"
	"testing"
)

func TestNewBody(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{
			name:  "plain body",
			value: "Milk, eggs, bread",
		},
		{
			name:  "empty string yields the empty body",
			value: "",
		},
		{
			name:  "exactly max length",
			value: strings.Repeat("a", 1000),
		},
		{
			name:    "leading whitespace",
			value:   " Milk",
			wantErr: true,
		},
		{
			name:    "trailing newline",
			value:   "Milk\n",
			wantErr: true,
		},
		{
			name:    "over max length",
			value:   strings.Repeat("a", 1001),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := NewBody(tt.value)
			if tt.wantErr {
				requireValidationField(t, err, "body")
				return
			}
			if err != nil {
				t.Fatalf("NewBody(%q) error = %v, want nil", tt.value, err)
			}
			if got.Value() != tt.value {
				t.Errorf("Value() = %q, want %q", got.Value(), tt.value)
			}
		})
	}
}

func TestEmptyBody(t *testing.T) {
	t.Parallel()

	empty := EmptyBody()
	if !empty.IsEmpty() {
		t.Error("EmptyBody().IsEmpty() = false, want true")
	}
	if empty.Value() != "" {
		t.Errorf("EmptyBody().Value() = %q, want empty", empty.Value())
	}

	fromEmptyString, err := NewBody("")
	if err != nil {
		t.Fatalf("NewBody(\"\") error = %v", err)
	}
	if !empty.Equals(fromEmptyString) {
		t.Error("EmptyBody() and NewBody(\"\") are not equal")
	}

	filled, err := NewBody("Milk")
	if err != nil {
		t.Fatalf("NewBody() error = %v", err)
	}
	if filled.IsEmpty() {
		t.Error("non-empty body reports IsEmpty")
	}
}
