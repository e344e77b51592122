package user

import "testing"

func TestGenerateID(t *testing.T) {
	t.Parallel()

	id := GenerateID()
	if id.Value() == "" {
		t.Fatal("GenerateID() returned the zero value")
	}

	parsed, err := ParseID(id.Value())
	if err != nil {
		t.Fatalf("ParseID(GenerateID()) error = %v", err)
	}
	if !parsed.Equals(id) {
		t.Error("parsed ID does not equal the generated one")
	}
}

func TestParseID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		raw     string
		wantErr bool
	}{
		{
			name: "canonical UUID",
			raw:  "0198b2e6-15cf-7b43-92a4-9d2f6b1c4e02",
		},
		{
			name:    "empty",
			raw:     "",
			wantErr: true,
		},
		{
			name:    "arbitrary string",
			raw:     "not-a-uuid",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ParseID(tt.raw)
			if tt.wantErr {
				requireValidationField(t, err, "user_id")
				return
			}
			if err != nil {
				t.Fatalf("ParseID(%q) error = %v, want nil", tt.raw, err)
			}
			if got.Value() != tt.raw {
				t.Errorf("Value() = %q, want %q", got.Value(), tt.raw)
			}
		})
	}
}
