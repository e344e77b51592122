package todo

import "testing"

func TestParseStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		raw     string
		want    Status
		wantErr bool
	}{
		{
			name: "not started",
			raw:  "NOT_STARTED",
			want: StatusNotStarted,
		},
		{
			name: "in progress",
			raw:  "IN_PROGRESS",
			want: StatusInProgress,
		},
		{
			name: "pending",
			raw:  "PENDING",
			want: StatusPending,
		},
		{
			name: "completed",
			raw:  "COMPLETED",
			want: StatusCompleted,
		},
		{
			name:    "empty",
			raw:     "",
			wantErr: true,
		},
		{
			name:    "lowercase rejected",
			raw:     "completed",
			wantErr: true,
		},
		{
			name:    "unknown value",
			raw:     "CANCELLED",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ParseStatus(tt.raw)
			if tt.wantErr {
				requireValidationField(t, err, "status")
				return
			}
			if err != nil {
				t.Fatalf("ParseStatus(%q) error = %v, want nil", tt.raw, err)
			}
			if got != tt.want {
				t.Errorf("ParseStatus(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}
