package importer

import (
	"testing"
)

func TestResolveHeaders(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		headers []string
		want    []string
	}{
		{
			name:    "canonical headers",
			headers: []string{"Origin", "Destination", "Mode", "Start", "End", "Description"},
			want:    []string{fieldOrigin, fieldDestination, fieldMode, fieldStart, fieldEnd, fieldDescription},
		},
		{
			name:    "alias headers",
			headers: []string{"From", "To", "Transport", "Departure", "Arrival", "Note"},
			want:    []string{fieldOrigin, fieldDestination, fieldMode, fieldStart, fieldEnd, fieldDescription},
		},
		{
			name:    "spacing and casing are normalized",
			headers: []string{"start_date time", "END-DATE-TIME"},
			want:    []string{fieldStart, fieldEnd},
		},
		{
			name:    "unknown columns resolve to nothing",
			headers: []string{"Origin", "Price", "Destination"},
			want:    []string{fieldOrigin, "", fieldDestination},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := resolveHeaders(tt.headers)
			if len(got) != len(tt.want) {
				t.Fatalf("expected %d fields, got %d", len(tt.want), len(got))
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Fatalf("header %q: expected field %q, got %q", tt.headers[i], tt.want[i], got[i])
				}
			}
		})
	}
}

func TestBuildRecord(t *testing.T) {
	t.Parallel()

	fields := resolveHeaders([]string{"From", "Price", "To", "Note"})

	t.Run("unknown columns are dropped", func(t *testing.T) {
		t.Parallel()

		record := buildRecord(2, fields, []string{"Home", "2.50", "Office", " errand "})
		if record.RowNumber != 2 {
			t.Fatalf("unexpected row number %d", record.RowNumber)
		}
		if record.Field(fieldOrigin) != "Home" || record.Field(fieldDestination) != "Office" {
			t.Fatalf("unexpected fields: %+v", record.Fields)
		}
		if record.Field(fieldDescription) != "errand" {
			t.Fatalf("expected trimmed description, got %q", record.Field(fieldDescription))
		}
		if len(record.Fields) != 3 {
			t.Fatalf("expected unknown column to be dropped, got %+v", record.Fields)
		}
	})

	t.Run("short rows leave trailing fields empty", func(t *testing.T) {
		t.Parallel()

		record := buildRecord(3, fields, []string{"Home"})
		if record.Field(fieldOrigin) != "Home" {
			t.Fatalf("unexpected origin %q", record.Field(fieldOrigin))
		}
		if record.Field(fieldDestination) != "" || record.Field(fieldDescription) != "" {
			t.Fatalf("expected missing cells to read empty, got %+v", record.Fields)
		}
	})
}
