package accessfilter

import (
	"testing"

	"github.com/National-Digital-Twin/federator-sub004/internal/domain/entity"
)

func TestDecide(t *testing.T) {
	tests := []struct {
		name  string
		label SecurityLabel
		grant Grant
		want  bool
	}{
		{
			name:  "nationality permitted",
			label: SecurityLabel{"NATIONALITY": "GBR", "CLEARANCE": "O"},
			grant: NewGrant(map[string][]string{"NATIONALITY": {"GBR"}}),
			want:  true,
		},
		{
			name:  "nationality not permitted",
			label: SecurityLabel{"NATIONALITY": "GBR", "CLEARANCE": "O"},
			grant: NewGrant(map[string][]string{"NATIONALITY": {"FRA"}}),
			want:  false,
		},
		{
			name:  "required attribute absent from label is a deny",
			label: SecurityLabel{"CLEARANCE": "O"},
			grant: NewGrant(map[string][]string{"NATIONALITY": {"GBR"}}),
			want:  false,
		},
		{
			name:  "label attributes the grant ignores do not matter",
			label: SecurityLabel{"NATIONALITY": "GBR", "ORGANISATION_TYPE": "NON-GOV"},
			grant: NewGrant(map[string][]string{"NATIONALITY": {"GBR", "FRA"}}),
			want:  true,
		},
		{
			name:  "all grant attributes must match",
			label: SecurityLabel{"NATIONALITY": "GBR", "CLEARANCE": "TS"},
			grant: NewGrant(map[string][]string{
				"NATIONALITY": {"GBR"},
				"CLEARANCE":   {"O", "S"},
			}),
			want: false,
		},
		{
			name:  "empty grant admits anything",
			label: SecurityLabel{"NATIONALITY": "GBR"},
			grant: NewGrant(nil),
			want:  true,
		},
		{
			name:  "empty label against non-empty grant is a deny",
			label: SecurityLabel{},
			grant: NewGrant(map[string][]string{"NATIONALITY": {"GBR"}}),
			want:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Decide(tt.label, tt.grant); got != tt.want {
				t.Errorf("Decide() = %v, want %v", got, tt.want)
			}
			// Deterministic: the same inputs always produce the same answer.
			if got := Decide(tt.label, tt.grant); got != tt.want {
				t.Errorf("Decide() not deterministic, second call = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNewGrant_NormalisesCase(t *testing.T) {
	grant := NewGrant(map[string][]string{"nationality": {"gbr", "fra"}})

	if !Decide(SecurityLabel{"NATIONALITY": "FRA"}, grant) {
		t.Error("expected lower-cased grant values to match upper-cased label")
	}
}

func TestFilterOut(t *testing.T) {
	grant := NewGrant(map[string][]string{"NATIONALITY": {"GBR"}})
	filter := New(grant)

	t.Run("admitted record", func(t *testing.T) {
		rec := &entity.Record{
			Headers: map[string]string{entity.SecurityLabelHeader: "NATIONALITY=GBR,CLEARANCE=O"},
		}
		out, err := filter.FilterOut(rec)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out {
			t.Error("expected record to be admitted")
		}
	})

	t.Run("denied record", func(t *testing.T) {
		rec := &entity.Record{
			Headers: map[string]string{entity.SecurityLabelHeader: "NATIONALITY=FRA"},
		}
		out, err := filter.FilterOut(rec)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !out {
			t.Error("expected record to be withheld")
		}
	})

	t.Run("unparseable label denies and reports", func(t *testing.T) {
		rec := &entity.Record{
			Headers: map[string]string{entity.SecurityLabelHeader: "NATIONALITY"},
		}
		out, err := filter.FilterOut(rec)
		if err == nil {
			t.Fatal("expected parse error")
		}
		if !out {
			t.Error("expected record to be withheld on parse failure")
		}
	})

	t.Run("missing label header fails a requiring grant", func(t *testing.T) {
		rec := &entity.Record{Headers: map[string]string{}}
		out, err := filter.FilterOut(rec)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !out {
			t.Error("expected unlabelled record to be withheld")
		}
	})

	t.Run("missing label header passes an empty grant", func(t *testing.T) {
		open := New(NewGrant(nil))
		rec := &entity.Record{Headers: map[string]string{}}
		out, err := open.FilterOut(rec)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out {
			t.Error("expected unlabelled record to pass an empty grant")
		}
	})
}

func TestFilter_Close(t *testing.T) {
	filter := New(NewGrant(nil))
	if err := filter.Close(); err != nil {
		t.Errorf("unexpected error from Close: %v", err)
	}
}

func BenchmarkParseLabel(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := ParseLabel("nationality=GBR,clearance:O,organisation=ACME"); err != nil {
			b.Fatalf("parse failed: %v", err)
		}
	}
}

func BenchmarkDecide(b *testing.B) {
	label := SecurityLabel{"NATIONALITY": "GBR", "CLEARANCE": "O", "ORGANISATION": "ACME"}
	grant := NewGrant(map[string][]string{
		"NATIONALITY":  {"GBR", "FRA"},
		"CLEARANCE":    {"O", "S"},
		"ORGANISATION": {"ACME"},
	})

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if !Decide(label, grant) {
			b.Fatal("expected allow")
		}
	}
}
