package parser

import (
	"reflect"
	"testing"
)

func TestParseDataShape(t *testing.T) {
	input := `# Data Shape

## Entities

### Invoice
A bill sent to a client.

### Client
#### Notes
Someone who pays.

## Relationships

- Client has many Invoice
- Invoice belongs to Client
`
	ds := ParseDataShape(input)
	if ds == nil {
		t.Fatal("expected data shape, got nil")
	}
	if len(ds.Entities) != 2 {
		t.Fatalf("expected 2 entities, got %d", len(ds.Entities))
	}
	if ds.Entities[0].Name != "Invoice" || ds.Entities[0].Description != "A bill sent to a client." {
		t.Errorf("unexpected first entity: %+v", ds.Entities[0])
	}
	if ds.Entities[1].Description != "#### Notes\nSomeone who pays." {
		t.Errorf("expected deeper headings to stay in the description, got %q", ds.Entities[1].Description)
	}
	want := []string{"Client has many Invoice", "Invoice belongs to Client"}
	if !reflect.DeepEqual(ds.Relationships, want) {
		t.Errorf("expected %v, got %v", want, ds.Relationships)
	}
}

func TestParseDataShape_RelationshipsOnly(t *testing.T) {
	ds := ParseDataShape("## Entities\n\n## Relationships\n- A has B\n")
	if ds == nil {
		t.Fatal("expected data shape, got nil")
	}
	if len(ds.Entities) != 0 || len(ds.Relationships) != 1 {
		t.Errorf("unexpected data shape: %+v", ds)
	}
}

func TestParseDataShape_Absent(t *testing.T) {
	for _, input := range []string{"", "# Data Shape\n\nNothing yet.\n"} {
		if ds := ParseDataShape(input); ds != nil {
			t.Errorf("input %q: expected nil, got %+v", input, ds)
		}
	}
}
