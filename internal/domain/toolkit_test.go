package domain

import (
	"encoding/json"
	"testing"
)

func TestIngredientListTolerantDecode(t *testing.T) {
	cases := []struct {
		name    string
		payload string
		want    int
	}{
		{name: "array", payload: `[{"title":"a"},{"title":"b"}]`, want: 2},
		{name: "object", payload: `{"title":"a"}`, want: 0},
		{name: "string", payload: `"oops"`, want: 0},
		{name: "number", payload: `7`, want: 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var list IngredientList
			if err := json.Unmarshal([]byte(tc.payload), &list); err != nil {
				t.Fatalf("decode must not fail: %v", err)
			}
			if len(list) != tc.want {
				t.Fatalf("expected %d ingredients, got %d", tc.want, len(list))
			}
		})
	}
}

func TestAssertionListTolerantDecode(t *testing.T) {
	var list AssertionList
	if err := json.Unmarshal([]byte(`{"label":"x"}`), &list); err != nil {
		t.Fatalf("decode must not fail: %v", err)
	}
	if len(list) != 0 {
		t.Fatalf("expected empty list, got %d entries", len(list))
	}
}

func TestResolveProducer(t *testing.T) {
	creativeWork := func(doc string) AssertionList {
		return AssertionList{{Label: "stds.schema-org.CreativeWork", Data: json.RawMessage(doc)}}
	}

	cases := []struct {
		name     string
		manifest *ActiveManifest
		want     string
	}{
		{name: "nil manifest", manifest: nil, want: ""},
		{name: "no assertions", manifest: &ActiveManifest{}, want: ""},
		{
			name:     "named author",
			manifest: &ActiveManifest{Assertions: creativeWork(`{"author":[{"@type":"Person","name":"Jane Doe"}]}`)},
			want:     "Jane Doe",
		},
		{
			name:     "first named author wins",
			manifest: &ActiveManifest{Assertions: creativeWork(`{"author":[{"@type":"Person"},{"name":"Second"}]}`)},
			want:     "Second",
		},
		{
			name:     "nameless authors",
			manifest: &ActiveManifest{Assertions: creativeWork(`{"author":[{"@type":"Person"}]}`)},
			want:     "",
		},
		{
			name:     "malformed assertion data",
			manifest: &ActiveManifest{Assertions: creativeWork(`"not an object"`)},
			want:     "",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			producer := ResolveProducer(tc.manifest)
			if tc.want == "" {
				if producer != nil {
					t.Fatalf("expected no producer, got %+v", producer)
				}
				return
			}
			if producer == nil || producer.Name != tc.want {
				t.Fatalf("expected producer %q, got %+v", tc.want, producer)
			}
		})
	}
}
