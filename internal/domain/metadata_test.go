package domain

import (
	"encoding/json"
	"fmt"
	"strings"
	"testing"
)

func TestMetadataJSON_KeepsScalarKinds(t *testing.T) {
	var m Metadata
	if err := json.Unmarshal([]byte(`{"source":"web","attempt":3,"urgent":true}`), &m); err != nil {
		t.Fatalf("Unmarshal error: %v", err)
	}

	if s, ok := m["source"].Str(); !ok || s != "web" {
		t.Fatalf("source = %v", m["source"])
	}
	if i, ok := m["attempt"].Int(); !ok || i != 3 {
		t.Fatalf("attempt = %v", m["attempt"])
	}
	if b, ok := m["urgent"].Bool(); !ok || !b {
		t.Fatalf("urgent = %v", m["urgent"])
	}

	out, err := json.Marshal(Metadata{"attempt": IntValue(3)})
	if err != nil {
		t.Fatalf("Marshal error: %v", err)
	}
	if string(out) != `{"attempt":3}` {
		t.Fatalf("Marshal = %s", out)
	}
}

func TestMetadataJSON_RejectsNonScalars(t *testing.T) {
	for _, raw := range []string{`{"a":null}`, `{"a":1.5}`, `{"a":[1]}`, `{"a":{"b":1}}`} {
		var m Metadata
		if err := json.Unmarshal([]byte(raw), &m); err == nil {
			t.Errorf("Unmarshal(%s) succeeded", raw)
		}
	}
}

func TestMetadataValidate(t *testing.T) {
	tooMany := Metadata{}
	for i := 0; i <= MaxMetadataEntries; i++ {
		tooMany[fmt.Sprintf("k%d", i)] = BoolValue(true)
	}

	tests := []struct {
		name    string
		m       Metadata
		wantErr bool
	}{
		{name: "nil", m: nil},
		{name: "scalars", m: Metadata{"a": StringValue("x"), "b": IntValue(-1), "c": BoolValue(false)}},
		{name: "empty key", m: Metadata{"": StringValue("x")}, wantErr: true},
		{name: "long key", m: Metadata{strings.Repeat("k", MaxMetadataKeyLen+1): StringValue("x")}, wantErr: true},
		{name: "long string", m: Metadata{"a": StringValue(strings.Repeat("x", MaxMetadataStrLen+1))}, wantErr: true},
		{name: "zero value", m: Metadata{"a": {}}, wantErr: true},
		{name: "too many entries", m: tooMany, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.m.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
