package jsonutil

import (
	"testing"
)

func TestUnmarshalWithContext(t *testing.T) {
	type TestStruct struct {
		Name string `json:"name"`
	}

	tests := []struct {
		name    string
		data    []byte
		wantErr bool
	}{
		{
			name:    "valid JSON",
			data:    []byte(`{"name":"test"}`),
			wantErr: false,
		},
		{
			name:    "invalid JSON",
			data:    []byte(`not json`),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var v TestStruct
			err := UnmarshalWithContext(tt.data, &v, "test context")
			if (err != nil) != tt.wantErr {
				t.Errorf("UnmarshalWithContext() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && v.Name != "test" {
				t.Errorf("UnmarshalWithContext() v.Name = %q, want %q", v.Name, "test")
			}
		})
	}
}

func TestGetString(t *testing.T) {
	m := map[string]interface{}{
		"str":   "value",
		"blank": "  ",
		"num":   42.0,
		"list":  []interface{}{"a"},
		"nil":   nil,
	}

	tests := []struct {
		key  string
		want string
	}{
		{"str", "value"},
		{"blank", ""},
		{"num", ""},
		{"list", ""},
		{"nil", ""},
		{"missing", ""},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			if got := GetString(m, tt.key); got != tt.want {
				t.Errorf("GetString() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCollectStrings(t *testing.T) {
	detail := []interface{}{
		map[string]interface{}{"msg": "field required", "loc": []interface{}{"body", "ano"}},
		"not an object",
		map[string]interface{}{"type": "missing"},
		map[string]interface{}{"msg": "too long"},
	}
	got := CollectStrings(detail, "msg")
	if len(got) != 2 || got[0] != "field required" || got[1] != "too long" {
		t.Errorf("CollectStrings() = %v", got)
	}
	if got := CollectStrings("detail", "msg"); got != nil {
		t.Errorf("CollectStrings(non-list) = %v, want nil", got)
	}
}
