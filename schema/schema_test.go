package schema

import "testing"

func TestParseRawData(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{`{"molecule_name": "metformin"}`, `{"molecule_name": "metformin"}`},
		{`[{"pmid": "111"}]`, `[{"pmid": "111"}]`},
		{"42", "42"},
		{`"active"`, `"active"`},
		{"true", "true"},
		{"plain text summary", `{"error":"plain text summary"}`},
		{"", `{"error":""}`},
	}
	for _, tt := range tests {
		if got := string(ParseRawData(tt.text)); got != tt.want {
			t.Errorf("ParseRawData(%q) = %s, want %s", tt.text, got, tt.want)
		}
	}
}

func TestStringifyNilSchema(t *testing.T) {
	if got := Stringify(nil); got != "" {
		t.Errorf("expect empty string for nil content, got:%s", got)
	}
	if got := ToBytes(nil); len(got) != 0 {
		t.Errorf("expect empty bytes for nil content, got:%s", got)
	}
}

func TestStringRoundTrip(t *testing.T) {
	s := NewString("metformin")
	if got := string(ToBytes(s)); got != "metformin" {
		t.Errorf("unexpected wire form: %s", got)
	}
	var parsed String
	if err := parsed.Unmarshal([]byte("semaglutide")); err != nil {
		t.Fatal(err)
	}
	if parsed.String() != "semaglutide" {
		t.Errorf("unexpected parsed value: %s", parsed)
	}
}

func TestErrorResultEnvelope(t *testing.T) {
	result := ErrorResult("Error: Tool 'get_weather' not found.", "Tool not found")
	if string(result.RawData) != `{"error":"Tool not found"}` {
		t.Errorf("unexpected raw data: %s", result.RawData)
	}
	m := result.RawDataMap()
	if m["error"] != "Tool not found" {
		t.Errorf("unexpected raw data map: %v", m)
	}
}
