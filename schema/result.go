package schema

import "encoding/json"

// Result is the envelope returned by every capability and specialist agent.
//
// Attributes:
//
//	Analysis: natural language synthesis, always populated, never empty.
//	RawData: full fidelity structured payload backing the analysis.
type Result struct {
	Analysis string          `json:"analysis"`
	RawData  json.RawMessage `json:"raw_data,omitempty"`
}

// NewResult returns a new Result
func NewResult(analysis string, rawData json.RawMessage) *Result {
	return &Result{
		Analysis: analysis,
		RawData:  rawData,
	}
}

// ErrorResult returns a Result carrying an error as both analysis and raw data.
func ErrorResult(analysis string, reason string) *Result {
	return &Result{
		Analysis: analysis,
		RawData:  ErrorData(reason),
	}
}

// ErrorData wraps a reason string as an {"error": reason} payload.
func ErrorData(reason string) json.RawMessage {
	bs, _ := json.Marshal(map[string]string{"error": reason})
	return bs
}

// ParseRawData interprets a capability's textual result defensively: any
// valid JSON payload, scalars included, becomes the raw data as-is; anything
// else is wrapped as an error payload with the original text preserved.
func ParseRawData(text string) json.RawMessage {
	if bs := []byte(text); json.Valid(bs) {
		return bs
	}
	return ErrorData(text)
}

func (r Result) String() string {
	return Marshal(r)
}

// RawDataMap decodes the raw data payload into a generic map for rendering.
func (r Result) RawDataMap() map[string]any {
	if len(r.RawData) == 0 {
		return map[string]any{}
	}
	var m map[string]any
	if err := json.Unmarshal(r.RawData, &m); err != nil {
		return map[string]any{"raw": string(r.RawData)}
	}
	return m
}
