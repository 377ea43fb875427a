package schema

import "encoding/json"

// Schema is message content interface
type Schema interface {
	// String returns the wire representation of the content
	String() string
}

func Stringify(s Schema) string {
	if s == nil {
		return ""
	}
	return s.String()
}

func ToBytes(s Schema) []byte {
	return []byte(Stringify(s))
}

// Marshal is a helper for schema types whose wire representation is their JSON encoding.
func Marshal(v any) string {
	bs, _ := json.Marshal(v)
	return string(bs)
}
