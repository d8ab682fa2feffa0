package list

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// MarshalError is returned when an element of a list cannot be marshalled.
type MarshalError struct {
	Index int
	Cause error
}

func (err *MarshalError) Error() string {
	return fmt.Sprintf("element %d: %s", err.Index, err.Cause)
}

func (err *MarshalError) Unwrap() error { return err.Cause }

func marshalJSON[T any](l List[T]) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('[')
	index := 0
	for it := l.Iterator(); it.HasElem(); it.Next() {
		if index > 0 {
			buf.WriteByte(',')
		}
		elemBytes, err := json.Marshal(it.Elem())
		if err != nil {
			return nil, &MarshalError{index, err}
		}
		buf.Write(elemBytes)
		index++
	}
	buf.WriteByte(']')
	return buf.Bytes(), nil
}

// FromJSON decodes a JSON array into a list. A JSON null decodes to the empty
// list.
func FromJSON[T any](data []byte) (List[T], error) {
	var elems []T
	if err := json.Unmarshal(data, &elems); err != nil {
		return nil, err
	}
	return Of(elems...), nil
}

// FromYAML decodes a YAML sequence into a list. An empty document decodes to
// the empty list.
func FromYAML[T any](data []byte) (List[T], error) {
	var elems []T
	if err := yaml.Unmarshal(data, &elems); err != nil {
		return nil, err
	}
	return Of(elems...), nil
}
