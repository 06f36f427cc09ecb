package normalize

import "encoding/json"

// Flex is a number that may be unknown. Unknown values render as their
// placeholder string, or as JSON null when the placeholder is empty.
type Flex[T int | float64] struct {
	Value       T
	Known       bool
	Placeholder string
}

func Known[T int | float64](v T) Flex[T] {
	return Flex[T]{Value: v, Known: true}
}

func Unknown[T int | float64](placeholder string) Flex[T] {
	return Flex[T]{Placeholder: placeholder}
}

func (f Flex[T]) MarshalJSON() ([]byte, error) {
	if f.Known {
		return json.Marshal(f.Value)
	}
	if f.Placeholder == "" {
		return []byte("null"), nil
	}
	return json.Marshal(f.Placeholder)
}
