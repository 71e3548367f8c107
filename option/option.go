package option

import (
	"bytes"
	"encoding/json"
)

type Option[T any] struct {
	value  T
	isSome bool
}

func None[T any]() Option[T] {
	return Option[T]{}
}

func Some[T any](value T) Option[T] {
	return Option[T]{value: value, isSome: true}
}

func (x Option[T]) IsSome() bool {
	return x.isSome
}

func (x Option[T]) IsNone() bool {
	return !x.isSome
}

func (x Option[T]) Get() T {
	if !x.isSome {
		panic("option is none")
	}
	return x.value
}

// GetOr returns the contained value or fallback when the option is none.
func (x Option[T]) GetOr(fallback T) T {
	if !x.isSome {
		return fallback
	}
	return x.value
}

// IsZero lets yaml.v2 treat a none option as empty for `omitempty`.
func (x Option[T]) IsZero() bool {
	return !x.isSome
}

func (x Option[T]) MarshalJSON() ([]byte, error) {
	if !x.isSome {
		return []byte("null"), nil
	}
	return json.Marshal(x.value)
}

func (x *Option[T]) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*x = None[T]()
		return nil
	}

	var value T
	if err := json.Unmarshal(data, &value); err != nil {
		return err
	}

	*x = Some(value)
	return nil
}

func (x Option[T]) MarshalYAML() (interface{}, error) {
	if !x.isSome {
		return nil, nil
	}
	return x.value, nil
}

func (x *Option[T]) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var value *T
	if err := unmarshal(&value); err != nil {
		return err
	}

	if value == nil {
		*x = None[T]()
		return nil
	}

	*x = Some(*value)
	return nil
}
