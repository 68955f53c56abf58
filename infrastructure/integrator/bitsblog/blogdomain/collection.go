package blogdomain

import (
	"bytes"
	"errors"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ErrInvalidJSON indica que o corpo da resposta não é um JSON válido
var ErrInvalidJSON = errors.New("resposta JSON inválida")

// CollectionShape indica qual formato de resposta a API devolveu
type CollectionShape int

const (
	ShapeUnknown CollectionShape = iota
	ShapeEnvelope
	ShapeArray
)

func (s CollectionShape) String() string {
	switch s {
	case ShapeEnvelope:
		return "envelope"
	case ShapeArray:
		return "array"
	default:
		return "unknown"
	}
}

// Envelope é a resposta paginada do Django REST Framework
type Envelope[T any] struct {
	Count    int     `json:"count"`
	Next     *string `json:"next"`
	Previous *string `json:"previous"`
	Results  []T     `json:"results"`
}

// DecodeCollection normaliza a resposta de uma coleção. Envelope com "results"
// devolve os results, array devolve o próprio array e qualquer outro formato
// devolve uma lista vazia. Só retorna erro quando o JSON é inválido.
func DecodeCollection[T any](data []byte) ([]T, CollectionShape, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return []T{}, ShapeUnknown, nil
	}

	switch trimmed[0] {
	case '[':
		items := make([]T, 0)
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return []T{}, ShapeArray, err
		}
		return items, ShapeArray, nil

	case '{':
		var object map[string]jsoniter.RawMessage
		if err := json.Unmarshal(trimmed, &object); err != nil {
			return []T{}, ShapeUnknown, err
		}

		results, ok := object["results"]
		if !ok {
			return []T{}, ShapeUnknown, nil
		}

		results = bytes.TrimSpace(results)
		if len(results) == 0 || results[0] != '[' {
			return []T{}, ShapeUnknown, nil
		}

		items := make([]T, 0)
		if err := json.Unmarshal(results, &items); err != nil {
			return []T{}, ShapeEnvelope, err
		}
		return items, ShapeEnvelope, nil

	default:
		if !json.Valid(trimmed) {
			return []T{}, ShapeUnknown, ErrInvalidJSON
		}
		return []T{}, ShapeUnknown, nil
	}
}
