package listing

import "strings"

// All é o valor sentinela que desliga um filtro categórico
const All = "all"

// FilterState é o estado de filtro de uma tela. Nunca é persistido.
type FilterState struct {
	Search     string            `json:"search"`
	Categories map[string]string `json:"categories,omitempty"`
}

// Value devolve o valor do filtro categórico, tratando ausência como All
func (s FilterState) Value(name string) string {
	value, ok := s.Categories[name]
	if !ok || value == "" {
		return All
	}
	return value
}

// IsIdentity indica que o estado não restringe a lista
func (s FilterState) IsIdentity() bool {
	if s.Search != "" {
		return false
	}
	for name := range s.Categories {
		if s.Value(name) != All {
			return false
		}
	}
	return true
}

// FilterSpec descreve como filtrar os itens de um recurso: extratores dos
// campos categóricos e dos campos de texto usados pela busca.
type FilterSpec[T any] struct {
	Categorical map[string]func(T) string
	TextFields  []func(T) string
}

// Names devolve os nomes dos filtros categóricos conhecidos
func (f FilterSpec[T]) Names() []string {
	names := make([]string, 0, len(f.Categorical))
	for name := range f.Categorical {
		names = append(names, name)
	}
	return names
}

// Apply deriva a visão filtrada. Primeiro aplica os filtros categóricos de
// igualdade (exceto os que valem All), depois a busca sem diferenciar
// maiúsculas. A ordem da lista original é preservada e a lista inteira é
// percorrida a cada chamada.
func (f FilterSpec[T]) Apply(items []T, state FilterState) []T {
	view := make([]T, 0, len(items))
	if state.IsIdentity() {
		return append(view, items...)
	}

	search := strings.ToLower(state.Search)

	for _, item := range items {
		if !f.matchesCategories(item, state) {
			continue
		}
		if search != "" && !f.matchesSearch(item, search) {
			continue
		}
		view = append(view, item)
	}

	return view
}

func (f FilterSpec[T]) matchesCategories(item T, state FilterState) bool {
	for name, extract := range f.Categorical {
		want := state.Value(name)
		if want == All {
			continue
		}
		if extract(item) != want {
			return false
		}
	}
	return true
}

func (f FilterSpec[T]) matchesSearch(item T, search string) bool {
	for _, field := range f.TextFields {
		if strings.Contains(strings.ToLower(field(item)), search) {
			return true
		}
	}
	return false
}
