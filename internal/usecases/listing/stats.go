package listing

import "github.com/vfg2006/bitsblog-admin/pkg/utils"

// Reducer dobra a lista completa (nunca a filtrada) em um agregado
type Reducer[T any, S any] func(items []T) S

// CountBy conta os itens por valor do campo categórico
func CountBy[T any](items []T, key func(T) string) map[string]int {
	counts := make(map[string]int)
	for _, item := range items {
		counts[key(item)]++
	}
	return counts
}

// Count conta os itens que satisfazem o predicado
func Count[T any](items []T, pred func(T) bool) int {
	total := 0
	for _, item := range items {
		if pred(item) {
			total++
		}
	}
	return total
}

// Sum soma um campo numérico
func Sum[T any](items []T, value func(T) int64) int64 {
	var total int64
	for _, item := range items {
		total += value(item)
	}
	return total
}

// Rate calcula numerator/denominator em porcentagem com duas casas decimais.
// Retorna 0 quando o denominador é 0.
func Rate(numerator, denominator int64) float64 {
	return utils.Percent(numerator, denominator)
}
