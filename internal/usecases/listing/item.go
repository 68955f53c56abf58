// Package listing implementa o controlador genérico das telas de listagem do
// painel: busca da coleção, filtro local, despacho de mutações e estatísticas.
package listing

import (
	"sort"

	"github.com/vfg2006/bitsblog-admin/infrastructure/integrator/bitsblog/blogclient"
)

// Item é qualquer registro devolvido pela API que tenha uma chave (id ou slug)
type Item interface {
	Key() string
}

// Form é o formulário de uma mutação. Validate roda antes de qualquer
// requisição; Payload só é chamado quando não há erros.
type Form interface {
	Validate() FieldErrors
	Payload() blogclient.Payload
}

// FieldErrors mapeia campo -> mensagem. É a mesma estrutura para erros de
// validação locais e erros por campo devolvidos pela API.
type FieldErrors map[string]string

// Add registra a mensagem do campo, mantendo a primeira recebida
func (e FieldErrors) Add(field, message string) {
	if _, exists := e[field]; !exists {
		e[field] = message
	}
}

// Merge copia os erros de other que ainda não existem em e
func (e FieldErrors) Merge(other FieldErrors) {
	for field, message := range other {
		e.Add(field, message)
	}
}

// Fields devolve os nomes dos campos com erro em ordem alfabética
func (e FieldErrors) Fields() []string {
	fields := make([]string, 0, len(e))
	for field := range e {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	return fields
}

// IsEmpty indica ausência de erros
func (e FieldErrors) IsEmpty() bool {
	return len(e) == 0
}

// NoPayload é o formulário vazio usado em ações sem corpo
type NoPayload struct{}

func (NoPayload) Validate() FieldErrors       { return nil }
func (NoPayload) Payload() blogclient.Payload { return blogclient.Payload{} }
