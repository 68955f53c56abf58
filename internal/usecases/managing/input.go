package managing

import (
	"reflect"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
	"github.com/vfg2006/bitsblog-admin/infrastructure/integrator/bitsblog/blogclient"
)

// Input é o corpo bruto de uma mutação, vindo de JSON ou multipart
type Input struct {
	Values map[string]any
	Files  []blogclient.File
}

// File devolve o arquivo enviado no campo, quando existir
func (in Input) File(field string) *blogclient.File {
	for i := range in.Files {
		if in.Files[i].Field == field {
			return &in.Files[i]
		}
	}
	return nil
}

// decodeForm preenche o formulário a partir dos valores do Input. Valores de
// multipart chegam como string e são convertidos pelo modo fraco.
func decodeForm(in Input, target any) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           target,
		TagName:          "form",
		WeaklyTypedInput: true,
		DecodeHook:       emptyStringToNilHook,
	})
	if err != nil {
		return errors.Wrap(err, "erro ao criar o decoder do formulário")
	}

	if err := decoder.Decode(in.Values); err != nil {
		return errors.Wrap(err, "erro ao ler o formulário")
	}

	return nil
}

// emptyStringToNilHook mantém nil os campos opcionais (ponteiros) que chegam
// como string vazia, como um select sem opção escolhida no multipart
func emptyStringToNilHook(from reflect.Type, to reflect.Type, data any) (any, error) {
	if from.Kind() != reflect.String || to.Kind() != reflect.Ptr {
		return data, nil
	}
	if strings.TrimSpace(reflect.ValueOf(data).String()) == "" {
		return nil, nil
	}
	return data, nil
}

// setIfPresent só inclui o campo no payload quando há valor
func setIfPresent(fields map[string]any, key, value string) {
	if value != "" {
		fields[key] = value
	}
}
