package blogclient

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"net/textproto"
	"path/filepath"
	"strconv"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/vfg2006/bitsblog-admin/pkg/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// File é um arquivo enviado junto de uma mutação (imagem, thumbnail)
type File struct {
	Field       string
	Name        string
	ContentType string
	Data        []byte
}

// Payload é o corpo de uma mutação. Quando há arquivos, o envio é multipart;
// caso contrário, JSON.
type Payload struct {
	Fields map[string]any
	Files  []File
}

// IsMultipart indica se o payload precisa de multipart/form-data
func (p Payload) IsMultipart() bool {
	return len(p.Files) > 0
}

// IsEmpty indica se não há nada a enviar
func (p Payload) IsEmpty() bool {
	return len(p.Fields) == 0 && len(p.Files) == 0
}

// encode devolve o corpo e o content-type da requisição
func (p Payload) encode() (io.Reader, string, error) {
	if p.IsEmpty() {
		return nil, "", nil
	}

	if !p.IsMultipart() {
		data, err := json.Marshal(p.Fields)
		if err != nil {
			return nil, "", errors.Wrap(err, "erro ao codificar o payload JSON")
		}
		return bytes.NewReader(data), "application/json", nil
	}

	buf := &bytes.Buffer{}
	writer := multipart.NewWriter(buf)

	for key, value := range p.Fields {
		if value == nil {
			continue
		}
		if err := writer.WriteField(key, formValue(value)); err != nil {
			return nil, "", errors.Wrapf(err, "erro ao escrever o campo %s", key)
		}
	}

	for _, file := range p.Files {
		name, err := uploadName(file)
		if err != nil {
			return nil, "", err
		}

		header := make(textproto.MIMEHeader)
		header.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, file.Field, name))
		if file.ContentType != "" {
			header.Set("Content-Type", file.ContentType)
		} else {
			header.Set("Content-Type", "application/octet-stream")
		}

		part, err := writer.CreatePart(header)
		if err != nil {
			return nil, "", errors.Wrapf(err, "erro ao criar a parte do arquivo %s", file.Field)
		}
		if _, err := part.Write(file.Data); err != nil {
			return nil, "", errors.Wrapf(err, "erro ao escrever o arquivo %s", file.Field)
		}
	}

	if err := writer.Close(); err != nil {
		return nil, "", errors.Wrap(err, "erro ao finalizar o multipart")
	}

	return buf, writer.FormDataContentType(), nil
}

// uploadName gera um nome único para o arquivo, preservando a extensão original
func uploadName(file File) (string, error) {
	id, err := utils.GenerateID()
	if err != nil {
		return "", errors.Wrap(err, "erro ao gerar nome do arquivo")
	}

	ext := filepath.Ext(file.Name)
	return fmt.Sprintf("%s-%s%s", file.Field, id, ext), nil
}

func formValue(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case fmt.Stringer:
		return v.String()
	default:
		data, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprint(v)
		}
		return string(data)
	}
}
