package handler

import (
	"errors"
	"io"
	"mime"
	"mime/multipart"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/bitsblog-admin/infrastructure/integrator/bitsblog/blogclient"
	"github.com/vfg2006/bitsblog-admin/internal/usecases/listing"
	"github.com/vfg2006/bitsblog-admin/internal/usecases/managing"
	"github.com/vfg2006/bitsblog-admin/pkg/apiErrors"
	"github.com/vfg2006/bitsblog-admin/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// multipartOverhead é a folga para os campos de texto além do arquivo
const multipartOverhead = 1 << 20

func param(r *http.Request, name string) string {
	return httprouter.ParamsFromContext(r.Context()).ByName(name)
}

// filterState lê search e os filtros categóricos conhecidos do recurso
func filterState(r *http.Request, resource managing.Resource) listing.FilterState {
	query := r.URL.Query()

	state := listing.FilterState{
		Search:     query.Get("search"),
		Categories: make(map[string]string),
	}
	for _, name := range resource.Filters() {
		value := query.Get(name)
		if value == "" {
			value = listing.All
		}
		state.Categories[name] = value
	}

	return state
}

// readInput lê o corpo da mutação em JSON ou multipart/form-data
func readInput(w http.ResponseWriter, r *http.Request, maxBytes int64) (managing.Input, error) {
	in := managing.Input{Values: map[string]any{}}

	if maxBytes <= 0 {
		maxBytes = listing.DefaultMaxUploadBytes
	}

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))

	if mediaType == "multipart/form-data" {
		r.Body = http.MaxBytesReader(w, r.Body, maxBytes+multipartOverhead)
		return readMultipart(r, in, maxBytes)
	}

	if r.Body == nil {
		return in, nil
	}

	r.Body = http.MaxBytesReader(w, r.Body, multipartOverhead)
	if err := json.NewDecoder(r.Body).Decode(&in.Values); err != nil && !errors.Is(err, io.EOF) {
		return in, err
	}
	if in.Values == nil {
		in.Values = map[string]any{}
	}

	return in, nil
}

// readMultipart percorre as partes do formulário sem guardar o corpo inteiro.
// Quando o corpo estoura o limite dentro (ou logo depois) de um arquivo, o
// excesso vira erro de tamanho do campo do arquivo.
func readMultipart(r *http.Request, in managing.Input, maxBytes int64) (managing.Input, error) {
	mr, err := r.MultipartReader()
	if err != nil {
		return in, err
	}

	lastFile, oversized := "", false
	for {
		part, err := mr.NextPart()
		if errors.Is(err, io.EOF) {
			return in, nil
		}
		if err != nil {
			if oversized {
				return in, fileTooLarge(lastFile, maxBytes)
			}
			return in, oversizedFile(err, lastFile, maxBytes)
		}

		field := part.FormName()
		if field == "" {
			part.Close()
			continue
		}

		if part.FileName() == "" {
			value, err := io.ReadAll(part)
			part.Close()
			if err != nil {
				return in, err
			}
			if _, ok := in.Values[field]; !ok {
				in.Values[field] = string(value)
			}
			lastFile, oversized = "", false
			continue
		}

		lastFile = field
		file, err := readFile(field, part, maxBytes)
		part.Close()
		if err != nil {
			return in, oversizedFile(err, field, maxBytes)
		}
		oversized = int64(len(file.Data)) > maxBytes
		in.Files = append(in.Files, file)
	}
}

// oversizedFile troca o estouro do limite do corpo pelo erro de tamanho do
// campo do arquivo. Outros erros seguem como estão.
func oversizedFile(err error, field string, maxBytes int64) error {
	var tooLarge *http.MaxBytesError
	if field == "" || !errors.As(err, &tooLarge) {
		return err
	}
	return fileTooLarge(field, maxBytes)
}

func fileTooLarge(field string, maxBytes int64) error {
	fields := listing.FieldErrors{}
	fields.FileTooLarge(field, maxBytes)
	return listing.NewValidationError("", fields)
}

// readFile lê até maxBytes+1 bytes para que a validação perceba o excesso.
// O content-type é detectado pelo conteúdo, não pelo header enviado.
func readFile(field string, part *multipart.Part, maxBytes int64) (blogclient.File, error) {
	data, err := io.ReadAll(io.LimitReader(part, maxBytes+1))
	if err != nil {
		return blogclient.File{}, err
	}

	return blogclient.File{
		Field:       field,
		Name:        part.FileName(),
		ContentType: http.DetectContentType(data),
		Data:        data,
	}, nil
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.L.WithError(err).Error("Erro ao codificar resposta")
	}
}

// writeError traduz os erros dos casos de uso para a resposta padronizada.
// Erros por campo, locais ou da API, vão em details.
func writeError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	var mErr *listing.MutationError
	if !errors.As(err, &mErr) {
		log.ForContext(r.Context()).WithError(err).Error(fallback)
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, fallback, nil)
		return
	}

	var details any
	if len(mErr.Fields) > 0 {
		details = mErr.Fields
	}

	switch {
	case errors.Is(mErr, listing.ErrValidation):
		apiErrors.WriteError(w, mErr.Code, "Verifique os campos do formulário", details)
	case errors.Is(mErr, managing.ErrInvalidInput), errors.Is(mErr, managing.ErrOperationUnsupported):
		apiErrors.WriteError(w, mErr.Code, mErr.Error(), nil)
	default:
		apiErrors.WriteError(w, mErr.Code, mErr.Err.Error(), details)
	}
}
