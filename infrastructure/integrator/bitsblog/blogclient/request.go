package blogclient

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/bitsblog-admin/infrastructure/integrator/bitsblog/blogdomain"
)

// endpoint monta a URL /api/<segmentos>/ com barra final, como o Django espera.
// Cada segmento pode conter "/"; as partes são escapadas individualmente.
func (c *BlogClient) endpoint(query url.Values, segments ...string) (string, error) {
	base, err := url.Parse(c.baseURL)
	if err != nil {
		return "", errors.Wrap(err, "erro ao analisar a URL base")
	}

	elems := make([]string, 0, len(segments)+1)
	elems = append(elems, "api")
	for _, s := range segments {
		for _, part := range strings.Split(s, "/") {
			switch part {
			case "":
				continue
			case ".", "..":
				return "", errors.Errorf("segmento de caminho inválido: %q", s)
			}
			elems = append(elems, url.PathEscape(part))
		}
	}

	target := base.JoinPath(elems...)
	if !strings.HasSuffix(target.Path, "/") {
		target.Path += "/"
		if target.RawPath != "" {
			target.RawPath += "/"
		}
	}

	if len(query) > 0 {
		target.RawQuery = query.Encode()
	}

	return target.String(), nil
}

// do executa a requisição e devolve o corpo quando o status é 2xx
func (c *BlogClient) do(ctx context.Context, method, target string, body io.Reader, contentType string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao criar a requisição")
	}

	req.Header.Set("Accept", "application/json")
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if token := TokenFromContext(ctx); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"method":   method,
			"endpoint": target,
		}).WithError(err).Error("Erro ao executar a requisição para a API do blog")
		return nil, errors.Wrapf(err, "erro ao executar a requisição %s %s", method, req.URL.Path)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao ler a resposta")
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &ResponseError{
			StatusCode: resp.StatusCode,
			Method:     method,
			Path:       req.URL.Path,
			Body:       blogdomain.ParseErrorResponse(data),
		}
	}

	return data, nil
}
