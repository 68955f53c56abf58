package blogclient

import (
	"context"
	"net/http"

	"github.com/pkg/errors"
	"github.com/vfg2006/bitsblog-admin/infrastructure/integrator/bitsblog/blogdomain"
)

const currentUserPath = "auth/user"

// CurrentUser consulta o usuário dono do token guardado no contexto
func (c *BlogClient) CurrentUser(ctx context.Context) (*blogdomain.CurrentUser, error) {
	target, err := c.endpoint(nil, currentUserPath)
	if err != nil {
		return nil, err
	}

	data, err := c.do(ctx, http.MethodGet, target, nil, "")
	if err != nil {
		return nil, err
	}

	var user blogdomain.CurrentUser
	if err := json.Unmarshal(data, &user); err != nil {
		return nil, errors.Wrap(err, "erro ao decodificar o usuário da sessão")
	}

	return &user, nil
}
