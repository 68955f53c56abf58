package managing

import (
	"context"
	"sync"
	"time"

	"github.com/vfg2006/bitsblog-admin/infrastructure/integrator/bitsblog/blogclient"
	"github.com/vfg2006/bitsblog-admin/infrastructure/integrator/bitsblog/blogdomain"
	"github.com/vfg2006/bitsblog-admin/internal/config"
	"github.com/vfg2006/bitsblog-admin/internal/usecases/listing"
	"github.com/vfg2006/bitsblog-admin/pkg/apiErrors"
	"github.com/vfg2006/bitsblog-admin/pkg/log"
)

type AdminService interface {
	Resource(name string) (Resource, error)
	Resources() []string
	Overview(ctx context.Context) *Overview
	ExpireAdvertisements(ctx context.Context) (*blogdomain.ActionResult, error)
}

// Overview junta os agregados de todos os recursos do painel
type Overview struct {
	Stats       map[string]any `json:"stats"`
	GeneratedAt time.Time      `json:"generated_at"`
}

type Service struct {
	client    blogclient.Client
	resources map[string]Resource
	order     []string
}

func NewService(client blogclient.Client, cfg *config.Config) AdminService {
	maxBytes := cfg.Upload.MaxBytes

	all := []Resource{
		newAdvertisements(client, maxBytes),
		newCategories(client),
		newTags(client),
		newNewsletters(client),
		newNewsletterTemplates(client),
		newContactMessages(client),
		newSavedPosts(client),
	}

	s := &Service{
		client:    client,
		resources: make(map[string]Resource, len(all)),
		order:     make([]string, 0, len(all)),
	}
	for _, r := range all {
		s.resources[r.Name()] = r
		s.order = append(s.order, r.Name())
	}

	return s
}

func (s *Service) Resource(name string) (Resource, error) {
	r, ok := s.resources[name]
	if !ok {
		return nil, &listing.MutationError{
			Err:      ErrResourceNotFound,
			Code:     apiErrors.ErrResourceNotFound,
			Resource: name,
		}
	}
	return r, nil
}

// Resources devolve os nomes dos recursos na ordem do menu do painel
func (s *Service) Resources() []string {
	names := make([]string, len(s.order))
	copy(names, s.order)
	return names
}

// Overview carrega todos os recursos em paralelo. Falhas de um recurso
// resultam em agregados zerados, como na tela individual.
func (s *Service) Overview(ctx context.Context) *Overview {
	var (
		wg    sync.WaitGroup
		mu    sync.Mutex
		stats = make(map[string]any, len(s.order))
	)

	for _, name := range s.order {
		wg.Add(1)
		go func(r Resource) {
			defer wg.Done()

			result := r.Stats(ctx)

			mu.Lock()
			stats[r.Name()] = result
			mu.Unlock()
		}(s.resources[name])
	}

	wg.Wait()

	return &Overview{
		Stats:       stats,
		GeneratedAt: time.Now(),
	}
}

// ExpireAdvertisements executa a ação expire_old e devolve a resposta da API
func (s *Service) ExpireAdvertisements(ctx context.Context) (*blogdomain.ActionResult, error) {
	dispatcher := listing.NewDispatcher(s.client, ResourceAdvertisements)

	data, err := dispatcher.CollectionAction(ctx, VerbExpireOld, listing.NoPayload{})
	if err != nil {
		return nil, err
	}

	result := &blogdomain.ActionResult{}
	if len(data) > 0 {
		if err := json.Unmarshal(data, result); err != nil {
			log.ForContext(ctx).WithError(err).Warn("Resposta de expire_old fora do formato esperado")
		}
	}

	return result, nil
}
