package catalog

import (
	"context"
	"log/slog"
	"sync/atomic"

	"golang.org/x/sync/singleflight"

	entities "github.com/KirkDiggler/rpg-codex/internal/entities/catalog"
	"github.com/KirkDiggler/rpg-codex/internal/errors"
	"github.com/KirkDiggler/rpg-codex/internal/normalize"
	"github.com/KirkDiggler/rpg-codex/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-codex/internal/sources"
)

// Config contains the dependencies of the in-memory catalog store
type Config struct {
	Source sources.Source
	Clock  clock.Clock
}

// Validate validates the Config
func (cfg *Config) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	if cfg.Source == nil {
		vb.RequiredField("Source")
	}
	if cfg.Clock == nil {
		vb.RequiredField("Clock")
	}
	return vb.Build()
}

type store struct {
	source sources.Source
	clock  clock.Clock

	// one slot per list domain, fixed at construction
	catalogs map[entities.Domain]*atomic.Pointer[Catalog]
	loads    singleflight.Group
}

// NewStore creates a catalog store that loads each domain lazily from source
func NewStore(cfg *Config) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	catalogs := make(map[entities.Domain]*atomic.Pointer[Catalog], len(entities.ListDomains))
	for _, d := range entities.ListDomains {
		catalogs[d] = &atomic.Pointer[Catalog]{}
	}

	return &store{
		source:   cfg.Source,
		clock:    cfg.Clock,
		catalogs: catalogs,
	}, nil
}

func (s *store) Load(ctx context.Context, input LoadInput) (*LoadOutput, error) {
	c, err := s.catalog(ctx, input.Domain)
	if err != nil {
		return nil, err
	}
	return &LoadOutput{Catalog: c}, nil
}

func (s *store) List(ctx context.Context, input ListInput) (*ListOutput, error) {
	c, err := s.catalog(ctx, input.Domain)
	if err != nil {
		return nil, err
	}
	return &ListOutput{Records: c.Records}, nil
}

func (s *store) GetByID(ctx context.Context, input GetByIDInput) (*GetByIDOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument("id is required")
	}

	c, err := s.catalog(ctx, input.Domain)
	if err != nil {
		return nil, err
	}

	rec, ok := c.ByID(input.ID)
	if !ok {
		return nil, errors.NotFoundf("%s %s not found", input.Domain, input.ID).
			WithMeta("domain", string(input.Domain))
	}
	return &GetByIDOutput{Record: rec}, nil
}

func (s *store) GetByName(ctx context.Context, input GetByNameInput) (*GetByNameOutput, error) {
	c, err := s.catalog(ctx, input.Domain)
	if err != nil {
		return nil, err
	}

	rec, ok := c.ByName(input.Name)
	if !ok {
		return nil, errors.NotFoundf("%s named %q not found", input.Domain, input.Name).
			WithMeta("domain", string(input.Domain))
	}
	return &GetByNameOutput{Record: rec}, nil
}

func (s *store) Search(ctx context.Context, input SearchInput) (*SearchOutput, error) {
	c, err := s.catalog(ctx, input.Domain)
	if err != nil {
		return nil, err
	}
	return &SearchOutput{Records: c.Search(input.Query)}, nil
}

func (s *store) Reload(ctx context.Context, input ReloadInput) (*ReloadOutput, error) {
	domains, err := s.domains(input.Domains)
	if err != nil {
		return nil, err
	}

	output := &ReloadOutput{Results: make([]ReloadResult, 0, len(domains))}
	for _, d := range domains {
		if err := ctx.Err(); err != nil {
			return nil, errors.WrapWithCode(err, errors.CodeCanceled, "reload canceled")
		}

		c, buildErr := s.build(ctx, d)
		if buildErr != nil {
			slog.WarnContext(ctx, "catalog reload failed, keeping previous catalog",
				"domain", d,
				"error", buildErr,
			)
			output.Results = append(output.Results, ReloadResult{Domain: d, Err: buildErr})
			continue
		}

		s.catalogs[d].Store(c)
		output.Results = append(output.Results, ReloadResult{Domain: d, Records: c.Len(), LoadedAt: c.LoadedAt})
	}

	return output, nil
}

func (s *store) Validate(ctx context.Context, input ValidateInput) (*ValidateOutput, error) {
	domains, err := s.domains(input.Domains)
	if err != nil {
		return nil, err
	}

	var issues errors.IssueList
	for _, d := range domains {
		c, buildErr := s.build(ctx, d)
		if buildErr != nil {
			issues.AppendError(d.SourceName(), buildErr)
			continue
		}
		issues.Append(c.Issues...)
	}

	return &ValidateOutput{Issues: issues.Issues()}, nil
}

// catalog returns the cached catalog of domain, loading it on first use.
// Concurrent first calls share one load.
func (s *store) catalog(ctx context.Context, domain entities.Domain) (*Catalog, error) {
	slot, ok := s.catalogs[domain]
	if !ok {
		return nil, errors.InvalidArgumentf("unknown catalog domain %q", domain)
	}
	if c := slot.Load(); c != nil {
		return c, nil
	}

	v, err, _ := s.loads.Do(string(domain), func() (interface{}, error) {
		if c := slot.Load(); c != nil {
			return c, nil
		}

		// the load is shared, so one caller giving up must not fail the others
		c, err := s.build(context.WithoutCancel(ctx), domain)
		if err != nil {
			return nil, err
		}

		// a reload that finished first wins
		if !slot.CompareAndSwap(nil, c) {
			return slot.Load(), nil
		}
		return c, nil
	})
	if err != nil {
		return nil, err
	}

	return v.(*Catalog), nil
}

func (s *store) build(ctx context.Context, domain entities.Domain) (*Catalog, error) {
	name := domain.SourceName()

	data, err := s.source.Read(ctx, name)
	if err != nil {
		return nil, err
	}

	result, err := normalize.Document(domain, name, data)
	if err != nil {
		return nil, err
	}

	c := newCatalog(domain, result.Records, result.Issues, s.clock.Now())

	slog.InfoContext(ctx, "catalog loaded",
		"domain", domain,
		"records", c.Len(),
		"issues", len(c.Issues),
	)

	return c, nil
}

func (s *store) domains(requested []entities.Domain) ([]entities.Domain, error) {
	if len(requested) == 0 {
		return entities.ListDomains, nil
	}
	for _, d := range requested {
		if _, ok := s.catalogs[d]; !ok {
			return nil, errors.InvalidArgumentf("unknown catalog domain %q", d)
		}
	}
	return requested, nil
}
