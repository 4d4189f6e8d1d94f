package mountskills

import (
	"context"
	"log/slog"
	"sync/atomic"

	"golang.org/x/sync/singleflight"

	"github.com/KirkDiggler/rpg-codex/internal/assets"
	"github.com/KirkDiggler/rpg-codex/internal/entities/catalog"
	"github.com/KirkDiggler/rpg-codex/internal/errors"
	"github.com/KirkDiggler/rpg-codex/internal/normalize"
	"github.com/KirkDiggler/rpg-codex/internal/sources"
)

// Config contains the dependencies of the mount skill store
type Config struct {
	Source sources.Source
	// Assets is used by Validate to report missing images
	Assets                   assets.Checker
	AllowCrossSlotDuplicates bool
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
	if cfg.Assets == nil {
		vb.RequiredField("Assets")
	}
	return vb.Build()
}

type store struct {
	source  sources.Source
	assets  assets.Checker
	options normalize.MountOptions

	// capacity is the number of mount types; entries are never evicted
	sets  map[catalog.MountType]*atomic.Pointer[catalog.MountSkillSet]
	loads singleflight.Group
}

// NewStore creates a mount skill store
func NewStore(cfg *Config) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	sets := make(map[catalog.MountType]*atomic.Pointer[catalog.MountSkillSet], len(catalog.MountTypes))
	for _, mt := range catalog.MountTypes {
		sets[mt] = &atomic.Pointer[catalog.MountSkillSet]{}
	}

	return &store{
		source:  cfg.Source,
		assets:  cfg.Assets,
		options: normalize.MountOptions{AllowCrossSlotDuplicates: cfg.AllowCrossSlotDuplicates},
		sets:    sets,
	}, nil
}

func (s *store) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	set, err := s.set(ctx, input.MountType)
	if err != nil {
		return nil, err
	}
	return &GetOutput{Set: set}, nil
}

func (s *store) Slot(ctx context.Context, input SlotInput) (*SlotOutput, error) {
	if !catalog.ValidSlot(input.Slot) {
		return nil, errors.InvalidArgumentf("slot must be 1 or 2, got %d", input.Slot)
	}

	set, err := s.set(ctx, input.MountType)
	if err != nil {
		return nil, err
	}
	return &SlotOutput{Records: set.Slot(input.Slot)}, nil
}

func (s *store) Reload(ctx context.Context, input ReloadInput) (*ReloadOutput, error) {
	mountTypes := input.MountTypes
	if len(mountTypes) == 0 {
		mountTypes = catalog.MountTypes
	}
	for _, mt := range mountTypes {
		if _, ok := s.sets[mt]; !ok {
			return nil, errors.InvalidArgumentf("unknown mount type %q", mt)
		}
	}

	output := &ReloadOutput{Results: make([]ReloadResult, 0, len(mountTypes))}
	for _, mt := range mountTypes {
		set, err := s.build(ctx, mt)
		if err != nil {
			slog.WarnContext(ctx, "mount skills reload failed, keeping previous set",
				"mount_type", mt,
				"error", err,
			)
			output.Results = append(output.Results, ReloadResult{MountType: mt, Err: err})
			continue
		}

		s.sets[mt].Store(set)
		output.Results = append(output.Results, ReloadResult{
			MountType: mt,
			Skills:    len(set.Slot1) + len(set.Slot2),
		})
	}

	return output, nil
}

func (s *store) Validate(ctx context.Context, _ ValidateInput) (*ValidateOutput, error) {
	var issues errors.IssueList

	for _, mt := range catalog.MountTypes {
		name := mt.SourceName()
		set, err := s.build(ctx, mt)
		if err != nil {
			issues.AppendError(name, err)
			continue
		}

		for n := 1; n <= catalog.SlotCount; n++ {
			for _, rec := range set.Slot(n) {
				asset := assets.MountSkillPath(rec.Image)
				if !s.assets.Exists(asset) {
					issues.Addf(name, "", "[slot%d:%s] image missing: %s", n, rec.ID, asset)
				}
			}
		}
	}

	return &ValidateOutput{Issues: issues.Issues()}, nil
}

func (s *store) set(ctx context.Context, mountType catalog.MountType) (*catalog.MountSkillSet, error) {
	slot, ok := s.sets[mountType]
	if !ok {
		return nil, errors.InvalidArgumentf("unknown mount type %q", mountType)
	}
	if set := slot.Load(); set != nil {
		return set, nil
	}

	v, err, _ := s.loads.Do(string(mountType), func() (interface{}, error) {
		if set := slot.Load(); set != nil {
			return set, nil
		}

		// the load is shared, so one caller giving up must not fail the others
		set, err := s.build(context.WithoutCancel(ctx), mountType)
		if err != nil {
			return nil, err
		}
		if !slot.CompareAndSwap(nil, set) {
			return slot.Load(), nil
		}
		return set, nil
	})
	if err != nil {
		return nil, err
	}

	return v.(*catalog.MountSkillSet), nil
}

func (s *store) build(ctx context.Context, mountType catalog.MountType) (*catalog.MountSkillSet, error) {
	name := mountType.SourceName()

	data, err := s.source.Read(ctx, name)
	if err != nil {
		return nil, err
	}

	set, err := normalize.MountDocument(mountType, name, data, s.options)
	if err != nil {
		slog.WarnContext(ctx, "mount skills failed validation",
			"mount_type", mountType,
			"issues", len(errors.GetIssues(err)),
		)
		return nil, err
	}

	slog.InfoContext(ctx, "mount skills loaded",
		"mount_type", mountType,
		"slot1", len(set.Slot1),
		"slot2", len(set.Slot2),
	)

	return set, nil
}
