package mountskills_test

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/goleak"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/rpg-codex/internal/assets"
	"github.com/KirkDiggler/rpg-codex/internal/entities/catalog"
	"github.com/KirkDiggler/rpg-codex/internal/errors"
	"github.com/KirkDiggler/rpg-codex/internal/repositories/mountskills"
	"github.com/KirkDiggler/rpg-codex/internal/sources"
	sourcesmock "github.com/KirkDiggler/rpg-codex/internal/sources/mock"
	"github.com/KirkDiggler/rpg-codex/internal/testutils"
)

type StoreTestSuite struct {
	suite.Suite
	fixture *testutils.Fixture
	checker *assets.FileChecker
	store   mountskills.Repository
	ctx     context.Context
}

func TestStoreSuite(t *testing.T) {
	suite.Run(t, new(StoreTestSuite))
}

func (s *StoreTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.fixture = testutils.NewFixture(s.T())

	var err error
	s.checker, err = assets.NewFileChecker(&assets.Config{Root: s.fixture.AssetsDir})
	s.Require().NoError(err)

	src, err := sources.NewFile(&sources.FileConfig{Dirs: []string{s.fixture.MountSkillsDir}})
	s.Require().NoError(err)

	s.store, err = mountskills.NewStore(&mountskills.Config{Source: src, Assets: s.checker})
	s.Require().NoError(err)
}

func (s *StoreTestSuite) TestGet() {
	out, err := s.store.Get(s.ctx, mountskills.GetInput{MountType: catalog.MountTypeSpears})
	s.Require().NoError(err)
	s.Assert().Len(out.Set.Slot1, 3)
	s.Assert().Len(out.Set.Slot2, 1)

	again, err := s.store.Get(s.ctx, mountskills.GetInput{MountType: catalog.MountTypeSpears})
	s.Require().NoError(err)
	s.Assert().Same(out.Set, again.Set)
}

func (s *StoreTestSuite) TestSlot() {
	out, err := s.store.Slot(s.ctx, mountskills.SlotInput{MountType: catalog.MountTypeInfantry, Slot: 2})
	s.Require().NoError(err)
	s.Assert().Empty(out.Records)

	_, err = s.store.Slot(s.ctx, mountskills.SlotInput{MountType: catalog.MountTypeInfantry, Slot: 3})
	s.Assert().True(errors.IsInvalidArgument(err))

	_, err = s.store.Slot(s.ctx, mountskills.SlotInput{MountType: "cavalry", Slot: 1})
	s.Assert().True(errors.IsInvalidArgument(err))
}

func (s *StoreTestSuite) TestSchemaViolationFailsOnlyThatMountType() {
	_, err := s.store.Get(s.ctx, mountskills.GetInput{MountType: catalog.MountTypeArchers})
	s.Require().Error(err)
	s.Assert().True(errors.IsSchemaViolation(err))
	issues := errors.GetIssues(err)
	s.Require().Len(issues, 1)
	s.Assert().Contains(issues[0].Message, "r1")

	_, err = s.store.Get(s.ctx, mountskills.GetInput{MountType: catalog.MountTypeSpears})
	s.Assert().NoError(err)
}

func (s *StoreTestSuite) TestReload() {
	_, err := s.store.Get(s.ctx, mountskills.GetInput{MountType: catalog.MountTypeInfantry})
	s.Require().NoError(err)

	s.fixture.WriteMount(s.T(), "archers.json", strings.Replace(testutils.SampleArchers, "spears/volley.png", "archers/volley.png", 1))
	s.fixture.WriteMount(s.T(), "infantry.json", `{"mount_type":"infantry"}`)

	out, err := s.store.Reload(s.ctx, mountskills.ReloadInput{})
	s.Require().NoError(err)
	s.Require().Len(out.Results, 3)
	s.Assert().NoError(out.Results[0].Err)
	s.Assert().True(errors.IsSchemaViolation(out.Results[1].Err))
	s.Assert().Equal(1, out.Results[2].Skills)

	infantry, err := s.store.Get(s.ctx, mountskills.GetInput{MountType: catalog.MountTypeInfantry})
	s.Require().NoError(err)
	s.Assert().Len(infantry.Set.Slot1, 1, "failed reload keeps the previous set")

	archers, err := s.store.Get(s.ctx, mountskills.GetInput{MountType: catalog.MountTypeArchers})
	s.Require().NoError(err)
	s.Assert().Equal("archers/volley.png", archers.Set.Slot1[0].Image)
}

func (s *StoreTestSuite) TestValidateReportsEverything() {
	out, err := s.store.Validate(s.ctx, mountskills.ValidateInput{})
	s.Require().NoError(err)

	var lines []string
	for _, issue := range out.Issues {
		lines = append(lines, issue.String())
	}
	s.Assert().Equal([]string{
		"spears.json: [slot1:a3] image missing: mount_skills/spears/trample.png",
		"infantry.json: [slot1:i1] image missing: mount_skills/infantry/bash.png",
		"archers.json: slot1[0].image -> [slot1:r1] prefix 'spears' != 'archers'",
	}, lines)
}

func (s *StoreTestSuite) TestValidateMissingDocument() {
	src, err := sources.NewFile(&sources.FileConfig{Dirs: []string{s.T().TempDir()}})
	s.Require().NoError(err)
	store, err := mountskills.NewStore(&mountskills.Config{Source: src, Assets: s.checker})
	s.Require().NoError(err)

	out, err := store.Validate(s.ctx, mountskills.ValidateInput{})
	s.Require().NoError(err)
	s.Require().Len(out.Issues, 3)
	s.Assert().Equal("spears.json", out.Issues[0].Source)
	s.Assert().Contains(out.Issues[0].Message, "not found")
}

func (s *StoreTestSuite) TestConcurrentFirstLoadsCoalesce() {
	defer goleak.VerifyNone(s.T())

	ctrl := gomock.NewController(s.T())
	src := sourcesmock.NewMockSource(ctrl)
	src.EXPECT().Read(gomock.Any(), "spears.json").
		DoAndReturn(func(ctx context.Context, name string) ([]byte, error) {
			time.Sleep(20 * time.Millisecond)
			return []byte(testutils.SampleSpears), nil
		}).
		Times(1)

	store, err := mountskills.NewStore(&mountskills.Config{Source: src, Assets: s.checker})
	s.Require().NoError(err)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = store.Slot(s.ctx, mountskills.SlotInput{MountType: catalog.MountTypeSpears, Slot: 1})
		}()
	}
	wg.Wait()
}
