package render_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-codex/internal/entities/catalog"
	"github.com/KirkDiggler/rpg-codex/internal/render"
)

type RenderTestSuite struct {
	suite.Suite
	cards *render.Cards
}

func TestRenderSuite(t *testing.T) {
	suite.Run(t, new(RenderTestSuite))
}

func (s *RenderTestSuite) SetupTest() {
	s.cards = render.NewCards()
}

func (s *RenderTestSuite) TestLabel() {
	s.Assert().Equal("Extra Time", render.Label("extra_time"))
	s.Assert().Equal("Rewards", render.Label("rewards"))
}

func (s *RenderTestSuite) TestEventCard() {
	rec := &catalog.Record{
		ID:     "siege-of-luoyang",
		Name:   "Siege of Luoyang",
		Domain: catalog.DomainEvent,
		Fields: []catalog.Field{
			{Name: "description", Text: "Take the city."},
			{Name: "rewards", List: []string{"Gold Chest — epic", "Silver Key"}},
			{Name: "tips", Text: ""},
			{Name: "extra_time", Text: "Weekends"},
			{Name: "rules", List: []string{"No retreat"}},
		},
		HasRules: true,
	}

	expected := strings.Join([]string{
		"Siege of Luoyang",
		"Description: Take the city.",
		"Rewards:\n• Gold Chest — epic\n• Silver Key",
		"Extra Time: Weekends",
	}, "\n\n")
	s.Assert().Equal(expected, s.cards.Card(rec))
}

func (s *RenderTestSuite) TestMultilineTextIsABlock() {
	rec := &catalog.Record{
		Name:   "Iron Wall",
		Domain: catalog.DomainSkill,
		Fields: []catalog.Field{
			{Name: "type", Text: "Passive"},
			{Name: "effect", Text: "Blocks arrows.\nReflects 10%."},
		},
	}

	card := s.cards.Card(rec)
	s.Assert().True(strings.HasPrefix(card, "Iron Wall — Passive\n\n"))
	s.Assert().Contains(card, "Effect:\nBlocks arrows.\nReflects 10%.")
}

func (s *RenderTestSuite) TestCaption() {
	testCases := []struct {
		name     string
		rec      *catalog.Record
		expected string
	}{
		{
			name:     "hero with class and role",
			rec:      &catalog.Record{Name: "Lu Bu", Fields: []catalog.Field{{Name: "class", Text: "Cavalry"}, {Name: "role", Text: "Attacker"}}},
			expected: "Lu Bu — Cavalry · Attacker",
		},
		{
			name:     "mount skill with type",
			rec:      &catalog.Record{Name: "Charge", Fields: []catalog.Field{{Name: "type", Text: "Active"}}},
			expected: "Charge — Active",
		},
		{
			name:     "no tags",
			rec:      &catalog.Record{Name: "Harvest Festival"},
			expected: "Harvest Festival",
		},
		{
			name:     "nil",
			rec:      nil,
			expected: "",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.Assert().Equal(tc.expected, s.cards.Caption(tc.rec))
		})
	}
}

func (s *RenderTestSuite) TestRules() {
	rec := &catalog.Record{
		Name:   "Siege",
		Fields: []catalog.Field{{Name: "rules", Text: "No retreat\n\nHold the gate"}},
	}
	s.Assert().Equal("Siege — Rules\n\n• No retreat\n• Hold the gate", s.cards.Rules(rec))

	s.Assert().Equal("Quiet — Rules\n\n—", s.cards.Rules(&catalog.Record{Name: "Quiet"}))
}

func (s *RenderTestSuite) TestClamp() {
	testCases := []struct {
		name     string
		text     string
		limit    int
		expected string
	}{
		{"fits", "short", 10, "short"},
		{"exact", "12345", 5, "12345"},
		{"cut", "123456", 5, "1234…"},
		{"trailing space dropped", "ab   cdefgh", 5, "ab…"},
		{"runes not bytes", "龙龙龙龙龙龙", 4, "龙龙龙…"},
		{"zero limit", "abc", 0, ""},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.Assert().Equal(tc.expected, render.Clamp(tc.text, tc.limit))
		})
	}
}

func (s *RenderTestSuite) TestClampCaptionLimit() {
	out := render.Clamp(strings.Repeat("x", 5000), render.CaptionLimit)
	s.Assert().Equal(render.CaptionLimit, len([]rune(out)))
	s.Assert().True(strings.HasSuffix(out, render.Ellipsis))
}

func (s *RenderTestSuite) TestReport() {
	s.Run("short report", func() {
		out := render.Report("Issues:", []string{"a", "b"}, 80)
		s.Assert().Equal("Issues:\n• a\n• b", out)
	})

	s.Run("long report is truncated", func() {
		lines := make([]string, 85)
		for i := range lines {
			lines[i] = fmt.Sprintf("issue %d", i)
		}
		out := render.Report("Issues:", lines, 0)
		got := strings.Split(out, "\n")
		s.Require().Len(got, 1+render.ReportLimit+1)
		s.Assert().Equal("• issue 79", got[80])
		s.Assert().Equal("… (truncated)", got[81])
	})
}

func (s *RenderTestSuite) TestBulletsSkipsBlankLines() {
	s.Assert().Equal("• a\n• b", render.Bullets([]string{" a ", "", "b\n  "}))
	s.Assert().Equal("—", render.Bullets(nil))
}
