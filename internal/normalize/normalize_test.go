package normalize_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-codex/internal/entities/catalog"
	"github.com/KirkDiggler/rpg-codex/internal/normalize"
)

type NormalizeTestSuite struct {
	suite.Suite
}

func TestNormalizeSuite(t *testing.T) {
	suite.Run(t, new(NormalizeTestSuite))
}

func (s *NormalizeTestSuite) raw(doc string) any {
	var v any
	dec := json.NewDecoder(strings.NewReader(doc))
	dec.UseNumber()
	s.Require().NoError(dec.Decode(&v))
	return v
}

func (s *NormalizeTestSuite) TestSlug() {
	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{"simple", "Lu Bu", "lu-bu"},
		{"punctuation runs", "  Hello,  World!! ", "hello-world"},
		{"already slug", "lu-bu", "lu-bu"},
		{"underscores", "siege_of_the_north", "siege-of-the-north"},
		{"only symbols", "!!!", ""},
		{"unicode letters", "Битва Титанов", "битва-титанов"},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.Assert().Equal(tc.expected, normalize.Slug(tc.input))
		})
	}
}

func (s *NormalizeTestSuite) TestSlugIsCapped() {
	long := strings.Repeat("Ж", 40)
	got := normalize.Slug(long)
	s.Assert().LessOrEqual(len(got), normalize.MaxIDBytes)
	s.Assert().True(strings.HasPrefix(strings.Repeat("ж", 40), got))

	s.Assert().Equal(normalize.Slug("Same Name"), normalize.Slug("same   name"))
}

func (s *NormalizeTestSuite) TestExplicitIDs() {
	testCases := []struct {
		name     string
		id       string
		expected string
	}{
		{"token safe kept", "Siege_2", "Siege_2"},
		{"separator slugged", "a:b", "a-b"},
		{"space slugged", "Siege Week", "siege-week"},
		{"too long slugged", strings.Repeat("x", normalize.MaxIDBytes+1), strings.Repeat("x", normalize.MaxIDBytes)},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			rec, _ := normalize.Normalize(catalog.DomainSkill, map[string]any{"slug": tc.id, "name": "Named"})
			s.Assert().Equal(tc.expected, rec.ID)
			s.Assert().True(normalize.TokenSafe(rec.ID))
		})
	}
}

func (s *NormalizeTestSuite) TestRewardEncodingsAgree() {
	testCases := []struct {
		name string
		doc  string
	}{
		{"string", `{"name":"Siege","rewards":"Gold Chest"}`},
		{"list", `{"name":"Siege","rewards":["Gold Chest","Silver Key"]}`},
		{"object", `{"name":"Siege","rewards":{"name":"Gold Chest","rarity":"Epic","notes":"once per week"}}`},
		{"list of objects", `{"name":"Siege","rewards":[{"name":"Gold Chest","rarity":"Epic"},{"name":"Silver Key"}]}`},
		{"rewards_text", `{"name":"Siege","rewards_text":"Gold Chest for the top 10"}`},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			rec, _ := normalize.Normalize(catalog.DomainEvent, s.raw(tc.doc))
			text := rec.Text("rewards")
			s.Assert().NotEmpty(text)
			s.Assert().True(strings.HasPrefix(text, "Gold Chest"), text)
		})
	}
}

func (s *NormalizeTestSuite) TestRewardObjectParts() {
	rec, _ := normalize.Normalize(catalog.DomainEvent, s.raw(
		`{"name":"Siege","rewards":{"notes":"weekly","name":"Gold Chest","rarity":""}}`))

	f, ok := rec.Field("rewards")
	s.Require().True(ok)
	s.Assert().Equal("Gold Chest — weekly", f.Text)
}

func (s *NormalizeTestSuite) TestEventAliases() {
	rec, issues := normalize.Normalize(catalog.DomainEvent, s.raw(`{
		"id": "Siege_Week",
		"name": "Siege Week",
		"description": "Storm the walls",
		"time": {"duration": "3 days", "window": "Sat-Mon"},
		"bonus": {"type": "Attack", "value": "+10%", "scope": "", "notes": "cavalry only"},
		"source": ["Ask the alliance", "Save speedups"],
		"unknown_key": "ignored"
	}`))

	s.Assert().Empty(issues)
	expected := []catalog.Field{
		{Name: "description", Text: "Storm the walls"},
		{Name: "bonus", Text: "Attack | +10% | cavalry only"},
		{Name: "tips", List: []string{"Ask the alliance", "Save speedups"}},
		{Name: "duration", Text: "3 days"},
		{Name: "extra_time", Text: "Sat-Mon"},
	}
	if diff := cmp.Diff(expected, rec.Fields); diff != "" {
		s.Fail("fields mismatch (-want +got)", diff)
	}
	s.Assert().Equal("Siege_Week", rec.ID)
	s.Assert().False(rec.HasRules)
}

func (s *NormalizeTestSuite) TestTipsPreferredOverSource() {
	rec, _ := normalize.Normalize(catalog.DomainEvent, s.raw(
		`{"name":"Siege","tips_text":"Go early","source":["ignored"]}`))
	s.Assert().Equal("Go early", rec.Text("tips"))
}

func (s *NormalizeTestSuite) TestRulesConsistency() {
	testCases := []struct {
		name      string
		doc       string
		hasRules  bool
		rules     string
		issueText string
	}{
		{
			name:     "rules list declares rules",
			doc:      `{"name":"E","rules":["one","two"]}`,
			hasRules: true,
			rules:    "one\ntwo",
		},
		{
			name:     "flag true with text",
			doc:      `{"name":"E","has_rules":true,"rules_text":"be nice"}`,
			hasRules: true,
			rules:    "be nice",
		},
		{
			name:      "flag true without text",
			doc:       `{"name":"E","has_rules":true}`,
			issueText: "has_rules is true",
		},
		{
			name:      "flag false with text",
			doc:       `{"name":"E","has_rules":false,"rules_text":"be nice"}`,
			rules:     "be nice",
			issueText: "has_rules is false",
		},
		{
			name:      "flag false with list",
			doc:       `{"name":"E","has_rules":false,"rules":["one"]}`,
			rules:     "one",
			issueText: "has_rules is false",
		},
		{
			name:      "text without flag",
			doc:       `{"name":"E","rules":"be nice"}`,
			rules:     "be nice",
			issueText: "has_rules is not set",
		},
		{
			name: "nothing at all",
			doc:  `{"name":"E","has_rules":false}`,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			rec, issues := normalize.Normalize(catalog.DomainEvent, s.raw(tc.doc))
			s.Assert().Equal(tc.hasRules, rec.HasRules)
			s.Assert().Equal(tc.rules, rec.Text("rules"))
			if tc.issueText == "" {
				s.Assert().Empty(issues)
				return
			}
			s.Require().Len(issues, 1)
			s.Assert().Equal("has_rules", issues[0].Path)
			s.Assert().Contains(issues[0].Message, tc.issueText)
		})
	}
}

func (s *NormalizeTestSuite) TestHero() {
	rec, issues := normalize.Normalize(catalog.DomainHero, s.raw(`{
		"slug": "lu-bu",
		"name": "Lu Bu",
		"season": "S1",
		"specialty": ["Cavalry", "Attack"],
		"talents": [{"name": "Fury", "type": "Passive", "description": "More damage"}],
		"skills": [{
			"name": "Warlord",
			"type": "Active",
			"rage": 1000,
			"description": "Hits hard",
			"awakening": {"name": "Unleashed", "description": "Hits harder"}
		}],
		"type": "Cavalry",
		"rarity": 5
	}`))

	s.Assert().Empty(issues)
	s.Assert().Equal("lu-bu", rec.ID)
	s.Assert().Equal([]string{"Fury — Passive — More damage"}, rec.Fields[2].List)

	skills, ok := rec.Field("skills")
	s.Require().True(ok)
	s.Assert().Equal([]string{"Warlord — Active — Hits hard — 1000", "Awakening: Unleashed — Hits harder"}, skills.List)
	s.Assert().Equal("Cavalry", rec.Text("class"))
	s.Assert().Equal("5", rec.Text("rarity"))
	s.Assert().Contains(rec.SearchBlob, "warlord")
}

func (s *NormalizeTestSuite) TestExtraSubPartsAreKept() {
	hero, issues := normalize.Normalize(catalog.DomainHero, s.raw(`{
		"name": "Zhao Yun",
		"skills": [{
			"rarity": "legendary",
			"name": "Rage",
			"cooldown": "5s",
			"type": "active",
			"description": "hits",
			"awakening": {"name": "Dragon", "description": "hits more", "bonus": "+5%"}
		}]
	}`))
	s.Assert().Empty(issues)

	skills, ok := hero.Field("skills")
	s.Require().True(ok)
	s.Assert().Equal([]string{
		"Rage — active — hits — 5s — legendary",
		"Awakening: Dragon — hits more — +5%",
	}, skills.List)
	s.Assert().Contains(hero.SearchBlob, "legendary")

	event, issues := normalize.Normalize(catalog.DomainEvent, s.raw(
		`{"name":"Siege","bonus":{"duration":"1h","value":"+10%","type":"Attack"}}`))
	s.Assert().Empty(issues)
	s.Assert().Equal("Attack | +10% | 1h", event.Text("bonus"))
}

func (s *NormalizeTestSuite) TestSkillTitleAsName() {
	rec, issues := normalize.Normalize(catalog.DomainSkill, s.raw(
		`{"title":"Iron Wall","type":"Passive","probability":"30%","effect":"Reduce damage"}`))

	s.Assert().Empty(issues)
	s.Assert().Equal("Iron Wall", rec.Name)
	s.Assert().Equal("iron-wall", rec.ID)
	s.Assert().Equal("iron wall passive 30% reduce damage", rec.SearchBlob)
}

func (s *NormalizeTestSuite) TestFieldsStayInSchema() {
	rec, _ := normalize.Normalize(catalog.DomainSkill, s.raw(
		`{"name":"X","rules":"no","description":"not a skill field","effect":"ok"}`))

	for _, f := range rec.Fields {
		s.Assert().True(catalog.DomainSkill.HasField(f.Name), f.Name)
	}
}

func (s *NormalizeTestSuite) TestPlaceholders() {
	testCases := []struct {
		name     string
		domain   catalog.Domain
		doc      string
		expected string
	}{
		{"non-object event", catalog.DomainEvent, `"just a string"`, "Event"},
		{"nameless hero", catalog.DomainHero, `{"season":"S2"}`, "Hero"},
		{"list skill", catalog.DomainSkill, `[1,2]`, "Skill"},
		{"nameless mount skill", catalog.DomainMountSkill, `{}`, "Mount Skill"},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			rec, issues := normalize.Normalize(tc.domain, s.raw(tc.doc))
			s.Require().NotNil(rec)
			s.Assert().Equal(tc.expected, rec.Name)
			s.Assert().Equal(normalize.Slug(tc.expected), rec.ID)
			s.Assert().NotEmpty(issues)
		})
	}
}

func (s *NormalizeTestSuite) TestNormalizeIsDeterministic() {
	doc := `{"name":"Siege","rewards":{"b":"2","a":"1","name":"Gold"},"tips":["x","y"]}`
	first, _ := normalize.Normalize(catalog.DomainEvent, s.raw(doc))
	second, _ := normalize.Normalize(catalog.DomainEvent, s.raw(doc))

	s.Assert().Empty(cmp.Diff(first, second))
	s.Assert().Equal("Gold — 1 — 2", first.Text("rewards"))
}
