package normalize_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-codex/internal/entities/catalog"
	"github.com/KirkDiggler/rpg-codex/internal/errors"
	"github.com/KirkDiggler/rpg-codex/internal/normalize"
)

type DocumentTestSuite struct {
	suite.Suite
}

func TestDocumentSuite(t *testing.T) {
	suite.Run(t, new(DocumentTestSuite))
}

func (s *DocumentTestSuite) TestShapes() {
	testCases := []struct {
		name    string
		domain  catalog.Domain
		doc     string
		count   int
		missing bool
	}{
		{"top-level list", catalog.DomainHero, `[{"name":"A"},{"name":"B"}]`, 2, false},
		{"wrapped list", catalog.DomainHero, `{"heroes":[{"name":"A"}]}`, 1, false},
		{"empty wrapped list", catalog.DomainSkill, `{"skills":[]}`, 0, false},
		{"single event", catalog.DomainEvent, `{"event":{"name":"Siege"}}`, 1, false},
		{"single object is not a hero list", catalog.DomainHero, `{"event":{"name":"Siege"}}`, 0, true},
		{"wrong wrapper", catalog.DomainSkill, `{"heroes":[{"name":"A"}]}`, 0, true},
		{"singular wrapper holding a list", catalog.DomainEvent, `{"event":[{"name":"Siege"}]}`, 0, true},
		{"wrapper is not a list", catalog.DomainEvent, `{"events":"x"}`, 0, true},
		{"scalar document", catalog.DomainSkill, `42`, 0, true},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			result, err := normalize.Document(tc.domain, "doc.json", []byte(tc.doc))
			s.Require().NoError(err)
			s.Assert().Len(result.Records, tc.count)

			if !tc.missing {
				s.Assert().Empty(result.Issues)
				return
			}
			s.Require().Len(result.Issues, 1)
			s.Assert().Equal("doc.json", result.Issues[0].Source)
			s.Assert().Contains(result.Issues[0].Message, "no record list found")
		})
	}
}

func (s *DocumentTestSuite) TestMalformed() {
	testCases := []struct {
		name string
		doc  string
	}{
		{"truncated", `[{"name":"A"`},
		{"trailing data", `[] []`},
		{"empty", ``},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := normalize.Document(catalog.DomainEvent, "events.json", []byte(tc.doc))
			s.Require().Error(err)
			s.Assert().True(errors.IsParseFailure(err))
			s.Assert().Equal("events.json", errors.GetMeta(err)["location"])
		})
	}
}

func (s *DocumentTestSuite) TestDuplicateIDsFirstWins() {
	doc := `[
		{"name":"Lu Bu","season":"S1"},
		{"name":"Cao Cao"},
		{"name":"lu  bu","season":"S9"}
	]`

	result, err := normalize.Document(catalog.DomainHero, "heroes.json", []byte(doc))
	s.Require().NoError(err)
	s.Require().Len(result.Records, 2)
	s.Assert().Equal("S1", result.Records[0].Text("season"))

	s.Require().Len(result.Issues, 1)
	s.Assert().Equal("heroes.json", result.Issues[0].Source)
	s.Assert().Equal("[2].id", result.Issues[0].Path)
	s.Assert().Contains(result.Issues[0].Message, `"lu-bu"`)
}

func (s *DocumentTestSuite) TestIssuePathsAreIndexed() {
	doc := `{"events":[{"name":"Ok"},{"description":"no name"},"junk"]}`

	result, err := normalize.Document(catalog.DomainEvent, "events.json", []byte(doc))
	s.Require().NoError(err)

	paths := make([]string, 0, len(result.Issues))
	for _, issue := range result.Issues {
		paths = append(paths, issue.Path)
	}
	s.Assert().Equal([]string{"[1].name", "[2]", "[2].id"}, paths)
	s.Assert().Len(result.Records, 2)
}
