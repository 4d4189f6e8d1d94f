package normalize_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-codex/internal/entities/catalog"
	"github.com/KirkDiggler/rpg-codex/internal/errors"
	"github.com/KirkDiggler/rpg-codex/internal/normalize"
)

type MountDocumentTestSuite struct {
	suite.Suite
}

func TestMountDocumentSuite(t *testing.T) {
	suite.Run(t, new(MountDocumentTestSuite))
}

const validSpears = `{
	"mount_type": "spears",
	"_defaults": {"tier": 1},
	"slot1": [
		{"id": "a1", "name": "Hoof Strike", "type": "Active", "description": "Kick", "image": "spears/x.png"},
		{"id": "a_2", "name": "Charge", "type": "Active", "description": "Run", "image": "spears/charge.jpg"}
	],
	"slot2": [
		{"id": "b1", "name": "Thick Hide", "type": "Passive", "description": "Tough", "image": "spears/hide.jpeg"}
	]
}`

func (s *MountDocumentTestSuite) TestValidDocument() {
	set, err := normalize.MountDocument(catalog.MountTypeSpears, "spears.json", []byte(validSpears), normalize.MountOptions{})
	s.Require().NoError(err)

	s.Assert().Equal(catalog.MountTypeSpears, set.MountType)
	s.Require().Len(set.Slot1, 2)
	s.Require().Len(set.Slot2, 1)
	s.Assert().Equal("a1", set.Slot1[0].ID)
	s.Assert().Equal("a_2", set.Slot1[1].ID)
	s.Assert().Equal("spears/x.png", set.Slot1[0].Image)
	s.Assert().Equal("Kick", set.Slot1[0].Text("description"))
	s.Assert().Equal(catalog.DomainMountSkill, set.Slot2[0].Domain)
}

func (s *MountDocumentTestSuite) TestForeignImagePrefixNamesTheSkill() {
	doc := strings.Replace(validSpears, `"spears/x.png"`, `"infantry/x.png"`, 1)

	_, err := normalize.MountDocument(catalog.MountTypeSpears, "spears.json", []byte(doc), normalize.MountOptions{})
	s.Require().Error(err)
	s.Assert().True(errors.IsSchemaViolation(err))

	issues := errors.GetIssues(err)
	s.Require().Len(issues, 1)
	s.Assert().Equal("slot1[0].image", issues[0].Path)
	s.Assert().Contains(issues[0].Message, "a1")
	s.Assert().Contains(issues[0].Message, "prefix 'infantry' != 'spears'")
}

func (s *MountDocumentTestSuite) TestCrossSlotDuplicates() {
	doc := strings.Replace(validSpears, `"id": "b1"`, `"id": "a1"`, 1)

	_, err := normalize.MountDocument(catalog.MountTypeSpears, "spears.json", []byte(doc), normalize.MountOptions{})
	s.Require().Error(err)
	issues := errors.GetIssues(err)
	s.Require().Len(issues, 1)
	s.Assert().Equal("duplicate ids across slots: a1", issues[0].Message)

	set, err := normalize.MountDocument(catalog.MountTypeSpears, "spears.json", []byte(doc),
		normalize.MountOptions{AllowCrossSlotDuplicates: true})
	s.Require().NoError(err)
	s.Assert().Equal("a1", set.Slot2[0].ID)
}

func (s *MountDocumentTestSuite) TestEveryIssueIsCollected() {
	doc := `{
		"mount_type": "archers",
		"slot1": [
			{"id": "a1", "name": "", "type": "Active", "description": "Kick", "image": "spears/X.PNG"},
			{"id": "a1", "name": "Again", "type": 3, "description": "Kick", "image": "spears/y.png"},
			"junk"
		]
	}`

	_, err := normalize.MountDocument(catalog.MountTypeSpears, "spears.json", []byte(doc), normalize.MountOptions{})
	s.Require().Error(err)
	s.Assert().True(errors.IsSchemaViolation(err))

	var lines []string
	for _, issue := range errors.GetIssues(err) {
		lines = append(lines, issue.Path+" -> "+issue.Message)
	}
	s.Assert().Equal([]string{
		"mount_type -> expected 'spears', got 'archers'",
		"slot1[0].name -> must not be empty",
		`slot1[0].image -> "spears/X.PNG" does not match ^(spears|infantry|archers)/[a-z0-9_.\-]+\.(png|jpg|jpeg)$`,
		"slot1[1].type -> must be a string",
		"slot1[1].id -> duplicate skill id in slot: a1",
		"slot1[2] -> must be an object",
		"slot2 -> field required",
	}, lines)
}

func (s *MountDocumentTestSuite) TestNotAnObject() {
	_, err := normalize.MountDocument(catalog.MountTypeArchers, "archers.json", []byte(`[]`), normalize.MountOptions{})
	s.Require().Error(err)
	s.Assert().True(errors.IsSchemaViolation(err))

	_, err = normalize.MountDocument(catalog.MountTypeArchers, "archers.json", []byte(`{`), normalize.MountOptions{})
	s.Assert().True(errors.IsParseFailure(err))
}
