package navigation_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-codex/internal/navigation"
)

type AdjacencyTestSuite struct {
	suite.Suite
	list []string
}

func TestAdjacencySuite(t *testing.T) {
	suite.Run(t, new(AdjacencyTestSuite))
}

func (s *AdjacencyTestSuite) SetupTest() {
	s.list = []string{"a1", "a2", "a3"}
}

func (s *AdjacencyTestSuite) TestAdjacent() {
	testCases := []struct {
		name     string
		list     []string
		index    int
		expected navigation.Neighbors
	}{
		{"empty list", nil, 0, navigation.Neighbors{}},
		{"first", s.list, 0, navigation.Neighbors{Next: 1, HasNext: true}},
		{"middle", s.list, 1, navigation.Neighbors{Prev: 0, HasPrev: true, Next: 2, HasNext: true}},
		{"last", s.list, 2, navigation.Neighbors{Prev: 1, HasPrev: true}},
		{"single", []string{"only"}, 0, navigation.Neighbors{}},
		{"out of range", s.list, 3, navigation.Neighbors{}},
		{"negative", s.list, -1, navigation.Neighbors{}},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.Assert().Equal(tc.expected, navigation.Adjacent(tc.list, tc.index))
		})
	}
}

func (s *AdjacencyTestSuite) TestStep() {
	next, ok := navigation.Step(s.list, 0, navigation.DirectionNext)
	s.Assert().True(ok)
	s.Assert().Equal(1, next)

	_, ok = navigation.Step(s.list, 0, navigation.DirectionPrev)
	s.Assert().False(ok)

	_, ok = navigation.Step(s.list, 2, navigation.DirectionNext)
	s.Assert().False(ok)

	_, ok = navigation.Step(s.list, 1, "sideways")
	s.Assert().False(ok)
}

func (s *AdjacencyTestSuite) TestAt() {
	v, ok := navigation.At(s.list, 1)
	s.Assert().True(ok)
	s.Assert().Equal("a2", v)

	_, ok = navigation.At(s.list, len(s.list))
	s.Assert().False(ok)

	_, ok = navigation.At(s.list, -1)
	s.Assert().False(ok)

	_, ok = navigation.At([]string(nil), 0)
	s.Assert().False(ok)
}
