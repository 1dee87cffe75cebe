package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

type PlayerSuite struct {
	suite.Suite
}

func TestPlayerSuite(t *testing.T) {
	suite.Run(t, new(PlayerSuite))
}

func result(number, score int) Result {
	sc, err := NumericScore(score)
	if err != nil {
		panic(err)
	}
	return Result{
		PuzzleNumber: number,
		Score:        sc,
		Timestamp:    time.Date(2024, 7, 1, 12, 0, 0, 0, time.UTC),
	}
}

func failedResult(number int) Result {
	return Result{
		PuzzleNumber: number,
		Score:        FailedScore(),
		Timestamp:    time.Date(2024, 7, 1, 12, 0, 0, 0, time.UTC),
	}
}

func (s *PlayerSuite) TestInsertKeepsTimelineSorted() {
	p := NewPlayer("1", "Alice")
	p.Insert(result(10, 3))
	p.Insert(result(8, 4))
	p.Insert(result(9, 2))

	numbers := make([]int, 0, len(p.Timeline))
	for _, r := range p.Timeline {
		numbers = append(numbers, r.PuzzleNumber)
	}
	s.Equal([]int{8, 9, 10}, numbers)
	s.Equal(3, p.TotalGames)
	s.Equal(10, p.LastPlayed)
	s.True(p.HasPlayed)
}

func (s *PlayerSuite) TestInsertOutOfOrderKeepsLastPlayed() {
	p := NewPlayer("1", "Alice")
	p.Insert(result(10, 3))
	p.Insert(result(5, 4))

	s.Equal(10, p.LastPlayed)
}

func (s *PlayerSuite) TestHasNumber() {
	p := NewPlayer("1", "Alice")
	p.Insert(result(5, 3))
	p.Insert(result(7, 4))

	s.True(p.HasNumber(5))
	s.True(p.HasNumber(7))
	s.False(p.HasNumber(6))
	s.False(p.HasNumber(8))
}

func (s *PlayerSuite) TestLastResult() {
	p := NewPlayer("1", "Alice")

	_, ok := p.LastResult()
	s.False(ok)

	p.Insert(result(5, 3))
	p.Insert(result(7, 4))

	last, ok := p.LastResult()
	s.True(ok)
	s.Equal(7, last.PuzzleNumber)
}

func (s *PlayerSuite) TestCloneIsDeep() {
	p := NewPlayer("1", "Alice")
	r := result(5, 3)
	r.Meta = map[string]any{"total": 6}
	p.Insert(r)

	cp := p.Clone()
	cp.Insert(result(6, 2))
	cp.Timeline[0].Meta["total"] = 7
	cp.DisplayName = "Mallory"

	s.Equal("Alice", p.DisplayName)
	s.Equal(1, p.TotalGames)
	s.Len(p.Timeline, 1)
	s.Equal(6, p.Timeline[0].Meta["total"])
}

func (s *PlayerSuite) TestScoresByNumber() {
	p := NewPlayer("1", "Alice")
	p.Insert(result(5, 3))
	p.Insert(failedResult(6))

	scores := p.ScoresByNumber()
	s.Len(scores, 2)
	s.Equal("3", scores[5].Token())
	s.True(scores[6].IsFailure())
}
