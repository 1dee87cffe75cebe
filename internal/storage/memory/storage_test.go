package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/dailygrid/dailygrid/internal/model"
)

func mustScore(t *testing.T, token string) model.Score {
	t.Helper()
	score, err := model.ParseScore(token)
	require.NoError(t, err)
	return score
}

type StorageSuite struct {
	suite.Suite
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.storage = New()
	s.ctx = context.Background()
}

func (s *StorageSuite) TestSaveAndGetPlayer() {
	player := model.NewPlayer("42", "Alice")

	err := s.storage.SavePlayer(s.ctx, player)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetPlayer(s.ctx, "42")
	s.Require().NoError(err)
	s.Equal(player.ID, retrieved.ID)
	s.Equal(player.DisplayName, retrieved.DisplayName)
}

func (s *StorageSuite) TestGetPlayerNotFound() {
	_, err := s.storage.GetPlayer(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrPlayerNotFound)
}

func (s *StorageSuite) TestListPlayersStableOrder() {
	for _, id := range []model.PlayerID{"30", "10", "20"} {
		err := s.storage.SavePlayer(s.ctx, model.NewPlayer(id, string(id)))
		s.Require().NoError(err)
	}

	players, err := s.storage.ListPlayers(s.ctx)
	s.Require().NoError(err)
	s.Len(players, 3)
	s.Equal(model.PlayerID("10"), players[0].ID)
	s.Equal(model.PlayerID("20"), players[1].ID)
	s.Equal(model.PlayerID("30"), players[2].ID)
}

func (s *StorageSuite) TestGetPlayerReturnsIsolatedCopy() {
	player := model.NewPlayer("42", "Alice")
	player.Insert(model.Result{PuzzleNumber: 10, Score: mustScore(s.T(), "3")})
	s.Require().NoError(s.storage.SavePlayer(s.ctx, player))

	first, err := s.storage.GetPlayer(s.ctx, "42")
	s.Require().NoError(err)
	first.Insert(model.Result{PuzzleNumber: 11, Score: mustScore(s.T(), "4")})
	first.DisplayName = "Mallory"

	second, err := s.storage.GetPlayer(s.ctx, "42")
	s.Require().NoError(err)
	s.Equal(1, second.TotalGames)
	s.Equal("Alice", second.DisplayName)
}

func (s *StorageSuite) TestSavePlayerDetachesFromCaller() {
	player := model.NewPlayer("42", "Alice")
	s.Require().NoError(s.storage.SavePlayer(s.ctx, player))

	// Mutating the caller's record after saving must not reach the store.
	player.Insert(model.Result{PuzzleNumber: 10, Score: mustScore(s.T(), "3")})

	stored, err := s.storage.GetPlayer(s.ctx, "42")
	s.Require().NoError(err)
	s.Equal(0, stored.TotalGames)
	s.Empty(stored.Timeline)
}

func (s *StorageSuite) TestListPlayersReturnsIsolatedCopies() {
	player := model.NewPlayer("42", "Alice")
	player.Insert(model.Result{PuzzleNumber: 10, Score: mustScore(s.T(), "3")})
	s.Require().NoError(s.storage.SavePlayer(s.ctx, player))

	listed, err := s.storage.ListPlayers(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(listed, 1)
	listed[0].Timeline[0].PuzzleNumber = 99

	stored, err := s.storage.GetPlayer(s.ctx, "42")
	s.Require().NoError(err)
	s.Equal(10, stored.Timeline[0].PuzzleNumber)
}

func (s *StorageSuite) TestPlayerCount() {
	count, err := s.storage.PlayerCount(s.ctx)
	s.Require().NoError(err)
	s.Equal(0, count)

	_ = s.storage.SavePlayer(s.ctx, model.NewPlayer("1", "a"))
	_ = s.storage.SavePlayer(s.ctx, model.NewPlayer("2", "b"))

	count, err = s.storage.PlayerCount(s.ctx)
	s.Require().NoError(err)
	s.Equal(2, count)
}
