package resolver

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/dailygrid/dailygrid/internal/config"
	"github.com/dailygrid/dailygrid/internal/directory"
	"github.com/dailygrid/dailygrid/internal/model"
	"github.com/dailygrid/dailygrid/internal/testutil"
)

type ResolverSuite struct {
	suite.Suite
	service *Service
	dir     model.MemberDirectory
	ctx     context.Context
}

func TestResolverSuite(t *testing.T) {
	suite.Run(t, new(ResolverSuite))
}

func (s *ResolverSuite) SetupTest() {
	s.service = New(testutil.NopLogger())
	s.dir = directory.NewStatic([]config.RosterEntry{
		{ID: "100", Username: "alice", DisplayName: "Alice W."},
		{ID: "200", Username: "bob", DisplayName: "Bob"},
		{ID: "300", Username: "bonnie", DisplayName: "Bonnie 🎉"},
	})
	s.ctx = context.Background()
}

func (s *ResolverSuite) TestDirectMention() {
	id, err := s.service.Resolve(s.ctx, "<@42>", s.dir)
	s.Require().NoError(err)
	s.Equal(model.PlayerID("42"), id)
}

func (s *ResolverSuite) TestNicknameMention() {
	id, err := s.service.Resolve(s.ctx, "<@!42>", s.dir)
	s.Require().NoError(err)
	s.Equal(model.PlayerID("42"), id)
}

func (s *ResolverSuite) TestMalformedMention() {
	_, err := s.service.Resolve(s.ctx, "<@notdigits>", s.dir)
	s.ErrorIs(err, model.ErrUnknownHandle)
}

func (s *ResolverSuite) TestExactUsernameMatch() {
	id, err := s.service.Resolve(s.ctx, "@alice", s.dir)
	s.Require().NoError(err)
	s.Equal(model.PlayerID("100"), id)
}

func (s *ResolverSuite) TestExactMatchIsCaseInsensitive() {
	id, err := s.service.Resolve(s.ctx, "@ALICE", s.dir)
	s.Require().NoError(err)
	s.Equal(model.PlayerID("100"), id)
}

func (s *ResolverSuite) TestNormalizedMatchIgnoresNoise() {
	// "Bonnie 🎉" normalizes to "bonnie"; a plain handle still matches.
	id, err := s.service.Resolve(s.ctx, "@Bonnie🎉", s.dir)
	s.Require().NoError(err)
	s.Equal(model.PlayerID("300"), id)
}

func (s *ResolverSuite) TestUniquePrefixMatch() {
	id, err := s.service.Resolve(s.ctx, "@al", s.dir)
	s.Require().NoError(err)
	s.Equal(model.PlayerID("100"), id)
}

func (s *ResolverSuite) TestAmbiguousPrefixFails() {
	_, err := s.service.Resolve(s.ctx, "@bo", s.dir)
	s.ErrorIs(err, model.ErrAmbiguousHandle)
}

func (s *ResolverSuite) TestExactBeatsPrefix() {
	// "bob" matches bob exactly even though it also prefixes nothing else.
	id, err := s.service.Resolve(s.ctx, "@bob", s.dir)
	s.Require().NoError(err)
	s.Equal(model.PlayerID("200"), id)
}

func (s *ResolverSuite) TestUnknownHandle() {
	_, err := s.service.Resolve(s.ctx, "@charlie", s.dir)
	s.ErrorIs(err, model.ErrUnknownHandle)
}

func (s *ResolverSuite) TestTokenWithoutAtSign() {
	_, err := s.service.Resolve(s.ctx, "alice", s.dir)
	s.ErrorIs(err, model.ErrUnknownHandle)
}

type failingDirectory struct{}

func (failingDirectory) Members(ctx context.Context) ([]model.Member, error) {
	return nil, errors.New("listing failed")
}

func (failingDirectory) Member(ctx context.Context, id model.PlayerID) (model.Member, bool) {
	return model.Member{}, false
}

func (s *ResolverSuite) TestDirectoryFailure() {
	_, err := s.service.Resolve(s.ctx, "@alice", failingDirectory{})
	s.ErrorIs(err, model.ErrDirectoryUnavailable)
}

func (s *ResolverSuite) TestDirectMentionSkipsDirectory() {
	id, err := s.service.Resolve(s.ctx, "<@999>", failingDirectory{})
	s.Require().NoError(err)
	s.Equal(model.PlayerID("999"), id)
}
