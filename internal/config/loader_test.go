package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"
)

type LoaderSuite struct {
	suite.Suite
}

func TestLoaderSuite(t *testing.T) {
	suite.Run(t, new(LoaderSuite))
}

func (s *LoaderSuite) TestDefaults() {
	cfg, err := Load()
	s.Require().NoError(err)

	s.Equal(":8080", cfg.Addr)
	s.Equal("info", cfg.LogLevel)
	s.Equal(1900, cfg.TransportLimit)
	s.Equal(10, cfg.MaxLeaderboard)
	s.Equal("2021-06-19", cfg.Numbering.EpochDate)
	s.Equal(0, cfg.Numbering.BaseNumber)
	s.False(cfg.RecomputeDaily)
}

func (s *LoaderSuite) TestEnvOverride() {
	s.T().Setenv("DAILYGRID_ADDR", ":9090")
	s.T().Setenv("DAILYGRID_LOG_LEVEL", "debug")

	cfg, err := Load()
	s.Require().NoError(err)

	s.Equal(":9090", cfg.Addr)
	s.Equal("debug", cfg.LogLevel)
	// Untouched keys keep their defaults.
	s.Equal(1900, cfg.TransportLimit)
}

func (s *LoaderSuite) TestFileLayer() {
	path := filepath.Join(s.T().TempDir(), "config.yaml")
	content := `
addr: ":7070"
max_leaderboard: 5
roster:
  - id: "100"
    username: alice
    display_name: Alice
`
	s.Require().NoError(os.WriteFile(path, []byte(content), 0o600))
	s.T().Setenv("DAILYGRID_CONFIG", path)

	cfg, err := Load()
	s.Require().NoError(err)

	s.Equal(":7070", cfg.Addr)
	s.Equal(5, cfg.MaxLeaderboard)
	s.Require().Len(cfg.Roster, 1)
	s.Equal("alice", cfg.Roster[0].Username)
}

func (s *LoaderSuite) TestEnvBeatsFile() {
	path := filepath.Join(s.T().TempDir(), "config.yaml")
	s.Require().NoError(os.WriteFile(path, []byte("addr: \":7070\"\n"), 0o600))
	s.T().Setenv("DAILYGRID_CONFIG", path)
	s.T().Setenv("DAILYGRID_ADDR", ":9090")

	cfg, err := Load()
	s.Require().NoError(err)
	s.Equal(":9090", cfg.Addr)
}

func (s *LoaderSuite) TestValidateRejectsBadEpoch() {
	s.T().Setenv("DAILYGRID_CONFIG", "")
	path := filepath.Join(s.T().TempDir(), "config.yaml")
	s.Require().NoError(os.WriteFile(path, []byte("numbering:\n  epoch_date: \"not-a-date\"\n"), 0o600))
	s.T().Setenv("DAILYGRID_CONFIG", path)

	_, err := Load()
	s.Error(err)
}

func (s *LoaderSuite) TestValidateRejectsEmptyAddr() {
	s.T().Setenv("DAILYGRID_ADDR", "")

	_, err := Load()
	s.Error(err)
}
