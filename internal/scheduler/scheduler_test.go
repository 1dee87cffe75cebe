package scheduler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

type SchedulerSuite struct {
	suite.Suite
}

func TestSchedulerSuite(t *testing.T) {
	suite.Run(t, new(SchedulerSuite))
}

func (s *SchedulerSuite) TestNextRunLaterToday() {
	d := &Daily{Hour: 23, Minute: 30, Location: time.UTC}

	now := time.Date(2024, 7, 1, 12, 0, 0, 0, time.UTC)
	next := d.NextRun(now)

	s.Equal(time.Date(2024, 7, 1, 23, 30, 0, 0, time.UTC), next)
}

func (s *SchedulerSuite) TestNextRunRollsToTomorrow() {
	d := &Daily{Hour: 0, Minute: 5, Location: time.UTC}

	now := time.Date(2024, 7, 1, 12, 0, 0, 0, time.UTC)
	next := d.NextRun(now)

	s.Equal(time.Date(2024, 7, 2, 0, 5, 0, 0, time.UTC), next)
}

func (s *SchedulerSuite) TestNextRunAtExactTimeRolls() {
	d := &Daily{Hour: 12, Minute: 0, Location: time.UTC}

	now := time.Date(2024, 7, 1, 12, 0, 0, 0, time.UTC)
	next := d.NextRun(now)

	// Strictly after now, never the same instant.
	s.Equal(time.Date(2024, 7, 2, 12, 0, 0, 0, time.UTC), next)
}

func (s *SchedulerSuite) TestNextRunHonorsLocation() {
	loc, err := time.LoadLocation("Pacific/Auckland")
	s.Require().NoError(err)
	d := &Daily{Hour: 0, Minute: 5, Location: loc}

	// Noon UTC on 1 July is already midnight on 2 July in Auckland, so
	// the 00:05 slot there is still ahead.
	now := time.Date(2024, 7, 1, 12, 0, 0, 0, time.UTC)
	next := d.NextRun(now)

	s.Equal(time.Date(2024, 7, 2, 0, 5, 0, 0, loc).Unix(), next.Unix())
}
