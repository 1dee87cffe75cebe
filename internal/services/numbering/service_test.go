package numbering

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/dailygrid/dailygrid/internal/dependencies/mocks"
)

type ServiceSuite struct {
	suite.Suite
	clock   *mocks.MockClock
	service *Service
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.clock = mocks.NewMockClock(time.Date(2024, 7, 1, 9, 0, 0, 0, time.UTC))
	s.service = New(Config{
		EpochDate:  time.Date(2021, 6, 19, 0, 0, 0, 0, time.UTC),
		BaseNumber: 0,
		MinDate:    time.Date(2024, 6, 19, 0, 0, 0, 0, time.UTC),
		DateFormat: "2006-01-02",
	}, s.clock)
}

func (s *ServiceSuite) TestEpochDateMapsToBaseNumber() {
	n := s.service.ForTime(time.Date(2021, 6, 19, 15, 30, 0, 0, time.UTC), time.UTC)
	s.Equal(0, n)
}

func (s *ServiceSuite) TestDayAfterEpoch() {
	n := s.service.ForTime(time.Date(2021, 6, 20, 0, 0, 1, 0, time.UTC), time.UTC)
	s.Equal(1, n)
}

func (s *ServiceSuite) TestClampsBeforeEpoch() {
	n := s.service.ForTime(time.Date(2019, 1, 1, 0, 0, 0, 0, time.UTC), time.UTC)
	s.Equal(0, n)
}

func (s *ServiceSuite) TestNonZeroBaseNumber() {
	svc := New(Config{
		EpochDate:  time.Date(2021, 6, 19, 0, 0, 0, 0, time.UTC),
		BaseNumber: 100,
	}, s.clock)
	s.Equal(101, svc.ForTime(time.Date(2021, 6, 20, 8, 0, 0, 0, time.UTC), time.UTC))
	s.Equal(100, svc.ForTime(time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC), time.UTC))
}

func (s *ServiceSuite) TestMonotonicNonDecreasing() {
	start := time.Date(2021, 6, 1, 0, 0, 0, 0, time.UTC)
	prev := s.service.ForTime(start, time.UTC)
	for i := 1; i < 24*90; i++ {
		n := s.service.ForTime(start.Add(time.Duration(i)*time.Hour), time.UTC)
		s.GreaterOrEqual(n, prev)
		prev = n
	}
}

func (s *ServiceSuite) TestTimezoneConversion() {
	// 2021-06-20 01:00 UTC is still 2021-06-19 in UTC-5.
	instant := time.Date(2021, 6, 20, 1, 0, 0, 0, time.UTC)
	west := time.FixedZone("UTC-5", -5*3600)

	s.Equal(1, s.service.ForTime(instant, time.UTC))
	s.Equal(0, s.service.ForTime(instant, west))
}

func (s *ServiceSuite) TestNilLocationUsesInstantLocation() {
	west := time.FixedZone("UTC-5", -5*3600)
	instant := time.Date(2021, 6, 19, 23, 0, 0, 0, west)
	s.Equal(0, s.service.ForTime(instant, nil))
}

func (s *ServiceSuite) TestToday() {
	s.clock.Set(time.Date(2021, 6, 29, 18, 0, 0, 0, time.UTC))
	s.Equal(10, s.service.Today(time.UTC))
}

func (s *ServiceSuite) TestForDateNoonAnchor() {
	// A zone with a large offset must not shift the date when it is
	// anchored at noon.
	east := time.FixedZone("UTC+13", 13*3600)
	s.Equal(1, s.service.ForDate(2021, 6, 20, east))
	s.Equal(1, s.service.ForDate(2021, 6, 20, time.UTC))
}

func (s *ServiceSuite) TestAcrossDSTBoundary() {
	loc, err := time.LoadLocation("Europe/Berlin")
	s.Require().NoError(err)

	// Numbers stay consecutive across the spring-forward day.
	before := s.service.ForDate(2024, 3, 30, loc)
	after := s.service.ForDate(2024, 3, 31, loc)
	s.Equal(before+1, after)
}
