//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"travel-deals/internal/pkg/clock"
	"travel-deals/internal/usecase/commands"
	"travel-deals/internal/usecase/shared"
	"travel-deals/tests/common/builder"
	commandsmock "travel-deals/tests/mock/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type OutboxRelayCommandsTestSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	store     *memStore
	publisher *commandsmock.MockEventPublisher
	cmds      commands.OutboxRelayCommands
}

func (s *OutboxRelayCommandsTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.store = newMemStore()
	s.publisher = commandsmock.NewMockEventPublisher(s.ctrl)
	s.cmds = commands.NewOutboxRelayCommands(s.store, s.publisher, clock.NewMockClock(testNow), commands.RelaySettings{
		BatchSize:   10,
		MaxAttempts: 3,
	})
}

func (s *OutboxRelayCommandsTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestOutboxRelayCommandsSuite(t *testing.T) {
	suite.Run(t, new(OutboxRelayCommandsTestSuite))
}

func (s *OutboxRelayCommandsTestSuite) enqueue(attempts int32, runAt time.Time) shared.OutboxEvent {
	ev, err := shared.NewOrderEvent(shared.EventOrderPaid, builder.NewOrderBuilder().BuildDomain(), runAt)
	s.Require().NoError(err)
	ev.Attempts = attempts
	s.store.addEvent(ev)
	return ev
}

func (s *OutboxRelayCommandsTestSuite) TestRelayPending_Sent() {
	first := s.enqueue(0, testNow.Add(-time.Minute))
	second := s.enqueue(1, testNow)

	s.publisher.EXPECT().Publish(gomock.Any(), first).Return(nil)
	s.publisher.EXPECT().Publish(gomock.Any(), second).Return(nil)

	stats, err := s.cmds.RelayPending(context.Background())
	s.Require().NoError(err)
	s.Equal(commands.RelayStats{Sent: 2}, stats)
	s.Equal(eventSent, s.store.eventState(first.ID).state)
	s.Equal(eventSent, s.store.eventState(second.ID).state)
}

func (s *OutboxRelayCommandsTestSuite) TestRelayPending_SkipsEventsNotYetDue() {
	later := s.enqueue(1, testNow.Add(time.Minute))

	stats, err := s.cmds.RelayPending(context.Background())
	s.Require().NoError(err)
	s.Equal(commands.RelayStats{}, stats)
	s.Equal(eventQueued, s.store.eventState(later.ID).state)
}

func (s *OutboxRelayCommandsTestSuite) TestRelayPending_RetryWithBackoff() {
	ev := s.enqueue(1, testNow)
	s.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(errors.New("broker unavailable"))

	stats, err := s.cmds.RelayPending(context.Background())
	s.Require().NoError(err)
	s.Equal(commands.RelayStats{Retried: 1}, stats)

	row := s.store.eventState(ev.ID)
	s.Equal(eventQueued, row.state)
	s.Equal(int32(2), row.ev.Attempts)
	s.Equal(testNow.Add(4*time.Second), row.ev.RunAt)
	s.Equal("broker unavailable", row.lastError)
}

func (s *OutboxRelayCommandsTestSuite) TestRelayPending_FailsAtMaxAttempts() {
	ev := s.enqueue(2, testNow)
	s.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(errors.New("broker unavailable"))

	stats, err := s.cmds.RelayPending(context.Background())
	s.Require().NoError(err)
	s.Equal(commands.RelayStats{Failed: 1}, stats)

	row := s.store.eventState(ev.ID)
	s.Equal(eventFailed, row.state)
	s.Equal(int32(3), row.ev.Attempts)
}

func (s *OutboxRelayCommandsTestSuite) TestRelayPending_MixedBatch() {
	ok := s.enqueue(0, testNow)
	bad := s.enqueue(0, testNow)

	s.publisher.EXPECT().Publish(gomock.Any(), ok).Return(nil)
	s.publisher.EXPECT().Publish(gomock.Any(), bad).Return(errors.New("timeout"))

	stats, err := s.cmds.RelayPending(context.Background())
	s.Require().NoError(err)
	s.Equal(commands.RelayStats{Sent: 1, Retried: 1}, stats)
	s.Equal(testNow.Add(2*time.Second), s.store.eventState(bad.ID).ev.RunAt)
}

func TestRelayBackoff(t *testing.T) {
	testCases := []struct {
		attempts int32
		want     time.Duration
	}{
		{attempts: 0, want: 2 * time.Second},
		{attempts: 1, want: 2 * time.Second},
		{attempts: 2, want: 4 * time.Second},
		{attempts: 3, want: 8 * time.Second},
		{attempts: 9, want: 512 * time.Second},
		{attempts: 10, want: 10 * time.Minute},
		{attempts: 50, want: 10 * time.Minute},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.want, commands.RelayBackoff(tc.attempts), "attempts=%d", tc.attempts)
	}
}
