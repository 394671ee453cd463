//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"travel-deals/internal/domain/order"
	"travel-deals/internal/pkg/clock"
	"travel-deals/internal/pkg/errs"
	"travel-deals/internal/usecase/commands"
	"travel-deals/internal/usecase/shared"
	"travel-deals/tests/common/builder"

	"github.com/stretchr/testify/suite"
)

const testOrderTTL = 30 * time.Minute

type OrderExpiryCommandsTestSuite struct {
	suite.Suite
	store *memStore
	cmds  commands.OrderExpiryCommands
}

func (s *OrderExpiryCommandsTestSuite) SetupTest() {
	s.store = newMemStore()
	s.cmds = commands.NewOrderExpiryCommands(s.store, clock.NewMockClock(testNow), testOrderTTL)
}

func TestOrderExpiryCommandsSuite(t *testing.T) {
	suite.Run(t, new(OrderExpiryCommandsTestSuite))
}

func (s *OrderExpiryCommandsTestSuite) seed(status order.Status, age time.Duration) *order.Order {
	b := builder.NewOrderBuilder().WithCreatedAt(testNow.Add(-age))
	if status == order.StatusPaid {
		b = b.AsPaid(9000, testNow.Add(-age/2))
	} else {
		b = b.WithStatus(status)
	}
	o := b.BuildDomain()
	s.store.addOrder(o)
	return o
}

func (s *OrderExpiryCommandsTestSuite) TestExpireStale() {
	stale := s.seed(order.StatusCreated, time.Hour)
	fresh := s.seed(order.StatusCreated, 10*time.Minute)
	paid := s.seed(order.StatusPaid, 2*time.Hour)
	already := s.seed(order.StatusExpired, 3*time.Hour)

	n, err := s.cmds.ExpireStale(context.Background())
	s.Require().NoError(err)
	s.Equal(1, n)

	s.Equal(order.StatusExpired, s.store.orders[stale.ID()].Status())
	s.Equal(testNow, s.store.orders[stale.ID()].UpdatedAt())
	s.Equal(order.StatusCreated, s.store.orders[fresh.ID()].Status())
	s.Equal(order.StatusPaid, s.store.orders[paid.ID()].Status())
	s.Equal(order.StatusExpired, s.store.orders[already.ID()].Status())

	expired := s.store.eventsOfKind(shared.EventOrderExpired)
	s.Require().Len(expired, 1)
	s.Equal(stale.ID(), expired[0].AggregateID)
}

func (s *OrderExpiryCommandsTestSuite) TestExpireStale_NothingToDo() {
	s.seed(order.StatusCreated, time.Minute)

	n, err := s.cmds.ExpireStale(context.Background())
	s.Require().NoError(err)
	s.Zero(n)
	s.Empty(s.store.events)
}

func (s *OrderExpiryCommandsTestSuite) TestExpireStale_DrainsInBatches() {
	for i := 0; i < 250; i++ {
		s.seed(order.StatusCreated, time.Hour+time.Duration(i)*time.Second)
	}

	n, err := s.cmds.ExpireStale(context.Background())
	s.Require().NoError(err)
	s.Equal(250, n)
	s.Equal(2, s.store.withinCalls)
	s.Len(s.store.eventsOfKind(shared.EventOrderExpired), 250)
	for _, o := range s.store.orders {
		s.Equal(order.StatusExpired, o.Status())
	}
}

func (s *OrderExpiryCommandsTestSuite) TestExpireStale_StoreFailure() {
	stale := s.seed(order.StatusCreated, time.Hour)
	s.store.fail["OrderEvents.Enqueue"] = errors.New("connection reset")

	n, err := s.cmds.ExpireStale(context.Background())
	s.True(errs.Is(err, commands.ErrDatabaseOperationFailed))
	s.Zero(n)
	s.Equal(order.StatusCreated, s.store.orders[stale.ID()].Status())
}
