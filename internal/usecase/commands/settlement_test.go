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
	commandsmock "travel-deals/tests/mock/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

var (
	testPayload   = []byte(`{"id":"evt_1"}`)
	testSignature = "t=1,v1=sig"
)

type SettlementCommandsTestSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	store     *memStore
	processor *commandsmock.MockPaymentProcessor
	ledger    *commandsmock.MockProcessedEventLedger
	cmds      commands.SettlementCommands
	pending   *order.Order
}

func (s *SettlementCommandsTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.store = newMemStore()
	s.processor = commandsmock.NewMockPaymentProcessor(s.ctrl)
	s.ledger = commandsmock.NewMockProcessedEventLedger(s.ctrl)
	s.cmds = commands.NewSettlementCommands(s.store, s.processor, s.ledger, clock.NewMockClock(testNow))

	s.pending = builder.NewOrderBuilder().WithSession("cs_test_1").BuildDomain()
	s.store.addOrder(s.pending)
}

func (s *SettlementCommandsTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestSettlementCommandsSuite(t *testing.T) {
	suite.Run(t, new(SettlementCommandsTestSuite))
}

func (s *SettlementCommandsTestSuite) completed(eventID, orderID string, total, subtotal int64) *commands.PaymentEvent {
	return &commands.PaymentEvent{
		ID:             eventID,
		Type:           commands.PaymentEventCheckoutCompleted,
		OrderID:        orderID,
		AmountTotal:    total,
		AmountSubtotal: subtotal,
	}
}

func (s *SettlementCommandsTestSuite) expectEvent(ev *commands.PaymentEvent) {
	s.processor.EXPECT().VerifyAndParseEvent(testPayload, testSignature).Return(ev, nil)
}

func (s *SettlementCommandsTestSuite) TestInvalidSignature() {
	s.processor.EXPECT().VerifyAndParseEvent(testPayload, testSignature).Return(nil, errors.New("no valid signature"))

	result, err := s.cmds.HandlePaymentEvent(context.Background(), testPayload, testSignature)
	s.Nil(result)
	s.True(errs.Is(err, commands.ErrInvalidSignature))
	s.Equal(0, s.store.withinCalls)
}

func (s *SettlementCommandsTestSuite) TestOtherEventTypesAreIgnored() {
	s.expectEvent(&commands.PaymentEvent{ID: "evt_2", Type: "payment_intent.created"})

	result, err := s.cmds.HandlePaymentEvent(context.Background(), testPayload, testSignature)
	s.Require().NoError(err)
	s.Equal(commands.SettlementIgnored, result.Outcome)
	s.Equal(order.StatusCreated, s.store.orders[s.pending.ID()].Status())
}

func (s *SettlementCommandsTestSuite) TestApplied() {
	s.expectEvent(s.completed("evt_1", s.pending.ID().String(), 8500, 9000))
	s.ledger.EXPECT().Seen(gomock.Any(), "evt_1").Return(false, nil)
	s.ledger.EXPECT().Remember(gomock.Any(), "evt_1").Return(nil)

	result, err := s.cmds.HandlePaymentEvent(context.Background(), testPayload, testSignature)
	s.Require().NoError(err)
	s.Equal(commands.SettlementApplied, result.Outcome)
	s.Equal(s.pending.ID(), result.OrderID)

	stored := s.store.orders[s.pending.ID()]
	s.Equal(order.StatusPaid, stored.Status())
	s.Equal(int64(8500), stored.Total().Cents())
	s.Equal(int64(9000), stored.Subtotal().Cents())
	s.Require().NotNil(stored.PaidAt())
	s.Equal(testNow, *stored.PaidAt())
	s.Len(s.store.eventsOfKind(shared.EventOrderPaid), 1)
}

func (s *SettlementCommandsTestSuite) TestMissingSubtotalFallsBackToTotal() {
	s.expectEvent(s.completed("evt_1", s.pending.ID().String(), 9000, 0))
	s.ledger.EXPECT().Seen(gomock.Any(), "evt_1").Return(false, nil)
	s.ledger.EXPECT().Remember(gomock.Any(), "evt_1").Return(nil)

	_, err := s.cmds.HandlePaymentEvent(context.Background(), testPayload, testSignature)
	s.Require().NoError(err)
	s.Equal(int64(9000), s.store.orders[s.pending.ID()].Subtotal().Cents())
}

func (s *SettlementCommandsTestSuite) TestExpiredOrderIsStillSettled() {
	expired := builder.NewOrderBuilder().WithStatus(order.StatusExpired).BuildDomain()
	s.store.addOrder(expired)

	s.expectEvent(s.completed("evt_late", expired.ID().String(), 9000, 9000))
	s.ledger.EXPECT().Seen(gomock.Any(), "evt_late").Return(false, nil)
	s.ledger.EXPECT().Remember(gomock.Any(), "evt_late").Return(nil)

	result, err := s.cmds.HandlePaymentEvent(context.Background(), testPayload, testSignature)
	s.Require().NoError(err)
	s.Equal(commands.SettlementApplied, result.Outcome)
	s.Equal(order.StatusPaid, s.store.orders[expired.ID()].Status())
}

func (s *SettlementCommandsTestSuite) TestAlreadyPaidIsNoop() {
	paidAt := testNow.Add(-time.Hour)
	paid := builder.NewOrderBuilder().AsPaid(9000, paidAt).BuildDomain()
	s.store.addOrder(paid)

	s.expectEvent(s.completed("evt_other", paid.ID().String(), 1, 1))
	s.ledger.EXPECT().Seen(gomock.Any(), "evt_other").Return(false, nil)
	s.ledger.EXPECT().Remember(gomock.Any(), "evt_other").Return(nil)

	result, err := s.cmds.HandlePaymentEvent(context.Background(), testPayload, testSignature)
	s.Require().NoError(err)
	s.Equal(commands.SettlementNoop, result.Outcome)

	stored := s.store.orders[paid.ID()]
	s.Equal(int64(9000), stored.Total().Cents())
	s.Equal(paidAt, *stored.PaidAt())
	s.Empty(s.store.eventsOfKind(shared.EventOrderPaid))
}

func (s *SettlementCommandsTestSuite) TestRedeliveryIsNoop() {
	s.expectEvent(s.completed("evt_1", s.pending.ID().String(), 9000, 9000))
	s.ledger.EXPECT().Seen(gomock.Any(), "evt_1").Return(true, nil)

	result, err := s.cmds.HandlePaymentEvent(context.Background(), testPayload, testSignature)
	s.Require().NoError(err)
	s.Equal(commands.SettlementNoop, result.Outcome)
	s.Equal(0, s.store.withinCalls)
	s.Equal(order.StatusCreated, s.store.orders[s.pending.ID()].Status())
}

func (s *SettlementCommandsTestSuite) TestLedgerOutageFallsBackToGuardedUpdate() {
	s.expectEvent(s.completed("evt_1", s.pending.ID().String(), 9000, 9000))
	s.ledger.EXPECT().Seen(gomock.Any(), "evt_1").Return(false, errors.New("redis down"))
	s.ledger.EXPECT().Remember(gomock.Any(), "evt_1").Return(errors.New("redis down"))

	result, err := s.cmds.HandlePaymentEvent(context.Background(), testPayload, testSignature)
	s.Require().NoError(err)
	s.Equal(commands.SettlementApplied, result.Outcome)
}

func (s *SettlementCommandsTestSuite) TestUnsettleableEventsAreAcknowledged() {
	testCases := []struct {
		name  string
		event *commands.PaymentEvent
	}{
		{name: "order id missing", event: s.completed("evt_a", "", 9000, 9000)},
		{name: "order id not a uuid", event: s.completed("evt_b", "ord_123", 9000, 9000)},
		{name: "negative amount", event: s.completed("evt_c", s.pending.ID().String(), -1, 0)},
		{name: "unknown order", event: s.completed("evt_d", uuid.NewString(), 9000, 9000)},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.expectEvent(tc.event)
			s.ledger.EXPECT().Seen(gomock.Any(), tc.event.ID).Return(false, nil)
			s.ledger.EXPECT().Remember(gomock.Any(), tc.event.ID).Return(nil)

			result, err := s.cmds.HandlePaymentEvent(context.Background(), testPayload, testSignature)
			s.Require().NoError(err)
			s.Equal(commands.SettlementIgnored, result.Outcome)
			s.Equal(order.StatusCreated, s.store.orders[s.pending.ID()].Status())
		})
	}
}

func (s *SettlementCommandsTestSuite) TestStoreFailureIsReturnedForRetry() {
	s.store.fail["Orders.MarkPaid"] = errors.New("connection reset")
	s.expectEvent(s.completed("evt_1", s.pending.ID().String(), 9000, 9000))
	s.ledger.EXPECT().Seen(gomock.Any(), "evt_1").Return(false, nil)

	result, err := s.cmds.HandlePaymentEvent(context.Background(), testPayload, testSignature)
	s.Nil(result)
	s.True(errs.Is(err, commands.ErrDatabaseOperationFailed))
	s.Equal(order.StatusCreated, s.store.orders[s.pending.ID()].Status())
	s.Empty(s.store.eventsOfKind(shared.EventOrderPaid))
}
