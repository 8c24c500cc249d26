package services

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/zhou-jk/flashsale-api/internal/domain"
	"github.com/zhou-jk/flashsale-api/internal/domain/vo"
	servicemocks "github.com/zhou-jk/flashsale-api/internal/mock/services"
	hashmocks "github.com/zhou-jk/flashsale-api/internal/mock/shared/hash"
	jwtmocks "github.com/zhou-jk/flashsale-api/internal/mock/shared/jwt"
	lockmocks "github.com/zhou-jk/flashsale-api/internal/mock/shared/lock"
	streammocks "github.com/zhou-jk/flashsale-api/internal/mock/shared/stream"
	uidmocks "github.com/zhou-jk/flashsale-api/internal/mock/shared/uid"
	sharedcache "github.com/zhou-jk/flashsale-api/internal/shared/cache"
	sharedjwt "github.com/zhou-jk/flashsale-api/internal/shared/jwt"
	"github.com/zhou-jk/flashsale-api/internal/shared/stream"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type AuthLoginServiceSuite struct {
	suite.Suite

	repository   *servicemocks.AuthLoginRepository
	hasher       *hashmocks.Hasher
	tokenManager *jwtmocks.TokenManager
	service      *AuthLoginService
}

func (s *AuthLoginServiceSuite) SetupTest() {
	s.repository = servicemocks.NewAuthLoginRepository(s.T())
	s.hasher = hashmocks.NewHasher(s.T())
	s.tokenManager = jwtmocks.NewTokenManager(s.T())
	s.service = NewAuthLoginService(s.repository, s.hasher, s.tokenManager, time.Hour)
}

func (s *AuthLoginServiceSuite) TestLogin_TableDriven() {
	repoErr := errors.New("repository failure")
	signErr := errors.New("sign failed")

	tests := []struct {
		name      string
		email     string
		password  string
		setupMock func()
		assertion func(vo.AuthLogin, error)
	}{
		{
			name:     "invalid when email empty",
			email:    "   ",
			password: "secret",
			assertion: func(result vo.AuthLogin, err error) {
				require.Error(s.T(), err)
				assert.ErrorIs(s.T(), err, vo.ErrInvalidCredentials)
				assert.Equal(s.T(), vo.AuthLogin{}, result)
			},
		},
		{
			name:     "invalid when password empty",
			email:    "user@example.com",
			password: "   ",
			assertion: func(result vo.AuthLogin, err error) {
				require.Error(s.T(), err)
				assert.ErrorIs(s.T(), err, vo.ErrInvalidCredentials)
				assert.Equal(s.T(), vo.AuthLogin{}, result)
			},
		},
		{
			name:     "propagate repository error",
			email:    "USER@EXAMPLE.COM",
			password: "secret",
			setupMock: func() {
				s.repository.EXPECT().
					GetUserAuthByEmail(mock.Anything, "user@example.com").
					Return(domain.UserAuth{}, repoErr)
			},
			assertion: func(result vo.AuthLogin, err error) {
				require.Error(s.T(), err)
				assert.ErrorIs(s.T(), err, repoErr)
				assert.Equal(s.T(), vo.AuthLogin{}, result)
			},
		},
		{
			name:     "invalid when password mismatch",
			email:    "user@example.com",
			password: "wrong-password",
			setupMock: func() {
				user := domain.UserAuth{ID: "user-1", PasswordHash: "hashed"}
				s.repository.EXPECT().
					GetUserAuthByEmail(mock.Anything, "user@example.com").
					Return(user, nil)
				s.hasher.EXPECT().
					Compare(mock.Anything, "hashed", "wrong-password").
					Return(errors.New("mismatch"))
			},
			assertion: func(result vo.AuthLogin, err error) {
				require.Error(s.T(), err)
				assert.ErrorIs(s.T(), err, vo.ErrInvalidCredentials)
				assert.Equal(s.T(), vo.AuthLogin{}, result)
			},
		},
		{
			name:     "returns wrapped error when token signing fails",
			email:    "user@example.com",
			password: "secret",
			setupMock: func() {
				user := domain.UserAuth{ID: "user-1", PasswordHash: "hashed"}
				s.repository.EXPECT().
					GetUserAuthByEmail(mock.Anything, "user@example.com").
					Return(user, nil)
				s.hasher.EXPECT().
					Compare(mock.Anything, "hashed", "secret").
					Return(nil)
				s.tokenManager.EXPECT().
					Sign(mock.Anything, mock.MatchedBy(func(claims sharedjwt.Claims) bool {
						return claims.Subject == "user-1"
					})).
					Return("", signErr)
			},
			assertion: func(result vo.AuthLogin, err error) {
				require.Error(s.T(), err)
				assert.ErrorContains(s.T(), err, "failed to issue token")
				assert.ErrorIs(s.T(), err, signErr)
				assert.Equal(s.T(), vo.AuthLogin{}, result)
			},
		},
		{
			name:     "success",
			email:    " user@example.com ",
			password: "secret",
			setupMock: func() {
				user := domain.UserAuth{ID: "user-1", PasswordHash: "hashed"}
				s.repository.EXPECT().
					GetUserAuthByEmail(mock.Anything, "user@example.com").
					Return(user, nil)
				s.hasher.EXPECT().
					Compare(mock.Anything, "hashed", "secret").
					Return(nil)
				s.tokenManager.EXPECT().Sign(mock.Anything, mock.Anything).Return("signed-token", nil)
			},
			assertion: func(result vo.AuthLogin, err error) {
				require.NoError(s.T(), err)
				assert.Equal(s.T(), "signed-token", result.AccessToken)
				assert.Equal(s.T(), "Bearer", result.TokenType)
				assert.Equal(s.T(), int64(3600), result.ExpiresIn)
			},
		},
	}

	for _, tc := range tests {
		s.Run(tc.name, func() {
			s.SetupTest()
			if tc.setupMock != nil {
				tc.setupMock()
			}

			result, err := s.service.Login(context.Background(), tc.email, tc.password)
			tc.assertion(result, err)
		})
	}
}

func TestAuthLoginServiceSuite(t *testing.T) {
	suite.Run(t, new(AuthLoginServiceSuite))
}

type SeckillServiceSuite struct {
	suite.Suite

	vouchers *servicemocks.VoucherReader
	admitter *servicemocks.SeckillAdmitter
	orderIDs *uidmocks.SequenceGenerator
	service  *SeckillService
}

func (s *SeckillServiceSuite) SetupTest() {
	s.vouchers = servicemocks.NewVoucherReader(s.T())
	s.admitter = servicemocks.NewSeckillAdmitter(s.T())
	s.orderIDs = uidmocks.NewSequenceGenerator(s.T())
	s.service = NewSeckillService(s.vouchers, s.admitter, s.orderIDs)
}

func (s *SeckillServiceSuite) TestPlaceOrder_TableDriven() {
	uidErr := errors.New("sequence store down")
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	openVoucher := domain.Voucher{
		ID:      7,
		Title:   "100 off",
		Stock:   50,
		BeginAt: now.Add(-time.Hour),
		EndAt:   now.Add(time.Hour),
	}

	tests := []struct {
		name      string
		setupMock func()
		assertion func(vo.SeckillOrder, error)
	}{
		{
			name: "propagates voucher not found",
			setupMock: func() {
				s.vouchers.EXPECT().
					GetVoucherByID(mock.Anything, int64(7)).
					Return(domain.Voucher{}, vo.ErrVoucherNotFound)
			},
			assertion: func(result vo.SeckillOrder, err error) {
				require.Error(s.T(), err)
				assert.ErrorIs(s.T(), err, vo.ErrVoucherNotFound)
				assert.Equal(s.T(), vo.SeckillOrder{}, result)
			},
		},
		{
			name: "rejects before sale window opens",
			setupMock: func() {
				early := openVoucher
				early.BeginAt = now.Add(time.Minute)
				s.vouchers.EXPECT().
					GetVoucherByID(mock.Anything, int64(7)).
					Return(early, nil)
			},
			assertion: func(result vo.SeckillOrder, err error) {
				require.Error(s.T(), err)
				assert.ErrorIs(s.T(), err, vo.ErrSaleNotStarted)
			},
		},
		{
			name: "rejects after sale window closes",
			setupMock: func() {
				late := openVoucher
				late.EndAt = now.Add(-time.Minute)
				s.vouchers.EXPECT().
					GetVoucherByID(mock.Anything, int64(7)).
					Return(late, nil)
			},
			assertion: func(result vo.SeckillOrder, err error) {
				require.Error(s.T(), err)
				assert.ErrorIs(s.T(), err, vo.ErrSaleEnded)
			},
		},
		{
			name: "wraps order id failures",
			setupMock: func() {
				s.vouchers.EXPECT().
					GetVoucherByID(mock.Anything, int64(7)).
					Return(openVoucher, nil)
				s.orderIDs.EXPECT().
					NextID(mock.Anything, "order").
					Return(uint64(0), uidErr)
			},
			assertion: func(result vo.SeckillOrder, err error) {
				require.Error(s.T(), err)
				assert.ErrorContains(s.T(), err, "failed to assign order id")
				assert.ErrorIs(s.T(), err, uidErr)
			},
		},
		{
			name: "propagates out of stock",
			setupMock: func() {
				s.vouchers.EXPECT().
					GetVoucherByID(mock.Anything, int64(7)).
					Return(openVoucher, nil)
				s.orderIDs.EXPECT().
					NextID(mock.Anything, "order").
					Return(uint64(99001), nil)
				s.admitter.EXPECT().
					Admit(mock.Anything, int64(7), "user-1", uint64(99001)).
					Return(vo.ErrOutOfStock)
			},
			assertion: func(result vo.SeckillOrder, err error) {
				require.Error(s.T(), err)
				assert.ErrorIs(s.T(), err, vo.ErrOutOfStock)
			},
		},
		{
			name: "propagates duplicate order",
			setupMock: func() {
				s.vouchers.EXPECT().
					GetVoucherByID(mock.Anything, int64(7)).
					Return(openVoucher, nil)
				s.orderIDs.EXPECT().
					NextID(mock.Anything, "order").
					Return(uint64(99002), nil)
				s.admitter.EXPECT().
					Admit(mock.Anything, int64(7), "user-1", uint64(99002)).
					Return(vo.ErrAlreadyOrdered)
			},
			assertion: func(result vo.SeckillOrder, err error) {
				require.Error(s.T(), err)
				assert.ErrorIs(s.T(), err, vo.ErrAlreadyOrdered)
			},
		},
		{
			name: "success",
			setupMock: func() {
				s.vouchers.EXPECT().
					GetVoucherByID(mock.Anything, int64(7)).
					Return(openVoucher, nil)
				s.orderIDs.EXPECT().
					NextID(mock.Anything, "order").
					Return(uint64(99003), nil)
				s.admitter.EXPECT().
					Admit(mock.Anything, int64(7), "user-1", uint64(99003)).
					Return(nil)
			},
			assertion: func(result vo.SeckillOrder, err error) {
				require.NoError(s.T(), err)
				assert.Equal(s.T(), vo.SeckillOrder{
					OrderID:   99003,
					VoucherID: 7,
					UserID:    "user-1",
				}, result)
			},
		},
	}

	for _, tc := range tests {
		s.Run(tc.name, func() {
			s.SetupTest()
			s.service.now = func() time.Time { return now }
			if tc.setupMock != nil {
				tc.setupMock()
			}

			result, err := s.service.PlaceOrder(context.Background(), "user-1", 7)
			tc.assertion(result, err)
		})
	}
}

func (s *SeckillServiceSuite) TestActivateSale_TableDriven() {
	seedErr := errors.New("redis down")

	tests := []struct {
		name      string
		setupMock func()
		assertion func(error)
	}{
		{
			name: "propagates voucher not found",
			setupMock: func() {
				s.vouchers.EXPECT().
					GetVoucherByID(mock.Anything, int64(7)).
					Return(domain.Voucher{}, vo.ErrVoucherNotFound)
			},
			assertion: func(err error) {
				require.Error(s.T(), err)
				assert.ErrorIs(s.T(), err, vo.ErrVoucherNotFound)
			},
		},
		{
			name: "propagates seed failures",
			setupMock: func() {
				s.vouchers.EXPECT().
					GetVoucherByID(mock.Anything, int64(7)).
					Return(domain.Voucher{ID: 7, Stock: 50}, nil)
				s.admitter.EXPECT().
					SeedStock(mock.Anything, int64(7), int64(50)).
					Return(seedErr)
			},
			assertion: func(err error) {
				require.Error(s.T(), err)
				assert.ErrorIs(s.T(), err, seedErr)
			},
		},
		{
			name: "seeds cached stock from durable stock",
			setupMock: func() {
				s.vouchers.EXPECT().
					GetVoucherByID(mock.Anything, int64(7)).
					Return(domain.Voucher{ID: 7, Stock: 50}, nil)
				s.admitter.EXPECT().
					SeedStock(mock.Anything, int64(7), int64(50)).
					Return(nil)
			},
			assertion: func(err error) {
				require.NoError(s.T(), err)
			},
		},
	}

	for _, tc := range tests {
		s.Run(tc.name, func() {
			s.SetupTest()
			if tc.setupMock != nil {
				tc.setupMock()
			}

			tc.assertion(s.service.ActivateSale(context.Background(), 7))
		})
	}
}

func TestSeckillServiceSuite(t *testing.T) {
	suite.Run(t, new(SeckillServiceSuite))
}

type MaterializerSuite struct {
	suite.Suite

	orders   *servicemocks.OrderWriter
	consumer *streammocks.Consumer
	locker   *lockmocks.Locker
	worker   *Materializer
}

func (s *MaterializerSuite) SetupTest() {
	s.orders = servicemocks.NewOrderWriter(s.T())
	s.consumer = streammocks.NewConsumer(s.T())
	s.locker = lockmocks.NewLocker(s.T())

	worker, err := NewMaterializer(s.orders, s.consumer, s.locker, testLogger(), MaterializerOptions{
		RetryDelay:    10 * time.Millisecond,
		ShutdownGrace: time.Second,
	})
	require.NoError(s.T(), err)
	s.worker = worker
}

func (s *MaterializerSuite) grantLease() *lockmocks.Lease {
	lease := lockmocks.NewLease(s.T())
	lease.EXPECT().Release(mock.Anything).Return(nil)
	s.locker.EXPECT().
		TryAcquire(mock.Anything, "lock:order:user-1", mock.Anything).
		Return(lease, true, nil).
		Once()
	return lease
}

func intakeMessage(id string) stream.Message {
	return stream.Message{
		ID: id,
		Values: map[string]interface{}{
			"orderId":   "99001",
			"userId":    "user-1",
			"voucherId": "7",
		},
	}
}

func (s *MaterializerSuite) TestHandle_TableDriven() {
	lockErr := errors.New("lock store down")
	countErr := errors.New("count failed")
	createErr := errors.New("insert failed")

	tests := []struct {
		name      string
		message   stream.Message
		setupMock func()
		assertion func(error)
	}{
		{
			name:    "drops malformed record",
			message: stream.Message{ID: "1-0", Values: map[string]interface{}{"userId": "user-1"}},
			assertion: func(err error) {
				require.NoError(s.T(), err)
			},
		},
		{
			name:    "propagates lock store failures",
			message: intakeMessage("1-0"),
			setupMock: func() {
				s.locker.EXPECT().
					TryAcquire(mock.Anything, "lock:order:user-1", mock.Anything).
					Return(nil, false, lockErr)
			},
			assertion: func(err error) {
				require.Error(s.T(), err)
				assert.ErrorIs(s.T(), err, lockErr)
			},
		},
		{
			name:    "drops record when user lock is contended",
			message: intakeMessage("1-0"),
			setupMock: func() {
				s.locker.EXPECT().
					TryAcquire(mock.Anything, "lock:order:user-1", mock.Anything).
					Return(nil, false, nil)
			},
			assertion: func(err error) {
				require.NoError(s.T(), err)
			},
		},
		{
			name:    "propagates count failures and releases lock",
			message: intakeMessage("1-0"),
			setupMock: func() {
				s.grantLease()
				s.orders.EXPECT().
					CountOrders(mock.Anything, "user-1", int64(7)).
					Return(int64(0), countErr)
			},
			assertion: func(err error) {
				require.Error(s.T(), err)
				assert.ErrorIs(s.T(), err, countErr)
			},
		},
		{
			name:    "drops replayed record for already materialized order",
			message: intakeMessage("1-0"),
			setupMock: func() {
				s.grantLease()
				s.orders.EXPECT().
					CountOrders(mock.Anything, "user-1", int64(7)).
					Return(int64(1), nil)
			},
			assertion: func(err error) {
				require.NoError(s.T(), err)
			},
		},
		{
			name:    "drops record when durable stock is exhausted",
			message: intakeMessage("1-0"),
			setupMock: func() {
				s.grantLease()
				s.orders.EXPECT().
					CountOrders(mock.Anything, "user-1", int64(7)).
					Return(int64(0), nil)
				s.orders.EXPECT().
					CreateOrder(mock.Anything, mock.Anything).
					Return(vo.ErrOutOfStock)
			},
			assertion: func(err error) {
				require.NoError(s.T(), err)
			},
		},
		{
			name:    "propagates create failures",
			message: intakeMessage("1-0"),
			setupMock: func() {
				s.grantLease()
				s.orders.EXPECT().
					CountOrders(mock.Anything, "user-1", int64(7)).
					Return(int64(0), nil)
				s.orders.EXPECT().
					CreateOrder(mock.Anything, mock.Anything).
					Return(createErr)
			},
			assertion: func(err error) {
				require.Error(s.T(), err)
				assert.ErrorIs(s.T(), err, createErr)
			},
		},
		{
			name:    "materializes order",
			message: intakeMessage("1-0"),
			setupMock: func() {
				s.grantLease()
				s.orders.EXPECT().
					CountOrders(mock.Anything, "user-1", int64(7)).
					Return(int64(0), nil)
				s.orders.EXPECT().
					CreateOrder(mock.Anything, domain.Order{ID: 99001, UserID: "user-1", VoucherID: 7}).
					Return(nil)
			},
			assertion: func(err error) {
				require.NoError(s.T(), err)
			},
		},
	}

	for _, tc := range tests {
		s.Run(tc.name, func() {
			s.SetupTest()
			if tc.setupMock != nil {
				tc.setupMock()
			}

			tc.assertion(s.worker.handle(context.Background(), tc.message))
		})
	}
}

func (s *MaterializerSuite) TestRun_RecoversPendingAfterFailure() {
	countErr := errors.New("db hiccup")
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	msg := intakeMessage("1-0")

	// Startup drain finds an empty pending list.
	s.consumer.EXPECT().
		ReadPending(mock.Anything, int64(defaultBatchSize)).
		Return(nil, nil).
		Once()

	// Tail read delivers the record; the first materialization attempt fails.
	s.consumer.EXPECT().
		ReadNext(mock.Anything, int64(defaultBatchSize)).
		Return([]stream.Message{msg}, nil).
		Once()
	s.grantLease()
	s.orders.EXPECT().
		CountOrders(mock.Anything, "user-1", int64(7)).
		Return(int64(0), countErr).
		Once()

	// Recovery replays the pending record and succeeds this time.
	s.consumer.EXPECT().
		ReadPending(mock.Anything, int64(defaultBatchSize)).
		Return([]stream.Message{msg}, nil).
		Once()
	s.grantLease()
	s.orders.EXPECT().
		CountOrders(mock.Anything, "user-1", int64(7)).
		Return(int64(0), nil).
		Once()
	s.orders.EXPECT().
		CreateOrder(mock.Anything, domain.Order{ID: 99001, UserID: "user-1", VoucherID: 7}).
		Return(nil).
		Once()
	s.consumer.EXPECT().
		Ack(mock.Anything, "1-0").
		Return(nil).
		Once()
	s.consumer.EXPECT().
		ReadPending(mock.Anything, int64(defaultBatchSize)).
		Return(nil, nil).
		Once()

	// Backlog drained: stop the loop on the next tail read. The shutdown
	// drain sees an empty pending list.
	s.consumer.EXPECT().
		ReadNext(mock.Anything, int64(defaultBatchSize)).
		RunAndReturn(func(context.Context, int64) ([]stream.Message, error) {
			cancel()
			return nil, nil
		}).
		Once()
	s.consumer.EXPECT().
		ReadPending(mock.Anything, int64(defaultBatchSize)).
		Return(nil, nil).
		Once()

	done := make(chan struct{})
	go func() {
		defer close(done)
		s.worker.Run(ctx)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		s.T().Fatal("materializer did not stop")
	}
}

func (s *MaterializerSuite) TestRun_DrainsPendingOnShutdown() {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	msg := intakeMessage("2-0")
	s.consumer.EXPECT().
		ReadPending(mock.Anything, int64(defaultBatchSize)).
		Return([]stream.Message{msg}, nil).
		Once()
	s.grantLease()
	s.orders.EXPECT().
		CountOrders(mock.Anything, "user-1", int64(7)).
		Return(int64(0), nil).
		Once()
	s.orders.EXPECT().
		CreateOrder(mock.Anything, domain.Order{ID: 99001, UserID: "user-1", VoucherID: 7}).
		Return(nil).
		Once()
	s.consumer.EXPECT().
		Ack(mock.Anything, "2-0").
		Return(nil).
		Once()
	s.consumer.EXPECT().
		ReadPending(mock.Anything, int64(defaultBatchSize)).
		Return(nil, nil).
		Once()

	s.worker.Run(ctx)
}

func (s *MaterializerSuite) TestRun_DrainsPendingAtStartup() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	msg := intakeMessage("3-0")

	// A record left delivered-but-unacknowledged by a previous unclean stop is
	// replayed and settled before the first tail read.
	s.consumer.EXPECT().
		ReadPending(mock.Anything, int64(defaultBatchSize)).
		Return([]stream.Message{msg}, nil).
		Once()
	s.grantLease()
	s.orders.EXPECT().
		CountOrders(mock.Anything, "user-1", int64(7)).
		Return(int64(0), nil).
		Once()
	s.orders.EXPECT().
		CreateOrder(mock.Anything, domain.Order{ID: 99001, UserID: "user-1", VoucherID: 7}).
		Return(nil).
		Once()
	s.consumer.EXPECT().
		Ack(mock.Anything, "3-0").
		Return(nil).
		Once()
	s.consumer.EXPECT().
		ReadPending(mock.Anything, int64(defaultBatchSize)).
		Return(nil, nil).
		Once()

	// Healthy tail: stop the loop on the first read. The shutdown drain sees
	// an empty pending list.
	s.consumer.EXPECT().
		ReadNext(mock.Anything, int64(defaultBatchSize)).
		RunAndReturn(func(context.Context, int64) ([]stream.Message, error) {
			cancel()
			return nil, nil
		}).
		Once()
	s.consumer.EXPECT().
		ReadPending(mock.Anything, int64(defaultBatchSize)).
		Return(nil, nil).
		Once()

	done := make(chan struct{})
	go func() {
		defer close(done)
		s.worker.Run(ctx)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		s.T().Fatal("materializer did not stop")
	}
}

func (s *MaterializerSuite) TestRun_RecoversPendingAfterReadFailure() {
	readErr := errors.New("stream read failed")
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	msg := intakeMessage("4-0")

	// Startup drain finds an empty pending list.
	s.consumer.EXPECT().
		ReadPending(mock.Anything, int64(defaultBatchSize)).
		Return(nil, nil).
		Once()

	// A failed tail read triggers a pending pass, which replays the record
	// that was delivered but never acknowledged.
	s.consumer.EXPECT().
		ReadNext(mock.Anything, int64(defaultBatchSize)).
		Return(nil, readErr).
		Once()
	s.consumer.EXPECT().
		ReadPending(mock.Anything, int64(defaultBatchSize)).
		Return([]stream.Message{msg}, nil).
		Once()
	s.grantLease()
	s.orders.EXPECT().
		CountOrders(mock.Anything, "user-1", int64(7)).
		Return(int64(0), nil).
		Once()
	s.orders.EXPECT().
		CreateOrder(mock.Anything, domain.Order{ID: 99001, UserID: "user-1", VoucherID: 7}).
		Return(nil).
		Once()
	s.consumer.EXPECT().
		Ack(mock.Anything, "4-0").
		Return(nil).
		Once()
	s.consumer.EXPECT().
		ReadPending(mock.Anything, int64(defaultBatchSize)).
		Return(nil, nil).
		Once()

	// Backlog drained: stop the loop on the next tail read. The shutdown
	// drain sees an empty pending list.
	s.consumer.EXPECT().
		ReadNext(mock.Anything, int64(defaultBatchSize)).
		RunAndReturn(func(context.Context, int64) ([]stream.Message, error) {
			cancel()
			return nil, nil
		}).
		Once()
	s.consumer.EXPECT().
		ReadPending(mock.Anything, int64(defaultBatchSize)).
		Return(nil, nil).
		Once()

	done := make(chan struct{})
	go func() {
		defer close(done)
		s.worker.Run(ctx)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		s.T().Fatal("materializer did not stop")
	}
}

func (s *MaterializerSuite) TestNewMaterializer_Validation() {
	tests := []struct {
		name  string
		build func() (*Materializer, error)
	}{
		{
			name: "rejects nil order writer",
			build: func() (*Materializer, error) {
				return NewMaterializer(nil, s.consumer, s.locker, testLogger(), MaterializerOptions{})
			},
		},
		{
			name: "rejects nil consumer",
			build: func() (*Materializer, error) {
				return NewMaterializer(s.orders, nil, s.locker, testLogger(), MaterializerOptions{})
			},
		},
		{
			name: "rejects nil locker",
			build: func() (*Materializer, error) {
				return NewMaterializer(s.orders, s.consumer, nil, testLogger(), MaterializerOptions{})
			},
		},
		{
			name: "rejects nil logger",
			build: func() (*Materializer, error) {
				return NewMaterializer(s.orders, s.consumer, s.locker, nil, MaterializerOptions{})
			},
		},
	}

	for _, tc := range tests {
		s.Run(tc.name, func() {
			s.SetupTest()

			worker, err := tc.build()
			require.Error(s.T(), err)
			assert.Nil(s.T(), worker)
		})
	}
}

func TestMaterializerSuite(t *testing.T) {
	suite.Run(t, new(MaterializerSuite))
}

// memStore is a minimal in-memory cache.Store for exercising the cache-backed
// query services without a real backend.
type memStore struct {
	mu      sync.Mutex
	entries map[string]string
}

func newMemStore() *memStore {
	return &memStore{entries: map[string]string{}}
}

func (s *memStore) Get(_ context.Context, key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	value, ok := s.entries[key]
	return value, ok, nil
}

func (s *memStore) Set(_ context.Context, key, value string, _ time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[key] = value
	return nil
}

func (s *memStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, key)
	return nil
}

func (s *memStore) has(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.entries[key]
	return ok
}

type ShopQueryServiceSuite struct {
	suite.Suite

	repository *servicemocks.ShopRepository
	store      *memStore
	service    *ShopQueryService
}

func (s *ShopQueryServiceSuite) SetupTest() {
	s.repository = servicemocks.NewShopRepository(s.T())
	s.store = newMemStore()

	cacheClient, err := sharedcache.New(s.store, lockmocks.NewLocker(s.T()), testLogger(), sharedcache.Options{})
	require.NoError(s.T(), err)
	s.service = NewShopQueryService(s.repository, cacheClient, time.Minute)
}

func (s *ShopQueryServiceSuite) TestGetShop_ColdStartLoadsDurable() {
	shop := domain.Shop{ID: 3, Name: "Coffee Corner", TypeID: 1, Address: "1 Main St"}
	s.repository.EXPECT().GetShopByID(mock.Anything, int64(3)).Return(shop, nil).Once()

	result, err := s.service.GetShop(context.Background(), 3)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), "Coffee Corner", result.Name)
}

func (s *ShopQueryServiceSuite) TestGetShop_MissingShop() {
	s.repository.EXPECT().GetShopByID(mock.Anything, int64(404)).Return(domain.Shop{}, vo.ErrShopNotFound).Once()

	_, err := s.service.GetShop(context.Background(), 404)
	require.Error(s.T(), err)
	assert.ErrorIs(s.T(), err, vo.ErrShopNotFound)
}

func (s *ShopQueryServiceSuite) TestWarmShopThenGetServesCache() {
	shop := domain.Shop{ID: 3, Name: "Coffee Corner", TypeID: 1, Address: "1 Main St"}
	s.repository.EXPECT().GetShopByID(mock.Anything, int64(3)).Return(shop, nil).Once()

	require.NoError(s.T(), s.service.WarmShop(context.Background(), 3))
	require.True(s.T(), s.store.has("cache:shop:3"))

	// The warmed entry is fresh: no further durable read happens.
	result, err := s.service.GetShop(context.Background(), 3)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), "Coffee Corner", result.Name)
}

func (s *ShopQueryServiceSuite) TestUpdateShop_TableDriven() {
	updateErr := errors.New("update failed")
	shop := domain.Shop{ID: 3, Name: "Renamed", TypeID: 1, Address: "1 Main St"}

	s.Run("propagates repository error without touching cache", func() {
		s.SetupTest()
		require.NoError(s.T(), s.store.Set(context.Background(), "cache:shop:3", "cached", 0))
		s.repository.EXPECT().UpdateShop(mock.Anything, shop).Return(updateErr).Once()

		err := s.service.UpdateShop(context.Background(), shop)
		require.Error(s.T(), err)
		assert.ErrorIs(s.T(), err, updateErr)
		assert.True(s.T(), s.store.has("cache:shop:3"))
	})

	s.Run("invalidates cache after durable write", func() {
		s.SetupTest()
		require.NoError(s.T(), s.store.Set(context.Background(), "cache:shop:3", "cached", 0))
		s.repository.EXPECT().UpdateShop(mock.Anything, shop).Return(nil).Once()

		require.NoError(s.T(), s.service.UpdateShop(context.Background(), shop))
		assert.False(s.T(), s.store.has("cache:shop:3"))
	})
}

func TestShopQueryServiceSuite(t *testing.T) {
	suite.Run(t, new(ShopQueryServiceSuite))
}

type VoucherQueryServiceSuite struct {
	suite.Suite

	vouchers *servicemocks.VoucherReader
	store    *memStore
	service  *VoucherQueryService
}

func (s *VoucherQueryServiceSuite) SetupTest() {
	s.vouchers = servicemocks.NewVoucherReader(s.T())
	s.store = newMemStore()

	cacheClient, err := sharedcache.New(s.store, lockmocks.NewLocker(s.T()), testLogger(), sharedcache.Options{})
	require.NoError(s.T(), err)
	s.service = NewVoucherQueryService(s.vouchers, cacheClient, time.Minute)
}

func (s *VoucherQueryServiceSuite) TestGetVoucher_MissCachesEntry() {
	voucher := domain.Voucher{ID: 7, Title: "100 off", Stock: 50}
	s.vouchers.EXPECT().GetVoucherByID(mock.Anything, int64(7)).Return(voucher, nil).Once()

	result, err := s.service.GetVoucher(context.Background(), 7)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), "100 off", result.Title)
	assert.True(s.T(), s.store.has("cache:voucher:7"))

	// Second read is served from the cache: the single Once expectation above
	// would fail if the repository were hit again.
	result, err = s.service.GetVoucher(context.Background(), 7)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), int64(50), result.Stock)
}

func (s *VoucherQueryServiceSuite) TestGetVoucher_MissingIDLeavesNullMarker() {
	s.vouchers.EXPECT().GetVoucherByID(mock.Anything, int64(404)).Return(domain.Voucher{}, vo.ErrVoucherNotFound).Once()

	_, err := s.service.GetVoucher(context.Background(), 404)
	require.Error(s.T(), err)
	assert.ErrorIs(s.T(), err, vo.ErrVoucherNotFound)
	assert.True(s.T(), s.store.has("cache:voucher:404"))

	// Repeated lookups stop at the marker.
	_, err = s.service.GetVoucher(context.Background(), 404)
	require.Error(s.T(), err)
	assert.ErrorIs(s.T(), err, vo.ErrVoucherNotFound)
}

func TestVoucherQueryServiceSuite(t *testing.T) {
	suite.Run(t, new(VoucherQueryServiceSuite))
}
