package checkout

import (
	"context"
	"encoding/json"
	"errors"
	"regexp"
	"testing"
	"time"

	"salonbook/models"
	"salonbook/services"
	"salonbook/services/payment"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockCouponValidator struct {
	mock.Mock
}

func (m *MockCouponValidator) ValidateCode(ctx context.Context, code string, items []models.CartItem, subtotal int64) (*models.Coupon, error) {
	args := m.Called(ctx, code, items, subtotal)
	if c := args.Get(0); c != nil {
		return c.(*models.Coupon), args.Error(1)
	}
	return nil, args.Error(1)
}

type MockGateway struct {
	mock.Mock
	configured bool
}

func (m *MockGateway) Name() string     { return "fake" }
func (m *MockGateway) Configured() bool { return m.configured }

func (m *MockGateway) CreateTransaction(ctx context.Context, req models.GatewayRequest) (*models.GatewayResponse, error) {
	args := m.Called(ctx, req)
	if r := args.Get(0); r != nil {
		return r.(*models.GatewayResponse), args.Error(1)
	}
	return nil, args.Error(1)
}

type MockRecorder struct {
	mock.Mock
}

func (m *MockRecorder) RecordTransaction(ctx context.Context, rec models.TransactionRecord) error {
	return m.Called(ctx, rec).Error(0)
}

func rawCart(t *testing.T) []models.RawCartItem {
	t.Helper()
	var items []models.RawCartItem
	require.NoError(t, json.Unmarshal([]byte(`[
		{"entryId": "a", "mainService": {"serviceId": "s1", "name": "Haircut", "price": 80000, "durationMinutes": 45},
		 "extraServices": [{"serviceId": "s2", "name": "Hair wash", "price": 20000, "durationMinutes": 15}]},
		{"entryId": "b", "name": "Manicure", "price": 50000, "durationMinutes": 30}
	]`), &items))
	return items
}

func newTestService(v CouponValidator, g *MockGateway, r TransactionRecorder) *Service {
	var gw payment.Gateway
	if g != nil {
		gw = g
	}
	s := NewService(v, gw, r, nil)
	s.now = func() time.Time { return time.Unix(1792130400, 0) }
	return s
}

func TestQuote_WithoutCoupon(t *testing.T) {
	v := new(MockCouponValidator)
	s := newTestService(v, nil, nil)

	summary, err := s.Quote(context.Background(), rawCart(t), "  ")
	require.NoError(t, err)

	assert.Equal(t, int64(150000), summary.Subtotal)
	assert.Equal(t, int64(150000), summary.Total)
	assert.Equal(t, 90, summary.TotalDuration)
	v.AssertNotCalled(t, "ValidateCode", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestRedeemCoupon(t *testing.T) {
	coupon := &models.Coupon{Code: "HEMAT10", DiscountType: models.DiscountPercent, Amount: 10, IsActive: true}
	v := new(MockCouponValidator)
	v.On("ValidateCode", mock.Anything, "hemat10", mock.Anything, int64(150000)).Return(coupon, nil)

	summary, err := newTestService(v, nil, nil).RedeemCoupon(context.Background(), "hemat10", rawCart(t))
	require.NoError(t, err)

	assert.Equal(t, int64(15000), summary.DiscountAmount)
	assert.Equal(t, int64(135000), summary.Total)
	require.NotNil(t, summary.Coupon)
	assert.Equal(t, "HEMAT10", summary.Coupon.Code)
	v.AssertExpectations(t)
}

func TestRedeemCoupon_RequiresCode(t *testing.T) {
	_, err := newTestService(new(MockCouponValidator), nil, nil).RedeemCoupon(context.Background(), "", rawCart(t))

	var ee *services.EngineError
	require.ErrorAs(t, err, &ee)
	assert.Equal(t, services.CodeCouponCodeRequired, ee.Code)
}

func TestRedeemCoupon_EmptyCartRejectedBeforeCode(t *testing.T) {
	v := new(MockCouponValidator)

	_, err := newTestService(v, nil, nil).RedeemCoupon(context.Background(), "", nil)

	var ee *services.EngineError
	require.ErrorAs(t, err, &ee)
	assert.Equal(t, services.CodeCartEmpty, ee.Code)
	v.AssertNotCalled(t, "ValidateCode", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestRedeemCoupon_PropagatesRejection(t *testing.T) {
	v := new(MockCouponValidator)
	v.On("ValidateCode", mock.Anything, "OLD", mock.Anything, mock.Anything).
		Return(nil, services.RuleViolation(services.CodeCouponExpired, "Coupon has expired"))

	_, err := newTestService(v, nil, nil).RedeemCoupon(context.Background(), "OLD", rawCart(t))

	var ee *services.EngineError
	require.ErrorAs(t, err, &ee)
	assert.Equal(t, services.KindRuleViolation, ee.Kind)
	assert.Equal(t, services.CodeCouponExpired, ee.Code)
}

func TestCreateSnapToken_Success(t *testing.T) {
	coupon := &models.Coupon{Code: "HEMAT10", DiscountType: models.DiscountPercent, Amount: 10, IsActive: true}
	v := new(MockCouponValidator)
	v.On("ValidateCode", mock.Anything, "HEMAT10", mock.Anything, int64(150000)).Return(coupon, nil)

	g := &MockGateway{configured: true}
	g.On("CreateTransaction", mock.Anything, mock.MatchedBy(func(req models.GatewayRequest) bool {
		return req.GrossAmount == 135000 && SumLineItems(req.ItemDetails) == 135000
	})).Return(&models.GatewayResponse{Token: "snap-token", RedirectURL: "https://pay.example/snap-token"}, nil)

	r := new(MockRecorder)
	r.On("RecordTransaction", mock.Anything, mock.MatchedBy(func(rec models.TransactionRecord) bool {
		return rec.Status == models.TransactionPending && rec.CouponCode == "HEMAT10" && rec.Token == "snap-token"
	})).Return(nil)

	customer := models.CustomerDetails{ID: "c1", Name: "Sari", Email: "sari@example.com"}
	res, err := newTestService(v, g, r).CreateSnapToken(context.Background(), rawCart(t), "HEMAT10", customer)
	require.NoError(t, err)

	assert.Equal(t, "snap-token", res.Token)
	assert.Equal(t, "https://pay.example/snap-token", res.RedirectURL)
	assert.Equal(t, int64(150000), res.Subtotal)
	assert.Equal(t, int64(15000), res.DiscountAmount)
	assert.Equal(t, int64(135000), res.Total)
	assert.Regexp(t, regexp.MustCompile(`^ORDER-1792130400-[0-9a-f]{8}$`), res.OrderID)

	g.AssertExpectations(t)
	r.AssertExpectations(t)
}

func TestCreateSnapToken_Unconfigured(t *testing.T) {
	tests := []struct {
		name    string
		gateway *MockGateway
	}{
		{"no gateway", nil},
		{"missing credentials", &MockGateway{configured: false}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := newTestService(new(MockCouponValidator), tt.gateway, nil).
				CreateSnapToken(context.Background(), rawCart(t), "", models.CustomerDetails{})

			var ee *services.EngineError
			require.ErrorAs(t, err, &ee)
			assert.Equal(t, services.KindUnconfigured, ee.Kind)
			if tt.gateway != nil {
				tt.gateway.AssertNotCalled(t, "CreateTransaction", mock.Anything, mock.Anything)
			}
		})
	}
}

func TestCreateSnapToken_GatewayFailures(t *testing.T) {
	t.Run("call fails", func(t *testing.T) {
		g := &MockGateway{configured: true}
		g.On("CreateTransaction", mock.Anything, mock.Anything).Return(nil, errors.New("503 from gateway"))
		r := new(MockRecorder)

		_, err := newTestService(new(MockCouponValidator), g, r).
			CreateSnapToken(context.Background(), rawCart(t), "", models.CustomerDetails{})

		var ee *services.EngineError
		require.ErrorAs(t, err, &ee)
		assert.Equal(t, services.KindUpstream, ee.Kind)
		assert.Equal(t, services.CodeGatewayFailed, ee.Code)
		r.AssertNotCalled(t, "RecordTransaction", mock.Anything, mock.Anything)
	})

	t.Run("empty token", func(t *testing.T) {
		g := &MockGateway{configured: true}
		g.On("CreateTransaction", mock.Anything, mock.Anything).Return(&models.GatewayResponse{}, nil)

		_, err := newTestService(new(MockCouponValidator), g, nil).
			CreateSnapToken(context.Background(), rawCart(t), "", models.CustomerDetails{})

		var ee *services.EngineError
		require.ErrorAs(t, err, &ee)
		assert.Equal(t, services.KindUpstream, ee.Kind)
		assert.Equal(t, services.CodeGatewayNoToken, ee.Code)
	})
}

func TestCreateSnapToken_RecorderFailureDoesNotFailCheckout(t *testing.T) {
	g := &MockGateway{configured: true}
	g.On("CreateTransaction", mock.Anything, mock.Anything).Return(&models.GatewayResponse{Token: "tok"}, nil)
	r := new(MockRecorder)
	r.On("RecordTransaction", mock.Anything, mock.Anything).Return(errors.New("queue down"))

	res, err := newTestService(new(MockCouponValidator), g, r).
		CreateSnapToken(context.Background(), rawCart(t), "", models.CustomerDetails{ID: "c1"})

	require.NoError(t, err)
	assert.Equal(t, "tok", res.Token)
	r.AssertExpectations(t)
}

func TestCreateSnapToken_EmptyCart(t *testing.T) {
	g := &MockGateway{configured: true}

	_, err := newTestService(new(MockCouponValidator), g, nil).
		CreateSnapToken(context.Background(), nil, "", models.CustomerDetails{})

	var ee *services.EngineError
	require.ErrorAs(t, err, &ee)
	assert.Equal(t, services.CodeCartEmpty, ee.Code)
	g.AssertNotCalled(t, "CreateTransaction", mock.Anything, mock.Anything)
}
