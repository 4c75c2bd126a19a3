package payment

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"salonbook/models"

	"github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"
	"go.uber.org/zap"
)

// Midtrans rejects item ids and names longer than this.
const midtransFieldLimit = 50

type snapCreator interface {
	CreateTransaction(req *snap.Request) (*snap.Response, *midtrans.Error)
}

// MidtransGateway opens Snap transactions.
type MidtransGateway struct {
	client    snapCreator
	serverKey string
	logger    *zap.Logger
}

func NewMidtransGateway(serverKey string, production bool, logger *zap.Logger) *MidtransGateway {
	if logger == nil {
		logger = zap.NewNop()
	}
	env := midtrans.Sandbox
	if production {
		env = midtrans.Production
	}
	var c snap.Client
	c.New(serverKey, env)
	return &MidtransGateway{client: &c, serverKey: serverKey, logger: logger}
}

func (g *MidtransGateway) Name() string { return GatewayMidtrans }

func (g *MidtransGateway) Configured() bool { return strings.TrimSpace(g.serverKey) != "" }

// CreateTransaction requests a Snap token. The midtrans client does not accept a context,
// so ctx is only checked before the call.
func (g *MidtransGateway) CreateTransaction(ctx context.Context, req models.GatewayRequest) (*models.GatewayResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	resp, merr := g.client.CreateTransaction(buildSnapRequest(req))
	if merr != nil {
		g.logger.Error("midtrans: snap transaction failed",
			zap.String("orderId", req.OrderID),
			zap.Int("status", merr.StatusCode),
			zap.String("message", merr.Message))
		if merr.Message == "" {
			return nil, fmt.Errorf("midtrans: status %d", merr.StatusCode)
		}
		return nil, errors.New("midtrans: " + merr.Message)
	}
	if resp == nil {
		return nil, errors.New("midtrans: empty response")
	}
	return &models.GatewayResponse{Token: resp.Token, RedirectURL: resp.RedirectURL}, nil
}

func buildSnapRequest(req models.GatewayRequest) *snap.Request {
	items := make([]midtrans.ItemDetails, 0, len(req.ItemDetails))
	for _, d := range req.ItemDetails {
		qty := d.Quantity
		if qty <= 0 {
			qty = 1
		}
		items = append(items, midtrans.ItemDetails{
			ID:    truncate(d.ID, midtransFieldLimit),
			Name:  truncate(d.Name, midtransFieldLimit),
			Price: d.Price,
			Qty:   int32(qty),
		})
	}

	first, last := splitName(req.CustomerDetails.Name)
	return &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  req.OrderID,
			GrossAmt: req.GrossAmount,
		},
		Items: &items,
		CustomerDetail: &midtrans.CustomerDetails{
			FName: first,
			LName: last,
			Email: req.CustomerDetails.Email,
			Phone: req.CustomerDetails.Phone,
		},
	}
}

func splitName(name string) (string, string) {
	parts := strings.Fields(name)
	switch len(parts) {
	case 0:
		return "", ""
	case 1:
		return parts[0], ""
	default:
		return parts[0], strings.Join(parts[1:], " ")
	}
}
