package service

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"

	"github.com/Awinteck-Solutions/melcom-travels-web-sub000/internal/dto"
	"github.com/Awinteck-Solutions/melcom-travels-web-sub000/internal/pkg/logger"
	"github.com/Awinteck-Solutions/melcom-travels-web-sub000/internal/repository/memory"
	"github.com/Awinteck-Solutions/melcom-travels-web-sub000/pkg/events"
)

var ErrEmptyCart = errors.New("cart is empty")

type ICartService interface {
	Get(ctx context.Context, sessionID string) (*dto.CartResponse, error)
	Add(ctx context.Context, sessionID string, req *dto.AddCartItemRequest) (*dto.CartResponse, error)
	Update(ctx context.Context, sessionID, itemID string, req *dto.UpdateCartItemRequest) (*dto.CartResponse, error)
	Remove(ctx context.Context, sessionID, itemID string) (*dto.CartResponse, error)
	Clear(ctx context.Context, sessionID string) error
	Checkout(ctx context.Context, sessionID string) (*dto.CheckoutResponse, error)
}

type cartService struct {
	visitors  *memory.VisitorRepository
	publisher IPublisherService
	logger    logger.ILogger
}

func NewCartService(visitors *memory.VisitorRepository, publisher IPublisherService, log logger.ILogger) ICartService {
	return &cartService{
		visitors:  visitors,
		publisher: publisher,
		logger:    log,
	}
}

func (s *cartService) cartResponse(visitor *memory.Visitor) *dto.CartResponse {
	return &dto.CartResponse{
		Items: visitor.App.Cart(),
		Total: visitor.App.CartValue(),
	}
}

func (s *cartService) Get(ctx context.Context, sessionID string) (*dto.CartResponse, error) {
	visitor := s.visitors.GetOrCreate(ctx, sessionID)
	return s.cartResponse(visitor), nil
}

func (s *cartService) Add(ctx context.Context, sessionID string, req *dto.AddCartItemRequest) (*dto.CartResponse, error) {
	visitor := s.visitors.GetOrCreate(ctx, sessionID)
	visitor.App.AddToCart(req.ToModel())

	s.emit(ctx, sessionID, visitor)
	return s.cartResponse(visitor), nil
}

func (s *cartService) Update(ctx context.Context, sessionID, itemID string, req *dto.UpdateCartItemRequest) (*dto.CartResponse, error) {
	visitor := s.visitors.GetOrCreate(ctx, sessionID)
	visitor.App.UpdateCartItem(itemID, req.ToPatch())

	s.emit(ctx, sessionID, visitor)
	return s.cartResponse(visitor), nil
}

func (s *cartService) Remove(ctx context.Context, sessionID, itemID string) (*dto.CartResponse, error) {
	visitor := s.visitors.GetOrCreate(ctx, sessionID)
	visitor.App.RemoveFromCart(itemID)

	s.emit(ctx, sessionID, visitor)
	return s.cartResponse(visitor), nil
}

func (s *cartService) Clear(ctx context.Context, sessionID string) error {
	visitor, ok := s.visitors.Get(sessionID)
	if !ok {
		return nil
	}
	visitor.App.ClearCart()

	s.emit(ctx, sessionID, visitor)
	return nil
}

// Checkout opens a Midtrans Snap transaction for the cart contents.
// The cart is left intact until the payment webhook confirms settlement.
func (s *cartService) Checkout(ctx context.Context, sessionID string) (*dto.CheckoutResponse, error) {
	visitor := s.visitors.GetOrCreate(ctx, sessionID)

	if !visitor.App.IsAuthenticated() {
		return nil, ErrNotAuthenticated
	}

	items := visitor.App.Cart()
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}
	total := visitor.App.CartValue()
	user := visitor.App.User()

	var sClient snap.Client
	serverKey := os.Getenv("MIDTRANS_SERVER_KEY")
	env := midtrans.Sandbox
	if os.Getenv("MIDTRANS_IS_PRODUCTION") == "true" {
		env = midtrans.Production
	}
	sClient.New(serverKey, env)

	orderID := uuid.New().String()
	currency := items[0].Currency

	snapItems := make([]midtrans.ItemDetails, 0, len(items))
	for _, item := range items {
		snapItems = append(snapItems, midtrans.ItemDetails{
			ID:    item.ID,
			Price: int64(item.Price),
			Qty:   int32(item.Quantity),
			Name:  item.Title,
		})
	}

	frontendURL := os.Getenv("FRONTEND_URL")
	snapReq := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  orderID,
			GrossAmt: int64(total),
		},
		CreditCard: &snap.CreditCardDetails{
			Secure: true,
		},
		Callbacks: &snap.Callbacks{
			Finish: fmt.Sprintf("%s/booking?payment=success", frontendURL),
		},
		CustomerDetail: &midtrans.CustomerDetails{
			FName: user.Name,
			Email: user.Email,
			Phone: user.Phone,
		},
		Items:           &snapItems,
		EnabledPayments: snap.AllSnapPaymentType,
	}

	snapResp, midErr := sClient.CreateTransaction(snapReq)
	if midErr != nil {
		return nil, fmt.Errorf("midtrans error: %v", midErr.GetMessage())
	}

	if s.publisher != nil {
		evt := events.NewBaseEvent(events.TypeCheckoutRequested, map[string]interface{}{
			"session_id":  sessionID,
			"order_id":    orderID,
			"amount":      total,
			"currency":    currency,
			"item_count":  len(items),
			"occurred_at": time.Now(),
		})
		if err := s.publisher.Publish(ctx, evt); err != nil {
			s.logger.Warn("CartService", "Bus publish failed", map[string]interface{}{"error": err.Error()})
		}
	}

	return &dto.CheckoutResponse{
		OrderID:     orderID,
		SnapToken:   snapResp.Token,
		RedirectURL: snapResp.RedirectURL,
		GrossAmount: total,
		Currency:    currency,
	}, nil
}

func (s *cartService) emit(ctx context.Context, sessionID string, visitor *memory.Visitor) {
	if s.publisher == nil {
		return
	}
	evt := events.NewBaseEvent(events.TypeCartUpdated, map[string]interface{}{
		"session_id":  sessionID,
		"item_count":  len(visitor.App.Cart()),
		"cart_total":  visitor.App.CartValue(),
		"occurred_at": time.Now(),
	})
	if err := s.publisher.Publish(ctx, evt); err != nil {
		s.logger.Warn("CartService", "Bus publish failed", map[string]interface{}{"error": err.Error()})
	}
}
