package services

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/tidwall/gjson"

	"github.com/sbilibin2017/gw-template-studio/internal/logger"
	"github.com/sbilibin2017/gw-template-studio/internal/metrics"
	"github.com/sbilibin2017/gw-template-studio/internal/models"
)

const eventPaymentCaptured = "payment.captured"

//go:generate mockgen -source=payment.go -destination=payment_mock_test.go -package=services

// PaymentGateway is the external payment provider.
type PaymentGateway interface {
	KeyID() string
	CreateOrder(ctx context.Context, amount int64, currency, receipt string) (string, error)
	VerifyPaymentSignature(orderID, paymentID, signature string) bool
	VerifyWebhookSignature(body []byte, signature string) bool
}

// OrderStore persists orders.
type OrderStore interface {
	Create(ctx context.Context, o *models.Order) error
	GetByGatewayOrderID(ctx context.Context, gatewayOrderID string) (*models.Order, error)
	MarkPaid(ctx context.Context, gatewayOrderID, paymentID string) (*models.Order, error)
	ExpireCreatedBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

// CheckoutOrder is what the client needs to open the gateway checkout.
type CheckoutOrder struct {
	OrderID  string `json:"order_id"`
	KeyID    string `json:"key_id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	XP       int64  `json:"xp"`
}

// PaymentResult reports the outcome of a payment verification. Credited is
// false when the order had already been settled.
type PaymentResult struct {
	Order    *models.Order `json:"order"`
	Credited bool          `json:"credited"`
}

// PaymentService sells XP packages.
type PaymentService struct {
	tx       Transactor
	xp       XPLedger
	orders   OrderStore
	users    UserStore
	gateway  PaymentGateway
	mailer   Mailer
	packages []models.XPPackage
}

func NewPaymentService(tx Transactor, xp XPLedger, orders OrderStore, users UserStore, gateway PaymentGateway, mailer Mailer, packages []models.XPPackage) *PaymentService {
	return &PaymentService{
		tx:       tx,
		xp:       xp,
		orders:   orders,
		users:    users,
		gateway:  gateway,
		mailer:   mailer,
		packages: packages,
	}
}

// Packages returns the XP package catalog.
func (s *PaymentService) Packages() []models.XPPackage {
	return s.packages
}

func (s *PaymentService) findPackage(code string) (models.XPPackage, bool) {
	for _, p := range s.packages {
		if p.Code == code {
			return p, true
		}
	}
	return models.XPPackage{}, false
}

// CreateOrder opens a gateway order for package code.
func (s *PaymentService) CreateOrder(ctx context.Context, userID uuid.UUID, code string) (*CheckoutOrder, error) {
	log := logger.FromContext(ctx)

	pkg, ok := s.findPackage(code)
	if !ok {
		return nil, ErrUnknownPackage
	}

	receipt := fmt.Sprintf("xp_%s_%d", pkg.Code, time.Now().UnixNano())
	gatewayOrderID, err := s.gateway.CreateOrder(ctx, pkg.Price, pkg.Currency, receipt)
	if err != nil {
		log.Errorw("failed to create gateway order", "userID", userID, "package", code, "error", err)
		return nil, errors.Join(ErrUpstream, err)
	}

	order := &models.Order{
		UserID:         userID,
		PackageCode:    pkg.Code,
		GatewayOrderID: gatewayOrderID,
		Amount:         pkg.Price,
		Currency:       pkg.Currency,
		XP:             pkg.XP,
	}
	if err := s.orders.Create(ctx, order); err != nil {
		log.Errorw("failed to save order", "gatewayOrderID", gatewayOrderID, "error", err)
		return nil, err
	}

	log.Infow("order created", "userID", userID, "orderID", order.ID, "gatewayOrderID", gatewayOrderID)
	return &CheckoutOrder{
		OrderID:  gatewayOrderID,
		KeyID:    s.gateway.KeyID(),
		Amount:   pkg.Price,
		Currency: pkg.Currency,
		XP:       pkg.XP,
	}, nil
}

// VerifyPayment checks the checkout signature and credits the order's XP
// exactly once.
func (s *PaymentService) VerifyPayment(ctx context.Context, userID uuid.UUID, orderID, paymentID, signature string) (*PaymentResult, error) {
	if orderID == "" || paymentID == "" || signature == "" {
		return nil, fmt.Errorf("%w: order_id, payment_id and signature are required", ErrInvalidInput)
	}
	if !s.gateway.VerifyPaymentSignature(orderID, paymentID, signature) {
		logger.FromContext(ctx).Warnw("invalid payment signature", "userID", userID, "gatewayOrderID", orderID)
		return nil, ErrInvalidSignature
	}

	order, err := s.orders.GetByGatewayOrderID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil || order.UserID != userID {
		return nil, ErrOrderNotFound
	}

	if order.Status == models.OrderPaid {
		return &PaymentResult{Order: order}, nil
	}
	if !order.Settleable() {
		return nil, ErrOrderNotPayable
	}

	return s.settle(ctx, order, paymentID)
}

// HandleWebhook processes a signed gateway event. Events other than a
// captured payment and captures for unknown orders are acknowledged.
func (s *PaymentService) HandleWebhook(ctx context.Context, body []byte, signature string) error {
	log := logger.FromContext(ctx)

	if !s.gateway.VerifyWebhookSignature(body, signature) {
		log.Warnw("invalid webhook signature")
		return ErrInvalidSignature
	}
	if !gjson.ValidBytes(body) {
		return fmt.Errorf("%w: malformed webhook body", ErrInvalidInput)
	}

	event := gjson.GetBytes(body, "event").String()
	if event != eventPaymentCaptured {
		log.Infow("ignoring webhook event", "event", event)
		return nil
	}

	payment := gjson.GetBytes(body, "payload.payment.entity")
	orderID := payment.Get("order_id").String()
	paymentID := payment.Get("id").String()
	if orderID == "" || paymentID == "" {
		return fmt.Errorf("%w: webhook is missing order or payment id", ErrInvalidInput)
	}

	order, err := s.orders.GetByGatewayOrderID(ctx, orderID)
	if err != nil {
		return err
	}
	if order == nil {
		log.Warnw("webhook for unknown order", "gatewayOrderID", orderID)
		return nil
	}
	if !order.Settleable() {
		log.Infow("webhook for settled order", "gatewayOrderID", orderID, "status", order.Status)
		return nil
	}

	_, err = s.settle(ctx, order, paymentID)
	return err
}

// settle flips the order to paid and credits XP in one transaction. Only
// the caller that wins the status transition credits.
func (s *PaymentService) settle(ctx context.Context, order *models.Order, paymentID string) (*PaymentResult, error) {
	var (
		paid  *models.Order
		entry *models.LedgerEntry
	)

	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		var err error
		paid, err = s.orders.MarkPaid(ctx, order.GatewayOrderID, paymentID)
		if err != nil || paid == nil {
			return err
		}
		entry, err = s.xp.Credit(ctx, paid.UserID, paid.XP, models.ReasonPurchase, paid.ID.String())
		return err
	})
	if err != nil {
		return nil, err
	}

	if paid == nil {
		current, err := s.orders.GetByGatewayOrderID(ctx, order.GatewayOrderID)
		if err != nil {
			return nil, err
		}
		return &PaymentResult{Order: current}, nil
	}

	if entry != nil {
		metrics.ObserveXP(models.ReasonPurchase, entry.Delta)
	}
	s.xp.Publish(ctx, entry)
	s.sendReceipt(ctx, paid, entry)

	logger.FromContext(ctx).Infow("order paid", "orderID", paid.ID, "userID", paid.UserID, "xp", paid.XP)
	return &PaymentResult{Order: paid, Credited: true}, nil
}

func (s *PaymentService) sendReceipt(ctx context.Context, order *models.Order, entry *models.LedgerEntry) {
	user, err := s.users.GetByID(ctx, order.UserID)
	if err != nil || user == nil || user.Email == "" {
		logger.FromContext(ctx).Warnw("no recipient for receipt", "orderID", order.ID, "error", err)
		return
	}

	body := fmt.Sprintf("Thank you for your purchase.\n\nOrder: %s\nPackage: %s\nXP added: %d\nAmount: %s %s\n",
		order.GatewayOrderID, order.PackageCode, order.XP, formatMinor(order.Amount), order.Currency)
	if entry != nil {
		body += fmt.Sprintf("New balance: %d XP\n", entry.BalanceAfter)
	}
	sendMail(ctx, s.mailer, user.Email, "Your XP purchase receipt", body)
}

// ExpireStale expires created orders older than olderThan.
func (s *PaymentService) ExpireStale(ctx context.Context, olderThan time.Duration) (int64, error) {
	return s.orders.ExpireCreatedBefore(ctx, time.Now().Add(-olderThan))
}

func formatMinor(amount int64) string {
	sign := ""
	if amount < 0 {
		sign, amount = "-", -amount
	}
	return fmt.Sprintf("%s%d.%02d", sign, amount/100, amount%100)
}

// ParsePackages reads a catalog written as "code:xp:price:currency" entries
// separated by commas, for example "starter:100:49900:INR".
func ParsePackages(raw string) ([]models.XPPackage, error) {
	var packages []models.XPPackage
	seen := map[string]bool{}

	for _, item := range strings.Split(raw, ",") {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}

		parts := strings.Split(item, ":")
		if len(parts) != 4 {
			return nil, fmt.Errorf("package %q: want code:xp:price:currency", item)
		}
		xp, err := strconv.ParseInt(parts[1], 10, 64)
		if err != nil || xp <= 0 {
			return nil, fmt.Errorf("package %q: invalid xp", item)
		}
		price, err := strconv.ParseInt(parts[2], 10, 64)
		if err != nil || price <= 0 {
			return nil, fmt.Errorf("package %q: invalid price", item)
		}
		code := strings.TrimSpace(parts[0])
		if code == "" || seen[code] {
			return nil, fmt.Errorf("package %q: empty or duplicate code", item)
		}
		seen[code] = true

		packages = append(packages, models.XPPackage{
			Code:     code,
			XP:       xp,
			Price:    price,
			Currency: strings.ToUpper(strings.TrimSpace(parts[3])),
		})
	}
	return packages, nil
}
