package services

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/payOSHQ/payos-lib-golang"

	"anuncia/internal/models/db_models"
)

type CheckoutConfig struct {
	ClientID    string
	ApiKey      string
	ChecksumKey string
	ReturnURL   string
	CancelURL   string
}

func CheckoutConfigFromEnv() CheckoutConfig {
	return CheckoutConfig{
		ClientID:    os.Getenv("PAYOS_CLIENT_ID"),
		ApiKey:      os.Getenv("PAYOS_API_KEY"),
		ChecksumKey: os.Getenv("PAYOS_CHECKSUM_KEY"),
		ReturnURL:   os.Getenv("PAYOS_RETURN_URL"),
		CancelURL:   os.Getenv("PAYOS_CANCEL_URL"),
	}
}

// CheckoutService mints a hosted checkout URL for a subscription plan.
type CheckoutService interface {
	CreatePlanCheckoutLink(plan *db_models.Plan) (string, error)
}

type payosCheckout struct {
	cfg CheckoutConfig
}

func NewCheckoutService(cfg CheckoutConfig) CheckoutService {
	return &payosCheckout{cfg: cfg}
}

func (p *payosCheckout) CreatePlanCheckoutLink(plan *db_models.Plan) (string, error) {
	if err := payos.Key(p.cfg.ClientID, p.cfg.ApiKey, p.cfg.ChecksumKey); err != nil {
		return "", fmt.Errorf("payos client init: %w", err)
	}

	// payOS wants an int64 order code under 13 digits; unix seconds plus a
	// short random suffix keeps collisions unlikely enough for plan links.
	orderCode := time.Now().Unix()%1_000_000_000 + int64(rand.Intn(9000)+1000)

	item := payos.Item{
		Name:     plan.Name,
		Price:    int(plan.PriceMinor),
		Quantity: 1,
	}

	body := payos.CheckoutRequestType{
		OrderCode:   orderCode,
		Amount:      int(plan.PriceMinor),
		Items:       []payos.Item{item},
		Description: plan.Description,
		ReturnUrl:   p.cfg.ReturnURL,
		CancelUrl:   p.cfg.CancelURL,
	}

	resp, err := payos.CreatePaymentLink(body)
	if err != nil {
		return "", fmt.Errorf("payos create link: %w", err)
	}
	return resp.CheckoutUrl, nil
}
