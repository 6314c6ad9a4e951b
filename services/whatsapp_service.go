package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/lin-avraham/Pizza2/config"
	"github.com/lin-avraham/Pizza2/repository"
	"github.com/lin-avraham/Pizza2/utils"
	"github.com/sirupsen/logrus"
)

const orderReadyTemplate = "Hi, your order number %d is ready \n We will be happy to write a review of your order, \n enjoy your meal !"

// MessageReceipt is the provider's acknowledgement of a queued message.
type MessageReceipt struct {
	SID    string `json:"sid"`
	Status string `json:"status"`
	To     string `json:"to"`
}

type twilioErrorBody struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// WhatsAppService sends order notifications through the Twilio messages API.
type WhatsAppService struct {
	config     config.TwilioConfig
	httpClient *http.Client
	orders     repository.OrderRepository
}

func NewWhatsAppService(cfg config.TwilioConfig, orders repository.OrderRepository) *WhatsAppService {
	return &WhatsAppService{
		config: cfg,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		orders: orders,
	}
}

// ValidateConfig reports the first missing provider setting.
func (ws *WhatsAppService) ValidateConfig() error {
	if ws.config.AccountSID == "" {
		return fmt.Errorf("TWILIO_ACCOUNT_SID is not set")
	}
	if ws.config.AuthToken == "" {
		return fmt.Errorf("TWILIO_AUTH_TOKEN is not set")
	}
	if ws.config.From == "" {
		return fmt.Errorf("WHATSAPP_FROM is not set")
	}
	if ws.config.To == "" {
		return fmt.Errorf("WHATSAPP_TO is not set")
	}
	return nil
}

// OrderReadyMessage is the fixed text sent for an order.
func OrderReadyMessage(orderID uint) string {
	return fmt.Sprintf(orderReadyTemplate, orderID)
}

// SendOrderReady loads the order and sends the ready message to the fixed
// recipient. A missing order returns ErrNotFound without calling out.
func (ws *WhatsAppService) SendOrderReady(ctx context.Context, orderID uint) (*MessageReceipt, error) {
	order, err := ws.orders.FindByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("load order: %w", err)
	}
	if err := ws.ValidateConfig(); err != nil {
		return nil, err
	}

	endpoint := fmt.Sprintf("%s/2010-04-01/Accounts/%s/Messages.json",
		strings.TrimRight(ws.config.APIBase, "/"), url.PathEscape(ws.config.AccountSID))

	form := url.Values{}
	form.Set("From", ws.config.From)
	form.Set("To", ws.config.To)
	form.Set("Body", OrderReadyMessage(order.ID))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("error creating request: %w", err)
	}
	req.SetBasicAuth(ws.config.AccountSID, ws.config.AuthToken)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := ws.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error making request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		perr := &ProviderError{StatusCode: resp.StatusCode}
		var tb twilioErrorBody
		if json.Unmarshal(body, &tb) == nil {
			perr.Code = tb.Code
			perr.Message = tb.Message
		}
		return nil, perr
	}

	var receipt MessageReceipt
	if err := json.Unmarshal(body, &receipt); err != nil {
		return nil, fmt.Errorf("error unmarshaling response: %w", err)
	}

	utils.InfoLogger.WithFields(logrus.Fields{
		"order_id": order.ID,
		"sid":      receipt.SID,
		"status":   receipt.Status,
	}).Info("WhatsApp notification sent")
	return &receipt, nil
}
