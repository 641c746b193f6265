package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/alimikegami/pos-microservices/marketplace-service/config"
	"github.com/alimikegami/pos-microservices/marketplace-service/internal/domain"
	"github.com/alimikegami/pos-microservices/marketplace-service/internal/dto"
	"github.com/alimikegami/pos-microservices/marketplace-service/internal/repository"
	"github.com/alimikegami/pos-microservices/marketplace-service/pkg/errs"
	"github.com/alimikegami/pos-microservices/marketplace-service/pkg/utils"
	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog/log"
	"gopkg.in/gomail.v2"
)

// MailSender delivers a prepared message. utils.SendEmail bound to the SMTP
// settings satisfies it.
type MailSender func(message *gomail.Message) error

type OrderServiceImpl struct {
	orderRepo repository.OrderRepository
	publisher EventPublisher
	smtp      config.SMTPConfig
	sendMail  MailSender
}

// CreateOrderService wires order placement. sendMail may be nil, in which
// case confirmation mails are not sent.
func CreateOrderService(orderRepo repository.OrderRepository, publisher EventPublisher, smtp config.SMTPConfig, sendMail MailSender) OrderService {
	return &OrderServiceImpl{
		orderRepo: orderRepo,
		publisher: publisher,
		smtp:      smtp,
		sendMail:  sendMail,
	}
}

func (s *OrderServiceImpl) CreateOrder(ctx context.Context, req dto.OrderRequest) (resp dto.OrderResponse, err error) {
	if strings.TrimSpace(req.Email) == "" || strings.TrimSpace(req.FirstName) == "" || strings.TrimSpace(req.LastName) == "" {
		return resp, fmt.Errorf("%w: email, fname and lname are required", errs.ErrClient)
	}

	now := time.Now().UTC()
	order := domain.Order{
		ReferenceNumber: ulid.Make().String(),
		Email:           strings.TrimSpace(req.Email),
		FirstName:       strings.TrimSpace(req.FirstName),
		LastName:        strings.TrimSpace(req.LastName),
		Contact:         req.Contact,
		Address:         req.Address,
		Street:          req.Street,
		City:            req.City,
		Postal:          req.Postal,
		PaymentMethod:   req.PaymentMethod,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	order.ID, err = s.orderRepo.AddOrder(ctx, order)
	if err != nil {
		return
	}

	resp = toOrderResponse(order)

	s.sendConfirmation(ctx, order)
	publishEvent(ctx, s.publisher, dto.EventOrderCreated, order.ReferenceNumber, resp)

	return resp, nil
}

func (s *OrderServiceImpl) sendConfirmation(ctx context.Context, order domain.Order) {
	if s.sendMail == nil || !s.smtp.Enabled() {
		return
	}

	body := fmt.Sprintf(
		"<p>Hi %s,</p><p>We received your order <b>%s</b> on %s.</p><p>It will be shipped to %s, %s, %s %s.</p>",
		order.FirstName,
		order.ReferenceNumber,
		utils.ConvertDateTimeToHumanReadableFormat(order.CreatedAt),
		order.Address, order.Street, order.City, order.Postal,
	)

	msg := utils.NewHTMLMessage(s.smtp.Sender, order.Email, "Order "+order.ReferenceNumber+" received", body)
	if err := s.sendMail(msg); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "CreateOrder").Str("reference_number", order.ReferenceNumber).Msg("confirmation mail not sent")
	}
}
