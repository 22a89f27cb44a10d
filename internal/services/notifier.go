package service

import (
	"context"
	"fmt"
	"html"

	"github.com/aaravmahajanofficial/ecommerce-cart-service/internal/models"
	"github.com/aaravmahajanofficial/ecommerce-cart-service/pkg/sendGrid"
)

// OrderNotifier tells a customer their order went through.
type OrderNotifier interface {
	OrderPlaced(ctx context.Context, user *models.User, order *models.Order) error
}

type emailNotifier struct {
	emailService sendGrid.EmailService
}

func NewEmailNotifier(emailService sendGrid.EmailService) OrderNotifier {
	return &emailNotifier{emailService: emailService}
}

func (n *emailNotifier) OrderPlaced(ctx context.Context, user *models.User, order *models.Order) error {
	if user.Email == "" {
		return nil
	}

	req := &models.EmailNotificationRequest{
		To:      user.Email,
		Subject: fmt.Sprintf("Order #%d confirmed", order.ID),
		Content: fmt.Sprintf("Hi %s,\n\nyour order #%d is on its way to %s.\nTotal: %d\n", order.Name, order.ID, order.Address, order.Total),
		HTMLContent: fmt.Sprintf("<p>Hi %s,</p><p>your order #%d is on its way to %s.</p><p>Total: %d</p>",
			html.EscapeString(order.Name), order.ID, html.EscapeString(order.Address), order.Total),
	}

	return n.emailService.Send(ctx, req)
}

type noopNotifier struct{}

// NewNoopNotifier is used when outbound mail is disabled.
func NewNoopNotifier() OrderNotifier {
	return noopNotifier{}
}

func (noopNotifier) OrderPlaced(context.Context, *models.User, *models.Order) error {
	return nil
}
