package services

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"bananina-api/models"
	"bananina-api/repositories"

	"gopkg.in/gomail.v2"
)

type EmailService struct {
	dialer   *gomail.Dialer
	userRepo *repositories.UserRepository
}

// NewEmailService returns an error when SMTP is not configured; checkout
// treats a nil mailer as "confirmation emails disabled".
func NewEmailService() (*EmailService, error) {
	smtpHost := os.Getenv("SMTP_HOST")
	smtpPort := os.Getenv("SMTP_PORT")
	smtpUser := os.Getenv("SMTP_USER")
	smtpPass := os.Getenv("SMTP_PASS")

	if smtpHost == "" || smtpUser == "" || smtpPass == "" {
		return nil, fmt.Errorf("SMTP configuration missing")
	}

	port, err := strconv.Atoi(smtpPort)
	if err != nil {
		port = 587
	}

	return &EmailService{
		dialer:   gomail.NewDialer(smtpHost, port, smtpUser, smtpPass),
		userRepo: repositories.NewUserRepository(),
	}, nil
}

func (s *EmailService) SendOrderConfirmation(userID int, order *models.OrderDetail) error {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return fmt.Errorf("failed to resolve recipient: %w", err)
	}

	var lines strings.Builder
	for _, item := range order.Items {
		fmt.Fprintf(&lines, "<tr><td>%s</td><td>%d</td><td>Rp %d</td><td>Rp %d</td></tr>",
			item.ProductName, item.Quantity, item.Price, item.Subtotal)
	}

	body := fmt.Sprintf(`
<html>
<body style="font-family: Arial, sans-serif;">
	<h2>Thank you for your order!</h2>
	<p>Order #%d has been received and is now <strong>%s</strong>.</p>
	<table border="1" cellpadding="6" cellspacing="0">
		<tr><th>Product</th><th>Qty</th><th>Price</th><th>Subtotal</th></tr>
		%s
	</table>
	<p>Subtotal: Rp %d<br>Shipping: Rp %d<br><strong>Total: Rp %d</strong></p>
	<p>Shipping to: %s, %s, %s %s</p>
</body>
</html>`,
		order.ID, order.Status, lines.String(),
		order.Subtotal, order.ShippingCost, order.Total,
		order.ShippingAddress.RecipientName, order.ShippingAddress.AddressLine1,
		order.ShippingAddress.City, order.ShippingAddress.PostalCode)

	m := gomail.NewMessage()
	m.SetHeader("From", os.Getenv("SMTP_FROM"))
	m.SetHeader("To", user.Email)
	m.SetHeader("Subject", fmt.Sprintf("Order Confirmation #%d - Bananina", order.ID))
	m.SetBody("text/html", body)

	return s.dialer.DialAndSend(m)
}
