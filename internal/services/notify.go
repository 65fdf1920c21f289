package services

import (
	"fmt"
	"log"
	"strings"

	"github.com/wneessen/go-mail"

	"furnishfusion_back_end/internal/config"
	"furnishfusion_back_end/internal/models"
)

// Notifier signale une commande placée à la boutique. Best effort : l'échec
// est loggé et avalé, jamais remonté au client.
type Notifier interface {
	OrderPlaced(order models.Order, userName, userEmail string)
}

type NoopNotifier struct{}

func (NoopNotifier) OrderPlaced(models.Order, string, string) {}

// NewNotifier retourne le notifier SMTP quand il est configuré, sinon un noop.
func NewNotifier(cfg *config.Config) Notifier {
	if cfg.SMTPHost == "" {
		log.Println("⚠️ SMTP non configuré — notifications de commande désactivées")
		return NoopNotifier{}
	}
	return &MailNotifier{
		Host:     cfg.SMTPHost,
		Port:     cfg.SMTPPort,
		Username: cfg.SMTPUsername,
		Password: cfg.SMTPPassword,
		From:     cfg.NotifyFrom,
		To:       cfg.NotifyTo,
	}
}

type MailNotifier struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	To       string
}

func (n *MailNotifier) OrderPlaced(order models.Order, userName, userEmail string) {
	go func() {
		if err := n.send(order, userName, userEmail); err != nil {
			log.Printf("⚠️ Erreur envoi notification commande #%d : %v", order.ID, err)
		}
	}()
}

func (n *MailNotifier) send(order models.Order, userName, userEmail string) error {
	msg := mail.NewMsg()
	if err := msg.From(n.From); err != nil {
		return err
	}
	if err := msg.To(n.To); err != nil {
		return err
	}
	msg.Subject(fmt.Sprintf("New Order #%d - FurnishFusion", order.ID))

	var body strings.Builder
	fmt.Fprintf(&body, "Order #%d placed by %s (%s)\n\n", order.ID, userName, userEmail)
	for _, item := range order.Items {
		fmt.Fprintf(&body, "- product %d × %d @ %.2f\n", item.ProductID, item.Quantity, item.Price)
	}
	fmt.Fprintf(&body, "\nTotal: %.2f\n", order.Total)
	msg.SetBodyString(mail.TypeTextPlain, body.String())

	client, err := mail.NewClient(n.Host,
		mail.WithPort(n.Port),
		mail.WithSMTPAuth(mail.SMTPAuthLogin),
		mail.WithUsername(n.Username),
		mail.WithPassword(n.Password),
		mail.WithTLSPolicy(mail.TLSMandatory),
	)
	if err != nil {
		return err
	}

	log.Printf("📤 Notification commande #%d → %s", order.ID, n.To)
	return client.DialAndSend(msg)
}
