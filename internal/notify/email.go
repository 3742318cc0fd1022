package notify

import (
	"context"
	"log/slog"
	"strings"

	"fooddeliver/internal/domain"
)

// EmailNotifier пишет подтверждение заказа в структурированный лог.
// В демо SMTP не настраивается; письмо — это запись в логе, как и в
// остальных уведомлениях сервиса.
type EmailNotifier struct {
	log *slog.Logger
}

func NewEmailNotifier(log *slog.Logger) *EmailNotifier {
	if log == nil {
		log = slog.Default()
	}
	return &EmailNotifier{log: log}
}

// OrderConfirmed логирует «письмо» с подтверждением; заказ не зависит от
// успеха уведомления
func (n *EmailNotifier) OrderConfirmed(ctx context.Context, o *domain.Order) {
	if o.Email == "" {
		n.log.InfoContext(ctx, "no email provided, skipping order confirmation")
		return
	}
	items := make([]string, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, it.Name)
	}
	n.log.InfoContext(ctx, "order confirmation email",
		"to", o.Email,
		"order_id", shortID(o.ID),
		"items", strings.Join(items, ", "),
		"discount", o.Discount,
		"total", o.Total,
	)
}

func shortID(id string) string {
	if len(id) > 8 {
		return strings.ToUpper(id[:8])
	}
	return strings.ToUpper(id)
}
