package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/avc/account-marketplace/internal/domain"
)

// LogEventSink реализует domain.EventSink записью событий в лог.
// Слушатели (уведомления, интеграции) подключаются к логу переходов,
// сами переходы от них не зависят.
type LogEventSink struct {
	logger *zap.Logger
}

// NewLogEventSink создает новый LogEventSink
func NewLogEventSink(logger *zap.Logger) *LogEventSink {
	return &LogEventSink{logger: logger}
}

// Emit записывает событие жизненного цикла заказа
func (s *LogEventSink) Emit(_ context.Context, event domain.Event) {
	s.logger.Info("order event",
		zap.String("event", string(event.Name)),
		zap.String("order_id", event.OrderID.String()),
		zap.String("actor_id", event.ActorID.String()))
}
