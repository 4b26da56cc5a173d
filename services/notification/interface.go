package notification

import (
	"medcrm/utils"

	"go.uber.org/zap"
)

// Notifier surfaces operational events to the dashboard audit trail. The
// severity levels mirror the toast levels the dashboard renders.
type Notifier interface {
	Success(event string, fields ...zap.Field)
	Info(event string, fields ...zap.Field)
	Warning(event string, fields ...zap.Field)
	Error(event string, fields ...zap.Field)
}

// LogNotifier writes notifications to the structured log. Channel delivery
// (email, SMS) plugs in behind the same interface later.
type LogNotifier struct{}

func NewLogNotifier() *LogNotifier {
	return &LogNotifier{}
}

func (n *LogNotifier) Success(event string, fields ...zap.Field) {
	utils.GetLogger().Info(event, append(fields, zap.String("severity", "success"))...)
}

func (n *LogNotifier) Info(event string, fields ...zap.Field) {
	utils.GetLogger().Info(event, append(fields, zap.String("severity", "info"))...)
}

func (n *LogNotifier) Warning(event string, fields ...zap.Field) {
	utils.GetLogger().Warn(event, append(fields, zap.String("severity", "warning"))...)
}

func (n *LogNotifier) Error(event string, fields ...zap.Field) {
	utils.GetLogger().Error(event, append(fields, zap.String("severity", "error"))...)
}
