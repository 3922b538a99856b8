package alerts

import (
	"context"

	"go.uber.org/zap"

	"go-sentinel/types"
)

// DispatchRequest is what the transport layer needs to deliver one alert.
type DispatchRequest struct {
	CaseID   string
	Target   string
	Message  string
	Severity types.Severity
}

// Dispatcher is the notification transport port. Real integration
// (push/SMS/national app) lives behind this interface; delivery failures
// are reported through the returned status, not an error, so the audit
// trail stays complete.
type Dispatcher interface {
	Dispatch(ctx context.Context, req DispatchRequest) types.AlertStatus
}

// SimulatedDispatcher logs the delivery and reports success. Stands in for
// the national-app integration.
type SimulatedDispatcher struct {
	Log *zap.Logger
}

func (d *SimulatedDispatcher) Dispatch(ctx context.Context, req DispatchRequest) types.AlertStatus {
	if ctx.Err() != nil {
		return types.AlertFailed
	}
	if d.Log != nil {
		d.Log.Info("dispatching notification",
			zap.String("case_id", req.CaseID),
			zap.String("target", req.Target),
			zap.String("severity", string(req.Severity)))
	}
	return types.AlertSent
}
