package gateway

import (
	"context"
	"log/slog"
	"time"

	"github.com/presensia/presensi-backend-go/internal/domain/attendance"
	"github.com/presensia/presensi-backend-go/internal/domain/device"
	"github.com/presensia/presensi-backend-go/internal/domain/employee"
	"github.com/presensia/presensi-backend-go/internal/domain/unknownserial"
	"github.com/presensia/presensi-backend-go/internal/pkg/clock"
	"github.com/presensia/presensi-backend-go/internal/pkg/relay"
)

// EventGateway turns broker scan notifications into attendance outcomes. Every
// failure mode maps to a structured outcome value; the broker cannot interpret an
// HTTP error and never retries, so nothing here surfaces as a transport failure.
type EventGateway interface {
	// HandleScan resolves a badge serial and records the event.
	HandleScan(ctx context.Context, serialID string, eventTime time.Time, deviceCode string) attendance.Outcome

	// RecordForEmployee records an event for a known employee id, bypassing serial
	// resolution. Used by operator-driven manual entry.
	RecordForEmployee(ctx context.Context, employeeID int64, eventTime time.Time, deviceCode string) attendance.Outcome
}

type GatewayImpl struct {
	devices   device.Registry
	directory employee.Directory
	pending   unknownserial.PendingRegistry
	engine    attendance.Engine
	notifier  relay.Notifier
	clk       clock.Clock
}

func NewGateway(
	devices device.Registry,
	directory employee.Directory,
	pending unknownserial.PendingRegistry,
	engine attendance.Engine,
	notifier relay.Notifier,
	clk clock.Clock,
) EventGateway {
	return &GatewayImpl{
		devices:   devices,
		directory: directory,
		pending:   pending,
		engine:    engine,
		notifier:  notifier,
		clk:       clk,
	}
}

// HandleScan implements EventGateway.
func (g *GatewayImpl) HandleScan(ctx context.Context, serialID string, eventTime time.Time, deviceCode string) attendance.Outcome {
	serialID = employee.NormalizeSerial(serialID)
	outcome := g.handleScan(ctx, serialID, eventTime, deviceCode)
	g.acknowledge(ctx, serialID, outcome)
	return outcome
}

func (g *GatewayImpl) handleScan(ctx context.Context, serialID string, eventTime time.Time, deviceCode string) attendance.Outcome {
	if deviceCode != "" {
		dev, err := g.devices.FindByCode(ctx, deviceCode)
		if err != nil {
			slog.Error("failed to look up device", "device_code", deviceCode, "error", err)
			return attendance.Failed("device lookup failed")
		}
		if dev == nil {
			return attendance.DeviceRejected(attendance.ReasonDeviceNotFound)
		}
		if !dev.Active() {
			return attendance.DeviceRejected(attendance.ReasonDeviceInactive)
		}
	}

	emp, err := g.directory.FindBySerialID(ctx, serialID)
	if err != nil {
		slog.Error("failed to resolve serial", "serial_id", serialID, "error", err)
		return attendance.Failed("serial lookup failed")
	}
	if emp == nil {
		return g.registerUnknown(ctx, serialID)
	}

	return g.engine.RecordEvent(ctx, emp.ID, eventTime, deviceCode)
}

// RecordForEmployee implements EventGateway.
func (g *GatewayImpl) RecordForEmployee(ctx context.Context, employeeID int64, eventTime time.Time, deviceCode string) attendance.Outcome {
	exists, err := g.directory.Exists(ctx, employeeID)
	if err != nil {
		slog.Error("failed to verify employee", "employee_id", employeeID, "error", err)
		return attendance.Failed("employee lookup failed")
	}
	if !exists {
		return attendance.EmployeeNotFound()
	}

	return g.engine.RecordEvent(ctx, employeeID, eventTime, deviceCode)
}

// registerUnknown files the serial for admin review. Registration is idempotent: a
// serial already waiting in the queue is not duplicated, and both cases produce the
// same outcome so the device display stays consistent across repeated scans.
func (g *GatewayImpl) registerUnknown(ctx context.Context, serialID string) attendance.Outcome {
	existing, err := g.pending.FindPending(ctx, serialID)
	if err != nil {
		slog.Error("failed to check unknown serial queue", "serial_id", serialID, "error", err)
		return attendance.Failed("unknown serial lookup failed")
	}
	if existing != nil {
		return attendance.UnknownSerial()
	}

	if _, err := g.pending.CreatePending(ctx, serialID, nil); err != nil {
		slog.Error("failed to register unknown serial", "serial_id", serialID, "error", err)
		return attendance.Failed("unknown serial registration failed")
	}

	slog.Info("unknown serial registered for review", "serial_id", serialID)
	return attendance.UnknownSerial()
}

// acknowledge pushes the outcome back to the broker so the device can display it.
// Best effort: the attendance record already committed, an ack failure only logs.
func (g *GatewayImpl) acknowledge(ctx context.Context, serialID string, outcome attendance.Outcome) {
	if g.notifier == nil {
		return
	}

	ack := relay.Ack{
		SerialID: serialID,
		Kind:     string(outcome.Kind),
		Reason:   outcome.Reason,
		SentAt:   g.clk.Now().Format(timestampLayout),
	}
	if err := g.notifier.NotifyOutcome(ctx, ack); err != nil {
		slog.Error("failed to acknowledge scan to broker", "serial_id", serialID, "error", err)
	}
}
