package gateway

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// timestampLayout is the local wall-clock format scan devices emit. No zone suffix;
// the server's location applies.
const timestampLayout = "2006-01-02 15:04:05"

var (
	ErrInvalidEnvelope = fmt.Errorf("invalid notification envelope")
	ErrEmptyContent    = fmt.Errorf("notification content is empty")
)

// envelope mirrors the oneM2M subscription notification the broker posts to the
// monitor endpoint. The resource path is m2m:sgn > m2m:nev > m2m:rep > m2m:cin,
// whose con attribute holds the scan payload as an embedded JSON string.
type envelope struct {
	Signal *struct {
		Event *struct {
			Representation *struct {
				Instance *struct {
					Content string `json:"con"`
				} `json:"m2m:cin"`
			} `json:"m2m:rep"`
		} `json:"m2m:nev"`
	} `json:"m2m:sgn"`
}

// ScanPayload is the decoded content of a badge scan notification. Timestamp and
// DeviceCode are optional; older device firmware sends only the serial.
type ScanPayload struct {
	SerialID   string `json:"serial_id"`
	DeviceCode string `json:"device_code"`
	Timestamp  string `json:"timestamp"`
}

// DecodeEnvelope walks the oneM2M notification structure and parses the embedded
// scan payload out of the content instance.
func DecodeEnvelope(body []byte) (ScanPayload, error) {
	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return ScanPayload{}, fmt.Errorf("failed to decode notification body: %w", err)
	}

	if env.Signal == nil || env.Signal.Event == nil ||
		env.Signal.Event.Representation == nil || env.Signal.Event.Representation.Instance == nil {
		return ScanPayload{}, ErrInvalidEnvelope
	}

	con := strings.TrimSpace(env.Signal.Event.Representation.Instance.Content)
	if con == "" {
		return ScanPayload{}, ErrEmptyContent
	}

	var payload ScanPayload
	if err := json.Unmarshal([]byte(con), &payload); err != nil {
		return ScanPayload{}, fmt.Errorf("failed to decode scan content: %w", err)
	}

	payload.SerialID = strings.TrimSpace(payload.SerialID)
	if payload.SerialID == "" {
		return ScanPayload{}, ErrEmptyContent
	}

	return payload, nil
}

// EventTime resolves the payload timestamp against now, which stands in when the
// device sent none.
func (p ScanPayload) EventTime(now time.Time) (time.Time, error) {
	if strings.TrimSpace(p.Timestamp) == "" {
		return now, nil
	}
	t, err := time.ParseInLocation(timestampLayout, p.Timestamp, now.Location())
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse scan timestamp %q: %w", p.Timestamp, err)
	}
	return t, nil
}
