package gateway

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeEnvelope(t *testing.T) {
	body := []byte(`{
		"m2m:sgn": {
			"m2m:nev": {
				"m2m:rep": {
					"m2m:cin": {
						"con": "{\"serial_id\":\"AB12CD34\",\"device_code\":\"DEV-1\",\"timestamp\":\"2025-03-14 08:10:00\"}"
					}
				}
			}
		}
	}`)

	payload, err := DecodeEnvelope(body)
	require.NoError(t, err)
	assert.Equal(t, "AB12CD34", payload.SerialID)
	assert.Equal(t, "DEV-1", payload.DeviceCode)
	assert.Equal(t, "2025-03-14 08:10:00", payload.Timestamp)
}

func TestDecodeEnvelope_SerialOnlyContent(t *testing.T) {
	body := []byte(`{"m2m:sgn":{"m2m:nev":{"m2m:rep":{"m2m:cin":{"con":"{\"serial_id\":\"AB12CD34\"}"}}}}}`)

	payload, err := DecodeEnvelope(body)
	require.NoError(t, err)
	assert.Equal(t, "AB12CD34", payload.SerialID)
	assert.Empty(t, payload.DeviceCode)
	assert.Empty(t, payload.Timestamp)
}

func TestDecodeEnvelope_MissingPath(t *testing.T) {
	cases := map[string]string{
		"no signal":         `{}`,
		"no event":          `{"m2m:sgn":{}}`,
		"no representation": `{"m2m:sgn":{"m2m:nev":{}}}`,
		"no instance":       `{"m2m:sgn":{"m2m:nev":{"m2m:rep":{}}}}`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := DecodeEnvelope([]byte(body))
			assert.ErrorIs(t, err, ErrInvalidEnvelope)
		})
	}
}

func TestDecodeEnvelope_EmptyContent(t *testing.T) {
	body := []byte(`{"m2m:sgn":{"m2m:nev":{"m2m:rep":{"m2m:cin":{"con":""}}}}}`)

	_, err := DecodeEnvelope(body)
	assert.ErrorIs(t, err, ErrEmptyContent)
}

func TestDecodeEnvelope_MalformedContent(t *testing.T) {
	body := []byte(`{"m2m:sgn":{"m2m:nev":{"m2m:rep":{"m2m:cin":{"con":"humidity=42"}}}}}`)

	_, err := DecodeEnvelope(body)
	assert.Error(t, err)
}

func TestScanPayloadEventTime(t *testing.T) {
	now := time.Date(2025, 3, 14, 9, 30, 0, 0, time.Local)

	t.Run("explicit timestamp", func(t *testing.T) {
		p := ScanPayload{Timestamp: "2025-03-14 08:10:00"}
		got, err := p.EventTime(now)
		require.NoError(t, err)
		assert.Equal(t, time.Date(2025, 3, 14, 8, 10, 0, 0, time.Local), got)
	})

	t.Run("missing timestamp falls back to now", func(t *testing.T) {
		p := ScanPayload{}
		got, err := p.EventTime(now)
		require.NoError(t, err)
		assert.Equal(t, now, got)
	})

	t.Run("malformed timestamp", func(t *testing.T) {
		p := ScanPayload{Timestamp: "14/03/2025 08:10"}
		_, err := p.EventTime(now)
		assert.Error(t, err)
	})
}
