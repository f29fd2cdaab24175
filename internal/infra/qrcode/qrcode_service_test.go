package qrcode

import (
	"encoding/json"
	"testing"

	"atlas/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(level string) *qrcodeService {
	cfg := &config.Config{
		QRCode: &config.QRCodeConfig{
			Size:                 256,
			ErrorCorrectionLevel: level,
			BaseURL:              "http://localhost:8080/",
		},
	}

	return NewQRCodeService(cfg).(*qrcodeService)
}

func TestNewQRCodeService(t *testing.T) {
	tests := []struct {
		name                 string
		errorCorrectionLevel string
	}{
		{"Low error correction", "L"},
		{"Medium error correction", "M"},
		{"High error correction", "Q"},
		{"Highest error correction", "H"},
		{"Default error correction", "invalid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := newTestService(tt.errorCorrectionLevel)
			assert.NotNil(t, service)
		})
	}
}

func TestQRCodeService_NilConfigDefaults(t *testing.T) {
	service := NewQRCodeService(&config.Config{})

	qrBytes, err := service.GenerateAnswerQR("q_1")
	require.NoError(t, err)
	assert.NotEmpty(t, qrBytes)
}

func TestQRCodeService_GenerateAnswerQR(t *testing.T) {
	service := newTestService("M")

	qrBytes, err := service.GenerateAnswerQR("q_1")
	require.NoError(t, err)
	assert.NotEmpty(t, qrBytes)

	// Verify it's a valid PNG (starts with PNG magic number)
	assert.Equal(t, byte(0x89), qrBytes[0])
	assert.Equal(t, byte(0x50), qrBytes[1])
	assert.Equal(t, byte(0x4E), qrBytes[2])
	assert.Equal(t, byte(0x47), qrBytes[3])
}

func TestQRCodeService_ParseAnswerQR(t *testing.T) {
	service := newTestService("M")

	data := QRCodeData{
		QuestionID: "q_1",
		Type:       "answer",
		URL:        "http://localhost:8080/answer?question=q_1",
	}
	jsonData, err := json.Marshal(data)
	require.NoError(t, err)

	parsedID, err := service.ParseAnswerQR(string(jsonData))
	require.NoError(t, err)
	assert.Equal(t, "q_1", parsedID)
}

func TestQRCodeService_ParseAnswerQR_InvalidJSON(t *testing.T) {
	service := newTestService("M")

	_, err := service.ParseAnswerQR("invalid json")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to unmarshal QR code data")
}

func TestQRCodeService_ParseAnswerQR_InvalidType(t *testing.T) {
	service := newTestService("M")

	data := QRCodeData{
		QuestionID: "q_1",
		Type:       "invalid_type",
	}
	jsonData, err := json.Marshal(data)
	require.NoError(t, err)

	_, err = service.ParseAnswerQR(string(jsonData))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid QR code type")
}

func TestQRCodeService_ParseAnswerQR_MissingID(t *testing.T) {
	service := newTestService("M")

	data := QRCodeData{Type: "answer"}
	jsonData, err := json.Marshal(data)
	require.NoError(t, err)

	_, err = service.ParseAnswerQR(string(jsonData))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "no question ID")
}

func TestQRCodeService_PayloadURL(t *testing.T) {
	service := newTestService("M")

	data := QRCodeData{
		QuestionID: "q_42",
		Type:       "answer",
		URL:        "http://localhost:8080/answer?question=q_42",
	}
	jsonData, err := json.Marshal(data)
	require.NoError(t, err)

	parsedID, err := service.ParseAnswerQR(string(jsonData))
	require.NoError(t, err)
	assert.Equal(t, "q_42", parsedID)
	// Trailing slash of the configured base URL is trimmed.
	assert.Equal(t, "http://localhost:8080", service.baseURL)
}
