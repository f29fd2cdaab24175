package qrcode

import (
	"encoding/json"
	"fmt"
	"strings"

	"atlas/config"
	"atlas/internal/domain/service"

	"github.com/skip2/go-qrcode"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	baseURL              string
}

// QRCodeData represents the QR code payload for a shared answer.
type QRCodeData struct {
	QuestionID string `json:"question_id"`
	Type       string `json:"type"`
	URL        string `json:"url"`
}

const answerQRType = "answer"

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(cfg *config.Config) service.QRCodeService {
	size := 256
	level := "M"
	baseURL := ""
	if cfg.QRCode != nil {
		if cfg.QRCode.Size > 0 {
			size = cfg.QRCode.Size
		}
		level = cfg.QRCode.ErrorCorrectionLevel
		baseURL = strings.TrimSuffix(cfg.QRCode.BaseURL, "/")
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: recoveryLevel(level),
		baseURL:              baseURL,
	}
}

func recoveryLevel(errorCorrectionLevel string) qrcode.RecoveryLevel {
	switch errorCorrectionLevel {
	case "L":
		return qrcode.Low
	case "M":
		return qrcode.Medium
	case "Q":
		return qrcode.High
	case "H":
		return qrcode.Highest
	default:
		return qrcode.Medium
	}
}

// GenerateAnswerQR generates a QR code linking back to a logged answer
func (s *qrcodeService) GenerateAnswerQR(questionID string) ([]byte, error) {
	data := QRCodeData{
		QuestionID: questionID,
		Type:       answerQRType,
		URL:        fmt.Sprintf("%s/answer?question=%s", s.baseURL, questionID),
	}

	jsonData, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal QR code data: %w", err)
	}

	qrCode, err := qrcode.New(string(jsonData), s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}

// ParseAnswerQR parses QR code data and returns the question ID
func (s *qrcodeService) ParseAnswerQR(qrData string) (string, error) {
	var data QRCodeData
	if err := json.Unmarshal([]byte(qrData), &data); err != nil {
		return "", fmt.Errorf("failed to unmarshal QR code data: %w", err)
	}

	if data.Type != answerQRType {
		return "", fmt.Errorf("invalid QR code type: %s", data.Type)
	}
	if data.QuestionID == "" {
		return "", fmt.Errorf("QR code carries no question ID")
	}

	return data.QuestionID, nil
}
