package service

// QRCodeService defines the interface for answer share QR generation and
// parsing.
type QRCodeService interface {
	// GenerateAnswerQR renders a PNG QR code whose payload links back to a
	// logged question's answer view.
	GenerateAnswerQR(questionID string) ([]byte, error)

	// ParseAnswerQR parses QR payload data and returns the question ID.
	ParseAnswerQR(qrData string) (string, error)
}
