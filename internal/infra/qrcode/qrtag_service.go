// Package qrcode implements the pet identity tag codec. The payload is the
// raw JSON triple the mobile clients already display and scan; it carries
// no signature or ownership proof.
package qrcode

import (
	"encoding/json"

	"pawtag/internal/domain/entity"
	domainerrors "pawtag/internal/domain/errors"
	"pawtag/internal/domain/service"
	"pawtag/internal/errors"

	"github.com/skip2/go-qrcode"
)

type qrTagService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// NewQRTagService creates a new QR tag service instance
func NewQRTagService(size int, errorCorrectionLevel string) service.QRTagService {
	// Set error correction level
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	return &qrTagService{
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// Encode serializes a pet identity into the tag payload
func (s *qrTagService) Encode(identity entity.PetIdentity) (string, error) {
	if identity.PetID == "" || identity.OwnerID == "" || identity.Name == "" {
		return "", domainerrors.ErrInvalidPayload
	}

	data, err := json.Marshal(identity)
	if err != nil {
		return "", errors.Wrap(err, "failed to marshal tag payload")
	}

	return string(data), nil
}

// Decode parses a tag payload. Unknown keys are ignored; the three
// required keys must all be present and non-empty.
func (s *qrTagService) Decode(payload string) (*entity.PetIdentity, error) {
	var identity entity.PetIdentity
	if err := json.Unmarshal([]byte(payload), &identity); err != nil {
		return nil, domainerrors.ErrInvalidPayload
	}

	if identity.PetID == "" || identity.OwnerID == "" || identity.Name == "" {
		return nil, domainerrors.ErrInvalidPayload
	}

	return &identity, nil
}

// TagPNG renders the encoded payload as a QR code image
func (s *qrTagService) TagPNG(identity entity.PetIdentity) ([]byte, error) {
	payload, err := s.Encode(identity)
	if err != nil {
		return nil, err
	}

	code, err := qrcode.New(payload, s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := code.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}
