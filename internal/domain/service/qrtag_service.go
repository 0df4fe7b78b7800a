package service

import (
	"pawtag/internal/domain/entity"
)

// QRTagService defines the interface for the pet identity tag codec.
//
// The payload carries no signature or ownership proof beyond key presence;
// any party can fabricate a payload claiming an arbitrary owner. This is a
// known gap inherited from the product design, not something the codec
// silently fixes.
type QRTagService interface {
	// Encode serializes a pet identity into the textual tag payload.
	Encode(identity entity.PetIdentity) (string, error)

	// Decode parses a tag payload. It is the exact inverse of Encode for
	// any valid payload; unknown keys are ignored, missing required keys
	// fail.
	Decode(payload string) (*entity.PetIdentity, error)

	// TagPNG renders the encoded payload as a QR code image.
	TagPNG(identity entity.PetIdentity) ([]byte, error)
}
