package qrcode

import (
	"testing"

	"pawtag/internal/domain/entity"
	domainerrors "pawtag/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQRTagService_EncodeDecode_RoundTrip(t *testing.T) {
	service := NewQRTagService(256, "M")

	identity := entity.PetIdentity{
		PetID:   "pet-1",
		OwnerID: "owner-1",
		Name:    "Rex",
	}

	payload, err := service.Encode(identity)
	require.NoError(t, err)
	assert.JSONEq(t, `{"petId":"pet-1","ownerId":"owner-1","name":"Rex"}`, payload)

	decoded, err := service.Decode(payload)
	require.NoError(t, err)
	assert.Equal(t, identity, *decoded)
}

func TestQRTagService_Encode_MissingField(t *testing.T) {
	service := NewQRTagService(256, "M")

	tests := []struct {
		name     string
		identity entity.PetIdentity
	}{
		{name: "missing pet id", identity: entity.PetIdentity{OwnerID: "owner-1", Name: "Rex"}},
		{name: "missing owner id", identity: entity.PetIdentity{PetID: "pet-1", Name: "Rex"}},
		{name: "missing name", identity: entity.PetIdentity{PetID: "pet-1", OwnerID: "owner-1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.Encode(tt.identity)
			require.ErrorIs(t, err, domainerrors.ErrInvalidPayload)
		})
	}
}

func TestQRTagService_Decode_Invalid(t *testing.T) {
	service := NewQRTagService(256, "M")

	tests := []struct {
		name    string
		payload string
	}{
		{name: "not json", payload: "definitely not json"},
		{name: "empty", payload: ""},
		{name: "wrong type", payload: `{"petId":42,"ownerId":"owner-1","name":"Rex"}`},
		{name: "missing key", payload: `{"petId":"pet-1","name":"Rex"}`},
		{name: "empty value", payload: `{"petId":"pet-1","ownerId":"","name":"Rex"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.Decode(tt.payload)
			require.ErrorIs(t, err, domainerrors.ErrInvalidPayload)
		})
	}
}

// Payloads written by older clients may carry extra keys; they decode fine.
func TestQRTagService_Decode_IgnoresUnknownKeys(t *testing.T) {
	service := NewQRTagService(256, "M")

	decoded, err := service.Decode(`{"petId":"pet-1","ownerId":"owner-1","name":"Rex","version":2}`)

	require.NoError(t, err)
	assert.Equal(t, "pet-1", decoded.PetID)
}

func TestQRTagService_TagPNG(t *testing.T) {
	service := NewQRTagService(128, "H")

	png, err := service.TagPNG(entity.PetIdentity{
		PetID:   "pet-1",
		OwnerID: "owner-1",
		Name:    "Rex",
	})

	require.NoError(t, err)
	require.Greater(t, len(png), 8)
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}, png[:8])
}

func TestQRTagService_TagPNG_InvalidIdentity(t *testing.T) {
	service := NewQRTagService(128, "M")

	_, err := service.TagPNG(entity.PetIdentity{PetID: "pet-1"})

	require.ErrorIs(t, err, domainerrors.ErrInvalidPayload)
}
