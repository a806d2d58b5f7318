package inventory

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/osse101/pogoutil/internal/domain"
	"github.com/osse101/pogoutil/internal/logger"
	"github.com/osse101/pogoutil/internal/validation"
)

// ErrInvalidResponse is returned when saved response bytes fail validation or decoding
var ErrInvalidResponse = errors.New("invalid inventory response")

// Decoder reads saved getInventory responses
type Decoder interface {
	Decode(data []byte) (*domain.InventoryResponse, error)
	Load(path string) (*domain.InventoryResponse, error)
}

type decoder struct {
	schemaValidator validation.SchemaValidator
}

// NewDecoder creates a Decoder that validates input against the embedded response schema
func NewDecoder() Decoder {
	return &decoder{
		schemaValidator: validation.NewSchemaValidator(),
	}
}

// Load reads and decodes a response file
func (d *decoder) Load(path string) (*domain.InventoryResponse, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read inventory file %s: %w", path, err)
	}

	resp, err := d.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return resp, nil
}

// Decode validates data against the response schema before unmarshalling it
func (d *decoder) Decode(data []byte) (*domain.InventoryResponse, error) {
	if err := d.schemaValidator.ValidateBytes(data, validation.SchemaInventoryResponse); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidResponse, err)
	}

	var resp domain.InventoryResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidResponse, err)
	}

	entries := 0
	if resp.InventoryDelta != nil {
		entries = len(resp.InventoryDelta.InventoryItems)
	}
	logger.Debug("Decoded inventory response", "bytes", len(data), "entries", entries)

	return &resp, nil
}
