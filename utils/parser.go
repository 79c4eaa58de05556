package utils

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/merchantkit/paygate/types"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// ParseTransactionRequest parses and validates a typed TransactionRequest
// from JSON.
func ParseTransactionRequest(data []byte) (*types.TransactionRequest, error) {
	var req types.TransactionRequest

	if err := json.Unmarshal(data, &req); err != nil {
		return nil, &types.PaygateError{
			Code:    types.ErrInvalidRequest,
			Message: fmt.Sprintf("failed to parse transaction request: %v", err),
		}
	}

	// Validate using struct tags
	if err := validate.Struct(&req); err != nil {
		return nil, &types.PaygateError{
			Code:    types.ErrInvalidRequest,
			Message: fmt.Sprintf("validation failed: %v", err),
		}
	}

	if req.CreditCard != nil {
		if err := ValidateCardNumber(req.CreditCard.Number); err != nil {
			return nil, &types.PaygateError{
				Code:    types.ErrInvalidRequest,
				Message: err.Error(),
			}
		}
		if req.CreditCard.Expiration != "" {
			if err := ValidateExpiration(req.CreditCard.Expiration); err != nil {
				return nil, &types.PaygateError{
					Code:    types.ErrInvalidRequest,
					Message: err.Error(),
				}
			}
		}
	}

	if _, err := ValidateAmount(req.Amount); err != nil {
		return nil, &types.PaygateError{
			Code:    types.ErrInvalidRequest,
			Message: err.Error(),
		}
	}

	return &req, nil
}

// ParseCredential parses a Credential from JSON and checks both parts are set.
func ParseCredential(data []byte) (*types.Credential, error) {
	var cred types.Credential

	if err := json.Unmarshal(data, &cred); err != nil {
		return nil, &types.PaygateError{
			Code:    types.ErrConfigError,
			Message: fmt.Sprintf("failed to parse credential: %v", err),
		}
	}

	if err := cred.Validate(); err != nil {
		return nil, err
	}

	return &cred, nil
}

// ParseConfig parses a Config from JSON
func ParseConfig(data []byte) (*types.Config, error) {
	var config types.Config

	if err := json.Unmarshal(data, &config); err != nil {
		return nil, &types.PaygateError{
			Code:    types.ErrConfigError,
			Message: fmt.Sprintf("failed to parse config: %v", err),
		}
	}

	return &config, nil
}

// SerializeTransactionRequest converts a TransactionRequest to JSON
func SerializeTransactionRequest(req *types.TransactionRequest) ([]byte, error) {
	return json.Marshal(req)
}

// PrettyJSON formats JSON with consistent indentation, for display
func PrettyJSON(data interface{}) ([]byte, error) {
	return json.MarshalIndent(data, "", "  ")
}

// CompactJSON removes whitespace from JSON
func CompactJSON(data []byte) ([]byte, error) {
	var buffer bytes.Buffer
	if err := json.Compact(&buffer, data); err != nil {
		return nil, err
	}
	return buffer.Bytes(), nil
}
