package types

import (
	"fmt"
	"strings"
	"time"
)

// Environment selects the gateway API a client talks to.
// The value is the base URL of the REST API.
type Environment string

const (
	Sandbox    Environment = "https://sandbox.gw.merchantkit.io/api/v2"
	Production Environment = "https://gw.merchantkit.io/api/v2"
)

func (e Environment) BaseURL() string {
	return string(e)
}

// Name returns a short label for the environment, used in logs and metrics.
func (e Environment) Name() string {
	switch e {
	case Sandbox:
		return "sandbox"
	case Production:
		return "production"
	default:
		return "custom"
	}
}

// Credential holds the merchant API key pair issued by the gateway.
// It is never persisted by this library; it only feeds hash computations.
type Credential struct {
	APIKey string `json:"apiKey" validate:"required"`
	APIPin string `json:"apiPin" validate:"required"`
}

// Validate checks that both parts of the credential are non-empty after trimming.
func (c *Credential) Validate() error {
	if strings.TrimSpace(c.APIKey) == "" {
		return InvalidArgument("apiKey", "apiKey must not be empty")
	}
	if strings.TrimSpace(c.APIPin) == "" {
		return InvalidArgument("apiPin", "apiPin must not be empty")
	}
	return nil
}

// TransactionCommand represents the gateway transaction commands.
type TransactionCommand string

const (
	CommandSale     TransactionCommand = "sale"
	CommandAuthOnly TransactionCommand = "authonly"
	CommandCapture  TransactionCommand = "capture"
	CommandVoid     TransactionCommand = "void"
	CommandRefund   TransactionCommand = "refund"
	CommandCheck    TransactionCommand = "check"
)

// CreditCard is the nested card object the transactions endpoint expects.
type CreditCard struct {
	// Number is the PAN, digits only after normalization.
	Number string `json:"number" validate:"required"`

	// Cardholder name as printed on the card.
	Cardholder string `json:"cardholder,omitempty"`

	// Expiration in MMYY.
	Expiration string `json:"expiration,omitempty"`

	// CVC is the card security code.
	CVC string `json:"cvc,omitempty"`

	// AVSStreet and AVSZip feed the gateway's address verification.
	AVSStreet string `json:"avs_street,omitempty"`
	AVSZip    string `json:"avs_zip,omitempty"`
}

// TransactionRequest is the typed form of a transaction document. Callers that
// assemble documents dynamically can use the normalize package instead and
// submit a plain JSON object.
type TransactionRequest struct {
	Command     string      `json:"command" validate:"required"`
	Amount      string      `json:"amount" validate:"required"`
	Invoice     string      `json:"invoice,omitempty"`
	Description string      `json:"description,omitempty"`
	CreditCard  *CreditCard `json:"creditcard,omitempty"`
}

// AVSResult is the address verification outcome reported by the gateway.
type AVSResult struct {
	ResultCode string `json:"result_code"`
	Result     string `json:"result"`
}

// CVCResult is the card security code check outcome reported by the gateway.
type CVCResult struct {
	ResultCode string `json:"result_code"`
	Result     string `json:"result"`
}

// TransactionResponse is the gateway's reply to a transaction request.
type TransactionResponse struct {
	Result     string     `json:"result"`
	ResultCode string     `json:"result_code"`
	RefNum     string     `json:"refnum,omitempty"`
	Key        string     `json:"key,omitempty"`
	AuthCode   string     `json:"authcode,omitempty"`
	AVS        *AVSResult `json:"avs,omitempty"`
	CVC        *CVCResult `json:"cvc,omitempty"`
	Error      string     `json:"error,omitempty"`
	ErrorCode  string     `json:"error_code,omitempty"`
}

// Approved reports whether the gateway approved the transaction.
func (r *TransactionResponse) Approved() bool {
	return r.ResultCode == "A"
}

// Config contains global configuration for the paygate library.
type Config struct {
	Environment   Environment   `json:"environment,omitempty"`
	Timeout       time.Duration `json:"timeout,omitempty"`
	SeedLength    int           `json:"seedLength,omitempty"`
	LogLevel      string        `json:"logLevel,omitempty"`
	EnableMetrics bool          `json:"enableMetrics,omitempty"`
}

// Error types
type PaygateError struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

func (e PaygateError) Error() string {
	return e.Message
}

// Common error codes
const (
	ErrInvalidArgument = "INVALID_ARGUMENT"
	ErrInvalidRequest  = "INVALID_REQUEST"
	ErrNetworkError    = "NETWORK_ERROR"
	ErrConfigError     = "CONFIG_ERROR"
)

// InvalidArgument builds the error returned for every precondition violation,
// carrying the offending parameter's name in Data.
func InvalidArgument(param, format string, args ...interface{}) *PaygateError {
	return &PaygateError{
		Code:    ErrInvalidArgument,
		Message: fmt.Sprintf(format, args...),
		Data:    param,
	}
}
