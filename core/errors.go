package core

import (
	"errors"
	"fmt"
	"math/big"
	"strconv"
)

// ErrorCode int
type ErrorCode int

const (
	// ErrUnknown unknown
	ErrUnknown ErrorCode = 100000
	// ErrOperationForbidden operation forbidden
	ErrOperationForbidden ErrorCode = 100001
	// ErrReentrantCall a guarded operation was entered while another was in flight
	ErrReentrantCall ErrorCode = 100002
	// ErrConfigMismatch asset and feed lists differ in length
	ErrConfigMismatch ErrorCode = 100003

	// ErrAssetNotListed asset is not in the supported set
	ErrAssetNotListed ErrorCode = 100100
	// ErrInvalidAmount amount must be more than zero
	ErrInvalidAmount ErrorCode = 100101
	// ErrInsufficientCollateral requested more collateral than recorded
	ErrInsufficientCollateral ErrorCode = 100102
	// ErrInsufficientDebt requested to retire more debt than recorded
	ErrInsufficientDebt ErrorCode = 100103
	// ErrTransferFailed a token or collateral transfer was declined
	ErrTransferFailed ErrorCode = 100104
	// ErrMintFailed the synthetic token declined to mint
	ErrMintFailed ErrorCode = 100105

	// ErrHealthFactorBroken the caller would be insolvent after the call
	ErrHealthFactorBroken ErrorCode = 100200
	// ErrHealthFactorSafe liquidation target is already solvent
	ErrHealthFactorSafe ErrorCode = 100201
	// ErrHealthFactorNotImproved liquidation left the target insolvent
	ErrHealthFactorNotImproved ErrorCode = 100202
)

func (e ErrorCode) String() string {
	return strconv.Itoa(int(e))
}

func (e ErrorCode) Error() string {
	return e.String()
}

// HealthFactorError carries the computed health factor at the moment of
// rejection so callers can reconstruct the decision.
type HealthFactorError struct {
	Code         ErrorCode
	HealthFactor *big.Int
}

func (e *HealthFactorError) Error() string {
	return fmt.Sprintf("%s: health factor %s", e.Code, e.HealthFactor)
}

// WithHealthFactor wraps code with the rejected score.
func WithHealthFactor(code ErrorCode, healthFactor *big.Int) error {
	return &HealthFactorError{
		Code:         code,
		HealthFactor: new(big.Int).Set(healthFactor),
	}
}

// CodeOf extracts the ErrorCode from err, ErrUnknown if none.
func CodeOf(err error) ErrorCode {
	var hf *HealthFactorError
	if errors.As(err, &hf) {
		return hf.Code
	}

	var code ErrorCode
	if errors.As(err, &code) {
		return code
	}

	return ErrUnknown
}
