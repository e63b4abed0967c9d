package domain

import "errors"

var (
	// ErrInternalServerError will throw if any the Internal Server Error happen
	ErrInternalServerError = errors.New("Internal Server Error")
	// ErrNotFound will throw if the requested item is not exists
	ErrNotFound = errors.New("Your requested Item is not found")
	// ErrBadParamInput will throw if the given request-body or params is not valid
	ErrBadParamInput = errors.New("Given Param is not valid")

	// offer state machine
	ErrDuplicateOffer  = errors.New("unresolved offer already exists for asset")
	ErrInvalidWindow   = errors.New("offer window is degenerate")
	ErrOfferNotFound   = errors.New("offer not found")
	ErrAlreadyResulted = errors.New("offer already resulted")
	ErrOutsideWindow   = errors.New("purchase outside offer window")

	// fee computation
	ErrInvalidShare = errors.New("secondary share out of range")
	ErrFeeUnderflow = errors.New("discount exceeds platform fee")

	// settlement
	ErrInsufficientFunds       = errors.New("insufficient primary funds supplied")
	ErrInsufficientAllowance   = errors.New("insufficient secondary allowance")
	ErrContractCallerForbidden = errors.New("contract principals may not purchase")
	ErrPaused                  = errors.New("marketplace is paused")
	ErrApprovalRevoked         = errors.New("registry approval absent or revoked")
	ErrReentrantCall           = errors.New("reentrant call rejected")

	// authorization
	ErrNotOwner = errors.New("caller is not asset owner")
	ErrNotAdmin = errors.New("require admin or agent privilege")

	// configuration
	ErrConfigInvariant = errors.New("discount rate must stay below both fee rates")

	// collaborators
	ErrAssetNotFound = errors.New("asset not found in registry")

	// request error
	ErrInvalidAddress = errors.New("Invalid address")
)
