package delivery

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/nfty-labs/marketapi/domain"
	"github.com/nfty-labs/marketapi/service/query"
)

type JsonResponseStatus string

const (
	JsonResponseStatusSuccess JsonResponseStatus = "success"
	JsonResponseStatusFail    JsonResponseStatus = "fail"
)

type JsonResponse struct {
	Data   interface{}        `json:"data"`
	Status JsonResponseStatus `json:"status"`
}

func MakeJsonResp(c echo.Context, status int, data interface{}) error {
	if err, ok := data.(error); ok {
		switch {
		case errors.Is(err, domain.ErrNotFound),
			errors.Is(err, domain.ErrOfferNotFound),
			errors.Is(err, domain.ErrAssetNotFound),
			errors.Is(err, query.ErrNotFound):
			status = http.StatusNotFound
		case errors.Is(err, domain.ErrDuplicateOffer),
			errors.Is(err, domain.ErrAlreadyResulted):
			status = http.StatusConflict
		case errors.Is(err, domain.ErrNotOwner),
			errors.Is(err, domain.ErrNotAdmin),
			errors.Is(err, domain.ErrContractCallerForbidden):
			status = http.StatusForbidden
		case errors.Is(err, domain.ErrInvalidShare),
			errors.Is(err, domain.ErrInvalidWindow),
			errors.Is(err, domain.ErrConfigInvariant),
			errors.Is(err, domain.ErrBadParamInput),
			errors.Is(err, domain.ErrInvalidAddress):
			status = http.StatusBadRequest
		case errors.Is(err, domain.ErrInsufficientFunds),
			errors.Is(err, domain.ErrInsufficientAllowance):
			status = http.StatusPaymentRequired
		case errors.Is(err, domain.ErrPaused),
			errors.Is(err, domain.ErrOutsideWindow),
			errors.Is(err, domain.ErrApprovalRevoked),
			errors.Is(err, domain.ErrFeeUnderflow):
			status = http.StatusUnprocessableEntity
		case errors.Is(err, domain.ErrReentrantCall):
			status = http.StatusTooManyRequests
		}
		data = err.Error()
	}

	if status >= 400 {
		return c.JSON(status, JsonResponse{data, JsonResponseStatusFail})
	}

	if status >= 200 && status < 300 {
		return c.JSON(status, JsonResponse{data, JsonResponseStatusSuccess})
	}

	return c.JSON(status, data)
}
