package responses

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/getAlby/nftmarket.go/lib/ledger"
	"github.com/getAlby/nftmarket.go/lib/service"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestBadAuthErrorsNotAllowedForSentry(t *testing.T) {
	badAuthErrResponse := echo.NewHTTPError(http.StatusUnauthorized, echo.Map{
		"error":   true,
		"code":    1,
		"message": "bad auth",
	})

	isAllowed := isErrAllowedForSentry(badAuthErrResponse)
	assert.False(t, isAllowed)
}

func TestMarketErrorsNotAllowedForSentry(t *testing.T) {
	err := fmt.Errorf("%w: 5 < 10", service.ErrInsufficientPayment)
	assert.False(t, isErrAllowedForSentry(err))
}

func TestNonErrorResponseErrorsAllowedForSentry(t *testing.T) {
	err := errors.New("random error")

	isAllowed := isErrAllowedForSentry(err)
	assert.True(t, isAllowed)
}

func TestMarketErrorMapping(t *testing.T) {
	for _, tc := range []struct {
		err    error
		status int
	}{
		{service.ErrInvalidPrice, http.StatusBadRequest},
		{service.ErrInvalidFeePercentage, http.StatusBadRequest},
		{service.ErrInsufficientPayment, http.StatusBadRequest},
		{service.ErrAlreadyListed, http.StatusBadRequest},
		{service.ErrNotSeller, http.StatusForbidden},
		{service.ErrNotAdministrator, http.StatusForbidden},
		{service.ErrNotListed, http.StatusNotFound},
		{fmt.Errorf("%w: list: %w", service.ErrActionBusy, context.DeadlineExceeded), http.StatusServiceUnavailable},
		{fmt.Errorf("%w: custody: %w", service.ErrTransferRejected, errors.New("not approved")), http.StatusConflict},
		{fmt.Errorf("%w: custody: %w", service.ErrTransferRejected, ledger.ErrUnknownAsset), http.StatusConflict},
		{ledger.ErrUnknownAsset, http.StatusNotFound},
		{ledger.ErrAssetExists, http.StatusBadRequest},
	} {
		response, ok := MarketError(tc.err)
		assert.True(t, ok, tc.err.Error())
		assert.Equal(t, tc.status, response.HttpStatusCode, tc.err.Error())
	}

	response, ok := MarketError(errors.New("db is gone"))
	assert.False(t, ok)
	assert.Equal(t, GeneralServerError, response)
}

func TestHTTPErrorHandler(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	HTTPErrorHandler(service.ErrNotListed, c)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), NotListedError.Message)

	rec = httptest.NewRecorder()
	c = e.NewContext(req, rec)
	HTTPErrorHandler(errors.New("boom"), c)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
