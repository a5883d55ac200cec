package v2controllers

import (
	"net/http"
	"time"

	"github.com/getAlby/nftmarket.go/lib/responses"
	"github.com/getAlby/nftmarket.go/lib/service"
	"github.com/labstack/echo/v4"
)

const balanceEntriesLimit = 50

// LedgerController : balances and assets of the ledger the marketplace settles against
type LedgerController struct {
	svc *service.MarketService
}

func NewLedgerController(svc *service.MarketService) *LedgerController {
	return &LedgerController{svc: svc}
}

type BalanceEntry struct {
	Amount    int64     `json:"amount"`
	EntryType string    `json:"entry_type"`
	From      string    `json:"from"`
	To        string    `json:"to"`
	CreatedAt time.Time `json:"created_at"`
}

type BalanceResponse struct {
	Address string         `json:"address"`
	Balance int64          `json:"balance"`
	Entries []BalanceEntry `json:"entries"`
}

type DepositRequestBody struct {
	Address string `json:"address" validate:"required"`
	Amount  int64  `json:"amount" validate:"gt=0"`
}

// Balance godoc
// @Summary      Retrieve balance
// @Description  Current balance of the caller and the latest transaction entries
// @Produce      json
// @Tags         Account
// @Success      200  {object}  BalanceResponse
// @Failure      500  {object}  responses.ErrorResponse
// @Router       /v2/balance [get]
// @Security     OAuth2Password
func (controller *LedgerController) Balance(c echo.Context) error {
	address := c.Get("Address").(string)
	ctx := c.Request().Context()
	balance, err := controller.svc.Balance(ctx, address)
	if err != nil {
		c.Logger().Errorf("Error fetching balance for %s: %v", address, err)
		return err
	}
	entries, err := controller.svc.TransactionEntriesFor(ctx, address, balanceEntriesLimit)
	if err != nil {
		c.Logger().Errorf("Error fetching transaction entries for %s: %v", address, err)
		return err
	}
	response := &BalanceResponse{
		Address: address,
		Balance: balance,
		Entries: make([]BalanceEntry, len(entries)),
	}
	for i, entry := range entries {
		response.Entries[i] = BalanceEntry{
			Amount:    entry.Amount,
			EntryType: entry.EntryType,
			From:      entry.DebitAccount.Address,
			To:        entry.CreditAccount.Address,
			CreatedAt: entry.CreatedAt,
		}
	}
	return c.JSON(http.StatusOK, response)
}

// Deposit godoc
// @Summary      Deposit value
// @Description  Credits an address with newly issued value. Requires the admin token
// @Accept       json
// @Produce      json
// @Tags         Admin
// @Param        DepositRequestBody  body      DepositRequestBody  True  "Deposit"
// @Success      200                 {object}  BalanceResponse
// @Failure      400                 {object}  responses.ErrorResponse
// @Router       /v2/admin/deposits [post]
func (controller *LedgerController) Deposit(c echo.Context) error {
	var body DepositRequestBody
	if err := c.Bind(&body); err != nil {
		c.Logger().Errorf("Failed to load deposit request body: %v", err)
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}
	if err := c.Validate(&body); err != nil {
		c.Logger().Errorf("Invalid deposit request body: %v", err)
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}
	account, err := controller.svc.DepositValue(c.Request().Context(), body.Address, body.Amount)
	if err != nil {
		c.Logger().Errorf("Failed to deposit %d to %s: %v", body.Amount, body.Address, err)
		return errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, &BalanceResponse{
		Address: account.Address,
		Balance: account.Balance,
		Entries: []BalanceEntry{},
	})
}
