package controller

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

// BalanceReader reads external payout balances (tokens already paid out
// of the ledger's custody).
type BalanceReader interface {
	Balance(ctx context.Context, accountID string) (int64, error)
}

func (ctl *Controller) GetBalanceHandler(c *gin.Context) {
	account := c.Param("account")
	if account == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Please pass account"})
		return
	}

	balance, err := ctl.balances.Balance(c.Request.Context(), account)
	if err != nil {
		ctl.log.WithError(err).Error("balance lookup failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch balance"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"account": account, "balance": balance})
}
