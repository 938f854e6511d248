package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/saxenaaman628/qa-escrow-ledger/internal/logger"
)

// Controller holds the HTTP handlers for the ledger API.
type Controller struct {
	dispatcher *Dispatcher
	balances   BalanceReader
	log        *logger.Logger
}

func New(dispatcher *Dispatcher, balances BalanceReader, log *logger.Logger) *Controller {
	return &Controller{dispatcher: dispatcher, balances: balances, log: log}
}

func (ctl *Controller) CreateQuestionHandler(c *gin.Context) {
	var input struct {
		Content        string `json:"content" binding:"required"`
		AttachedAmount int64  `json:"attached_amount" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	accountID := c.GetString("accountID")
	if accountID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	id, err := ctl.dispatcher.CreateQuestion(c.Request.Context(), input.Content, accountID, input.AttachedAmount)
	if err != nil {
		ctl.respondLedgerError(c, err)
		return
	}

	ctl.log.WithCaller(accountID).WithField("question_id", id).Info("question created")
	c.JSON(http.StatusOK, gin.H{"message": "Question created", "question_id": id})
}

func (ctl *Controller) ListQuestionsHandler(c *gin.Context) {
	c.JSON(http.StatusOK, ctl.dispatcher.ListQuestions())
}

// parseQuestionID parses the :id route param. A malformed id reads as a
// reference to a question that cannot exist.
func parseQuestionID(c *gin.Context) (uint32, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid question id"})
		return 0, false
	}
	return uint32(id), true
}

func parseAnswerID(c *gin.Context) (uint32, bool) {
	id, err := strconv.ParseUint(c.Param("answer_id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid answer id"})
		return 0, false
	}
	return uint32(id), true
}
