package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/saxenaaman628/qa-escrow-ledger/internal/errs"
)

func (ctl *Controller) CreateAnswerHandler(c *gin.Context) {
	questionID, ok := parseQuestionID(c)
	if !ok {
		return
	}

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

	id, err := ctl.dispatcher.CreateAnswer(c.Request.Context(), questionID, input.Content, accountID, input.AttachedAmount)
	if err != nil {
		ctl.respondLedgerError(c, err)
		return
	}

	ctl.log.WithCaller(accountID).WithField("question_id", questionID).WithField("answer_id", id).Info("answer created")
	c.JSON(http.StatusOK, gin.H{"message": "Answer created", "answer_id": id})
}

func (ctl *Controller) UpvoteAnswerHandler(c *gin.Context) {
	questionID, ok := parseQuestionID(c)
	if !ok {
		return
	}
	answerID, ok := parseAnswerID(c)
	if !ok {
		return
	}

	var input struct {
		AttachedAmount int64 `json:"attached_amount" binding:"required"`
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

	if err := ctl.dispatcher.UpvoteAnswer(c.Request.Context(), questionID, answerID, accountID, input.AttachedAmount); err != nil {
		ctl.respondLedgerError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Upvote recorded"})
}

func (ctl *Controller) SetCorrectAnswerHandler(c *gin.Context) {
	questionID, ok := parseQuestionID(c)
	if !ok {
		return
	}
	answerID, ok := parseAnswerID(c)
	if !ok {
		return
	}

	accountID := c.GetString("accountID")
	if accountID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := ctl.dispatcher.SetCorrectAnswer(c.Request.Context(), questionID, answerID, accountID); err != nil {
		ctl.respondLedgerError(c, err)
		return
	}

	ctl.log.WithCaller(accountID).WithField("question_id", questionID).WithField("answer_id", answerID).Info("correct answer selected")
	c.JSON(http.StatusOK, gin.H{"message": "Correct answer selected"})
}

// respondLedgerError maps each ledger error to its HTTP status.
func (ctl *Controller) respondLedgerError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, errs.ErrInsufficientDeposit), errors.Is(err, errs.ErrWrongAttachedAmount):
		status = http.StatusBadRequest
	case errors.Is(err, errs.ErrQuestionNotFound), errors.Is(err, errs.ErrAnswerNotFound):
		status = http.StatusNotFound
	case errors.Is(err, errs.ErrUnauthorized), errors.Is(err, errs.ErrSelfRewardForbidden):
		status = http.StatusForbidden
	case errors.Is(err, errs.ErrAlreadyResolved):
		status = http.StatusConflict
	}
	if status == http.StatusInternalServerError {
		ctl.log.WithError(err).Error("ledger call failed")
	}
	c.JSON(status, gin.H{"error": err.Error()})
}
