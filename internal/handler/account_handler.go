package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/dan-tmpa/devops-capstone-project/shared/cqrs"
	"github.com/dan-tmpa/devops-capstone-project/shared/middleware"
	"github.com/dan-tmpa/devops-capstone-project/shared/models"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Location placeholder returned on create until responses link to
// GET /accounts/{id}.
const createdLocation = "/"

// AccountCommander defines the write-side operations used by AccountHandler.
type AccountCommander interface {
	CreateAccount(context.Context, cqrs.CreateAccountCommand) (*models.Account, error)
	UpdateAccount(context.Context, cqrs.UpdateAccountCommand) (*models.Account, error)
	DeleteAccount(context.Context, cqrs.DeleteAccountCommand) error
}

// AccountQuerier defines the read-side operations used by AccountHandler.
type AccountQuerier interface {
	GetAccount(context.Context, cqrs.GetAccountQuery) (*models.Account, error)
	ListAccounts(context.Context, cqrs.ListAccountsQuery) ([]models.Account, error)
}

// AccountHandler handles account-related HTTP requests.
type AccountHandler struct {
	commands AccountCommander
	queries  AccountQuerier
	log      *zap.Logger
}

// AccountRequest is the body accepted by create and update. It carries no id:
// an id in the payload is ignored.
type AccountRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Address     string `json:"address"`
	PhoneNumber string `json:"phone_number"`
}

func NewAccountHandler(commands AccountCommander, queries AccountQuerier, log *zap.Logger) *AccountHandler {
	return &AccountHandler{commands: commands, queries: queries, log: log}
}

func (h *AccountHandler) CreateAccount(c *gin.Context) {
	log := middleware.Logger(c, h.log)
	log.Info("Request to create an Account")

	if !checkContentType(c, log, gin.MIMEJSON) {
		return
	}

	var req AccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.RespondWithError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	account, err := h.commands.CreateAccount(c.Request.Context(), cqrs.CreateAccountCommand{
		Name:        req.Name,
		Email:       req.Email,
		Address:     req.Address,
		PhoneNumber: req.PhoneNumber,
	})
	if err != nil {
		log.Error("Failed to create account", zap.Error(err))
		middleware.RespondWithError(c, http.StatusInternalServerError, "Failed to create account")
		return
	}

	c.Header("Location", createdLocation)
	c.JSON(http.StatusCreated, account)
}

func (h *AccountHandler) ListAccounts(c *gin.Context) {
	log := middleware.Logger(c, h.log)
	log.Info("Request to list Accounts")

	accounts, err := h.queries.ListAccounts(c.Request.Context(), cqrs.ListAccountsQuery{})
	if err != nil {
		log.Error("Failed to list accounts", zap.Error(err))
		middleware.RespondWithError(c, http.StatusInternalServerError, "Failed to list accounts")
		return
	}
	if accounts == nil {
		accounts = []models.Account{}
	}

	log.Info("accounts being returned", zap.Int("count", len(accounts)))
	c.JSON(http.StatusOK, accounts)
}

func (h *AccountHandler) GetAccount(c *gin.Context) {
	id, ok := accountID(c)
	if !ok {
		return
	}
	log := middleware.Logger(c, h.log)
	log.Info("Request to read an Account", zap.Int64("id", id))

	account, err := h.queries.GetAccount(c.Request.Context(), cqrs.GetAccountQuery{ID: id})
	if err != nil {
		if errors.Is(err, models.ErrAccountNotFound) {
			respondNotFound(c, id)
			return
		}
		log.Error("Failed to read account", zap.Int64("id", id), zap.Error(err))
		middleware.RespondWithError(c, http.StatusInternalServerError, "Failed to read account")
		return
	}

	c.JSON(http.StatusOK, account)
}

// UpdateAccount replaces the account's fields with the request body. Unlike
// create, the content type is not checked. The account is looked up before
// the body is parsed, so a missing account wins over a malformed body.
func (h *AccountHandler) UpdateAccount(c *gin.Context) {
	id, ok := accountID(c)
	if !ok {
		return
	}
	log := middleware.Logger(c, h.log)
	log.Info("Request to update an Account", zap.Int64("id", id))

	if _, err := h.queries.GetAccount(c.Request.Context(), cqrs.GetAccountQuery{ID: id}); err != nil {
		h.respondUpdateError(c, log, id, err)
		return
	}

	var req AccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.RespondWithError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	account, err := h.commands.UpdateAccount(c.Request.Context(), cqrs.UpdateAccountCommand{
		ID:          id,
		Name:        req.Name,
		Email:       req.Email,
		Address:     req.Address,
		PhoneNumber: req.PhoneNumber,
	})
	if err != nil {
		h.respondUpdateError(c, log, id, err)
		return
	}

	c.JSON(http.StatusOK, account)
}

func (h *AccountHandler) respondUpdateError(c *gin.Context, log *zap.Logger, id int64, err error) {
	if errors.Is(err, models.ErrAccountNotFound) {
		respondNotFound(c, id)
		return
	}
	log.Error("Failed to update account", zap.Int64("id", id), zap.Error(err))
	middleware.RespondWithError(c, http.StatusInternalServerError, "Failed to update account")
}

// DeleteAccount removes the account. Deleting an unknown id answers 405, not
// 404.
func (h *AccountHandler) DeleteAccount(c *gin.Context) {
	id, ok := accountID(c)
	if !ok {
		return
	}
	log := middleware.Logger(c, h.log)
	log.Info("Request to delete an Account", zap.Int64("id", id))

	err := h.commands.DeleteAccount(c.Request.Context(), cqrs.DeleteAccountCommand{ID: id})
	if err != nil {
		if errors.Is(err, models.ErrAccountNotFound) {
			middleware.RespondWithError(c, http.StatusMethodNotAllowed, "Method not allowed")
			return
		}
		log.Error("Failed to delete account", zap.Int64("id", id), zap.Error(err))
		middleware.RespondWithError(c, http.StatusInternalServerError, "Failed to delete account")
		return
	}

	c.Status(http.StatusNoContent)
}

// accountID parses the :id path segment. Only unsigned decimal integers match
// the route; anything else is answered as an unknown route.
func accountID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 63)
	if err != nil {
		middleware.RespondWithError(c, http.StatusNotFound, "Not Found")
		return 0, false
	}
	return int64(id), true
}

func respondNotFound(c *gin.Context, id int64) {
	middleware.RespondWithError(c, http.StatusNotFound, fmt.Sprintf("Account with id [%d] could not be found.", id))
}

// checkContentType requires the Content-Type header to equal mediaType
// exactly; parameters such as charset are not accepted. Answers 415 otherwise.
func checkContentType(c *gin.Context, log *zap.Logger, mediaType string) bool {
	contentType := c.GetHeader("Content-Type")
	if contentType == mediaType {
		return true
	}
	log.Error("Invalid Content-Type", zap.String("content_type", contentType))
	middleware.RespondWithError(c, http.StatusUnsupportedMediaType, "Content-Type must be "+mediaType)
	return false
}
