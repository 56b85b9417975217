package handlers

import (
	"errors"
	"log"
	"net/http"
	request "restock_service/internal/adapter/http/dto/request"
	response "restock_service/internal/adapter/http/dto/response"
	"restock_service/internal/domain/entities"
	"restock_service/internal/usecase"
	"restock_service/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidSessionPayload = pkg.NewDomainErrorSimple("INVALID_SESSION_INPUT", "Invalid session payload", http.StatusBadRequest)
	errInvalidItemPayload    = pkg.NewDomainErrorSimple("INVALID_ITEM_INPUT", "Invalid item payload", http.StatusBadRequest)
)

// RestockSessionHandler handles HTTP requests for restock sessions.

type RestockSessionHandler struct {
	usecase usecase.IRestockSessionUseCase
}

func NewRestockSessionHandler(uc usecase.IRestockSessionUseCase) *RestockSessionHandler {
	return &RestockSessionHandler{usecase: uc}
}

// StartSession godoc
// @Summary      Start a restock session
// @Tags         sessions
// @Accept       json
// @Produce      json
// @Param        payload  body      request.CreateSessionRequest  true  "Session"
// @Success      201      {object}  response.SessionResponse
// @Failure      400      {object}  pkg.HTTPError
// @Router       /sessions [post]
func (h *RestockSessionHandler) StartSession(c *gin.Context) {
	var payload request.CreateSessionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidSessionPayload.HTTPStatus, errInvalidSessionPayload.ToHTTPError())
		return
	}

	s, err := h.usecase.StartSession(c.Request.Context(), payload.UserID, payload.Name)
	if err != nil {
		h.fail(c, "start", err)
		return
	}
	c.JSON(http.StatusCreated, response.FromSession(s))
}

// ListSessions godoc
// @Summary      List the restock sessions of a user
// @Tags         sessions
// @Produce      json
// @Param        user_id  query     string  true  "User ID"
// @Success      200      {array}   response.SessionResponse
// @Failure      400      {object}  pkg.HTTPError
// @Router       /sessions [get]
func (h *RestockSessionHandler) ListSessions(c *gin.Context) {
	sessions, err := h.usecase.ListSessions(c.Request.Context(), c.Query("user_id"))
	if err != nil {
		h.fail(c, "list", err)
		return
	}
	c.JSON(http.StatusOK, response.FromSessions(sessions))
}

// GetSession godoc
// @Summary      Get a restock session
// @Tags         sessions
// @Produce      json
// @Param        id   path      string  true  "Session ID"
// @Success      200  {object}  response.SessionResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /sessions/{id} [get]
func (h *RestockSessionHandler) GetSession(c *gin.Context) {
	s, err := h.usecase.GetSession(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, "get", err)
		return
	}
	c.JSON(http.StatusOK, response.FromSession(s))
}

// RenameSession godoc
// @Summary      Rename a restock session
// @Tags         sessions
// @Accept       json
// @Produce      json
// @Param        id       path      string                        true  "Session ID"
// @Param        payload  body      request.RenameSessionRequest  true  "Name"
// @Success      200      {object}  response.SessionResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      404      {object}  pkg.HTTPError
// @Router       /sessions/{id} [patch]
func (h *RestockSessionHandler) RenameSession(c *gin.Context) {
	var payload request.RenameSessionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidSessionPayload.HTTPStatus, errInvalidSessionPayload.ToHTTPError())
		return
	}

	s, err := h.usecase.RenameSession(c.Request.Context(), c.Param("id"), payload.Name)
	if err != nil {
		h.fail(c, "rename", err)
		return
	}
	c.JSON(http.StatusOK, response.FromSession(s))
}

// DeleteSession godoc
// @Summary      Delete a restock session
// @Tags         sessions
// @Param        id   path  string  true  "Session ID"
// @Success      204
// @Failure      404  {object}  pkg.HTTPError
// @Router       /sessions/{id} [delete]
func (h *RestockSessionHandler) DeleteSession(c *gin.Context) {
	if err := h.usecase.DeleteSession(c.Request.Context(), c.Param("id")); err != nil {
		h.fail(c, "delete", err)
		return
	}
	c.Status(http.StatusNoContent)
}

// AddItem godoc
// @Summary      Add a product to a draft session
// @Tags         items
// @Accept       json
// @Produce      json
// @Param        id       path      string                  true  "Session ID"
// @Param        payload  body      request.AddItemRequest  true  "Item"
// @Success      201      {object}  response.SessionResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      409      {object}  pkg.HTTPError
// @Router       /sessions/{id}/items [post]
func (h *RestockSessionHandler) AddItem(c *gin.Context) {
	var payload request.AddItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidItemPayload.HTTPStatus, errInvalidItemPayload.ToHTTPError())
		return
	}

	s, err := h.usecase.AddItem(c.Request.Context(), c.Param("id"), payload.ToSessionItem())
	if err != nil {
		h.fail(c, "add-item", err)
		return
	}
	c.JSON(http.StatusCreated, response.FromSession(s))
}

// UpdateItem godoc
// @Summary      Update an item of a draft session
// @Tags         items
// @Accept       json
// @Produce      json
// @Param        id          path      string                     true  "Session ID"
// @Param        product_id  path      string                     true  "Product ID"
// @Param        payload     body      request.UpdateItemRequest  true  "Fields to change"
// @Success      200         {object}  response.SessionResponse
// @Failure      400         {object}  pkg.HTTPError
// @Router       /sessions/{id}/items/{product_id} [patch]
func (h *RestockSessionHandler) UpdateItem(c *gin.Context) {
	var payload request.UpdateItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil || payload.IsEmpty() {
		c.JSON(errInvalidItemPayload.HTTPStatus, errInvalidItemPayload.ToHTTPError())
		return
	}

	s, err := h.usecase.UpdateItem(c.Request.Context(), c.Param("id"), c.Param("product_id"), payload.ToItemPatch())
	if err != nil {
		h.fail(c, "update-item", err)
		return
	}
	c.JSON(http.StatusOK, response.FromSession(s))
}

// RemoveItem godoc
// @Summary      Remove an item from a draft session
// @Tags         items
// @Produce      json
// @Param        id          path      string  true  "Session ID"
// @Param        product_id  path      string  true  "Product ID"
// @Success      200         {object}  response.SessionResponse
// @Router       /sessions/{id}/items/{product_id} [delete]
func (h *RestockSessionHandler) RemoveItem(c *gin.Context) {
	s, err := h.usecase.RemoveItem(c.Request.Context(), c.Param("id"), c.Param("product_id"))
	if err != nil {
		h.fail(c, "remove-item", err)
		return
	}
	c.JSON(http.StatusOK, response.FromSession(s))
}

// GenerateEmails godoc
// @Summary      Generate one email per supplier
// @Tags         emails
// @Produce      json
// @Param        id   path      string  true  "Session ID"
// @Success      200  {object}  response.SessionEmailsResponse
// @Failure      409  {object}  pkg.HTTPError
// @Failure      422  {object}  pkg.HTTPError
// @Router       /sessions/{id}/emails [post]
func (h *RestockSessionHandler) GenerateEmails(c *gin.Context) {
	s, emails, err := h.usecase.GenerateEmails(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, "generate-emails", err)
		return
	}
	c.JSON(http.StatusOK, response.FromSessionEmails(s, emails))
}

// SendEmails godoc
// @Summary      Send the generated supplier emails
// @Tags         emails
// @Produce      json
// @Param        id   path      string  true  "Session ID"
// @Success      200  {object}  response.SessionEmailsResponse
// @Failure      409  {object}  pkg.HTTPError
// @Router       /sessions/{id}/send [post]
func (h *RestockSessionHandler) SendEmails(c *gin.Context) {
	s, emails, err := h.usecase.SendEmails(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, "send-emails", err)
		return
	}
	c.JSON(http.StatusOK, response.FromSessionEmails(s, emails))
}

func (h *RestockSessionHandler) fail(c *gin.Context, op string, err error) {
	appErr := mapSessionError(err)
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		log.Printf("[session][handler] %s failed id=%s err=%v", op, c.Param("id"), err)
	}
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func mapSessionError(err error) *pkg.AppError {
	var (
		validationErr *entities.ValidationError
		quantityErr   *entities.InvalidQuantityError
		duplicateErr  *entities.DuplicateItemError
		transitionErr *entities.InvalidStateTransitionError
		emptyErr      *entities.EmptySessionError
	)

	switch {
	case errors.Is(err, usecase.ErrInvalidSessionID), errors.Is(err, usecase.ErrInvalidUserID), errors.Is(err, usecase.ErrInvalidProductID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.As(err, &validationErr):
		return pkg.NewDomainErrorSimple("VALIDATION_ERROR", validationErr.Error(), http.StatusBadRequest)
	case errors.As(err, &quantityErr):
		return pkg.NewDomainErrorSimple("INVALID_QUANTITY", quantityErr.Error(), http.StatusBadRequest)
	case errors.Is(err, usecase.ErrSessionNotFound):
		return pkg.NewDomainErrorSimple("SESSION_NOT_FOUND", "Restock session not found", http.StatusNotFound)
	case errors.As(err, &duplicateErr):
		return pkg.NewDomainErrorSimple("DUPLICATE_ITEM", duplicateErr.Error(), http.StatusConflict)
	case errors.As(err, &transitionErr):
		return pkg.NewDomainErrorSimple("INVALID_STATE_TRANSITION", transitionErr.Error(), http.StatusConflict)
	case errors.As(err, &emptyErr):
		return pkg.NewDomainErrorSimple("EMPTY_SESSION", emptyErr.Error(), http.StatusConflict)
	case errors.Is(err, usecase.ErrSessionNotEditable):
		return pkg.NewDomainErrorSimple("SESSION_NOT_EDITABLE", "Items can only be changed while the session is a draft", http.StatusConflict)
	case errors.Is(err, usecase.ErrSessionBusy):
		return pkg.NewDomainErrorSimple("SESSION_BUSY", "Restock session is being modified, try again", http.StatusConflict)
	case errors.Is(err, usecase.ErrSessionConflict):
		return pkg.NewDomainErrorSimple("SESSION_CONFLICT", "Restock session was changed by another request, reload it", http.StatusConflict)
	case errors.Is(err, usecase.ErrSupplierEmailMissing):
		return pkg.NewDomainErrorSimple("SUPPLIER_EMAIL_MISSING", "Every supplier needs an email address", http.StatusUnprocessableEntity)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
