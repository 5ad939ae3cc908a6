package push

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/GlebRadaev/domainstore/internal/domain"
	"github.com/GlebRadaev/domainstore/internal/dto"
	"github.com/GlebRadaev/domainstore/internal/service/pushservice"
	"github.com/GlebRadaev/domainstore/pkg/auth"
	"github.com/GlebRadaev/domainstore/pkg/utils"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type Service interface {
	Create(ctx context.Context, ownerID, domainID int, toEmail, note string) (*domain.DomainPushRequest, error)
	CreateByAdmin(ctx context.Context, domainID int, toEmail, note string) (*domain.DomainPushRequest, error)
	Accept(ctx context.Context, userID int, id uuid.UUID) (*domain.DomainPushRequest, error)
	Reject(ctx context.Context, userID int, id uuid.UUID) (*domain.DomainPushRequest, error)
	Cancel(ctx context.Context, userID int, id uuid.UUID) (*domain.DomainPushRequest, error)
	Get(ctx context.Context, userID int, id uuid.UUID) (*domain.DomainPushRequest, error)
	ListForAccount(ctx context.Context, userID int) ([]domain.DomainPushRequest, error)
}

type PushHandler struct {
	pushService Service
}

func New(pushService Service) *PushHandler {
	return &PushHandler{
		pushService: pushService,
	}
}

func respondWithServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, pushservice.ErrDomainNotFound), errors.Is(err, pushservice.ErrPushNotFound):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, pushservice.ErrNotOwner), errors.Is(err, pushservice.ErrNotRecipient), errors.Is(err, pushservice.ErrNotSender):
		utils.RespondWithError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, pushservice.ErrInvalidEmail), errors.Is(err, pushservice.ErrRecipientNotFound),
		errors.Is(err, pushservice.ErrSelfPush), errors.Is(err, pushservice.ErrDomainSuspended):
		utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, pushservice.ErrPushPending), errors.Is(err, pushservice.ErrPushNotPending),
		errors.Is(err, pushservice.ErrOwnerChanged):
		utils.RespondWithError(w, http.StatusConflict, err.Error())
	case errors.Is(err, pushservice.ErrPushExpired):
		utils.RespondWithError(w, http.StatusGone, err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

func pushID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid push request id")
		return uuid.Nil, false
	}
	return id, true
}

func decodeCreate(w http.ResponseWriter, r *http.Request) (dto.CreatePushRequestDTO, bool) {
	var req dto.CreatePushRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.DomainID <= 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return req, false
	}
	return req, true
}

// Create godoc
//
//	@Summary		Push a domain to another account
//	@Description	Offers ownership of a domain to the account registered with to_email. The recipient has a limited time to accept.
//	@Tags			Push
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreatePushRequestDTO	true	"Push request"
//	@Success		201		{object}	dto.PushResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		403		{object}	utils.Response	"Domain belongs to another account"
//	@Failure		404		{object}	utils.Response	"Domain not found"
//	@Failure		409		{object}	utils.Response	"Domain already has a pending push request"
//	@Failure		422		{object}	utils.Response	"Recipient can't receive the domain"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/user/pushes [post]
func (h *PushHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UserID(r.Context())
	req, ok := decodeCreate(w, r)
	if !ok {
		return
	}
	p, err := h.pushService.Create(r.Context(), userID, req.DomainID, req.ToEmail, req.Note)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.FromPush(p))
}

// AdminCreate godoc
//
//	@Summary		Push a domain on behalf of its owner
//	@Description	Staff variant of push creation. Ownership is not checked.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreatePushRequestDTO	true	"Push request"
//	@Success		201		{object}	dto.PushResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		404		{object}	utils.Response	"Domain not found"
//	@Failure		409		{object}	utils.Response	"Domain already has a pending push request"
//	@Failure		422		{object}	utils.Response	"Recipient can't receive the domain"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/pushes [post]
func (h *PushHandler) AdminCreate(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeCreate(w, r)
	if !ok {
		return
	}
	p, err := h.pushService.CreateByAdmin(r.Context(), req.DomainID, req.ToEmail, req.Note)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.FromPush(p))
}

// List godoc
//
//	@Summary		List push requests
//	@Description	Push requests the account sent or received, newest first.
//	@Tags			Push
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.PushResponseDTO
//	@Success		204	{string}	string			"No push requests"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/user/pushes [get]
func (h *PushHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UserID(r.Context())
	pushes, err := h.pushService.ListForAccount(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if len(pushes) == 0 {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	resp := make([]dto.PushResponseDTO, 0, len(pushes))
	for i := range pushes {
		resp = append(resp, dto.FromPush(&pushes[i]))
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// Get godoc
//
//	@Summary		Get a push request
//	@Tags			Push
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		string	true	"Push request id"
//	@Success		200	{object}	dto.PushResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid push request id"
//	@Failure		404	{object}	utils.Response	"Push request not found"
//	@Router			/api/user/pushes/{id} [get]
func (h *PushHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pushID(w, r)
	if !ok {
		return
	}
	userID, _ := auth.UserID(r.Context())
	p, err := h.pushService.Get(r.Context(), userID, id)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.FromPush(p))
}

type respondFn func(ctx context.Context, userID int, id uuid.UUID) (*domain.DomainPushRequest, error)

func (h *PushHandler) respond(w http.ResponseWriter, r *http.Request, fn respondFn) {
	id, ok := pushID(w, r)
	if !ok {
		return
	}
	userID, _ := auth.UserID(r.Context())
	p, err := fn(r.Context(), userID, id)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.FromPush(p))
}

// Accept godoc
//
//	@Summary		Accept a push request
//	@Description	Moves the domain to the recipient's account. Fails once the request has expired.
//	@Tags			Push
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		string	true	"Push request id"
//	@Success		200	{object}	dto.PushResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid push request id"
//	@Failure		403	{object}	utils.Response	"Only the recipient may answer"
//	@Failure		404	{object}	utils.Response	"Push request not found"
//	@Failure		409	{object}	utils.Response	"Push request is no longer pending"
//	@Failure		410	{object}	utils.Response	"Push request has expired"
//	@Router			/api/user/pushes/{id}/accept [post]
func (h *PushHandler) Accept(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r, h.pushService.Accept)
}

// Reject godoc
//
//	@Summary		Reject a push request
//	@Tags			Push
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		string	true	"Push request id"
//	@Success		200	{object}	dto.PushResponseDTO
//	@Failure		403	{object}	utils.Response	"Only the recipient may answer"
//	@Failure		404	{object}	utils.Response	"Push request not found"
//	@Failure		409	{object}	utils.Response	"Push request is no longer pending"
//	@Failure		410	{object}	utils.Response	"Push request has expired"
//	@Router			/api/user/pushes/{id}/reject [post]
func (h *PushHandler) Reject(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r, h.pushService.Reject)
}

// Cancel godoc
//
//	@Summary		Cancel a push request
//	@Tags			Push
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		string	true	"Push request id"
//	@Success		200	{object}	dto.PushResponseDTO
//	@Failure		403	{object}	utils.Response	"Only the sender may cancel"
//	@Failure		404	{object}	utils.Response	"Push request not found"
//	@Failure		409	{object}	utils.Response	"Push request is no longer pending"
//	@Router			/api/user/pushes/{id}/cancel [post]
func (h *PushHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r, h.pushService.Cancel)
}
