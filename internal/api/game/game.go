package game

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	dto "slot_machine/internal/api/dto/game"
	"slot_machine/internal/converter"
	"slot_machine/internal/model"
	"slot_machine/internal/service"
	"slot_machine/pkg/req"
	"slot_machine/pkg/resp"
)

type HandlerDeps struct {
	Serv service.GameService
	Log  *zap.Logger
}

type Handler struct {
	serv service.GameService
	log  *zap.Logger
}

func NewHandler(deps HandlerDeps) *Handler {
	log := deps.Log
	if log == nil {
		log = zap.NewNop()
	}
	return &Handler{serv: deps.Serv, log: log}
}

func (h *Handler) State(w http.ResponseWriter, r *http.Request) {
	resp.WriteJSONResponse(w, http.StatusOK, converter.ToStateResponse(h.serv.State(r.Context())))
}

func (h *Handler) Spin(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.SpinRequest](r.Body)
	if err != nil {
		resp.WriteError(w, http.StatusBadRequest, err)
		return
	}

	result, err := h.serv.Spin(r.Context(), payload.Bet)
	if err != nil {
		h.writeError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToSpinResponse(*result))
}

func (h *Handler) Store(w http.ResponseWriter, _ *http.Request) {
	resp.WriteJSONResponse(w, http.StatusOK, converter.ToStoreResponse(h.serv.Store()))
}

func (h *Handler) Buy(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.BuyRequest](r.Body)
	if err != nil {
		resp.WriteError(w, http.StatusBadRequest, err)
		return
	}

	result, err := h.serv.Buy(r.Context(), converter.ToStoreItemID(payload))
	if err != nil {
		h.writeError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToPurchaseResponse(*result))
}

func (h *Handler) Leaderboard(w http.ResponseWriter, r *http.Request) {
	entries, err := h.serv.Leaderboard(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToLeaderboardResponse(entries))
}

func (h *Handler) Stats(w http.ResponseWriter, _ *http.Request) {
	resp.WriteJSONResponse(w, http.StatusOK, converter.ToStatsResponse(h.serv.Stats()))
}

func (h *Handler) Reset(w http.ResponseWriter, r *http.Request) {
	st, err := h.serv.Reset(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToPlayerStateResponse(st))
}

func (h *Handler) Quit(w http.ResponseWriter, r *http.Request) {
	st, err := h.serv.Quit(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToPlayerStateResponse(st))
}

// writeError ошибки валидации - 400, конец игры - 409, занятая сессия - 429
func (h *Handler) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, model.ErrValidation):
		resp.WriteError(w, http.StatusBadRequest, err)
	case errors.Is(err, model.ErrGameOver):
		resp.WriteError(w, http.StatusConflict, err)
	case errors.Is(err, model.ErrBusy):
		resp.WriteError(w, http.StatusTooManyRequests, err)
	default:
		h.log.Error("request failed", zap.Error(err))
		resp.WriteError(w, http.StatusInternalServerError, errors.New("internal error"))
	}
}
