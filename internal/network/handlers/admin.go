package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/denmor86/blinds-loyalty/internal/logger"
	"github.com/denmor86/blinds-loyalty/internal/models"
	"github.com/denmor86/blinds-loyalty/internal/services"
	"github.com/denmor86/blinds-loyalty/internal/storage"
	"github.com/go-chi/chi/v5"
)

func pathID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	return id, err == nil && id > 0
}

// ListPriceMatchHandler - заявки на price match для администратора
func ListPriceMatchHandler(p services.PriceMatchService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests, err := p.List(r.Context(), r.URL.Query().Get("status"))
		if err != nil {
			var validationErr *services.ValidationError
			if errors.As(err, &validationErr) {
				WriteError(w, http.StatusBadRequest, validationErr.Message)
				return
			}
			WriteServerError(w, "Failed to list price match requests:", err)
			return
		}
		response := make([]models.PriceMatchResponse, 0, len(requests))
		for _, pm := range requests {
			response = append(response, models.NewPriceMatchResponse(pm))
		}
		WriteSuccess(w, http.StatusOK, Response{"requests": response, "total": len(response)})
	})
}

// ReviewPriceMatchHandler - одобрение или отклонение заявки
func ReviewPriceMatchHandler(p services.PriceMatchService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(r)
		if !ok {
			WriteError(w, http.StatusBadRequest, "Invalid request ID")
			return
		}
		var review models.PriceMatchReview
		if err := decodeJSON(r, &review); err != nil {
			WriteError(w, http.StatusBadRequest, "Invalid request format")
			return
		}

		if err := p.Review(r.Context(), id, review); err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidReviewStatus):
				WriteError(w, http.StatusBadRequest, err.Error())
			case errors.Is(err, storage.ErrPriceMatchNotFound):
				WriteError(w, http.StatusNotFound, "Price match request not found")
			case errors.Is(err, storage.ErrAlreadyReviewed):
				WriteError(w, http.StatusConflict, "Price match request already reviewed")
			default:
				WriteServerError(w, "Failed to review price match request:", err)
			}
			return
		}
		WriteSuccess(w, http.StatusOK, Response{"message": "Price match request " + review.Status})
	})
}

// CreateRewardHandler - добавление награды в каталог
func CreateRewardHandler(l services.LoyaltyService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req models.RewardRequest
		if err := decodeJSON(r, &req); err != nil {
			WriteError(w, http.StatusBadRequest, "Invalid request format")
			return
		}
		id, err := l.CreateReward(r.Context(), req)
		if err != nil {
			if errors.Is(err, services.ErrInvalidRewardData) {
				WriteError(w, http.StatusBadRequest, err.Error())
				return
			}
			WriteServerError(w, "Failed to create reward:", err)
			return
		}
		logger.Info("Reward created", id)
		WriteSuccess(w, http.StatusCreated, Response{"rewardId": id})
	})
}

// RetireRewardHandler - снятие награды из каталога
func RetireRewardHandler(l services.LoyaltyService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(r)
		if !ok {
			WriteError(w, http.StatusBadRequest, "Invalid reward ID")
			return
		}
		if err := l.RetireReward(r.Context(), id); err != nil {
			if errors.Is(err, storage.ErrRewardNotFound) {
				WriteError(w, http.StatusNotFound, "Reward not found")
				return
			}
			WriteServerError(w, "Failed to retire reward:", err)
			return
		}
		WriteSuccess(w, http.StatusOK, Response{"message": "Reward retired"})
	})
}
