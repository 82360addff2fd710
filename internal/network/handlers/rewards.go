package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/denmor86/blinds-loyalty/internal/logger"
	"github.com/denmor86/blinds-loyalty/internal/models"
	"github.com/denmor86/blinds-loyalty/internal/services"
	"github.com/denmor86/blinds-loyalty/internal/storage"
)

// GetRewardsHandler - каталог наград, доступных пользователю
func GetRewardsHandler(l services.LoyaltyService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		identity, ok := requireIdentity(w, r)
		if !ok {
			return
		}
		query := r.URL.Query()
		featured, _ := strconv.ParseBool(query.Get("featured"))

		catalog, err := l.GetRewards(r.Context(), identity.UserID, query.Get("type"), featured)
		if err != nil {
			if errors.Is(err, storage.ErrAccountNotFound) {
				WriteError(w, http.StatusNotFound, "User not enrolled in loyalty program")
				return
			}
			WriteServerError(w, "Failed to get rewards:", err)
			return
		}
		WriteSuccess(w, http.StatusOK, Response{
			"rewards":       catalog.Rewards,
			"userPoints":    catalog.UserPoints,
			"userTierLevel": catalog.UserTierLevel,
			"total":         catalog.Total,
		})
	})
}

// RedeemRewardHandler - погашение награды баллами
func RedeemRewardHandler(l services.LoyaltyService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		identity, ok := requireIdentity(w, r)
		if !ok {
			return
		}
		var req models.RedeemRequest
		if err := decodeJSON(r, &req); err != nil {
			logger.Warn("Invalid request format:", err)
			WriteError(w, http.StatusBadRequest, "Invalid request format")
			return
		}

		redemption, err := l.Redeem(r.Context(), identity.UserID, req)
		if err != nil {
			var gateErr *services.RedemptionError
			switch {
			case errors.As(err, &gateErr):
				WriteRedemptionError(w, gateErr)
			case errors.Is(err, services.ErrRewardIDRequired):
				WriteError(w, http.StatusBadRequest, "Reward ID is required")
			case errors.Is(err, storage.ErrRewardNotFound):
				WriteError(w, http.StatusNotFound, "Reward not found")
			case errors.Is(err, storage.ErrAccountNotFound):
				WriteError(w, http.StatusNotFound, "User not enrolled in loyalty program")
			default:
				WriteServerError(w, "Failed to redeem reward:", err)
			}
			return
		}
		WriteSuccess(w, http.StatusOK, Response{
			"message":    "Reward redeemed successfully",
			"redemption": models.NewRedemptionResponse(*redemption),
		})
	})
}

// GetRedemptionsHandler - погашения пользователя
func GetRedemptionsHandler(l services.LoyaltyService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		identity, ok := requireIdentity(w, r)
		if !ok {
			return
		}
		redemptions, err := l.GetRedemptions(r.Context(), identity.UserID)
		if err != nil {
			WriteServerError(w, "Failed to get redemptions:", err)
			return
		}
		response := make([]models.RedemptionResponse, 0, len(redemptions))
		for _, rd := range redemptions {
			response = append(response, models.NewRedemptionResponse(rd))
		}
		WriteSuccess(w, http.StatusOK, Response{"redemptions": response})
	})
}
