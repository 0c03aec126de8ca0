package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/novamint/rewards-be/internal/http/respond"
	"github.com/novamint/rewards-be/internal/models/dto"
	"github.com/novamint/rewards-be/internal/storage"
)

// RewardsHandler serves the point-mutating endpoints.
type RewardsHandler struct {
	store storage.UserStore
}

// NewRewardsHandler constructs the handler.
func NewRewardsHandler(store storage.UserStore) *RewardsHandler {
	return &RewardsHandler{store: store}
}

// rewardTier maps an investment amount to a fixed point award.
func rewardTier(amountInvested int64) int64 {
	switch {
	case amountInvested >= 1000:
		return 100
	case amountInvested >= 500:
		return 50
	case amountInvested >= 100:
		return 10
	default:
		return 0
	}
}

// HandleBuyTokens marks the user as having purchased tokens regardless of the
// amount, then credits the tiered reward if any.
func (h *RewardsHandler) HandleBuyTokens(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req dto.BuyTokensRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}

	if err := h.store.MarkTokensPurchased(r.Context(), req.UserID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			respond.Error(w, http.StatusBadRequest, "user not found")
			return
		}
		log.Printf("buy tokens: mark purchased for user %d: %v", req.UserID, err)
		respond.Error(w, http.StatusInternalServerError, "internal error")
		return
	}

	rewardPoints := rewardTier(req.AmountInvested)
	if rewardPoints > 0 {
		if err := h.store.AddPoints(r.Context(), req.UserID, rewardPoints); err != nil {
			log.Printf("buy tokens: add points for user %d: %v", req.UserID, err)
			respond.Error(w, http.StatusInternalServerError, "internal error")
			return
		}
	}

	respond.JSON(w, http.StatusOK, dto.BuyTokensResponse{
		Message:            "token purchase successful",
		HasPurchasedTokens: true,
		RewardPoints:       rewardPoints,
	})
}

// HandleAddPoints credits an arbitrary point amount and returns the updated
// user record.
func (h *RewardsHandler) HandleAddPoints(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req dto.AddPointsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}

	if err := h.store.AddPoints(r.Context(), req.UserID, req.PointsToAdd); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			respond.Error(w, http.StatusBadRequest, "user not found")
			return
		}
		log.Printf("add points: user %d: %v", req.UserID, err)
		respond.Error(w, http.StatusInternalServerError, "internal error")
		return
	}

	user, err := h.store.FindByID(r.Context(), req.UserID)
	if err != nil {
		log.Printf("add points: fetch user %d: %v", req.UserID, err)
		respond.Error(w, http.StatusInternalServerError, "internal error")
		return
	}

	respond.JSON(w, http.StatusOK, dto.AddPointsResponse{
		Message: "points added successfully",
		User:    user,
	})
}
