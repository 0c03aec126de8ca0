package dto

import "github.com/novamint/rewards-be/internal/models"

type BuyTokensRequest struct {
	UserID         int64 `json:"userId"`
	AmountInvested int64 `json:"amountInvested"`
}

type BuyTokensResponse struct {
	Message            string `json:"message"`
	HasPurchasedTokens bool   `json:"hasPurchasedTokens"`
	RewardPoints       int64  `json:"rewardPoints"`
}

type AddPointsRequest struct {
	UserID      int64 `json:"userId"`
	PointsToAdd int64 `json:"pointsToAdd"`
}

type AddPointsResponse struct {
	Message string      `json:"message"`
	User    models.User `json:"user"`
}
