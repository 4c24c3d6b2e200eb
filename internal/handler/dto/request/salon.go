package request

// SaveSalonRequest creates or replaces the owner's salon. Omitted optional
// fields fall back to their defaults.
type SaveSalonRequest struct {
	Name              string  `json:"name" binding:"required,max=120"`
	Address           *string `json:"address" binding:"omitempty,max=255"`
	Phone             *string `json:"phone" binding:"omitempty,max=32"`
	LoyaltyThreshold  *int32  `json:"loyalty_threshold" binding:"omitempty,min=1,max=1000"`
	RewardDescription *string `json:"reward_description" binding:"omitempty,max=255"`
}
