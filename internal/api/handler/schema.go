package handler

import (
	"github.com/emsp/platform/internal/core/domain"
)

// --- Auth ---

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type registerRequest struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Phone    string `json:"phone"    validate:"omitempty,max=20"`
	Nickname string `json:"nickname" validate:"omitempty,max=50"`
}

type updateProfileRequest struct {
	Email           *string `json:"email"           validate:"omitempty,email"`
	Phone           *string `json:"phone"           validate:"omitempty,max=20"`
	Nickname        *string `json:"nickname"        validate:"omitempty,max=50"`
	Avatar          *string `json:"avatar"          validate:"omitempty,max=500"`
	CurrentPassword string  `json:"currentPassword"`
	NewPassword     string  `json:"newPassword"     validate:"omitempty,min=6"`
	ConfirmPassword string  `json:"confirmPassword" validate:"eqfield=NewPassword"`
}

type loginResponse struct {
	Token string       `json:"token"`
	User  *domain.User `json:"user"`
}

// --- Products ---

type productRequest struct {
	Name        string  `json:"name"        validate:"required,max=200"`
	Description string  `json:"description" validate:"max=2000"`
	Price       float64 `json:"price"       validate:"gte=0"`
	Stock       int     `json:"stock"       validate:"gte=0"`
	CategoryID  int64   `json:"categoryId"  validate:"gte=0"`
	ImageURL    string  `json:"imageUrl"    validate:"omitempty,url"`
	Status      *int    `json:"status"      validate:"omitempty,oneof=0 1"`
	Version     int     `json:"version"     validate:"gte=0"`
}

// --- Orders ---

type createOrderRequest struct {
	TotalAmount     float64 `json:"totalAmount"     validate:"gte=0"`
	PaymentMethod   string  `json:"paymentMethod"   validate:"max=50"`
	DeliveryAddress string  `json:"deliveryAddress" validate:"required,max=500"`
	Remark          string  `json:"remark"          validate:"max=500"`
}

// --- Moments ---

type createMomentRequest struct {
	Content   string   `json:"content"   validate:"required,max=1000"`
	ImageURLs []string `json:"imageUrls" validate:"max=9,dive,url"`
}

type momentStatusRequest struct {
	Status *int `json:"status" validate:"required,oneof=0 1"`
}

type likeResponse struct {
	LikeCount int `json:"likeCount"`
}
