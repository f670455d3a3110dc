package models

import "time"

// ============================================================================
// USER MODEL
// ============================================================================

// Plans d'abonnement
const (
	PlanGratuit = "gratuit"
	PlanPremium = "premium"
)

type User struct {
	ID                   string    `json:"id"`
	Email                string    `json:"email"`
	Nom                  string    `json:"nom"`
	Plan                 string    `json:"plan"`
	DateInscription      time.Time `json:"date_inscription"`
	StripeCustomerID     string    `json:"stripe_customer_id,omitempty"`
	StripeSubscriptionID string    `json:"stripe_subscription_id,omitempty"`
	PasswordHash         string    `json:"-"` // Never expose in JSON
	TOTPSecret           string    `json:"-"` // Never expose in JSON
	TOTPEnabled          bool      `json:"totp_enabled"`
	EmailVerified        bool      `json:"email_verified"`
	CreatedAt            time.Time `json:"created_at"`
	UpdatedAt            time.Time `json:"updated_at"`
}

// ============================================================================
// AUTHENTICATION REQUESTS
// ============================================================================

type SignupRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Nom      string `json:"nom" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	TOTPCode string `json:"totp_code,omitempty"`
}

type AuthResponse struct {
	User         User   `json:"user"`
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// ============================================================================
// PASSWORD & 2FA
// ============================================================================

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required,min=6"`
}

type TOTPSetupResponse struct {
	Secret string `json:"secret"`
	QRCode string `json:"qr_code"`
}

type VerifyTOTPRequest struct {
	Code string `json:"code" binding:"required,len=6"`
}

// ============================================================================
// PLAN
// ============================================================================

type UpdatePlanRequest struct {
	Plan string `json:"plan" binding:"required,oneof=gratuit premium"`
}
