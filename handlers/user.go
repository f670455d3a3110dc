package handlers

import (
	"database/sql"
	"net/http"

	"github.com/gestion-bailleurs/bailleur-api/middleware"
	"github.com/gestion-bailleurs/bailleur-api/models"
	"github.com/gestion-bailleurs/bailleur-api/services"
	"github.com/gestion-bailleurs/bailleur-api/utils"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	DB *sql.DB
}

// GetProfile retourne le profil et le plan de l'utilisateur connecté
func (h *UserHandler) GetProfile(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var user models.User
	var stripeCustomer, stripeSubscription sql.NullString
	err := h.DB.QueryRow(`
		SELECT id, email, nom, plan, date_inscription, stripe_customer_id, stripe_subscription_id,
		       totp_enabled, email_verified, created_at, updated_at
		FROM users WHERE id = $1
	`, userID).Scan(&user.ID, &user.Email, &user.Nom, &user.Plan, &user.DateInscription,
		&stripeCustomer, &stripeSubscription, &user.TOTPEnabled, &user.EmailVerified,
		&user.CreatedAt, &user.UpdatedAt)

	if err == sql.ErrNoRows {
		c.JSON(http.StatusNotFound, gin.H{"error": "Utilisateur introuvable"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	user.StripeCustomerID = stripeCustomer.String
	user.StripeSubscriptionID = stripeSubscription.String

	limites := services.GetLimites(user.Plan)
	c.JSON(http.StatusOK, gin.H{
		"user": user,
		"limites": gin.H{
			"max_biens":                  limites.MaxBiens,
			"max_locataires_actifs":      limites.MaxLocatairesActifs,
			"notifications_automatiques": limites.NotificationsAutomatiques,
			"support_prioritaire":        limites.SupportPrioritaire,
			"export_rapports":            limites.ExportRapports,
		},
	})
}

// UpdateProfile met à jour le nom de l'utilisateur
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var req struct {
		Nom string `json:"nom" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	_, err := h.DB.Exec(`UPDATE users SET nom = $1, updated_at = NOW() WHERE id = $2`, req.Nom, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update profile"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Profil mis à jour"})
}

// UpdatePlan change le plan d'abonnement. La facturation Stripe est gérée
// ailleurs : ici on ne fait que refléter le plan.
func (h *UserHandler) UpdatePlan(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var req models.UpdatePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	_, err := h.DB.Exec(`UPDATE users SET plan = $1, updated_at = NOW() WHERE id = $2`, req.Plan, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update plan"})
		return
	}

	utils.SafeInfo("💳 Plan changé: user=%s plan=%s", utils.MaskID(userID), req.Plan)
	c.JSON(http.StatusOK, gin.H{"message": "Plan mis à jour", "plan": req.Plan})
}

// ChangePassword change le mot de passe après vérification de l'actuel
func (h *UserHandler) ChangePassword(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var req models.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var currentHash string
	err := h.DB.QueryRow(`SELECT password_hash FROM users WHERE id = $1`, userID).Scan(&currentHash)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	if !utils.CheckPassword(req.CurrentPassword, currentHash) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Mot de passe actuel incorrect"})
		return
	}

	newHash, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
		return
	}

	_, err = h.DB.Exec(`UPDATE users SET password_hash = $1, updated_at = NOW() WHERE id = $2`, newHash, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update password"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Mot de passe mis à jour"})
}

// SetupTOTP génère le secret 2FA et l'URL du QR code
func (h *UserHandler) SetupTOTP(c *gin.Context) {
	userID := middleware.GetUserID(c)
	email := middleware.GetUserEmail(c)

	secret, qrURL, err := utils.GenerateTOTPSecret(email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate TOTP secret"})
		return
	}

	_, err = h.DB.Exec(`UPDATE users SET totp_secret = $1, updated_at = NOW() WHERE id = $2`, secret, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save TOTP secret"})
		return
	}

	c.JSON(http.StatusOK, models.TOTPSetupResponse{Secret: secret, QRCode: qrURL})
}

// VerifyTOTP valide le premier code et active la 2FA
func (h *UserHandler) VerifyTOTP(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var req models.VerifyTOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var secret sql.NullString
	err := h.DB.QueryRow(`SELECT totp_secret FROM users WHERE id = $1`, userID).Scan(&secret)
	if err != nil || !secret.Valid {
		c.JSON(http.StatusBadRequest, gin.H{"error": "2FA non configurée"})
		return
	}

	valid, err := utils.VerifyTOTP(secret.String, req.Code)
	if err != nil || !valid {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Code 2FA invalide"})
		return
	}

	_, err = h.DB.Exec(`UPDATE users SET totp_enabled = TRUE, updated_at = NOW() WHERE id = $1`, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to enable 2FA"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "2FA activée"})
}

// DisableTOTP désactive la 2FA
func (h *UserHandler) DisableTOTP(c *gin.Context) {
	userID := middleware.GetUserID(c)

	_, err := h.DB.Exec(`UPDATE users SET totp_enabled = FALSE, totp_secret = NULL, updated_at = NOW() WHERE id = $1`, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to disable 2FA"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "2FA désactivée"})
}

// DeleteAccount supprime le compte et toutes ses données (cascade)
func (h *UserHandler) DeleteAccount(c *gin.Context) {
	userID := middleware.GetUserID(c)

	_, err := h.DB.Exec(`DELETE FROM users WHERE id = $1`, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete account"})
		return
	}

	utils.SafeInfo("🗑️ Compte supprimé: user=%s", utils.MaskID(userID))
	c.JSON(http.StatusOK, gin.H{"message": "Compte supprimé"})
}
