package handlers

import (
	"database/sql"
	"net/http"
	"time"

	"github.com/gestion-bailleurs/bailleur-api/models"
	"github.com/gestion-bailleurs/bailleur-api/utils"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	DB *sql.DB
}

// validerCodeTOTP vérifie le code 2FA d'un compte qui l'exige. Un secret
// absent ou vide compte comme un refus, jamais comme un laissez-passer.
func validerCodeTOTP(secret sql.NullString, code string) bool {
	if !secret.Valid || secret.String == "" {
		return false
	}
	valid, err := utils.VerifyTOTP(secret.String, code)
	return err == nil && valid
}

func (h *AuthHandler) Signup(c *gin.Context) {
	var req models.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var exists bool
	err := h.DB.QueryRow("SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)", req.Email).Scan(&exists)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	if exists {
		c.JSON(http.StatusConflict, gin.H{"error": "Email déjà enregistré"})
		return
	}

	passwordHash, err := utils.HashPassword(req.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
		return
	}

	var userID string
	err = h.DB.QueryRow(`
		INSERT INTO users (email, password_hash, nom, plan, date_inscription)
		VALUES ($1, $2, $3, $4, NOW())
		RETURNING id
	`, req.Email, passwordHash, req.Nom, models.PlanGratuit).Scan(&userID)

	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
		return
	}

	// Email de vérification (best effort : le compte fonctionne sans)
	if verifToken, err := utils.GenerateVerificationToken(); err == nil {
		_, err = h.DB.Exec(`
			INSERT INTO email_verifications (user_id, token, expires_at)
			VALUES ($1, $2, $3)
		`, userID, verifToken, time.Now().Add(48*time.Hour))
		if err == nil {
			go utils.SendVerificationEmail(req.Email, req.Nom, verifToken)
		}
	}

	accessToken, err := utils.GenerateAccessToken(userID, req.Email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	refreshToken, err := utils.GenerateRefreshToken()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate refresh token"})
		return
	}

	_, err = h.DB.Exec(`
		INSERT INTO sessions (user_id, refresh_token, expires_at)
		VALUES ($1, $2, $3)
	`, userID, refreshToken, time.Now().Add(7*24*time.Hour))

	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create session"})
		return
	}

	utils.LogAuthAction("signup", req.Email, true)

	user := models.User{
		ID:              userID,
		Email:           req.Email,
		Nom:             req.Nom,
		Plan:            models.PlanGratuit,
		DateInscription: time.Now(),
		CreatedAt:       time.Now(),
	}

	c.JSON(http.StatusCreated, models.AuthResponse{
		User:         user,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var user models.User
	var passwordHash string
	var totpSecret sql.NullString

	err := h.DB.QueryRow(`
		SELECT id, email, password_hash, nom, plan, date_inscription, totp_secret,
		       totp_enabled, email_verified, created_at, updated_at
		FROM users
		WHERE email = $1
	`, req.Email).Scan(&user.ID, &user.Email, &passwordHash, &user.Nom, &user.Plan,
		&user.DateInscription, &totpSecret, &user.TOTPEnabled, &user.EmailVerified,
		&user.CreatedAt, &user.UpdatedAt)

	if err == sql.ErrNoRows {
		utils.LogAuthAction("login", req.Email, false)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Identifiants invalides"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	if !utils.CheckPassword(req.Password, passwordHash) {
		utils.LogAuthAction("login", req.Email, false)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Identifiants invalides"})
		return
	}

	if user.TOTPEnabled {
		if req.TOTPCode == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Code 2FA requis", "requires_2fa": true})
			return
		}

		if !validerCodeTOTP(totpSecret, req.TOTPCode) {
			utils.LogAuthAction("login", req.Email, false)
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Code 2FA invalide"})
			return
		}
	}

	accessToken, err := utils.GenerateAccessToken(user.ID, user.Email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	refreshToken, err := utils.GenerateRefreshToken()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate refresh token"})
		return
	}

	_, err = h.DB.Exec(`
		INSERT INTO sessions (user_id, refresh_token, expires_at)
		VALUES ($1, $2, $3)
	`, user.ID, refreshToken, time.Now().Add(7*24*time.Hour))

	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create session"})
		return
	}

	utils.LogAuthAction("login", req.Email, true)

	c.JSON(http.StatusOK, models.AuthResponse{
		User:         user,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	})
}

// VerifyEmail valide le token reçu par email et marque le compte vérifié
func (h *AuthHandler) VerifyEmail(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Token requis"})
		return
	}

	var userID string
	err := h.DB.QueryRow(`
		SELECT user_id FROM email_verifications
		WHERE token = $1 AND expires_at > NOW()
	`, token).Scan(&userID)

	if err == sql.ErrNoRows {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Token invalide ou expiré"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	_, err = h.DB.Exec(`UPDATE users SET email_verified = TRUE, updated_at = NOW() WHERE id = $1`, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to verify email"})
		return
	}

	h.DB.Exec(`DELETE FROM email_verifications WHERE user_id = $1`, userID)

	c.JSON(http.StatusOK, gin.H{"message": "Email vérifié"})
}
