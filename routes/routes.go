package routes

import (
	"database/sql"

	"github.com/gestion-bailleurs/bailleur-api/handlers"
	"github.com/gestion-bailleurs/bailleur-api/middleware"

	"github.com/gin-gonic/gin"
)

// SetupAuthRoutes monte les routes d'authentification publiques, avec leur
// rate limit dédié.
func SetupAuthRoutes(rg *gin.RouterGroup, db *sql.DB) {
	authHandler := &handlers.AuthHandler{DB: db}

	auth := rg.Group("/auth")
	auth.Use(middleware.AuthRateLimiter())

	auth.POST("/signup", authHandler.Signup)
	auth.POST("/login", authHandler.Login)
	auth.GET("/verify", authHandler.VerifyEmail)
}

// SetupBienRoutes monte les routes protégées des biens.
func SetupBienRoutes(rg *gin.RouterGroup, db *sql.DB, ws *handlers.WSHandler) {
	h := handlers.NewBienHandler(db, ws)

	rg.GET("/biens", h.GetBiens)
	rg.POST("/biens", h.CreateBien)
	rg.GET("/biens/:id", h.GetBien)
	rg.PUT("/biens/:id", h.UpdateBien)
	rg.DELETE("/biens/:id", h.DeleteBien)
}

// SetupLocataireRoutes monte les routes protégées des locataires.
func SetupLocataireRoutes(rg *gin.RouterGroup, db *sql.DB, ws *handlers.WSHandler) {
	h := handlers.NewLocataireHandler(db, ws)

	rg.GET("/locataires", h.GetLocataires)
	rg.POST("/locataires", h.CreateLocataire)
	rg.GET("/locataires/:id", h.GetLocataire)
	rg.PUT("/locataires/:id", h.UpdateLocataire)
	rg.DELETE("/locataires/:id", h.DeleteLocataire)
	rg.POST("/locataires/:id/archiver", h.ArchiverLocataire)
	rg.POST("/locataires/:id/echeances/generer", h.GenererEcheances)
}

// SetupEcheanceRoutes monte les routes protégées des échéances.
func SetupEcheanceRoutes(rg *gin.RouterGroup, db *sql.DB, ws *handlers.WSHandler) {
	h := handlers.NewEcheanceHandler(db, ws)

	rg.GET("/echeances", h.GetEcheances)
	rg.POST("/echeances", h.CreateEcheance)
	rg.GET("/echeances/:id", h.GetEcheance)
	rg.PUT("/echeances/:id", h.UpdateEcheance)
	rg.DELETE("/echeances/:id", h.DeleteEcheance)
	rg.POST("/echeances/:id/toggle-paiement", h.TogglePaiement)
	rg.POST("/echeances/:id/annuler", h.AnnulerEcheance)
}

// SetupPaiementRoutes monte les routes protégées des paiements.
func SetupPaiementRoutes(rg *gin.RouterGroup, db *sql.DB, ws *handlers.WSHandler) {
	h := handlers.NewPaiementHandler(db, ws)

	rg.GET("/paiements", h.GetPaiements)
	rg.POST("/paiements", h.CreatePaiement)
	rg.DELETE("/paiements/:id", h.DeletePaiement)
}

// SetupDashboardRoutes monte la route des statistiques dashboard.
func SetupDashboardRoutes(rg *gin.RouterGroup, db *sql.DB) {
	h := handlers.NewDashboardHandler(db)

	rg.GET("/dashboard/stats", h.GetStatistiques)
}

// SetupNotificationRoutes monte les routes des notifications et rappels.
func SetupNotificationRoutes(rg *gin.RouterGroup, db *sql.DB) {
	h := handlers.NewNotificationHandler(db)

	rg.GET("/notifications", h.GetNotifications)
	rg.POST("/echeances/:id/rappel", h.EnvoyerRappel)
}

// SetupUserRoutes monte les routes protégées du compte utilisateur.
func SetupUserRoutes(rg *gin.RouterGroup, db *sql.DB) {
	userHandler := &handlers.UserHandler{DB: db}

	rg.GET("/user/profile", userHandler.GetProfile)
	rg.PUT("/user/profile", userHandler.UpdateProfile)
	rg.PUT("/user/plan", userHandler.UpdatePlan)
	rg.POST("/user/password", userHandler.ChangePassword)
	rg.POST("/user/2fa/setup", userHandler.SetupTOTP)
	rg.POST("/user/2fa/verify", userHandler.VerifyTOTP)
	rg.POST("/user/2fa/disable", userHandler.DisableTOTP)
	rg.DELETE("/user/account", userHandler.DeleteAccount)
}
