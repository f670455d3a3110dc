// utils/safelog.go
// ============================================================================
// SAFE LOGGING - Masque les données sensibles en production
// ============================================================================
// Les logs ne doivent jamais exposer d'emails, de montants de loyers ou
// d'identifiants complets en environnement de production.
// ============================================================================

package utils

import (
	"fmt"
	"log"
	"os"
	"regexp"
	"strings"
)

// ============================================================================
// CONFIGURATION
// ============================================================================

var (
	// IsProduction détermine si on est en mode production
	IsProduction = os.Getenv("GIN_MODE") == "release" ||
		os.Getenv("ENVIRONMENT") == "production" ||
		os.Getenv("ENV") == "production"

	// LogLevel permet de filtrer les logs (DEBUG, INFO, WARN, ERROR)
	LogLevel = getLogLevel()
)

// Niveaux de log
const (
	LogLevelDebug = iota
	LogLevelInfo
	LogLevelWarn
	LogLevelError
)

func getLogLevel() int {
	level := strings.ToUpper(os.Getenv("LOG_LEVEL"))
	switch level {
	case "DEBUG":
		return LogLevelDebug
	case "WARN", "WARNING":
		return LogLevelWarn
	case "ERROR":
		return LogLevelError
	default:
		return LogLevelInfo
	}
}

// ============================================================================
// PATTERNS DE MASQUAGE
// ============================================================================

var (
	// Pattern pour emails
	emailRegex = regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`)

	// Pattern pour montants avec devise (loyers, charges, dépôts)
	amountWithCurrencyRegex = regexp.MustCompile(`\b\d+([.,]\d{1,2})?\s*(€|EUR)\b`)

	// Pattern pour numéros de téléphone français
	phoneRegex = regexp.MustCompile(`(\+33|0)\s*[1-9]([\s.-]?\d{2}){4}`)

	// Pattern pour UUIDs complets
	uuidRegex = regexp.MustCompile(`[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}`)
)

// ============================================================================
// FONCTIONS DE MASQUAGE
// ============================================================================

// MaskString masque les données sensibles dans une chaîne
func MaskString(input string) string {
	if !IsProduction {
		return input
	}

	result := input
	result = emailRegex.ReplaceAllString(result, "***@***.***")
	result = phoneRegex.ReplaceAllString(result, "** ** ** ** **")
	result = amountWithCurrencyRegex.ReplaceAllString(result, "***€")
	result = uuidRegex.ReplaceAllStringFunc(result, func(id string) string {
		return id[:8] + "..."
	})

	return result
}

// MaskAmount masque un montant financier
func MaskAmount(amount float64) string {
	if IsProduction {
		return "***"
	}
	return fmt.Sprintf("%.2f", amount)
}

// MaskID masque partiellement un ID (garde les 8 premiers caractères)
func MaskID(id string) string {
	if !IsProduction {
		return id
	}
	if len(id) <= 8 {
		return "***"
	}
	return id[:8] + "..."
}

// MaskEmail masque un email
func MaskEmail(email string) string {
	if !IsProduction {
		return email
	}
	return "***@***.***"
}

// ============================================================================
// FONCTIONS DE LOGGING SÉCURISÉES
// ============================================================================

// SafeLog log un message en masquant les données sensibles
func SafeLog(format string, args ...interface{}) {
	log.Print(MaskString(fmt.Sprintf(format, args...)))
}

// SafeDebug log un message de debug (seulement si LOG_LEVEL=DEBUG)
func SafeDebug(format string, args ...interface{}) {
	if LogLevel > LogLevelDebug {
		return
	}
	log.Printf("[DEBUG] %s", MaskString(fmt.Sprintf(format, args...)))
}

// SafeInfo log un message d'information
func SafeInfo(format string, args ...interface{}) {
	if LogLevel > LogLevelInfo {
		return
	}
	log.Printf("[INFO] %s", MaskString(fmt.Sprintf(format, args...)))
}

// SafeWarn log un message d'avertissement
func SafeWarn(format string, args ...interface{}) {
	if LogLevel > LogLevelWarn {
		return
	}
	log.Printf("[WARN] %s", MaskString(fmt.Sprintf(format, args...)))
}

// SafeError log un message d'erreur
func SafeError(format string, args ...interface{}) {
	log.Printf("[ERROR] %s", MaskString(fmt.Sprintf(format, args...)))
}

// ============================================================================
// FONCTIONS DE LOGGING MÉTIER SPÉCIFIQUES
// ============================================================================

// LogEcheanceAction log une action sur une échéance
func LogEcheanceAction(action string, echeanceID string, userID string) {
	SafeInfo("📅 Echeance %s: echeance=%s user=%s", action, MaskID(echeanceID), MaskID(userID))
}

// LogPaiementAction log une action sur un paiement
func LogPaiementAction(action string, paiementID string, userID string) {
	SafeInfo("💶 Paiement %s: paiement=%s user=%s", action, MaskID(paiementID), MaskID(userID))
}

// LogAuthAction log une tentative d'authentification
func LogAuthAction(action string, email string, success bool) {
	status := "OK"
	if !success {
		status = "FAILED"
	}
	SafeInfo("🔐 Auth %s [%s]: %s", action, status, MaskEmail(email))
}

// LogWebSocket log une action websocket
func LogWebSocket(action string, userID string) {
	SafeDebug("🔌 WS %s: user=%s", action, MaskID(userID))
}

// LogStartup affiche la bannière de démarrage
func LogStartup(appName string, version string, port string) {
	mode := "development"
	if IsProduction {
		mode = "production"
	}
	log.Printf("🚀 %s v%s démarré sur le port %s (%s)", appName, version, port, mode)
}
