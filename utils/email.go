package utils

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"
)

// ============================================================================
// STRUCTS & TYPES
// ============================================================================

type EmailRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

// FormatDateFR formate une date au format français JJ/MM/AAAA
func FormatDateFR(date time.Time) string {
	return date.Format("02/01/2006")
}

// ============================================================================
// EMAILS MÉTIER
// ============================================================================

// SendRappelLoyerEmail envoie un rappel de loyer au locataire
func SendRappelLoyerEmail(toEmail, locataireNom string, montant float64, dateEcheance time.Time) error {
	htmlBody := fmt.Sprintf(`
<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>Rappel de loyer</title>
</head>
<body style="margin: 0; padding: 0; font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; background-color: #f3f4f6;">
    <table role="presentation" style="width: 100%%; border-collapse: collapse;">
        <tr>
            <td style="padding: 40px 0; text-align: center; background: linear-gradient(135deg, #2563eb 0%%, #1e40af 100%%);">
                <h1 style="margin: 0; color: #ffffff; font-size: 28px; font-weight: bold;">
                    🏠 Gestion Bailleurs
                </h1>
            </td>
        </tr>
        <tr>
            <td style="padding: 40px 20px;">
                <table role="presentation" style="max-width: 600px; margin: 0 auto; background-color: #ffffff; border-radius: 12px;">
                    <tr>
                        <td style="padding: 40px;">
                            <h2 style="margin: 0 0 20px 0; color: #1f2937; font-size: 24px;">Rappel de loyer</h2>
                            <p style="margin: 0 0 20px 0; color: #4b5563; font-size: 16px; line-height: 1.6;">
                                Bonjour %s,<br><br>
                                Nous vous rappelons que votre loyer de <strong>%.2f €</strong> est dû le <strong>%s</strong>.<br><br>
                                Merci de procéder au paiement dans les meilleurs délais.<br><br>
                                Cordialement,<br>
                                Votre propriétaire
                            </p>
                        </td>
                    </tr>
                </table>
            </td>
        </tr>
    </table>
</body>
</html>
    `, locataireNom, montant, FormatDateFR(dateEcheance))

	return sendEmail(toEmail, fmt.Sprintf("Rappel de loyer - %s", locataireNom), htmlBody)
}

// SendMaintenanceEmail envoie un rappel de maintenance au bailleur
func SendMaintenanceEmail(toEmail, description string, dateEcheance time.Time) error {
	htmlBody := fmt.Sprintf(`
<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>Rappel de maintenance</title>
</head>
<body style="margin: 0; padding: 0; font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; background-color: #f3f4f6;">
    <table role="presentation" style="max-width: 600px; margin: 0 auto; background-color: #ffffff; border-radius: 12px;">
        <tr>
            <td style="padding: 40px;">
                <h2 style="margin: 0 0 20px 0; color: #1f2937; font-size: 24px;">🔧 Maintenance à prévoir</h2>
                <p style="margin: 0 0 20px 0; color: #4b5563; font-size: 16px; line-height: 1.6;">
                    Une tâche de maintenance est prévue : <strong>%s</strong><br><br>
                    Date prévue : <strong>%s</strong><br><br>
                    N'oubliez pas de planifier cette intervention.
                </p>
            </td>
        </tr>
    </table>
</body>
</html>
    `, description, FormatDateFR(dateEcheance))

	return sendEmail(toEmail, fmt.Sprintf("Rappel de maintenance - %s", description), htmlBody)
}

// SendVerificationEmail envoie l'email de vérification de compte
func SendVerificationEmail(toEmail, userName, token string) error {
	frontendURL := os.Getenv("FRONTEND_URL")
	if frontendURL == "" {
		frontendURL = "http://localhost:3000"
	}

	verificationLink := fmt.Sprintf("%s/auth/verify?token=%s", frontendURL, token)

	htmlBody := fmt.Sprintf(`
<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>Vérification de votre compte</title>
</head>
<body style="margin: 0; padding: 0; font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; background-color: #f3f4f6;">
    <table role="presentation" style="max-width: 600px; margin: 0 auto; background-color: #ffffff; border-radius: 12px;">
        <tr>
            <td style="padding: 40px;">
                <h2 style="margin: 0 0 20px 0; color: #1f2937; font-size: 24px;">Bienvenue %s 👋</h2>
                <p style="margin: 0 0 20px 0; color: #4b5563; font-size: 16px; line-height: 1.6;">
                    Merci de vérifier votre adresse email pour activer votre compte Gestion Bailleurs.
                </p>
                <table role="presentation" style="margin: 20px 0;">
                    <tr>
                        <td style="border-radius: 8px; background: linear-gradient(135deg, #2563eb 0%%, #1e40af 100%%);">
                            <a href="%s" style="display: inline-block; padding: 16px 32px; color: #ffffff; text-decoration: none; font-size: 16px; font-weight: 600;">
                                Vérifier mon email
                            </a>
                        </td>
                    </tr>
                </table>
            </td>
        </tr>
    </table>
</body>
</html>
    `, userName, verificationLink)

	return sendEmail(toEmail, "Vérifiez votre adresse email", htmlBody)
}

// ============================================================================
// SHARED PRIVATE HELPER (Resend API)
// ============================================================================

func sendEmail(to, subject, htmlBody string) error {
	apiKey := os.Getenv("RESEND_API_KEY")
	if apiKey == "" {
		log.Println("⚠️ RESEND_API_KEY not set, email not sent")
		return fmt.Errorf("RESEND_API_KEY not set")
	}

	fromEmail := os.Getenv("FROM_EMAIL")
	if fromEmail == "" {
		fromEmail = "Gestion Bailleurs <noreply@gestion-bailleurs.fr>"
	}

	emailReq := EmailRequest{
		From:    fromEmail,
		To:      []string{to},
		Subject: subject,
		HTML:    htmlBody,
	}

	jsonData, err := json.Marshal(emailReq)
	if err != nil {
		return err
	}

	req, err := http.NewRequest("POST", "https://api.resend.com/emails", bytes.NewBuffer(jsonData))
	if err != nil {
		return err
	}

	req.Header.Set("Authorization", "Bearer "+apiKey)
	req.Header.Set("Content-Type", "application/json")

	client := &http.Client{Timeout: 10 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		SafeError("Erreur d'envoi email via Resend: %v", err)
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		SafeError("Resend a répondu %d pour %s", resp.StatusCode, MaskEmail(to))
		return fmt.Errorf("resend returned status %d", resp.StatusCode)
	}

	SafeDebug("📧 Email envoyé à %s: %s", MaskEmail(to), subject)
	return nil
}
