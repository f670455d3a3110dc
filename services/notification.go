package services

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/gestion-bailleurs/bailleur-api/models"
	"github.com/gestion-bailleurs/bailleur-api/utils"

	"github.com/google/uuid"
)

type NotificationService struct {
	db *sql.DB
}

func NewNotificationService(db *sql.DB) *NotificationService {
	return &NotificationService{db: db}
}

// ComposerRappelLoyer construit la notification de rappel de loyer pour une
// échéance. Fonction pure, utilisée aussi par les tests.
func ComposerRappelLoyer(e models.Echeance, destinataire string) models.Notification {
	nom := e.LocataireNom
	if nom == "" {
		nom = "locataire"
	}
	return models.Notification{
		ID:           uuid.New().String(),
		UserID:       e.UserID,
		Type:         models.NotificationRappelLoyer,
		Titre:        fmt.Sprintf("Rappel de loyer - %s", nom),
		Message: fmt.Sprintf(
			"Votre loyer de %.2f € est dû le %s. Merci de procéder au paiement dans les meilleurs délais.",
			e.Montant, utils.FormatDateFR(e.DateEcheance)),
		Destinataire: destinataire,
		Statut:       models.NotificationEnAttente,
		EcheanceID:   e.ID,
		CreatedAt:    time.Now(),
	}
}

// ComposerRappelMaintenance construit la notification de maintenance pour le
// bailleur lui-même.
func ComposerRappelMaintenance(e models.Echeance, destinataire string) models.Notification {
	return models.Notification{
		ID:     uuid.New().String(),
		UserID: e.UserID,
		Type:   models.NotificationMaintenanceDue,
		Titre:  fmt.Sprintf("Rappel de maintenance - %s", e.Description),
		Message: fmt.Sprintf(
			"Une tâche de maintenance est prévue : %s. Date prévue : %s.",
			e.Description, utils.FormatDateFR(e.DateEcheance)),
		Destinataire: destinataire,
		Statut:       models.NotificationEnAttente,
		EcheanceID:   e.ID,
		CreatedAt:    time.Now(),
	}
}

// Create insère une notification en attente d'envoi
func (s *NotificationService) Create(ctx context.Context, n models.Notification) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO notifications (id, user_id, type, titre, message, destinataire, statut, echeance_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NULLIF($8, '')::uuid, $9)
	`, n.ID, n.UserID, n.Type, n.Titre, n.Message, n.Destinataire, n.Statut, n.EcheanceID, n.CreatedAt)
	return err
}

// GetAll retourne les notifications de l'utilisateur, les plus récentes d'abord
func (s *NotificationService) GetAll(ctx context.Context, userID string) ([]models.Notification, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, user_id, type, titre, message, destinataire, date_envoi, statut,
		       COALESCE(echeance_id::text, ''), created_at
		FROM notifications
		WHERE user_id = $1
		ORDER BY created_at DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	notifications := []models.Notification{}
	for rows.Next() {
		var n models.Notification
		err := rows.Scan(
			&n.ID, &n.UserID, &n.Type, &n.Titre, &n.Message, &n.Destinataire,
			&n.DateEnvoi, &n.Statut, &n.EcheanceID, &n.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		notifications = append(notifications, n)
	}

	return notifications, rows.Err()
}

// MarquerEnvoyee passe une notification au statut envoyé (ou échec)
func (s *NotificationService) MarquerEnvoyee(ctx context.Context, id string, succes bool) error {
	statut := models.NotificationEnvoyee
	if !succes {
		statut = models.NotificationEchec
	}
	_, err := s.db.ExecContext(ctx, `
		UPDATE notifications SET statut = $1, date_envoi = $2 WHERE id = $3
	`, statut, time.Now(), id)
	return err
}

// EnvoyerRappelLoyer compose, enregistre et envoie un rappel de loyer par
// email pour une échéance de loyer.
func (s *NotificationService) EnvoyerRappelLoyer(ctx context.Context, e models.Echeance, emailLocataire string) (*models.Notification, error) {
	notification := ComposerRappelLoyer(e, emailLocataire)
	if err := s.Create(ctx, notification); err != nil {
		return nil, err
	}

	err := utils.SendRappelLoyerEmail(emailLocataire, e.LocataireNom, e.Montant, e.DateEcheance)
	if markErr := s.MarquerEnvoyee(ctx, notification.ID, err == nil); markErr != nil {
		return nil, markErr
	}
	if err != nil {
		notification.Statut = models.NotificationEchec
		return &notification, err
	}

	now := time.Now()
	notification.Statut = models.NotificationEnvoyee
	notification.DateEnvoi = &now
	return &notification, nil
}
