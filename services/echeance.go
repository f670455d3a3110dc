package services

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/gestion-bailleurs/bailleur-api/models"
	"github.com/gestion-bailleurs/bailleur-api/utils"

	"github.com/google/uuid"
)

var (
	// ErrEcheanceAnnulee : aucune transition ne quitte le statut annulée
	ErrEcheanceAnnulee = errors.New("échéance annulée, statut non modifiable")
)

type EcheanceService struct {
	db *sql.DB
}

func NewEcheanceService(db *sql.DB) *EcheanceService {
	return &EcheanceService{db: db}
}

func insertEcheancesTx(ctx context.Context, tx *sql.Tx, echeances []models.Echeance) error {
	query := `
		INSERT INTO echeances (id, user_id, type, locataire_id, bien_id, montant, date_echeance,
		                       statut, description, recurrente, frequence_recurrence, created_at, updated_at)
		VALUES ($1, $2, $3, NULLIF($4, '')::uuid, $5, $6, $7, $8, $9, $10, NULLIF($11, 0), $12, $13)
	`
	for _, e := range echeances {
		if _, err := tx.ExecContext(ctx, query,
			e.ID, e.UserID, e.Type, e.LocataireID, e.BienID, e.Montant, e.DateEcheance,
			e.Statut, e.Description, e.Recurrente, e.FrequenceRecurrence, e.CreatedAt, e.UpdatedAt,
		); err != nil {
			return err
		}
	}
	return nil
}

// Create crée une échéance ponctuelle (maintenance, charges...)
func (s *EcheanceService) Create(ctx context.Context, userID string, req models.CreateEcheanceRequest) (*models.Echeance, error) {
	dateEcheance, err := time.Parse("2006-01-02", req.DateEcheance)
	if err != nil {
		return nil, err
	}

	echeance := &models.Echeance{
		ID:                  uuid.New().String(),
		UserID:              userID,
		Type:                req.Type,
		LocataireID:         req.LocataireID,
		BienID:              req.BienID,
		Montant:             req.Montant,
		DateEcheance:        dateEcheance,
		Statut:              models.EcheanceEnAttente,
		Description:         req.Description,
		Recurrente:          req.Recurrente,
		FrequenceRecurrence: req.FrequenceRecurrence,
		CreatedAt:           time.Now(),
		UpdatedAt:           time.Now(),
	}

	err = utils.WithTransaction(s.db, func(tx *sql.Tx) error {
		return insertEcheancesTx(ctx, tx, []models.Echeance{*echeance})
	})
	if err != nil {
		return nil, err
	}

	return echeance, nil
}

// GenererPourLocataire génère et insère nbMois échéances de loyer pour un
// locataire existant.
func (s *EcheanceService) GenererPourLocataire(ctx context.Context, locataire models.Locataire, nbMois int) ([]models.Echeance, error) {
	echeances := GenererEcheancesLoyer(locataire, nbMois)
	if len(echeances) == 0 {
		return echeances, nil
	}

	err := utils.WithTransaction(s.db, func(tx *sql.Tx) error {
		return insertEcheancesTx(ctx, tx, echeances)
	})
	if err != nil {
		return nil, err
	}

	return echeances, nil
}

const selectEcheance = `
	SELECT e.id, e.user_id, e.type, COALESCE(e.locataire_id::text, ''), e.bien_id, e.montant,
	       e.date_echeance, e.date_paiement, e.statut, e.description, e.recurrente,
	       COALESCE(e.frequence_recurrence, 0), e.created_at, e.updated_at,
	       b.nom, COALESCE(l.nom || CASE WHEN l.prenom IS NOT NULL THEN ' ' || l.prenom ELSE '' END, '')
	FROM echeances e
	JOIN biens b ON e.bien_id = b.id
	LEFT JOIN locataires l ON e.locataire_id = l.id
`

func scanEcheance(scanner interface{ Scan(...interface{}) error }) (models.Echeance, error) {
	var e models.Echeance
	err := scanner.Scan(
		&e.ID, &e.UserID, &e.Type, &e.LocataireID, &e.BienID, &e.Montant,
		&e.DateEcheance, &e.DatePaiement, &e.Statut, &e.Description, &e.Recurrente,
		&e.FrequenceRecurrence, &e.CreatedAt, &e.UpdatedAt,
		&e.BienNom, &e.LocataireNom,
	)
	return e, err
}

// GetAll retourne les échéances de l'utilisateur avec les résumés bien/locataire
// joints, filtrables par statut, type, bien, locataire et période.
func (s *EcheanceService) GetAll(ctx context.Context, userID string, filtres models.FiltresEcheances) ([]models.Echeance, error) {
	query := selectEcheance + `
		WHERE e.user_id = $1
		  AND ($2 = '' OR e.statut = $2)
		  AND ($3 = '' OR e.type = $3)
		  AND ($4 = '' OR e.bien_id::text = $4)
		  AND ($5 = '' OR e.locataire_id::text = $5)
		  AND ($6 = '' OR e.date_echeance >= $6::date)
		  AND ($7 = '' OR e.date_echeance <= $7::date)
		ORDER BY e.date_echeance ASC
	`

	rows, err := s.db.QueryContext(ctx, query, userID,
		filtres.Statut, filtres.Type, filtres.BienID, filtres.LocataireID,
		filtres.DateDebut, filtres.DateFin,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	echeances := []models.Echeance{}
	for rows.Next() {
		e, err := scanEcheance(rows)
		if err != nil {
			return nil, err
		}
		echeances = append(echeances, e)
	}

	return echeances, rows.Err()
}

// GetByID retourne une échéance, scopée par utilisateur
func (s *EcheanceService) GetByID(ctx context.Context, id, userID string) (*models.Echeance, error) {
	query := selectEcheance + ` WHERE e.id = $1 AND e.user_id = $2`

	e, err := scanEcheance(s.db.QueryRowContext(ctx, query, id, userID))
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// Update modifie le montant, la date et la description d'une échéance
func (s *EcheanceService) Update(ctx context.Context, id, userID string, req models.UpdateEcheanceRequest) error {
	dateEcheance, err := time.Parse("2006-01-02", req.DateEcheance)
	if err != nil {
		return err
	}

	result, err := s.db.ExecContext(ctx, `
		UPDATE echeances
		SET montant = $1, date_echeance = $2, description = $3, updated_at = $4
		WHERE id = $5 AND user_id = $6
	`, req.Montant, dateEcheance, req.Description, time.Now(), id, userID)
	if err != nil {
		return err
	}

	rows, _ := result.RowsAffected()
	if rows == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// Delete supprime une échéance ; le paiement lié part en cascade
func (s *EcheanceService) Delete(ctx context.Context, id, userID string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM echeances WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// Annuler passe une échéance en attente ou en retard au statut annulée
func (s *EcheanceService) Annuler(ctx context.Context, id, userID string) error {
	result, err := s.db.ExecContext(ctx, `
		UPDATE echeances
		SET statut = $1, updated_at = $2
		WHERE id = $3 AND user_id = $4 AND statut IN ($5, $6)
	`, models.EcheanceAnnulee, time.Now(), id, userID, models.EcheanceEnAttente, models.EcheanceEnRetard)
	if err != nil {
		return err
	}

	rows, _ := result.RowsAffected()
	if rows == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// TogglePaiement bascule une échéance entre en_attente et payée. La mise à
// jour du statut et la création/suppression du paiement lié se font dans une
// même transaction : aucun état intermédiaire n'est observable.
func (s *EcheanceService) TogglePaiement(ctx context.Context, id, userID string) (*models.Echeance, error) {
	echeance, err := s.GetByID(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	if echeance.Statut == models.EcheanceAnnulee {
		return nil, ErrEcheanceAnnulee
	}

	maintenant := time.Now()

	if echeance.Statut == models.EcheancePayee {
		// payée -> en attente : on efface la date et on retire le paiement
		updated := MarquerEnAttente(*echeance, maintenant)
		err = utils.WithTransaction(s.db, func(tx *sql.Tx) error {
			if _, err := tx.ExecContext(ctx, `
				UPDATE echeances SET statut = $1, date_paiement = NULL, updated_at = $2
				WHERE id = $3 AND user_id = $4
			`, updated.Statut, updated.UpdatedAt, id, userID); err != nil {
				return err
			}
			_, err := tx.ExecContext(ctx, `DELETE FROM paiements WHERE echeance_id = $1 AND user_id = $2`, id, userID)
			return err
		})
		if err != nil {
			return nil, err
		}
		return &updated, nil
	}

	// en attente / en retard -> payée : on crée le paiement lié
	updated, paiement := MarquerPayee(*echeance, maintenant)
	err = utils.WithTransaction(s.db, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `
			UPDATE echeances SET statut = $1, date_paiement = $2, updated_at = $3
			WHERE id = $4 AND user_id = $5
		`, updated.Statut, updated.DatePaiement, updated.UpdatedAt, id, userID); err != nil {
			return err
		}

		// Un seul paiement par échéance : on purge d'éventuelles lignes
		// orphelines avant d'insérer
		if _, err := tx.ExecContext(ctx, `DELETE FROM paiements WHERE echeance_id = $1`, id); err != nil {
			return err
		}

		_, err := tx.ExecContext(ctx, `
			INSERT INTO paiements (id, user_id, echeance_id, locataire_id, bien_id, montant,
			                       date_paiement, methode_paiement, statut, created_at, updated_at)
			VALUES ($1, $2, $3, NULLIF($4, '')::uuid, $5, $6, $7, $8, $9, $10, $11)
		`, paiement.ID, paiement.UserID, paiement.EcheanceID, paiement.LocataireID,
			paiement.BienID, paiement.Montant, paiement.DatePaiement,
			paiement.MethodePaiement, paiement.Statut, paiement.CreatedAt, paiement.UpdatedAt)
		return err
	})
	if err != nil {
		return nil, err
	}

	return &updated, nil
}

// SweepEnRetard passe en_retard toutes les échéances en attente dont la date
// est dépassée. Les lectures n'en dépendent pas (EstEnRetard fait l'union),
// mais le statut stocké reste cohérent pour les filtres.
func (s *EcheanceService) SweepEnRetard(ctx context.Context) (int64, error) {
	result, err := s.db.ExecContext(ctx, `
		UPDATE echeances
		SET statut = $1, updated_at = NOW()
		WHERE statut = $2 AND date_echeance < CURRENT_DATE
	`, models.EcheanceEnRetard, models.EcheanceEnAttente)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
