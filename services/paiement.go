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
	// ErrPaiementExistant : une échéance n'a qu'un seul paiement
	ErrPaiementExistant = errors.New("un paiement existe déjà pour cette échéance")
)

type PaiementService struct {
	db *sql.DB
}

func NewPaiementService(db *sql.DB) *PaiementService {
	return &PaiementService{db: db}
}

// Create enregistre un paiement manuel pour une échéance. L'invariant un
// paiement par échéance est vérifié ici, et l'échéance passe à payée dans la
// même transaction.
func (s *PaiementService) Create(ctx context.Context, userID string, req models.CreatePaiementRequest) (*models.Paiement, error) {
	datePaiement, err := time.Parse("2006-01-02", req.DatePaiement)
	if err != nil {
		return nil, err
	}

	methode := req.MethodePaiement
	if methode == "" {
		methode = models.PaiementVirement
	}

	paiement := &models.Paiement{
		ID:                uuid.New().String(),
		UserID:            userID,
		EcheanceID:        req.EcheanceID,
		Montant:           req.Montant,
		DatePaiement:      datePaiement,
		MethodePaiement:   methode,
		ReferencePaiement: req.ReferencePaiement,
		Statut:            models.PaiementConfirme,
		Notes:             req.Notes,
		CreatedAt:         time.Now(),
		UpdatedAt:         time.Now(),
	}

	err = utils.WithTransaction(s.db, func(tx *sql.Tx) error {
		// L'échéance doit appartenir à l'utilisateur ; on récupère au passage
		// ses références dénormalisées
		var locataireID sql.NullString
		var statut string
		err := tx.QueryRowContext(ctx, `
			SELECT COALESCE(locataire_id::text, ''), bien_id, statut
			FROM echeances WHERE id = $1 AND user_id = $2
		`, req.EcheanceID, userID).Scan(&locataireID, &paiement.BienID, &statut)
		if err != nil {
			return err
		}
		paiement.LocataireID = locataireID.String
		if statut == models.EcheanceAnnulee {
			return ErrEcheanceAnnulee
		}

		var exists bool
		if err := tx.QueryRowContext(ctx,
			`SELECT EXISTS(SELECT 1 FROM paiements WHERE echeance_id = $1)`, req.EcheanceID,
		).Scan(&exists); err != nil {
			return err
		}
		if exists {
			return ErrPaiementExistant
		}

		if _, err := tx.ExecContext(ctx, `
			INSERT INTO paiements (id, user_id, echeance_id, locataire_id, bien_id, montant, date_paiement,
			                       methode_paiement, reference_paiement, statut, notes, created_at, updated_at)
			VALUES ($1, $2, $3, NULLIF($4, '')::uuid, $5, $6, $7, $8, NULLIF($9, ''), $10, NULLIF($11, ''), $12, $13)
		`, paiement.ID, paiement.UserID, paiement.EcheanceID, paiement.LocataireID, paiement.BienID,
			paiement.Montant, paiement.DatePaiement, paiement.MethodePaiement,
			paiement.ReferencePaiement, paiement.Statut, paiement.Notes,
			paiement.CreatedAt, paiement.UpdatedAt,
		); err != nil {
			return err
		}

		_, err = tx.ExecContext(ctx, `
			UPDATE echeances SET statut = $1, date_paiement = $2, updated_at = $3
			WHERE id = $4
		`, models.EcheancePayee, paiement.DatePaiement, time.Now(), req.EcheanceID)
		return err
	})
	if err != nil {
		return nil, err
	}

	return paiement, nil
}

// GetAll retourne les paiements de l'utilisateur, filtrables
func (s *PaiementService) GetAll(ctx context.Context, userID string, filtres models.FiltresPaiements) ([]models.Paiement, error) {
	query := `
		SELECT p.id, p.user_id, p.echeance_id, COALESCE(p.locataire_id::text, ''), p.bien_id,
		       p.montant, p.date_paiement, p.methode_paiement, COALESCE(p.reference_paiement, ''),
		       p.statut, COALESCE(p.notes, ''), p.created_at, p.updated_at,
		       b.nom, COALESCE(l.nom || CASE WHEN l.prenom IS NOT NULL THEN ' ' || l.prenom ELSE '' END, '')
		FROM paiements p
		JOIN biens b ON p.bien_id = b.id
		LEFT JOIN locataires l ON p.locataire_id = l.id
		WHERE p.user_id = $1
		  AND ($2 = '' OR p.statut = $2)
		  AND ($3 = '' OR p.methode_paiement = $3)
		  AND ($4 = '' OR p.bien_id::text = $4)
		  AND ($5 = '' OR p.locataire_id::text = $5)
		  AND ($6 = '' OR p.date_paiement >= $6::date)
		  AND ($7 = '' OR p.date_paiement <= $7::date)
		ORDER BY p.date_paiement DESC
	`

	rows, err := s.db.QueryContext(ctx, query, userID,
		filtres.Statut, filtres.MethodePaiement, filtres.BienID, filtres.LocataireID,
		filtres.DateDebut, filtres.DateFin,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	paiements := []models.Paiement{}
	for rows.Next() {
		var p models.Paiement
		err := rows.Scan(
			&p.ID, &p.UserID, &p.EcheanceID, &p.LocataireID, &p.BienID,
			&p.Montant, &p.DatePaiement, &p.MethodePaiement, &p.ReferencePaiement,
			&p.Statut, &p.Notes, &p.CreatedAt, &p.UpdatedAt,
			&p.BienNom, &p.LocataireNom,
		)
		if err != nil {
			return nil, err
		}
		paiements = append(paiements, p)
	}

	return paiements, rows.Err()
}

// Delete supprime un paiement et repasse son échéance à en_attente, dans la
// même transaction.
func (s *PaiementService) Delete(ctx context.Context, id, userID string) error {
	return utils.WithTransaction(s.db, func(tx *sql.Tx) error {
		var echeanceID string
		err := tx.QueryRowContext(ctx,
			`SELECT echeance_id FROM paiements WHERE id = $1 AND user_id = $2`, id, userID,
		).Scan(&echeanceID)
		if err != nil {
			return err
		}

		if _, err := tx.ExecContext(ctx, `DELETE FROM paiements WHERE id = $1`, id); err != nil {
			return err
		}

		_, err = tx.ExecContext(ctx, `
			UPDATE echeances SET statut = $1, date_paiement = NULL, updated_at = NOW()
			WHERE id = $2 AND statut = $3
		`, models.EcheanceEnAttente, echeanceID, models.EcheancePayee)
		return err
	})
}
