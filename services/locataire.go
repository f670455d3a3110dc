package services

import (
	"context"
	"database/sql"
	"time"

	"github.com/gestion-bailleurs/bailleur-api/models"
	"github.com/gestion-bailleurs/bailleur-api/utils"

	"github.com/google/uuid"
)

type LocataireService struct {
	db *sql.DB
}

func NewLocataireService(db *sql.DB) *LocataireService {
	return &LocataireService{db: db}
}

// Create crée un locataire et, si demandé, génère ses 12 premières échéances
// de loyer dans la même transaction.
func (s *LocataireService) Create(ctx context.Context, userID string, req models.CreateLocataireRequest) (*models.Locataire, error) {
	dateEntree, err := time.Parse("2006-01-02", req.DateEntree)
	if err != nil {
		return nil, err
	}

	locataire := &models.Locataire{
		ID:                   uuid.New().String(),
		UserID:               userID,
		BienID:               req.BienID,
		Nom:                  req.Nom,
		Prenom:               req.Prenom,
		Email:                req.Email,
		Telephone:            req.Telephone,
		DateEntree:           dateEntree,
		MontantLoyer:         req.MontantLoyer,
		MontantCharges:       req.MontantCharges,
		MontantDepotGarantie: req.MontantDepotGarantie,
		Statut:               models.LocataireActif,
		CreatedAt:            time.Now(),
		UpdatedAt:            time.Now(),
	}

	genererEcheances := req.GenererEcheances == nil || *req.GenererEcheances

	err = utils.WithTransaction(s.db, func(tx *sql.Tx) error {
		query := `
			INSERT INTO locataires (id, user_id, bien_id, nom, prenom, email, telephone, date_entree,
			                        montant_loyer, montant_charges, montant_depot_garantie, statut, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		`
		if _, err := tx.ExecContext(ctx, query,
			locataire.ID, locataire.UserID, locataire.BienID, locataire.Nom, locataire.Prenom,
			locataire.Email, locataire.Telephone, locataire.DateEntree, locataire.MontantLoyer,
			locataire.MontantCharges, locataire.MontantDepotGarantie, locataire.Statut,
			locataire.CreatedAt, locataire.UpdatedAt,
		); err != nil {
			return err
		}

		if genererEcheances {
			echeances := GenererEcheancesLoyer(*locataire, 12)
			if err := insertEcheancesTx(ctx, tx, echeances); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return locataire, nil
}

// GetAll retourne les locataires de l'utilisateur avec le résumé du bien joint
func (s *LocataireService) GetAll(ctx context.Context, userID string, filtres models.FiltresLocataires) ([]models.Locataire, error) {
	query := `
		SELECT l.id, l.user_id, l.bien_id, l.nom, COALESCE(l.prenom, ''), l.email, l.telephone,
		       l.date_entree, l.date_sortie, l.montant_loyer, COALESCE(l.montant_charges, 0),
		       COALESCE(l.montant_depot_garantie, 0), l.statut, l.date_archivage,
		       COALESCE(l.raison_archivage, ''), l.created_at, l.updated_at,
		       b.nom, b.adresse
		FROM locataires l
		JOIN biens b ON l.bien_id = b.id
		WHERE l.user_id = $1
		  AND ($2 = '' OR l.statut = $2)
		  AND ($3 = '' OR l.bien_id::text = $3)
		  AND ($4 = '' OR l.nom ILIKE '%' || $4 || '%' OR l.prenom ILIKE '%' || $4 || '%' OR l.email ILIKE '%' || $4 || '%')
		ORDER BY l.created_at DESC
	`

	rows, err := s.db.QueryContext(ctx, query, userID, filtres.Statut, filtres.BienID, filtres.Recherche)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	locataires := []models.Locataire{}
	for rows.Next() {
		var l models.Locataire
		err := rows.Scan(
			&l.ID, &l.UserID, &l.BienID, &l.Nom, &l.Prenom, &l.Email, &l.Telephone,
			&l.DateEntree, &l.DateSortie, &l.MontantLoyer, &l.MontantCharges,
			&l.MontantDepotGarantie, &l.Statut, &l.DateArchivage, &l.RaisonArchivage,
			&l.CreatedAt, &l.UpdatedAt, &l.BienNom, &l.BienAdresse,
		)
		if err != nil {
			return nil, err
		}
		locataires = append(locataires, l)
	}

	return locataires, rows.Err()
}

// GetByID retourne un locataire, scopé par utilisateur
func (s *LocataireService) GetByID(ctx context.Context, id, userID string) (*models.Locataire, error) {
	query := `
		SELECT l.id, l.user_id, l.bien_id, l.nom, COALESCE(l.prenom, ''), l.email, l.telephone,
		       l.date_entree, l.date_sortie, l.montant_loyer, COALESCE(l.montant_charges, 0),
		       COALESCE(l.montant_depot_garantie, 0), l.statut, l.date_archivage,
		       COALESCE(l.raison_archivage, ''), l.created_at, l.updated_at,
		       b.nom, b.adresse
		FROM locataires l
		JOIN biens b ON l.bien_id = b.id
		WHERE l.id = $1 AND l.user_id = $2
	`

	var l models.Locataire
	err := s.db.QueryRowContext(ctx, query, id, userID).Scan(
		&l.ID, &l.UserID, &l.BienID, &l.Nom, &l.Prenom, &l.Email, &l.Telephone,
		&l.DateEntree, &l.DateSortie, &l.MontantLoyer, &l.MontantCharges,
		&l.MontantDepotGarantie, &l.Statut, &l.DateArchivage, &l.RaisonArchivage,
		&l.CreatedAt, &l.UpdatedAt, &l.BienNom, &l.BienAdresse,
	)
	if err != nil {
		return nil, err
	}

	return &l, nil
}

// Update met à jour un locataire
func (s *LocataireService) Update(ctx context.Context, id, userID string, req models.UpdateLocataireRequest) error {
	var dateSortie *time.Time
	if req.DateSortie != nil {
		if d, err := time.Parse("2006-01-02", *req.DateSortie); err == nil {
			dateSortie = &d
		}
	}

	query := `
		UPDATE locataires
		SET nom = $1, prenom = $2, email = $3, telephone = $4, montant_loyer = $5,
		    montant_charges = $6, date_sortie = $7, updated_at = $8
		WHERE id = $9 AND user_id = $10
	`
	result, err := s.db.ExecContext(ctx, query,
		req.Nom, req.Prenom, req.Email, req.Telephone, req.MontantLoyer,
		req.MontantCharges, dateSortie, time.Now(), id, userID,
	)
	if err != nil {
		return err
	}

	rows, _ := result.RowsAffected()
	if rows == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// Archiver passe un locataire au statut archive avec la raison et la date
func (s *LocataireService) Archiver(ctx context.Context, id, userID, raison string) error {
	query := `
		UPDATE locataires
		SET statut = $1, raison_archivage = $2, date_archivage = $3, updated_at = $3
		WHERE id = $4 AND user_id = $5
	`
	result, err := s.db.ExecContext(ctx, query, models.LocataireArchive, raison, time.Now(), id, userID)
	if err != nil {
		return err
	}

	rows, _ := result.RowsAffected()
	if rows == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// Delete supprime un locataire
func (s *LocataireService) Delete(ctx context.Context, id, userID string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM locataires WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// CountActifs compte les locataires ACTIFS de l'utilisateur (pour le quota :
// les locataires archivés ou anciens ne comptent pas dans la limite du plan)
func (s *LocataireService) CountActifs(ctx context.Context, userID string) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM locataires WHERE user_id = $1 AND statut = $2`,
		userID, models.LocataireActif,
	).Scan(&count)
	return count, err
}
