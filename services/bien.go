package services

import (
	"context"
	"database/sql"
	"time"

	"github.com/gestion-bailleurs/bailleur-api/models"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type BienService struct {
	db *sql.DB
}

func NewBienService(db *sql.DB) *BienService {
	return &BienService{db: db}
}

// Create crée un nouveau bien pour l'utilisateur. Le quota est vérifié par le
// handler avant l'appel.
func (s *BienService) Create(ctx context.Context, userID string, req models.CreateBienRequest) (*models.Bien, error) {
	bien := &models.Bien{
		ID:                 uuid.New().String(),
		UserID:             userID,
		Nom:                req.Nom,
		Adresse:            req.Adresse,
		MontantLoyer:       req.MontantLoyer,
		FrequenceEntretien: req.FrequenceEntretien,
		Type:               req.Type,
		Surface:            req.Surface,
		Photos:             req.Photos,
		CreatedAt:          time.Now(),
		UpdatedAt:          time.Now(),
	}
	if bien.FrequenceEntretien == 0 {
		bien.FrequenceEntretien = 12
	}
	if req.DateAchat != nil {
		if d, err := time.Parse("2006-01-02", *req.DateAchat); err == nil {
			bien.DateAchat = &d
		}
	}

	query := `
		INSERT INTO biens (id, user_id, nom, adresse, montant_loyer, frequence_entretien, type, surface, date_achat, photos, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NULLIF($7, ''), NULLIF($8, 0), $9, $10, $11, $12)
	`
	_, err := s.db.ExecContext(ctx, query,
		bien.ID, bien.UserID, bien.Nom, bien.Adresse, bien.MontantLoyer,
		bien.FrequenceEntretien, bien.Type, bien.Surface, bien.DateAchat,
		pq.Array([]string(bien.Photos)), bien.CreatedAt, bien.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return bien, nil
}

// GetAll retourne tous les biens de l'utilisateur
func (s *BienService) GetAll(ctx context.Context, userID string) ([]models.Bien, error) {
	query := `
		SELECT id, user_id, nom, adresse, montant_loyer, frequence_entretien,
		       COALESCE(type, ''), COALESCE(surface, 0), date_achat, photos, created_at, updated_at
		FROM biens
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	biens := []models.Bien{}
	for rows.Next() {
		var bien models.Bien
		err := rows.Scan(
			&bien.ID, &bien.UserID, &bien.Nom, &bien.Adresse, &bien.MontantLoyer,
			&bien.FrequenceEntretien, &bien.Type, &bien.Surface, &bien.DateAchat,
			&bien.Photos, &bien.CreatedAt, &bien.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		biens = append(biens, bien)
	}

	return biens, rows.Err()
}

// GetByID retourne un bien, scopé par utilisateur
func (s *BienService) GetByID(ctx context.Context, id, userID string) (*models.Bien, error) {
	query := `
		SELECT id, user_id, nom, adresse, montant_loyer, frequence_entretien,
		       COALESCE(type, ''), COALESCE(surface, 0), date_achat, photos, created_at, updated_at
		FROM biens
		WHERE id = $1 AND user_id = $2
	`

	var bien models.Bien
	err := s.db.QueryRowContext(ctx, query, id, userID).Scan(
		&bien.ID, &bien.UserID, &bien.Nom, &bien.Adresse, &bien.MontantLoyer,
		&bien.FrequenceEntretien, &bien.Type, &bien.Surface, &bien.DateAchat,
		&bien.Photos, &bien.CreatedAt, &bien.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &bien, nil
}

// Update met à jour un bien
func (s *BienService) Update(ctx context.Context, id, userID string, req models.UpdateBienRequest) error {
	query := `
		UPDATE biens
		SET nom = $1, adresse = $2, montant_loyer = $3, frequence_entretien = $4,
		    type = NULLIF($5, ''), surface = NULLIF($6, 0), photos = $7, updated_at = $8
		WHERE id = $9 AND user_id = $10
	`
	result, err := s.db.ExecContext(ctx, query,
		req.Nom, req.Adresse, req.MontantLoyer, req.FrequenceEntretien,
		req.Type, req.Surface, pq.Array(req.Photos), time.Now(), id, userID,
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

// Delete supprime un bien ; les échéances et paiements liés partent en cascade
func (s *BienService) Delete(ctx context.Context, id, userID string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM biens WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// Count retourne le nombre de biens de l'utilisateur (pour le quota)
func (s *BienService) Count(ctx context.Context, userID string) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM biens WHERE user_id = $1`, userID).Scan(&count)
	return count, err
}
