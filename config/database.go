package config

import (
	"database/sql"
	"fmt"
	"os"

	_ "github.com/lib/pq"
)

func InitDB() (*sql.DB, error) {
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is required")
	}

	db, err := sql.Open("postgres", dbURL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)

	return db, nil
}

func RunMigrations(db *sql.DB) error {
	migrations := []string{
		`CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`,

		`CREATE TABLE IF NOT EXISTS users (
			id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
			email VARCHAR(255) UNIQUE NOT NULL,
			password_hash VARCHAR(255) NOT NULL,
			nom VARCHAR(255) NOT NULL,
			plan VARCHAR(50) NOT NULL DEFAULT 'gratuit',
			date_inscription TIMESTAMP DEFAULT NOW(),
			stripe_customer_id VARCHAR(255),
			stripe_subscription_id VARCHAR(255),
			totp_secret VARCHAR(255),
			totp_enabled BOOLEAN DEFAULT FALSE,
			email_verified BOOLEAN DEFAULT FALSE,
			created_at TIMESTAMP DEFAULT NOW(),
			updated_at TIMESTAMP DEFAULT NOW()
		)`,

		`CREATE TABLE IF NOT EXISTS biens (
			id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
			user_id UUID REFERENCES users(id) ON DELETE CASCADE,
			nom VARCHAR(255) NOT NULL,
			adresse TEXT NOT NULL,
			montant_loyer NUMERIC(10,2) NOT NULL,
			frequence_entretien INTEGER NOT NULL DEFAULT 12,
			type VARCHAR(50),
			surface NUMERIC(8,2),
			date_achat DATE,
			photos TEXT[] DEFAULT '{}',
			created_at TIMESTAMP DEFAULT NOW(),
			updated_at TIMESTAMP DEFAULT NOW()
		)`,

		`CREATE TABLE IF NOT EXISTS locataires (
			id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
			user_id UUID REFERENCES users(id) ON DELETE CASCADE,
			bien_id UUID REFERENCES biens(id) ON DELETE CASCADE,
			nom VARCHAR(255) NOT NULL,
			prenom VARCHAR(255),
			email VARCHAR(255) NOT NULL,
			telephone VARCHAR(50) NOT NULL,
			date_entree DATE NOT NULL,
			date_sortie DATE,
			montant_loyer NUMERIC(10,2) NOT NULL,
			montant_charges NUMERIC(10,2) DEFAULT 0,
			montant_depot_garantie NUMERIC(10,2) DEFAULT 0,
			statut VARCHAR(50) NOT NULL DEFAULT 'actif',
			date_archivage TIMESTAMP,
			raison_archivage TEXT,
			created_at TIMESTAMP DEFAULT NOW(),
			updated_at TIMESTAMP DEFAULT NOW()
		)`,

		`CREATE TABLE IF NOT EXISTS echeances (
			id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
			user_id UUID REFERENCES users(id) ON DELETE CASCADE,
			type VARCHAR(50) NOT NULL,
			locataire_id UUID REFERENCES locataires(id) ON DELETE SET NULL,
			bien_id UUID REFERENCES biens(id) ON DELETE CASCADE,
			montant NUMERIC(10,2) NOT NULL,
			date_echeance DATE NOT NULL,
			date_paiement TIMESTAMP,
			statut VARCHAR(50) NOT NULL DEFAULT 'en_attente',
			description TEXT NOT NULL,
			recurrente BOOLEAN DEFAULT FALSE,
			frequence_recurrence INTEGER,
			created_at TIMESTAMP DEFAULT NOW(),
			updated_at TIMESTAMP DEFAULT NOW()
		)`,

		`CREATE TABLE IF NOT EXISTS paiements (
			id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
			user_id UUID REFERENCES users(id) ON DELETE CASCADE,
			echeance_id UUID REFERENCES echeances(id) ON DELETE CASCADE,
			locataire_id UUID REFERENCES locataires(id) ON DELETE SET NULL,
			bien_id UUID REFERENCES biens(id) ON DELETE CASCADE,
			montant NUMERIC(10,2) NOT NULL,
			date_paiement TIMESTAMP NOT NULL,
			methode_paiement VARCHAR(50) NOT NULL DEFAULT 'virement',
			reference_paiement VARCHAR(255),
			statut VARCHAR(50) NOT NULL DEFAULT 'confirme',
			notes TEXT,
			created_at TIMESTAMP DEFAULT NOW(),
			updated_at TIMESTAMP DEFAULT NOW()
		)`,

		`CREATE TABLE IF NOT EXISTS notifications (
			id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
			user_id UUID REFERENCES users(id) ON DELETE CASCADE,
			type VARCHAR(50) NOT NULL,
			titre VARCHAR(255) NOT NULL,
			message TEXT NOT NULL,
			destinataire VARCHAR(255) NOT NULL,
			date_envoi TIMESTAMP,
			statut VARCHAR(50) NOT NULL DEFAULT 'en_attente',
			echeance_id UUID REFERENCES echeances(id) ON DELETE SET NULL,
			created_at TIMESTAMP DEFAULT NOW()
		)`,

		`CREATE TABLE IF NOT EXISTS sessions (
			id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
			user_id UUID REFERENCES users(id) ON DELETE CASCADE,
			refresh_token VARCHAR(500) UNIQUE NOT NULL,
			expires_at TIMESTAMP NOT NULL,
			created_at TIMESTAMP DEFAULT NOW()
		)`,

		`CREATE TABLE IF NOT EXISTS email_verifications (
			id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
			user_id UUID REFERENCES users(id) ON DELETE CASCADE,
			token VARCHAR(255) NOT NULL,
			expires_at TIMESTAMP NOT NULL,
			created_at TIMESTAMP DEFAULT NOW()
		)`,

		// Un seul paiement par échéance (invariant métier, appliqué aussi en base)
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_paiements_echeance_unique ON paiements(echeance_id)`,

		`CREATE INDEX IF NOT EXISTS idx_biens_user_id ON biens(user_id)`,
		`CREATE INDEX IF NOT EXISTS idx_locataires_user_id ON locataires(user_id)`,
		`CREATE INDEX IF NOT EXISTS idx_locataires_bien_id ON locataires(bien_id)`,
		`CREATE INDEX IF NOT EXISTS idx_echeances_user_id ON echeances(user_id)`,
		`CREATE INDEX IF NOT EXISTS idx_echeances_date ON echeances(date_echeance)`,
		`CREATE INDEX IF NOT EXISTS idx_echeances_statut ON echeances(statut)`,
		`CREATE INDEX IF NOT EXISTS idx_paiements_user_id ON paiements(user_id)`,
		`CREATE INDEX IF NOT EXISTS idx_notifications_user_id ON notifications(user_id)`,
		`CREATE INDEX IF NOT EXISTS idx_sessions_user_id ON sessions(user_id)`,
		`CREATE INDEX IF NOT EXISTS idx_email_verifications_token ON email_verifications(token)`,
	}

	for _, migration := range migrations {
		if _, err := db.Exec(migration); err != nil {
			return fmt.Errorf("failed to run migration: %w", err)
		}
	}

	return nil
}
