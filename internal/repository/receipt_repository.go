package repository

import (
	"context"
	"database/sql"

	"github.com/merchantkit/checkout-service/internal/models"
)

type ReceiptRepository struct {
	db *sql.DB
}

func NewReceiptRepository(db *sql.DB) *ReceiptRepository {
	return &ReceiptRepository{db: db}
}

func (r *ReceiptRepository) InitDB() error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS checkout_receipts (
			id SERIAL PRIMARY KEY,
			confirmation VARCHAR(255),
			status VARCHAR(50) NOT NULL,
			message TEXT,
			amount VARCHAR(50),
			secondary_amount VARCHAR(50),
			first_name VARCHAR(255),
			last_name VARCHAR(255),
			city VARCHAR(255),
			state VARCHAR(50),
			zip VARCHAR(20),
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE INDEX IF NOT EXISTS idx_checkout_receipts_confirmation ON checkout_receipts(confirmation)`,
	}

	for _, query := range queries {
		if _, err := r.db.Exec(query); err != nil {
			return err
		}
	}

	return nil
}

func (r *ReceiptRepository) Save(ctx context.Context, receipt *models.Receipt) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO checkout_receipts
			(confirmation, status, message, amount, secondary_amount, first_name, last_name, city, state, zip)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`, receipt.Confirmation, receipt.Status, receipt.Message, receipt.Amount, receipt.SecondaryAmount,
		receipt.FirstName, receipt.LastName, receipt.City, receipt.State, receipt.Zip)
	return err
}

func (r *ReceiptRepository) GetByConfirmation(ctx context.Context, confirmation string) (*models.Receipt, error) {
	var receipt models.Receipt
	err := r.db.QueryRowContext(ctx, `
		SELECT confirmation, status, message, amount, secondary_amount, first_name, last_name, city, state, zip, created_at
		FROM checkout_receipts WHERE confirmation = $1
		ORDER BY created_at DESC LIMIT 1
	`, confirmation).Scan(&receipt.Confirmation, &receipt.Status, &receipt.Message, &receipt.Amount,
		&receipt.SecondaryAmount, &receipt.FirstName, &receipt.LastName, &receipt.City, &receipt.State,
		&receipt.Zip, &receipt.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &receipt, nil
}
