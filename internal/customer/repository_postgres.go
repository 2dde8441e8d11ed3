package customer

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) PreferencesFor(ctx context.Context, email string) (Preferences, error) {
	query := `
		SELECT email, name, dietary_preference, main_course_preference, sweets_preference
		FROM customer_preferences
		WHERE email = $1
	`
	row := r.db.QueryRow(ctx, query, email)

	var p Preferences
	err := row.Scan(&p.Email, &p.Name, &p.Dietary, &p.MainCourse, &p.Sweets)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return DefaultPreferences(email), nil
		}
		return Preferences{}, err
	}
	return p, nil
}

func (r *PostgresRepository) SavePreferences(ctx context.Context, prefs Preferences) error {
	query := `
		INSERT INTO customer_preferences (email, name, dietary_preference, main_course_preference, sweets_preference)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (email) DO UPDATE SET
			name = EXCLUDED.name,
			dietary_preference = EXCLUDED.dietary_preference,
			main_course_preference = EXCLUDED.main_course_preference,
			sweets_preference = EXCLUDED.sweets_preference
	`
	_, err := r.db.Exec(ctx, query,
		prefs.Email, prefs.Name, prefs.Dietary, prefs.MainCourse, prefs.Sweets,
	)
	return err
}

func (r *PostgresRepository) DietaryFor(ctx context.Context, email string) (string, error) {
	query := `SELECT dietary_preference FROM customer_preferences WHERE email = $1`
	row := r.db.QueryRow(ctx, query, email)

	var dietary string
	if err := row.Scan(&dietary); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return DefaultPreferences(email).Dietary, nil
		}
		return "", err
	}
	return dietary, nil
}
