package repository

import (
	"context"
	"database/sql"

	"legalconnect/core/logger"
	"legalconnect/modules/scheduling/entity"

	"github.com/google/uuid"
)

// UpsertOAuthToken writes the full credential row for a user, replacing any
// earlier connection. Called only from the OAuth callback path.
func (r *SchedulingRepository) UpsertOAuthToken(ctx context.Context, token *entity.OAuthCalendarToken) error {
	query := `
		INSERT INTO oauth_calendar_tokens (id, user_id, access_token, refresh_token, access_expiry, refresh_expiry, created_at, updated_at)
		VALUES (:id, :user_id, :access_token, :refresh_token, :access_expiry, :refresh_expiry, :created_at, :updated_at)
		ON CONFLICT (user_id) DO UPDATE
		SET access_token = EXCLUDED.access_token,
		    refresh_token = EXCLUDED.refresh_token,
		    access_expiry = EXCLUDED.access_expiry,
		    refresh_expiry = EXCLUDED.refresh_expiry,
		    updated_at = EXCLUDED.updated_at`
	_, err := r.DB.NamedExecContext(ctx, query, token)
	if err != nil {
		logger.Error("SchedulingRepository:UpsertOAuthToken:Error", "error", err, "user_id", token.UserID)
		return err
	}
	return nil
}

func (r *SchedulingRepository) GetOAuthTokenByUserID(ctx context.Context, userID uuid.UUID) (*entity.OAuthCalendarToken, error) {
	var token entity.OAuthCalendarToken
	query := `
		SELECT id, user_id, access_token, refresh_token, access_expiry, refresh_expiry, created_at, updated_at
		FROM oauth_calendar_tokens WHERE user_id = $1`
	err := r.DB.GetContext(ctx, &token, query, userID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("SchedulingRepository:GetOAuthTokenByUserID:Error", "error", err, "user_id", userID)
		return nil, err
	}
	return &token, nil
}

// UpdateAccessToken persists the outcome of a refresh. The refresh token
// column is written too: refresh responses may rotate it.
func (r *SchedulingRepository) UpdateAccessToken(ctx context.Context, userID uuid.UUID, token *entity.OAuthCalendarToken) error {
	query := `
		UPDATE oauth_calendar_tokens
		SET access_token = $1,
		    refresh_token = $2,
		    access_expiry = $3,
		    refresh_expiry = $4,
		    updated_at = NOW()
		WHERE user_id = $5`
	err := r.DB.ExecContext(ctx, query, token.AccessToken, token.RefreshToken, token.AccessExpiry, token.RefreshExpiry, userID)
	if err != nil {
		logger.Error("SchedulingRepository:UpdateAccessToken:Error", "error", err, "user_id", userID)
		return err
	}
	return nil
}

func (r *SchedulingRepository) DeleteOAuthToken(ctx context.Context, userID uuid.UUID) error {
	query := `DELETE FROM oauth_calendar_tokens WHERE user_id = $1`
	err := r.DB.ExecContext(ctx, query, userID)
	if err != nil {
		logger.Error("SchedulingRepository:DeleteOAuthToken:Error", "error", err, "user_id", userID)
		return err
	}
	return nil
}
