// 사용자 프로필 쿼리

package db

import (
	"context"

	"github.com/mule-triage/backend/internal/model"
)

func (db *Postgres) UpdateUserProfile(ctx context.Context, userID int64, displayName, email string) (*model.User, error) {
	query := `
		UPDATE users
		SET display_name = $2, email = $3, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + userColumns
	return scanUser(db.Pool.QueryRow(ctx, query, userID, displayName, email))
}
