package booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type GroupRepo struct {
	pool *pgxpool.Pool
}

func NewGroupRepo(pool *pgxpool.Pool) *GroupRepo {
	return &GroupRepo{pool: pool}
}

func (r *GroupRepo) GetGroupByID(ctx context.Context, id string) (Group, error) {
	sql := `
			SELECT id, name, approver_id, member_ids
			FROM groups
			WHERE id=$1;
		`

	var g Group
	err := r.pool.QueryRow(ctx, sql, id).Scan(
		&g.ID,
		&g.Name,
		&g.ApproverID,
		&g.MemberIDs,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return Group{}, ErrGroupNotFound
	}

	if err != nil {
		return Group{}, fmt.Errorf("failed to fetch group with id %v: %w", id, err)
	}

	return g, nil
}
