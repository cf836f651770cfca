package repository

import (
	"context"
	"database/sql"

	"github.com/rghazali/fitfinder/internal/model"
)

// PartnerPostRepo manages workout-partner invitations on the public board.
type PartnerPostRepo struct{ DB *sql.DB }

func NewPartnerPostRepo(db *sql.DB) *PartnerPostRepo { return &PartnerPostRepo{DB: db} }

// Create inserts an invitation and assigns the generated ID and creation
// time back to the struct.
func (r *PartnerPostRepo) Create(ctx context.Context, p *model.PartnerPost) error {
	res, err := r.DB.ExecContext(ctx,
		`INSERT INTO workout_posts (user_id, activity, location, scheduled_for, note)
		 VALUES (?,?,?,?,?)`,
		p.UserID, p.Activity, p.Location, p.ScheduledFor, p.Note)
	if err != nil {
		return classify(err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	p.ID = uint64(id)
	return r.DB.QueryRowContext(ctx,
		"SELECT created_at FROM workout_posts WHERE post_id=?", p.ID).Scan(&p.CreatedAt)
}

// ListAll returns every invitation, newest first.
func (r *PartnerPostRepo) ListAll(ctx context.Context) ([]model.PartnerPost, error) {
	rows, err := r.DB.QueryContext(ctx,
		`SELECT post_id,user_id,activity,location,scheduled_for,note,created_at
		 FROM workout_posts ORDER BY created_at DESC, post_id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.PartnerPost
	for rows.Next() {
		var p model.PartnerPost
		var sched sql.NullTime
		if err := rows.Scan(&p.ID, &p.UserID, &p.Activity, &p.Location, &sched, &p.Note, &p.CreatedAt); err != nil {
			return nil, err
		}
		if sched.Valid {
			t := sched.Time
			p.ScheduledFor = &t
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// Delete removes an invitation on behalf of userID.  ErrNotFound when the
// post does not exist, ErrForbidden when it belongs to someone else.
func (r *PartnerPostRepo) Delete(ctx context.Context, postID uint64, userID string) error {
	var owner string
	err := r.DB.QueryRowContext(ctx,
		"SELECT user_id FROM workout_posts WHERE post_id=? LIMIT 1", postID).Scan(&owner)
	if err == sql.ErrNoRows {
		return ErrNotFound
	}
	if err != nil {
		return err
	}
	if owner != userID {
		return ErrForbidden
	}
	_, err = r.DB.ExecContext(ctx, "DELETE FROM workout_posts WHERE post_id=?", postID)
	return err
}
