package repository

import (
	"context"
	"database/sql"

	"github.com/rghazali/fitfinder/internal/model"
)

// MessageLogRepo appends broker events to the message_log audit table.
type MessageLogRepo struct{ DB *sql.DB }

func NewMessageLogRepo(db *sql.DB) *MessageLogRepo { return &MessageLogRepo{DB: db} }

// Append records one consumed event.
func (r *MessageLogRepo) Append(ctx context.Context, topic string, body []byte) error {
	_, err := r.DB.ExecContext(ctx,
		"INSERT INTO message_log (topic, body) VALUES (?,?)", topic, string(body))
	return err
}

// Recent returns the latest n log entries, newest first.
func (r *MessageLogRepo) Recent(ctx context.Context, n int) ([]model.MessageLogEntry, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT id,topic,body,logged_at FROM message_log ORDER BY id DESC LIMIT ?", n)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.MessageLogEntry
	for rows.Next() {
		var e model.MessageLogEntry
		if err := rows.Scan(&e.ID, &e.Topic, &e.Body, &e.LoggedAt); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}
