package model

import "time"

// PartnerPost is a workout-partner invitation on the public board, stored
// in the `workout_posts` table.  Posts can only be removed by their author.
type PartnerPost struct {
	ID           uint64     // workout_posts.post_id
	UserID       string     // workout_posts.user_id (references users.user_id)
	Activity     string     // workout_posts.activity
	Location     string     // workout_posts.location
	ScheduledFor *time.Time // workout_posts.scheduled_for (nullable)
	Note         string     // workout_posts.note
	CreatedAt    time.Time  // workout_posts.created_at
}

// MessageLogEntry is an audit row in `message_log`, written by the queue
// consumer for every event it drains from the broker.
type MessageLogEntry struct {
	ID       uint64    // message_log.id
	Topic    string    // message_log.topic
	Body     string    // message_log.body (raw event JSON)
	LoggedAt time.Time // message_log.logged_at
}
