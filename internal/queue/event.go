// Package queue defines message payloads exchanged over the message broker.
package queue

// PartnerPostedTopic is the queue name for partner-invitation events.
const PartnerPostedTopic = "partner.posted"

// PartnerPostedEvent is published when a workout-partner invitation is
// created.  It carries enough information for downstream consumers to log
// or notify without querying the primary database.
type PartnerPostedEvent struct {
	PostID       uint64 `json:"post_id"`
	UserID       string `json:"user_id"`
	Activity     string `json:"activity"`
	Location     string `json:"location"`
	ScheduledFor string `json:"scheduled_for,omitempty"`
	PostedAt     string `json:"posted_at"`
}
