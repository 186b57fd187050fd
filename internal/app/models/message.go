package models

import "time"

// Message is a direct message from one user to another
type Message struct {
	ID            string    `json:"id" db:"id"`
	SenderID      string    `json:"senderId" db:"sender_id"`
	ReceiverID    string    `json:"receiverId" db:"receiver_id"`
	OpportunityID *string   `json:"opportunityId,omitempty" db:"opportunity_id"`
	Content       string    `json:"content" db:"content"`
	IsRead        bool      `json:"isRead" db:"is_read"`
	CreatedAt     time.Time `json:"createdAt" db:"created_at"`
}

// Counterpart returns the other participant of the message as seen by userID
func (m *Message) Counterpart(userID string) string {
	if m.SenderID == userID {
		return m.ReceiverID
	}
	return m.SenderID
}

// Conversation is the latest message exchanged with one partner
type Conversation struct {
	PartnerID   string   `json:"partnerId"`
	LastMessage *Message `json:"lastMessage"`
}
