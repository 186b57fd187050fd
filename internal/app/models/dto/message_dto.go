package dto

// SendMessageRequest is the direct message body. The sender is always the caller.
type SendMessageRequest struct {
	ReceiverID    string  `json:"receiverId" binding:"required"`
	OpportunityID *string `json:"opportunityId"`
	Content       string  `json:"content" binding:"required,max=5000"`
}
