package dto

import "time"

// SendMessageRequest mensaje nuevo del chat interno.
type SendMessageRequest struct {
	ToID   string   `json:"toId"`
	Text   string   `json:"text"`
	Images []string `json:"images"`
}

// EditMessageRequest edición del texto de un mensaje propio.
type EditMessageRequest struct {
	Text string `json:"text"`
}

// MarkReadRequest lote de mensajes a marcar como leídos.
type MarkReadRequest struct {
	MessageIDs []string `json:"messageIds"`
}

// MessageResponse mensaje del chat.
type MessageResponse struct {
	ID        string    `json:"id"`
	FromID    string    `json:"fromId"`
	ToID      string    `json:"toId"`
	Text      string    `json:"text"`
	Images    []string  `json:"images"`
	Timestamp time.Time `json:"timestamp"`
	Read      bool      `json:"read"`
	Edited    bool      `json:"edited"`
}
