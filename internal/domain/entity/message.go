package entity

import "time"

// Message representa un mensaje del chat interno admin ↔ agente.
// Colección CRUD paralela; no participa en los reportes financieros.
type Message struct {
	ID        string
	FromID    string
	ToID      string
	Text      string
	Images    []string
	Timestamp time.Time
	Read      bool
	Edited    bool
}
