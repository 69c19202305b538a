package models

import "time"

type HistoryStatus string

const (
	HistoryPending   HistoryStatus = "pending"
	HistoryCompleted HistoryStatus = "completed"
	HistoryCancelled HistoryStatus = "cancelled"
)

// Valid reports whether s is one of the known statuses.
func (s HistoryStatus) Valid() bool {
	switch s {
	case HistoryPending, HistoryCompleted, HistoryCancelled:
		return true
	}
	return false
}

// HistoryEntry records a user's use of a service; embedded in the user document.
type HistoryEntry struct {
	ID        string        `bson:"id" json:"id"`
	ServiceID string        `bson:"serviceId" json:"serviceId"`
	Date      time.Time     `bson:"date" json:"date"`
	Status    HistoryStatus `bson:"status" json:"status"`
}

type AddHistoryRequest struct {
	ServiceID string     `json:"serviceId"`
	Date      *time.Time `json:"date"`
	Status    string     `json:"status"`
}
