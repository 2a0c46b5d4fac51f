package models

import "time"

// KVEntry is a single persisted key/value row. The cart lives under one key
// as a JSON document, the same way the browser build kept it in localStorage.
type KVEntry struct {
	Key       string `gorm:"primaryKey" json:"key"`
	Value     string `json:"value"`
	UpdatedAt time.Time
}
