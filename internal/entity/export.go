package entity

import "time"

// ExportObject is an archived CSV export kept in object storage.
type ExportObject struct {
	Name         string    `json:"name"`
	Url          string    `json:"url"`
	Size         int64     `json:"size"`
	LastModified time.Time `json:"lastModified"`
}
