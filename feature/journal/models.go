package journal

import "time"

// Entry is one recorded mutation of the object store.
type Entry struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Operation    string    `gorm:"size:32;index" json:"operation"`
	Bucket       string    `gorm:"size:255" json:"bucket"`
	Key          string    `gorm:"size:1024" json:"key"`
	TargetBucket string    `gorm:"size:255" json:"target_bucket,omitempty"`
	TargetKey    string    `gorm:"size:1024" json:"target_key,omitempty"`
	RayID        string    `gorm:"size:64" json:"ray_id,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// TableName pins the table name.
func (Entry) TableName() string {
	return "storage_journal"
}
