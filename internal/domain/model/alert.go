package model

// Alert is a suspicious-activity note. Any authenticated caller may
// file one; only admins may read them.
type Alert struct {
	ID          int64  `json:"id"`
	Description string `json:"description"`
}
