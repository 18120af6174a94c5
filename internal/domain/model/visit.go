package model

// Visit records a scheduled visit of an organization (a User) to an
// orphanage. The date is stored verbatim as supplied by the caller.
type Visit struct {
	ID          int64  `json:"id"`
	OrgID       int64  `json:"org_id"`
	OrphanageID int64  `json:"orphanage_id"`
	Date        string `json:"date"`
}
