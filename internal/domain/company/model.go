package company

import "time"

// Company is a read model derived from job postings at query time; nothing
// is persisted. Display fields are deterministic functions of the jobs so
// repeated requests agree.
type Company struct {
	Name           string    `json:"name"`
	OpenRoles      int       `json:"open_roles"`
	Locations      []string  `json:"locations"`
	Industry       string    `json:"industry"`
	Logo           string    `json:"logo"`
	LatestPostedAt time.Time `json:"latest_posted_at"`
}
