package job

import (
	"encoding/json"
	"strings"
)

// StringList accepts either a JSON array of strings or a single
// comma-delimited string. The admin UI submits both shapes, so the flat
// form is split on commas, trimmed, and stripped of empty entries.
type StringList []string

func (l *StringList) UnmarshalJSON(data []byte) error {
	var items []string
	if err := json.Unmarshal(data, &items); err == nil {
		*l = items
		return nil
	}

	var flat string
	if err := json.Unmarshal(data, &flat); err != nil {
		return err
	}
	*l = SplitCommaList(flat)
	return nil
}

// SplitCommaList turns "a, b ,c" into ["a","b","c"].
func SplitCommaList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// CreateJobInput carries all caller-supplied fields for a new posting.
// Required-field checks happen in the service so the wire error matches the
// product contract rather than binding errors.
type CreateJobInput struct {
	Title            string     `json:"title"`
	Company          string     `json:"company"`
	Location         string     `json:"location"`
	Category         string     `json:"category"`
	Type             string     `json:"type"`
	Salary           *string    `json:"salary"`
	Description      string     `json:"description"`
	Requirements     StringList `json:"requirements"`
	Responsibilities StringList `json:"responsibilities"`
	Tags             StringList `json:"tags"`
}

// UpdateJobInput is a partial field set; nil means "leave unchanged".
type UpdateJobInput struct {
	Title            *string     `json:"title"`
	Company          *string     `json:"company"`
	Location         *string     `json:"location"`
	Category         *string     `json:"category"`
	Type             *string     `json:"type"`
	Salary           *string     `json:"salary"`
	Description      *string     `json:"description"`
	Requirements     *StringList `json:"requirements"`
	Responsibilities *StringList `json:"responsibilities"`
	Tags             *StringList `json:"tags"`
}
