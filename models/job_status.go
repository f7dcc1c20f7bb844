package models

import (
	"strings"
	"time"
)

type JobStatus string

const (
	JobStatusDraft       JobStatus = "draft"
	JobStatusPublished   JobStatus = "published"
	JobStatusInactive    JobStatus = "inactive"
	JobStatusExpired     JobStatus = "expired"
	JobStatusArchived    JobStatus = "archived"
	JobStatusDeactivated JobStatus = "deactivated"
)

var jobStatusHumanName = map[JobStatus]string{
	JobStatusDraft:       "Draft",
	JobStatusPublished:   "Published",
	JobStatusInactive:    "Inactive",
	JobStatusExpired:     "Expired",
	JobStatusArchived:    "Archived",
	JobStatusDeactivated: "Deactivated",
}

func (s JobStatus) ToHuman() string {
	if human, exist := jobStatusHumanName[s]; exist {
		return human
	}
	return string(s)
}

func (s JobStatus) IsValid() bool {
	_, exist := jobStatusHumanName[s]
	return exist
}

// NormalizeJobStatus collapses the stored status column and the legacy posted
// flag into one value. The status column is authoritative; posted is consulted
// only for rows that predate the column. "active" is an alias of "published".
func NormalizeJobStatus(raw string, posted bool) JobStatus {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "":
		if posted {
			return JobStatusPublished
		}
		return JobStatusDraft
	case "active", "published":
		return JobStatusPublished
	case "draft":
		return JobStatusDraft
	case "inactive":
		return JobStatusInactive
	case "expired":
		return JobStatusExpired
	case "archived":
		return JobStatusArchived
	case "deactivated":
		return JobStatusDeactivated
	default:
		return JobStatusDraft
	}
}

// IsKnownJobStatus reports whether raw is an accepted spelling of a job
// status, the "active" alias included. NormalizeJobStatus falls back to draft
// for anything else, so request validation has to go through here.
func IsKnownJobStatus(raw string) bool {
	value := strings.ToLower(strings.TrimSpace(raw))
	if value == "active" {
		return true
	}
	return JobStatus(value).IsValid()
}

// EffectiveJobStatus applies the time- and count-based expiry rules to a
// published job at read time. The stored column is never rewritten; two reads
// of the same row may answer differently as the clock moves.
func EffectiveJobStatus(stored JobStatus, postedDate time.Time, autoExpireDays, applicationCount, maxApplications int, now time.Time) JobStatus {
	if stored != JobStatusPublished {
		return stored
	}
	if autoExpireDays > 0 && !postedDate.IsZero() && now.After(postedDate.AddDate(0, 0, autoExpireDays)) {
		return JobStatusExpired
	}
	if maxApplications > 0 && applicationCount >= maxApplications {
		return JobStatusExpired
	}
	return stored
}

func (s JobStatus) CanPublish() bool {
	return s == JobStatusDraft
}

func (s JobStatus) CanDeactivate() bool {
	return s == JobStatusPublished
}

// Archiving is allowed from any live state, the record and its applications
// are retained.
func (s JobStatus) CanArchive() bool {
	return s != JobStatusArchived
}

func (s JobStatus) CanReactivate() bool {
	switch s {
	case JobStatusDeactivated, JobStatusArchived, JobStatusExpired, JobStatusInactive:
		return true
	}
	return false
}
