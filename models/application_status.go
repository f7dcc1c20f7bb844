package models

import "strings"

// StatusBucket is the canonical application stage used for counting and
// filtering. The raw stored status string keeps its historical vocabulary, the
// bucket is always derived at read time.
type StatusBucket string

const (
	BucketApplied         StatusBucket = "applied"
	BucketScreening       StatusBucket = "screening"
	BucketShortlisted     StatusBucket = "shortlisted"
	BucketFirstInterview  StatusBucket = "first_interview"
	BucketSecondInterview StatusBucket = "second_interview"
	BucketFinalInterview  StatusBucket = "final_interview"
	BucketOnboarding      StatusBucket = "onboarding"
	BucketNotHired        StatusBucket = "not_hired"
	BucketWithdrawn       StatusBucket = "withdrawn"
)

var bucketOrder = []StatusBucket{
	BucketApplied,
	BucketScreening,
	BucketShortlisted,
	BucketFirstInterview,
	BucketSecondInterview,
	BucketFinalInterview,
	BucketOnboarding,
	BucketNotHired,
	BucketWithdrawn,
}

var bucketHumanName = map[StatusBucket]string{
	BucketApplied:         "Applied",
	BucketScreening:       "Screening",
	BucketShortlisted:     "Shortlisted",
	BucketFirstInterview:  "First interview",
	BucketSecondInterview: "Second interview",
	BucketFinalInterview:  "Final interview",
	BucketOnboarding:      "Onboarding",
	BucketNotHired:        "Not hired",
	BucketWithdrawn:       "Withdrawn",
}

var statusSynonyms = map[string]StatusBucket{
	"applied":   BucketApplied,
	"submitted": BucketApplied,
	"new":       BucketApplied,
	"pending":   BucketApplied,

	"under_review":   BucketScreening,
	"reviewing":      BucketScreening,
	"screening":      BucketScreening,
	"screened":       BucketScreening,
	"phone_screen":   BucketScreening,
	"initial_review": BucketScreening,

	"shortlisted":               BucketShortlisted,
	"shortlisted_for_interview": BucketShortlisted,

	"first_interview": BucketFirstInterview,
	"interview_1":     BucketFirstInterview,

	"second_interview": BucketSecondInterview,
	"interview_2":      BucketSecondInterview,

	"final_interview": BucketFinalInterview,
	"interview_3":     BucketFinalInterview,

	"background_check": BucketOnboarding,
	"reference_check":  BucketOnboarding,
	"hired":            BucketOnboarding,
	"onboarding":       BucketOnboarding,
	"offer_made":       BucketOnboarding,
	"offer_accepted":   BucketOnboarding,

	"not_selected": BucketNotHired,
	"not_hired":    BucketNotHired,
	"rejected":     BucketNotHired,
	"declined":     BucketNotHired,

	"withdrawn":          BucketWithdrawn,
	"candidate_withdrew": BucketWithdrawn,
}

func (b StatusBucket) ToHuman() string {
	if human, exist := bucketHumanName[b]; exist {
		return human
	}
	return string(b)
}

func AllBuckets() []StatusBucket {
	return bucketOrder
}

// NormalizeApplicationStatus maps a raw stored status onto its canonical
// bucket. Total by contract: unrecognized values land in "applied".
func NormalizeApplicationStatus(raw string) StatusBucket {
	if bucket, exist := statusSynonyms[strings.ToLower(strings.TrimSpace(raw))]; exist {
		return bucket
	}
	return BucketApplied
}

// BucketForStatus resolves a raw status to its bucket without the "applied"
// fallback of NormalizeApplicationStatus. Filters use it so a misspelled
// status matches nothing instead of the applied bucket.
func BucketForStatus(raw string) (StatusBucket, bool) {
	bucket, exist := statusSynonyms[strings.ToLower(strings.TrimSpace(raw))]
	return bucket, exist
}

// CountByBucket tallies raw statuses under their normalized bucket. Every
// status lands in exactly one bucket, the counts always sum to len(rawStatuses).
func CountByBucket(rawStatuses []string) map[StatusBucket]int {
	counts := make(map[StatusBucket]int, len(bucketOrder))
	for _, raw := range rawStatuses {
		counts[NormalizeApplicationStatus(raw)]++
	}
	return counts
}

const TabAll = "all"

// BucketsForTab resolves a dashboard tab to the buckets it shows. The "all"
// tab matches everything and returns nil.
func BucketsForTab(tab string) []StatusBucket {
	tab = strings.ToLower(strings.TrimSpace(tab))
	if tab == "" || tab == TabAll {
		return nil
	}
	for _, bucket := range bucketOrder {
		if string(bucket) == tab {
			return []StatusBucket{bucket}
		}
	}
	return []StatusBucket{}
}

// SynonymsOf lists the known raw spellings of a bucket, for validation hints
// and the export legend.
func SynonymsOf(bucket StatusBucket) []string {
	list := []string{}
	for raw, b := range statusSynonyms {
		if b == bucket {
			list = append(list, raw)
		}
	}
	return list
}
