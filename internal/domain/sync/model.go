package sync

import (
	"time"
)

// ItemKind names the record kind an ItemResult refers to.
type ItemKind string

const (
	KindProduct ItemKind = "product"
	KindVariant ItemKind = "variant"
	KindImage   ItemKind = "image"
	KindOption  ItemKind = "option"
)

// ItemResult is the outcome of upserting a single product or child record
// within a pass. A failed item never aborts the batch; it is recorded here.
type ItemResult struct {
	Kind       ItemKind `json:"kind"`
	ExternalID int64    `json:"external_id,omitempty"`
	Name       string   `json:"name,omitempty"`
	Error      string   `json:"error,omitempty"`

	err error
}

func (r ItemResult) Failed() bool { return r.err != nil }

// Err returns the underlying item error, nil on success.
func (r ItemResult) Err() error { return r.err }

// Report aggregates the outcome of one sync pass.
type Report struct {
	Fetched    int          `json:"fetched"`
	Succeeded  int          `json:"succeeded"`
	Failed     int          `json:"failed"`
	Items      []ItemResult `json:"items,omitempty"`
	StartedAt  time.Time    `json:"started_at"`
	FinishedAt time.Time    `json:"finished_at"`
}

func (rep *Report) add(res ItemResult) {
	if res.Failed() {
		rep.Failed++
	} else {
		rep.Succeeded++
	}
	rep.Items = append(rep.Items, res)
}

// FailedItems returns only the failed results, for logging and API output.
func (rep *Report) FailedItems() []ItemResult {
	var out []ItemResult
	for _, it := range rep.Items {
		if it.Failed() {
			out = append(out, it)
		}
	}
	return out
}
