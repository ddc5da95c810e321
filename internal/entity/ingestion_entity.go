package entity

// TargetFailure records one scrape target that did not make it into the
// index, with a coarse reason usable for the run summary.
type TargetFailure struct {
	DocumentId string `json:"document_id"`
	Reason     string `json:"reason"`
}

// IngestionSummary is the final report of one ingestion run.
type IngestionSummary struct {
	RunId     string          `json:"run_id"`
	Date      string          `json:"date"`
	Attempted int             `json:"attempted"`
	Uploaded  int             `json:"uploaded"`
	Succeeded []string        `json:"succeeded"`
	Failed    []TargetFailure `json:"failed"`
}
