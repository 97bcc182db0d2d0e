package entity

// Classification is the raw output of the external content classifier. The
// pipeline owns the mapping from this probabilistic signal to an admission
// decision; the collaborator owns only category and confidence.
type Classification struct {
	Category   string  `json:"category"`
	Confidence float64 `json:"confidence"`
}
