package safety

import (
	"context"
	"runtime"

	"golang.org/x/sync/semaphore"

	"pixgate/internal/domain/entity"
	"pixgate/internal/domain/model"
	"pixgate/internal/domain/repository/classifier"
	"pixgate/pkg/logger"
)

type Config struct {
	// FailOpen approves uploads when the classifier is unreachable. The
	// default is fail-closed: unreachable means NEEDS_REVIEW.
	FailOpen bool `yaml:"fail_open"`
	// MaxConcurrent caps in-flight classify calls. The work is network-bound,
	// so the cap sits looser than the sanitize pool.
	MaxConcurrent int64 `yaml:"max_concurrent"`
}

// rule is one row of the admission decision table. Rules are evaluated in
// order; the first row whose category matches and whose confidence floor is
// met wins.
type rule struct {
	category      string
	minConfidence float64
	status        model.AdmissionStatus
	reason        string
}

// decisionTable is the complete admission policy. Policy-sensitive
// categories map to review regardless of confidence; unsafe categories
// reject only above a high confidence floor; safe categories approve only
// above their own floor. Anything that falls through lands in review.
var decisionTable = []rule{
	{category: "identity_document", minConfidence: 0, status: model.AdmissionNeedsReview, reason: "identity document"},
	{category: "minors_present", minConfidence: 0, status: model.AdmissionNeedsReview, reason: "possible minors in frame"},

	{category: "explicit", minConfidence: 0.90, status: model.AdmissionRejected, reason: "explicit content"},
	{category: "violence", minConfidence: 0.90, status: model.AdmissionRejected, reason: "graphic violence"},
	{category: "illegal", minConfidence: 0.90, status: model.AdmissionRejected, reason: "illegal content"},
	{category: "explicit", minConfidence: 0, status: model.AdmissionNeedsReview, reason: "possibly explicit content"},
	{category: "violence", minConfidence: 0, status: model.AdmissionNeedsReview, reason: "possibly violent content"},
	{category: "illegal", minConfidence: 0, status: model.AdmissionNeedsReview, reason: "possibly illegal content"},

	{category: "benign", minConfidence: 0.85, status: model.AdmissionApproved},
	{category: "neutral", minConfidence: 0.85, status: model.AdmissionApproved},
	{category: "benign", minConfidence: 0, status: model.AdmissionNeedsReview, reason: "low classifier confidence"},
	{category: "neutral", minConfidence: 0, status: model.AdmissionNeedsReview, reason: "low classifier confidence"},
}

const reasonUnavailable = "classifier unavailable"

// Gate converts the classifier's probabilistic output into exactly one
// admission decision. It never fails an upload on its own: classifier outage
// degrades to NEEDS_REVIEW (or APPROVED when explicitly configured
// fail-open) and is logged, not surfaced.
type Gate struct {
	classifier classifier.Classifier
	cfg        *Config
	sem        *semaphore.Weighted
}

func NewGate(c classifier.Classifier, cfg *Config) *Gate {
	var limit int64
	if cfg != nil {
		limit = cfg.MaxConcurrent
	}
	if limit <= 0 {
		limit = int64(4 * runtime.GOMAXPROCS(0))
	}

	return &Gate{
		classifier: c,
		cfg:        cfg,
		sem:        semaphore.NewWeighted(limit),
	}
}

func (g *Gate) Decide(ctx context.Context, sanitizedFull []byte, requestID string) model.Admission {
	classification, err := g.classify(ctx, sanitizedFull)
	if err != nil {
		logger.Error("content classifier unavailable", "trace_id", requestID, "err", err.Error())

		if g.cfg != nil && g.cfg.FailOpen {
			return model.Admission{Status: model.AdmissionApproved, Reason: reasonUnavailable}
		}

		return model.Admission{Status: model.AdmissionNeedsReview, Reason: reasonUnavailable}
	}

	return Apply(classification)
}

func (g *Gate) classify(ctx context.Context, sanitizedFull []byte) (entity.Classification, error) {
	if err := g.sem.Acquire(ctx, 1); err != nil {
		return entity.Classification{}, err
	}
	defer g.sem.Release(1)

	return g.classifier.Classify(ctx, sanitizedFull)
}

// Apply runs one classification through the decision table.
func Apply(c entity.Classification) model.Admission {
	for _, r := range decisionTable {
		if r.category == c.Category && c.Confidence >= r.minConfidence {
			return model.Admission{
				Status:     r.status,
				Reason:     r.reason,
				Confidence: c.Confidence,
			}
		}
	}

	return model.Admission{
		Status:     model.AdmissionNeedsReview,
		Reason:     "unrecognized category: " + c.Category,
		Confidence: c.Confidence,
	}
}
