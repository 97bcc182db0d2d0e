package safety

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"pixgate/internal/domain/entity"
	"pixgate/internal/domain/model"
)

func TestApplyDecisionTable(t *testing.T) {
	tests := []struct {
		name       string
		category   string
		confidence float64
		want       model.AdmissionStatus
	}{
		{"benign high confidence", "benign", 0.97, model.AdmissionApproved},
		{"benign at floor", "benign", 0.85, model.AdmissionApproved},
		{"benign below floor", "benign", 0.84, model.AdmissionNeedsReview},
		{"neutral high confidence", "neutral", 0.91, model.AdmissionApproved},
		{"neutral below floor", "neutral", 0.50, model.AdmissionNeedsReview},

		{"explicit high confidence", "explicit", 0.95, model.AdmissionRejected},
		{"explicit at floor", "explicit", 0.90, model.AdmissionRejected},
		{"explicit below floor", "explicit", 0.89, model.AdmissionNeedsReview},
		{"violence high confidence", "violence", 0.99, model.AdmissionRejected},
		{"violence below floor", "violence", 0.40, model.AdmissionNeedsReview},
		{"illegal high confidence", "illegal", 0.92, model.AdmissionRejected},
		{"illegal below floor", "illegal", 0.10, model.AdmissionNeedsReview},

		{"identity document always reviewed", "identity_document", 0.99, model.AdmissionNeedsReview},
		{"identity document low confidence", "identity_document", 0.05, model.AdmissionNeedsReview},
		{"minors always reviewed", "minors_present", 1.0, model.AdmissionNeedsReview},

		{"unknown category", "abstract_art", 0.99, model.AdmissionNeedsReview},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Apply(entity.Classification{Category: tt.category, Confidence: tt.confidence})
			assert.Equal(t, tt.want, got.Status)
			assert.Equal(t, tt.confidence, got.Confidence)
			if got.Status != model.AdmissionApproved {
				assert.NotEmpty(t, got.Reason)
			}
		})
	}
}

type fakeClassifier struct {
	result entity.Classification
	err    error
}

func (f *fakeClassifier) Classify(_ context.Context, _ []byte) (entity.Classification, error) {
	return f.result, f.err
}

func TestDecideOutageFailsClosed(t *testing.T) {
	g := NewGate(&fakeClassifier{err: entity.ErrClassifierUnavailable}, &Config{})

	got := g.Decide(context.Background(), []byte("img"), "trace-1")

	assert.Equal(t, model.AdmissionNeedsReview, got.Status)
	assert.Equal(t, reasonUnavailable, got.Reason)
}

func TestDecideOutageFailOpen(t *testing.T) {
	g := NewGate(&fakeClassifier{err: entity.ErrClassifierUnavailable}, &Config{FailOpen: true})

	got := g.Decide(context.Background(), []byte("img"), "trace-1")

	assert.Equal(t, model.AdmissionApproved, got.Status)
}

type countingClassifier struct {
	inFlight atomic.Int64
	peak     atomic.Int64
}

func (c *countingClassifier) Classify(_ context.Context, _ []byte) (entity.Classification, error) {
	n := c.inFlight.Add(1)
	defer c.inFlight.Add(-1)

	for {
		peak := c.peak.Load()
		if n <= peak || c.peak.CompareAndSwap(peak, n) {
			break
		}
	}
	time.Sleep(10 * time.Millisecond)

	return entity.Classification{Category: "benign", Confidence: 0.99}, nil
}

func TestDecideBoundsConcurrentClassifyCalls(t *testing.T) {
	counting := &countingClassifier{}
	g := NewGate(counting, &Config{MaxConcurrent: 2})

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got := g.Decide(context.Background(), []byte("img"), "trace-1")
			assert.Equal(t, model.AdmissionApproved, got.Status)
		}()
	}
	wg.Wait()

	assert.LessOrEqual(t, counting.peak.Load(), int64(2))
}

func TestDecidePassesClassificationThrough(t *testing.T) {
	g := NewGate(&fakeClassifier{result: entity.Classification{Category: "benign", Confidence: 0.93}}, &Config{})

	got := g.Decide(context.Background(), []byte("img"), "trace-1")

	assert.Equal(t, model.AdmissionApproved, got.Status)
	assert.Equal(t, 0.93, got.Confidence)
}
