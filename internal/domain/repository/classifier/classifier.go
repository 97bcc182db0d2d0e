package classifier

import (
	"context"

	"pixgate/internal/domain/entity"
)

// Classifier is the external content-classification collaborator. It is
// invoked with a bounded timeout; the pipeline owns the decision table.
type Classifier interface {
	Classify(ctx context.Context, image []byte) (entity.Classification, error)
}
