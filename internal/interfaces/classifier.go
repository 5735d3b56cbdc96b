package interfaces

import (
	"context"

	"github.com/ternarybob/brandex/internal/models"
)

// ClassifierButtonLimit bounds how many leading button candidates are
// described to the classifier. Returned button indices are only honored
// inside this window; anything past it was never shown to the model.
const ClassifierButtonLimit = 20

// ClassifierInput is everything handed to the semantic classifier: the
// heuristic profile, the ranked (capped) button candidates, the ranked logo
// candidates, plus optional brand-name hint and page screenshot.
type ClassifierInput struct {
	Profile    *models.HeuristicProfile
	Buttons    []models.ButtonCandidate
	Logos      []models.LogoCandidate
	BrandName  string
	Screenshot []byte // PNG, optional
	URL        string
}

// Classifier resolves ambiguous brand choices (primary button, color roles,
// logo selection) semantically. Any returned error is a recoverable
// condition: the pipeline falls back to the heuristic profile alone.
type Classifier interface {
	Classify(ctx context.Context, input *ClassifierInput) (*models.SemanticEnhancement, error)
	Close() error
}
