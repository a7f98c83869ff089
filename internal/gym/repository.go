package gym

import (
	"log/slog"

	"github.com/jmorales/ciclofit/internal/docstore"
)

// baseRepository carries the shared persistence handles used by the
// per-aggregate repositories.
type baseRepository struct {
	store  docstore.Store
	logger *slog.Logger
}

// gymPath builds the per-user document path for the gym namespace.
func gymPath(userID string, parts ...string) string {
	path := "users/" + userID + "/gym"
	for _, part := range parts {
		path += "/" + part
	}
	return path
}

// repositoryFactory wires every repository against the same store.
type repositoryFactory struct {
	evaluations *evaluationRepository
	cycles      *cycleRepository
	sessions    *sessionRepository
	prs         *prRepository
}

func newRepositoryFactory(store docstore.Store, logger *slog.Logger) *repositoryFactory {
	base := baseRepository{store: store, logger: logger}
	return &repositoryFactory{
		evaluations: &evaluationRepository{baseRepository: base},
		cycles:      &cycleRepository{baseRepository: base},
		sessions:    &sessionRepository{baseRepository: base},
		prs:         &prRepository{baseRepository: base},
	}
}
