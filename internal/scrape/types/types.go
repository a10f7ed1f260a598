package types

import (
	"time"

	"jobscout-engine/internal/domain"
)

// FetchContext carries the metadata the fetch collaborator knew when it
// retrieved one (keyword, page) unit. Adapters and the assembler only ever
// see already-fetched bytes plus this context.
type FetchContext struct {
	Source      domain.Source
	BaseURL     string // origin used to absolutize relative links
	Keyword     string
	Page        int
	RetrievedAt time.Time
}
