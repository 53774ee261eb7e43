package usecases

import (
	"time"

	"recordbook-server/internal/infra/async"
	"recordbook-server/internal/records/domain"
)

const SheetChangesTopic async.BrokerTopicName = "sheet_changes"

// SheetChange is published on SheetChangesTopic after every store mutation.
type SheetChange struct {
	Sheet    domain.SheetKind
	Kind     domain.ChangeKind
	Index    int
	Row      domain.Row
	Length   int
	Revision uint64
}

type SheetSummary struct {
	Kind      domain.SheetKind
	Schema    domain.Schema
	Rows      int
	Revision  uint64
	UpdatedAt time.Time
}
