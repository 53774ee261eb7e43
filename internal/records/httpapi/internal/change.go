package internal

import (
	"recordbook-server/internal/records/domain"
	"recordbook-server/internal/records/usecases"
)

type ChangeMessage struct {
	Type     string       `json:"type"`
	Sheet    string       `json:"sheet"`
	Change   string       `json:"change"`
	Index    int          `json:"index"`
	Row      *RowResponse `json:"row,omitempty"`
	Length   int          `json:"length"`
	Revision uint64       `json:"revision"`
}

func ToChangeMessage(schema domain.Schema, change usecases.SheetChange) ChangeMessage {
	msg := ChangeMessage{
		Type:     "sheet_change",
		Sheet:    change.Sheet.String(),
		Change:   string(change.Kind),
		Index:    change.Index,
		Length:   change.Length,
		Revision: change.Revision,
	}

	if change.Row.ID != "" {
		row := ToRowResponse(schema, change.Index, change.Row)
		msg.Row = &row
	}

	return msg
}
