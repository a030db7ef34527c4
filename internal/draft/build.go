package draft

import (
	"fmt"

	"boxroom/internal/model"
)

// MissingOriginError reports the first package-typed row with no origin.
// The first bad row blocks the whole batch; later rows are not inspected.
type MissingOriginError struct {
	CustomerID string
	BoxNumber  string
}

func (e *MissingOriginError) Error() string {
	return fmt.Sprintf("box %s: package selected but no origin chosen", e.BoxNumber)
}

// EmptySelectionError reports a submission attempt with every row still set
// to none. Submitting nothing is an error, not a silent success.
type EmptySelectionError struct{}

func (e *EmptySelectionError) Error() string { return "no customers selected" }

// Build derives the outbound batch from the draft model, in listing order.
// Rows with type none are skipped; a package row with an empty origin fails
// the whole build immediately; an all-none model fails with
// EmptySelectionError. On success every item carries the full customer
// snapshot plus the resolved type and origin.
func Build(customers []model.Customer, m *Model) ([]model.SubmissionItem, error) {
	items := make([]model.SubmissionItem, 0, len(customers))
	for _, c := range customers {
		e := m.Entry(c.CustomerID)
		if e.Type == model.DispositionNone {
			continue
		}
		if e.Type == model.DispositionPackage && e.Origin == "" {
			return nil, &MissingOriginError{CustomerID: c.CustomerID, BoxNumber: c.BoxNumber}
		}
		items = append(items, model.SubmissionItem{
			CustomerID: c.CustomerID,
			BoxNumber:  c.BoxNumber,
			Name:       c.Name,
			Email:      c.Email,
			Type:       e.Type,
			Origin:     e.Origin,
		})
	}
	if len(items) == 0 {
		return nil, &EmptySelectionError{}
	}
	return items, nil
}
