package internal

import "recordbook-server/internal/records/domain"

type FormStateResponse struct {
	Values       map[string]string `json:"values"`
	Errors       map[string]string `json:"errors"`
	EditingIndex int               `json:"editing_index"`
	EditingID    string            `json:"editing_id,omitempty"`
	SubmitLabel  string            `json:"submit_label"`
}

func ToFormStateResponse(state domain.FormState) FormStateResponse {
	values := make(map[string]string, len(state.Values))
	for k, v := range state.Values {
		values[string(k)] = v
	}

	return FormStateResponse{
		Values:       values,
		Errors:       ToFieldErrors(state.Errors),
		EditingIndex: state.EditingIndex,
		EditingID:    state.EditingID.String(),
		SubmitLabel:  state.SubmitLabel,
	}
}

func ToFieldErrors(errs domain.ValidationErrors) map[string]string {
	out := make(map[string]string, len(errs))
	for k, v := range errs {
		out[string(k)] = v
	}
	return out
}

type FieldValueRequest struct {
	Value string `json:"value"`
}

type SubmitResponse struct {
	Row  RowResponse       `json:"row"`
	Form FormStateResponse `json:"form"`
}
