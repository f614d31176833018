package domain

import "strings"

type ToggleOutcome struct {
	ID           string `json:"id"`
	Success      bool   `json:"success"`
	ActionLabel  string `json:"action_label"`
	ErrorMessage string `json:"error_message,omitempty"`
}

type ToggleResult struct {
	BatchID      string          `json:"batch_id"`
	TargetStatus AdSetStatus     `json:"target_status"`
	Successes    []ToggleOutcome `json:"successes"`
	Failures     []ToggleOutcome `json:"failures"`
}

func (r ToggleResult) Total() int {
	return len(r.Successes) + len(r.Failures)
}

// ParseAdSetIDs separa por vírgula, remove espaços e descarta itens vazios.
// Duplicados são mantidos.
func ParseAdSetIDs(raw string) []string {
	ids := make([]string, 0)
	for _, token := range strings.Split(raw, ",") {
		id := strings.TrimSpace(token)
		if id == "" {
			continue
		}
		ids = append(ids, id)
	}
	return ids
}

// PartitionOutcomes separa sucessos e falhas preservando a ordem de entrada
func PartitionOutcomes(outcomes []ToggleOutcome) (successes, failures []ToggleOutcome) {
	successes = make([]ToggleOutcome, 0, len(outcomes))
	failures = make([]ToggleOutcome, 0)

	for _, o := range outcomes {
		if o.Success {
			successes = append(successes, o)
		} else {
			failures = append(failures, o)
		}
	}

	return successes, failures
}

// ToggleAuditEntry é uma linha do registro de alterações de status
type ToggleAuditEntry struct {
	ID           string
	BatchID      string
	AdSetID      string
	TargetStatus AdSetStatus
	Success      bool
	ErrorMessage string
}
