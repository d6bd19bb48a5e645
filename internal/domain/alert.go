package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrAlertNotFound is returned when an alert cannot be found.
var ErrAlertNotFound = errors.New("alert not found")

// Alert represents a flagged compliance rule violation tied to a specific
// transaction. Alerts move through a monotonic lifecycle:
//
//	new -> review -> resolved
//
// with new -> resolved also permitted. There is no transition out of
// resolved, and no transition back to new.
type Alert struct {
	// ID is the unique identifier for this alert.
	ID string `json:"id"`

	// ClientID references the client whose activity triggered the rule.
	ClientID string `json:"client_id"`

	// ClientName is a denormalized copy of the client's name for display.
	ClientName string `json:"client_name,omitempty"`

	// TransactionID references the transaction that triggered the rule.
	TransactionID string `json:"transaction_id"`

	// RuleCode identifies which compliance rule fired.
	RuleCode RuleCode `json:"rule_code"`

	// RuleDescription is a human-readable explanation of the violation.
	RuleDescription string `json:"rule_description"`

	// Severity indicates how serious the violation is.
	Severity AlertSeverity `json:"severity"`

	// Status is the current lifecycle state.
	Status AlertStatus `json:"status"`

	// ResolutionNotes is free text supplied by the analyst. Notes are
	// mutable until the alert reaches a terminal state.
	ResolutionNotes string `json:"resolution_notes,omitempty"`

	// ResolvedBy is the identity of the analyst who resolved the alert.
	// Set if and only if the status is terminal.
	ResolvedBy string `json:"resolved_by,omitempty"`

	// ResolvedAt is when the alert was resolved. Nil while the alert is
	// open; set if and only if the status is terminal.
	ResolvedAt *time.Time `json:"resolved_at,omitempty"`

	// CreatedAt is when the alert was raised.
	CreatedAt time.Time `json:"created_at"`
}

// NewAlert creates an open alert for a transaction that violated a rule.
func NewAlert(txn *Transaction, code RuleCode, severity AlertSeverity, description string) *Alert {
	return &Alert{
		ID:              uuid.NewString(),
		ClientID:        txn.ClientID,
		ClientName:      txn.ClientName,
		TransactionID:   txn.ID,
		RuleCode:        code,
		RuleDescription: description,
		Severity:        severity,
		Status:          StatusNew,
		CreatedAt:       time.Now().UTC(),
	}
}

// IsOpen returns true if the alert has not reached a terminal state.
func (a *Alert) IsOpen() bool {
	return !a.Status.IsTerminal()
}

// IsResolved returns true if the alert has been resolved.
func (a *Alert) IsResolved() bool {
	return a.Status == StatusResolved
}

// Transition applies a status change, enforcing the lifecycle rules. It
// returns false without mutating the alert when the transition is not
// permitted: anything out of a terminal state, review back to new, or a
// repeat of the current state.
//
// Transitioning into resolved records the resolution side effects: the
// resolution timestamp, the analyst-supplied notes (which may be empty), and
// the resolver identity when available. Transitioning into review sets no
// resolution fields.
func (a *Alert) Transition(to AlertStatus, notes, resolvedBy string) bool {
	if !to.IsValid() || a.Status.IsTerminal() || to == a.Status || to == StatusNew {
		return false
	}

	a.Status = to
	if to == StatusResolved {
		now := time.Now().UTC()
		a.ResolvedAt = &now
		a.ResolvedBy = resolvedBy
		if notes != "" {
			a.ResolutionNotes = notes
		}
	}
	return true
}

// SetNotes updates the resolution notes on an open alert. Notes are frozen
// once the alert reaches a terminal state.
func (a *Alert) SetNotes(notes string) bool {
	if a.Status.IsTerminal() {
		return false
	}
	a.ResolutionNotes = notes
	return true
}
