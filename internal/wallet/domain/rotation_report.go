package domain

import "time"

// RotationFailure records why one wallet could not be rotated.
type RotationFailure struct {
	WalletID string `json:"wallet_id"`
	Reason   string `json:"reason"`
}

// RotationReport summarises a batch master key rotation for operators.
//
// Total counts every record found under the old master key. Each wallet ends up in
// exactly one of Succeeded, Failed or Skipped.
type RotationReport struct {
	OldMasterKeyID string            `json:"old_master_key_id"`
	NewMasterKeyID string            `json:"new_master_key_id"`
	Total          int               `json:"total"`
	Succeeded      int               `json:"succeeded"`
	Failed         []RotationFailure `json:"failed"`
	Skipped        []string          `json:"skipped"`
	StartedAt      time.Time         `json:"started_at"`
	FinishedAt     time.Time         `json:"finished_at"`
}

// FailedWalletIDs returns the wallet ids of every failure, in report order.
func (r *RotationReport) FailedWalletIDs() []string {
	ids := make([]string, 0, len(r.Failed))
	for _, f := range r.Failed {
		ids = append(ids, f.WalletID)
	}
	return ids
}

// Complete reports whether every wallet was migrated.
func (r *RotationReport) Complete() bool {
	return len(r.Failed) == 0 && len(r.Skipped) == 0 && r.Succeeded == r.Total
}

// Duration returns how long the batch ran.
func (r *RotationReport) Duration() time.Duration {
	return r.FinishedAt.Sub(r.StartedAt)
}
