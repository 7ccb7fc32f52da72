package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRotationReport(t *testing.T) {
	start := time.Now()
	report := &RotationReport{
		OldMasterKeyID: "v1",
		NewMasterKeyID: "v2",
		Total:          3,
		Succeeded:      2,
		Failed:         []RotationFailure{{WalletID: "w2", Reason: "pin unavailable"}},
		StartedAt:      start,
		FinishedAt:     start.Add(time.Second),
	}

	assert.Equal(t, []string{"w2"}, report.FailedWalletIDs())
	assert.False(t, report.Complete())
	assert.Equal(t, time.Second, report.Duration())

	done := &RotationReport{Total: 2, Succeeded: 2}
	assert.True(t, done.Complete())
	assert.Empty(t, done.FailedWalletIDs())

	skipped := &RotationReport{Total: 2, Succeeded: 1, Skipped: []string{"w9"}}
	assert.False(t, skipped.Complete())
}
