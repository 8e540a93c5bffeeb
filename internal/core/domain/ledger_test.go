package domain_test

import (
	"testing"
	"time"

	"github.com/cesarw616/Sistema-de-Gest-o-Completo/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestClassifyUrgency(t *testing.T) {
	today := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		dueDate time.Time
		status  domain.SettlementStatus
		want    domain.UrgencyStatus
	}{
		{
			name:    "due yesterday is overdue",
			dueDate: today.AddDate(0, 0, -1),
			status:  domain.SettlementPending,
			want:    domain.UrgencyOverdue,
		},
		{
			name:    "due months ago is overdue",
			dueDate: today.AddDate(0, -2, 0),
			status:  domain.SettlementPending,
			want:    domain.UrgencyOverdue,
		},
		{
			name:    "due today",
			dueDate: today,
			status:  domain.SettlementPending,
			want:    domain.UrgencyDueToday,
		},
		{
			name:    "due tomorrow is due soon",
			dueDate: today.AddDate(0, 0, 1),
			status:  domain.SettlementPending,
			want:    domain.UrgencyDueSoon,
		},
		{
			name:    "due at the edge of the window is still due soon",
			dueDate: today.AddDate(0, 0, domain.DueSoonWindowDays),
			status:  domain.SettlementPending,
			want:    domain.UrgencyDueSoon,
		},
		{
			name:    "due one day past the window is on track",
			dueDate: today.AddDate(0, 0, domain.DueSoonWindowDays+1),
			status:  domain.SettlementPending,
			want:    domain.UrgencyOnTrack,
		},
		{
			name:    "due next year is on track",
			dueDate: today.AddDate(1, 0, 0),
			status:  domain.SettlementPending,
			want:    domain.UrgencyOnTrack,
		},
		{
			name:    "settled entries have no urgency even when long past due",
			dueDate: today.AddDate(0, 0, -30),
			status:  domain.SettlementSettled,
			want:    domain.UrgencyNone,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := domain.ClassifyUrgency(tt.dueDate, tt.status, today)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestClassifyUrgency_DayGranularity(t *testing.T) {
	// The comparison ignores the time of day on both sides: an entry due at
	// 01:00 is still DUE_TODAY when checked at 23:45 the same day.
	now := time.Date(2025, 3, 15, 23, 45, 0, 0, time.UTC)
	dueEarlierToday := time.Date(2025, 3, 15, 1, 0, 0, 0, time.UTC)

	got := domain.ClassifyUrgency(dueEarlierToday, domain.SettlementPending, now)
	assert.Equal(t, domain.UrgencyDueToday, got)
}

func TestLedgerKind(t *testing.T) {
	assert.Equal(t, "PAY", domain.KindPayable.IDPrefix())
	assert.Equal(t, "REC", domain.KindReceivable.IDPrefix())

	assert.True(t, domain.KindPayable.IsValid())
	assert.True(t, domain.KindReceivable.IsValid())
	assert.False(t, domain.LedgerKind("EXPENSE").IsValid())
	assert.False(t, domain.LedgerKind("").IsValid())
}

func TestLedgerEntry_IsSettled(t *testing.T) {
	assert.False(t, domain.LedgerEntry{Status: domain.SettlementPending}.IsSettled())
	assert.True(t, domain.LedgerEntry{Status: domain.SettlementSettled}.IsSettled())
}
