package ledger

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/pitchsignals/pitchsignals/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func finished(home, away string, hs, as int) models.Match {
	return models.Match{
		HomeTeam: home, AwayTeam: away,
		HomeScore: hs, AwayScore: as,
		Status: models.StatusFinished,
	}
}

func TestPickWins(t *testing.T) {
	tests := []struct {
		name  string
		pick  string
		match models.Match
		want  bool
	}{
		{"home win pick, home wins", "Arsenal to Win", finished("Arsenal", "Chelsea", 2, 1), true},
		{"home win pick, home loses", "Arsenal to Win", finished("Arsenal", "Chelsea", 1, 2), false},
		{"home win pick, draw", "Arsenal to Win", finished("Arsenal", "Chelsea", 1, 1), false},
		{"away win pick, away wins", "Chelsea to Win", finished("Arsenal", "Chelsea", 0, 1), true},
		{"named team not in match", "Liverpool to Win", finished("Arsenal", "Chelsea", 3, 0), false},
		{"over 2.5 with 3 goals", "Over 2.5 Goals", finished("A", "B", 2, 1), true},
		{"over 2.5 with 2 goals", "Over 2.5 Goals", finished("A", "B", 1, 1), false},
		{"over 1.5 with 2 goals", "Over 1.5 Goals", finished("A", "B", 2, 0), true},
		{"btts both score", "Both Teams to Score", finished("A", "B", 1, 1), true},
		{"btts clean sheet", "Both Teams to Score", finished("A", "B", 2, 0), false},
		{"under never wins", "Under 2.5 Goals", finished("A", "B", 0, 0), false},
		{"draw never wins", "Draw", finished("A", "B", 1, 1), false},
		{"empty pick", "", finished("A", "B", 5, 0), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PickWins(tt.pick, tt.match))
		})
	}
}

func TestSettleReportsWinOnceAndDeletes(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()
	tracker := NewTracker(repo, 14)

	require.NoError(t, repo.Upsert(ctx, Entry{
		Key: "Arsenal|Chelsea", HomeTeam: "Arsenal", AwayTeam: "Chelsea",
		RecordedDate: time.Now().UTC(), Pick: "Arsenal to Win",
	}))

	results := []models.Match{finished("Arsenal", "Chelsea", 2, 1)}

	wins := tracker.Settle(ctx, results)
	require.Len(t, wins, 1)
	assert.Equal(t, "Arsenal to Win", wins[0].Pick)
	assert.Equal(t, "Arsenal", wins[0].Match.HomeTeam)

	// Settling again against the same results must not double-report.
	assert.Empty(t, tracker.Settle(ctx, results))

	entries, err := repo.All(ctx)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestSettleLeavesLossesAndUnfinishedPending(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()
	tracker := NewTracker(repo, 14)

	now := time.Now().UTC()
	require.NoError(t, repo.Upsert(ctx, Entry{Key: "Arsenal|Chelsea", HomeTeam: "Arsenal", AwayTeam: "Chelsea", RecordedDate: now, Pick: "Arsenal to Win"}))
	require.NoError(t, repo.Upsert(ctx, Entry{Key: "Leeds|Everton", HomeTeam: "Leeds", AwayTeam: "Everton", RecordedDate: now, Pick: "Leeds to Win"}))

	inPlay := models.Match{HomeTeam: "Leeds", AwayTeam: "Everton", HomeScore: 3, AwayScore: 0, Status: models.StatusInPlay}
	wins := tracker.Settle(ctx, []models.Match{finished("Arsenal", "Chelsea", 0, 2), inPlay})

	assert.Empty(t, wins)
	entries, err := repo.All(ctx)
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestSettlePurgesExpiredEntries(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()
	tracker := NewTracker(repo, 14)

	require.NoError(t, repo.Upsert(ctx, Entry{
		Key: "Old|Fixture", HomeTeam: "Old", AwayTeam: "Fixture",
		RecordedDate: time.Now().UTC().Add(-15 * 24 * time.Hour), Pick: "Old to Win",
	}))
	require.NoError(t, repo.Upsert(ctx, Entry{
		Key: "Fresh|Fixture", HomeTeam: "Fresh", AwayTeam: "Fixture",
		RecordedDate: time.Now().UTC(), Pick: "Fresh to Win",
	}))

	wins := tracker.Settle(ctx, nil)
	assert.Empty(t, wins)

	entries, err := repo.All(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "Fresh|Fixture", entries[0].Key)
}

func TestSettleRetentionDisabled(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()
	tracker := NewTracker(repo, 0)

	require.NoError(t, repo.Upsert(ctx, Entry{
		Key: "Old|Fixture", HomeTeam: "Old", AwayTeam: "Fixture",
		RecordedDate: time.Now().UTC().Add(-90 * 24 * time.Hour), Pick: "Old to Win",
	}))

	tracker.Settle(ctx, nil)

	entries, err := repo.All(ctx)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

type failingRepo struct {
	*MemoryRepository
}

func (r *failingRepo) All(ctx context.Context) ([]Entry, error) {
	return nil, errors.New("connection reset")
}

func TestSettleFailsOpenWhenLedgerUnreadable(t *testing.T) {
	tracker := NewTracker(&failingRepo{NewMemoryRepository()}, 14)
	assert.Empty(t, tracker.Settle(context.Background(), []models.Match{finished("A", "B", 2, 0)}))
}

func TestRecordHonorsLimitAndSkipsEmptyPicks(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()
	tracker := NewTracker(repo, 14)

	matches := []models.Match{
		{HomeTeam: "A", AwayTeam: "B", Analysis: models.Analysis{MainPick: "A to Win"}},
		{HomeTeam: "C", AwayTeam: "D"}, // no pick, skipped
		{HomeTeam: "E", AwayTeam: "F", Analysis: models.Analysis{MainPick: "Over 2.5 Goals"}},
		{HomeTeam: "G", AwayTeam: "H", Analysis: models.Analysis{MainPick: "G to Win"}},
	}

	recorded := tracker.Record(ctx, matches, 2)
	assert.Equal(t, 2, recorded)

	entries, err := repo.All(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	got, err := repo.Get(ctx, "E|F")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Over 2.5 Goals", got.Pick)
}

func TestRecordOverwritesPriorEntryForSameFixture(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()
	tracker := NewTracker(repo, 14)

	stale := time.Now().UTC().Add(-5 * 24 * time.Hour)
	require.NoError(t, repo.Upsert(ctx, Entry{Key: "A|B", HomeTeam: "A", AwayTeam: "B", RecordedDate: stale, Pick: "Both Teams to Score"}))

	tracker.Record(ctx, []models.Match{
		{HomeTeam: "A", AwayTeam: "B", Analysis: models.Analysis{MainPick: "A to Win"}},
	}, 5)

	got, err := repo.Get(ctx, "A|B")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "A to Win", got.Pick)
	assert.True(t, got.RecordedDate.After(stale))
}
