package service

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/samber/lo"

	"github.com/SuperOrca/sbshards/internal/domain"
	"github.com/SuperOrca/sbshards/internal/domain/entity"
	"github.com/SuperOrca/sbshards/internal/domain/value"
	"github.com/SuperOrca/sbshards/pkg/errcodes"
	"github.com/SuperOrca/sbshards/pkg/logx"
)

type CatalogLoader interface {
	Load(ctx context.Context) ([]entity.Shard, error)
}

type PriceFeed interface {
	Snapshot(ctx context.Context) (entity.PriceSnapshot, error)
}

type ExclusionStore interface {
	Load(ctx context.Context) ([]string, error)
	Save(ctx context.Context, names []string) error
	Reset(ctx context.Context) error
}

type Recorder interface {
	ObserveRefresh(err error, duration time.Duration)
	ObserveRankings(rankings entity.Rankings)
}

type nopRecorder struct{}

func (nopRecorder) ObserveRefresh(error, time.Duration) {}
func (nopRecorder) ObserveRankings(entity.Rankings)     {}

// Session holds the latest inputs and outputs of the cost pipeline and
// exposes the commands presenters call. It is safe for concurrent use.
type Session struct {
	catalog    CatalogLoader
	feed       PriceFeed
	exclusions ExclusionStore
	recorder   Recorder
	now        func() time.Time

	refreshing atomic.Bool

	// persistMu orders exclusion saves; it is taken before mu.
	persistMu sync.Mutex

	mu          sync.RWMutex
	shards      []entity.Shard
	excluded    entity.ExclusionSet
	snapshot    entity.PriceSnapshot
	rankings    entity.Rankings
	view        value.View
	sort        *value.Sort
	filter      value.ListFilter
	lastUpdated time.Time
}

func NewSession(
	catalog CatalogLoader,
	feed PriceFeed,
	exclusions ExclusionStore,
) *Session {
	return &Session{
		catalog:    catalog,
		feed:       feed,
		exclusions: exclusions,
		recorder:   nopRecorder{},
		now:        time.Now,
		excluded:   entity.NewExclusionSet(),
		view:       value.ViewInstaBuy,
	}
}

func (s *Session) WithRecorder(recorder Recorder) *Session {
	s.recorder = recorder
	return s
}

func (s *Session) WithClock(now func() time.Time) *Session {
	s.now = now
	return s
}

// Init reads the stored exclusions and loads the catalog. A missing or
// unreadable preference value starts with an empty set; a catalog failure is
// returned and retried by the next Refresh.
func (s *Session) Init(ctx context.Context) error {
	names, err := s.exclusions.Load(ctx)
	if err != nil {
		logger(ctx).Warn("exclusions unreadable, starting empty", logx.Error(err))
		names = nil
	}

	s.mu.Lock()
	s.excluded = entity.NewExclusionSet(names...)
	s.mu.Unlock()

	if _, err := s.loadCatalog(ctx); err != nil {
		return err
	}

	return nil
}

func (s *Session) loadCatalog(ctx context.Context) ([]entity.Shard, error) {
	shards, err := s.catalog.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("catalog.Load: %w", err)
	}

	s.mu.Lock()
	s.shards = shards
	s.mu.Unlock()

	logger(ctx).Info("catalog loaded", slog.Int(logx.FieldCount, len(shards)))

	return shards, nil
}

// Refresh fetches a fresh price snapshot and recomputes both rankings.
// Overlapping calls fail with ErrCalculationInProgress. On failure the
// previous rankings stay in place.
func (s *Session) Refresh(ctx context.Context) (State, error) {
	if !s.refreshing.CompareAndSwap(false, true) {
		return State{}, domain.ErrCalculationInProgress
	}
	defer s.refreshing.Store(false)

	start := s.now()

	err := s.refresh(ctx)
	s.recorder.ObserveRefresh(err, s.now().Sub(start))

	if err != nil {
		return State{}, err
	}

	return s.State(), nil
}

func (s *Session) refresh(ctx context.Context) error {
	s.mu.RLock()
	loaded := len(s.shards) > 0
	s.mu.RUnlock()

	if !loaded {
		if _, err := s.loadCatalog(ctx); err != nil {
			return err
		}
	}

	snapshot, err := s.feed.Snapshot(ctx)
	if err != nil {
		return fmt.Errorf("feed.Snapshot: %w", err)
	}

	s.mu.Lock()
	s.snapshot = snapshot
	s.lastUpdated = s.now()
	rankings := s.recomputeLocked()
	s.mu.Unlock()

	logSkipped(ctx, rankings.Skipped)

	logger(ctx).Info(
		"rankings refreshed",
		slog.Int("insta-buy", len(rankings.InstaBuy)),
		slog.Int("buy-order", len(rankings.BuyOrder)),
		slog.Int("skipped", len(rankings.Skipped)),
	)

	return nil
}

// Refreshing reports whether a refresh is currently running.
func (s *Session) Refreshing() bool {
	return s.refreshing.Load()
}

func (s *Session) recomputeLocked() entity.Rankings {
	s.rankings = ComputeRankings(s.shards, s.excluded, s.snapshot)
	s.recorder.ObserveRankings(s.rankings)
	return s.rankings
}

func logSkipped(ctx context.Context, skipped []entity.Skip) {
	for _, skip := range skipped {
		if skip.Reason == entity.SkipExcluded {
			continue
		}

		logger(ctx).Warn(
			"shard skipped",
			slog.String(logx.FieldShard, skip.Name),
			slog.String(logx.FieldProductKey, skip.ProductKey),
			slog.String(logx.FieldSkipReason, string(skip.Reason)),
		)
	}
}

func (s *Session) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.stateLocked()
}

func (s *Session) stateLocked() State {
	rows := s.rankings.Ranking(s.view)
	if s.sort != nil {
		rows = SortRows(rows, *s.sort)
	} else {
		rows = slices.Clone(rows)
	}

	var sort *value.Sort
	if s.sort != nil {
		sortCopy := *s.sort
		sort = &sortCopy
	}

	return State{
		View:        s.view,
		Sort:        sort,
		Rows:        rows,
		Totals:      s.rankings.Totals(),
		Stats:       s.statsLocked(),
		LastUpdated: s.lastUpdated,
		Calculated:  !s.lastUpdated.IsZero(),
	}
}

func (s *Session) statsLocked() Stats {
	available := lo.CountBy(s.shards, func(shard entity.Shard) bool {
		return !s.excluded.Has(shard.Name)
	})

	return Stats{
		TotalShards:    len(s.shards),
		Available:      available,
		Ignored:        len(s.excluded),
		LastCalculated: len(s.rankings.Ranking(s.view)),
		Skipped:        s.rankings.SkipCounts(),
	}
}

func (s *Session) SelectView(view value.View) State {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.view = view

	return s.stateLocked()
}

// ToggleSort re-sorts the displayed ranking by column, flipping the
// direction when the column is already active.
func (s *Session) ToggleSort(column value.SortColumn) State {
	s.mu.Lock()
	defer s.mu.Unlock()

	current := value.Sort{}
	if s.sort != nil {
		current = *s.sort
	}

	next := current.Toggle(column)
	s.sort = &next

	return s.stateLocked()
}

func (s *Session) SetSort(sort value.Sort) State {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sort = &sort

	return s.stateLocked()
}

// ResetSort goes back to the canonical ranking order.
func (s *Session) ResetSort() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sort = nil

	return s.stateLocked()
}

func (s *Session) SetFilter(rarity value.Rarity) []ListEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.filter.Rarity = rarity

	return s.listLocked(s.filter)
}

func (s *Session) SetSearch(query string) []ListEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.filter.Query = query

	return s.listLocked(s.filter)
}

func (s *Session) Filter() value.ListFilter {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.filter
}

// Shards lists the catalog through the current management filter.
func (s *Session) Shards() []ListEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.listLocked(s.filter)
}

func (s *Session) ShardsMatching(filter value.ListFilter) []ListEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.listLocked(filter)
}

func (s *Session) listLocked(filter value.ListFilter) []ListEntry {
	entries := make([]ListEntry, 0, len(s.shards))

	for _, shard := range s.shards {
		if !filter.Match(shard.Name, shard.ID) {
			continue
		}

		rarity, _ := shard.Rarity()

		entries = append(entries, ListEntry{
			Shard:       shard,
			Rarity:      rarity,
			RarityLabel: rarity.Label(),
			Excluded:    s.excluded.Has(shard.Name),
		})
	}

	return entries
}

func (s *Session) Exclusions() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.excluded.Names()
}

// ToggleExclusion flips a shard in or out of the exclusion set. The name is
// matched case-insensitively against the catalog. It reports whether the
// shard is excluded afterwards.
func (s *Session) ToggleExclusion(ctx context.Context, name string) (bool, State, error) {
	var excluded bool

	state, err := s.mutateExclusions(ctx, func() error {
		shard, ok := s.findLocked(name)
		if !ok {
			return domain.NewError(errcodes.ShardNotFound, fmt.Sprintf("shard %q not found", name))
		}

		excluded = s.excluded.Toggle(shard.Name)

		return nil
	})

	return excluded, state, err
}

// ExcludeMatching adds every shard passing filter to the exclusion set and
// returns how many were added.
func (s *Session) ExcludeMatching(ctx context.Context, filter value.ListFilter) (int, State, error) {
	added := 0

	state, err := s.mutateExclusions(ctx, func() error {
		for _, shard := range s.shards {
			if !filter.Match(shard.Name, shard.ID) || s.excluded.Has(shard.Name) {
				continue
			}

			s.excluded.Add(shard.Name)
			added++
		}

		return nil
	})

	return added, state, err
}

// ExcludeFiltered excludes everything visible through the current filter.
func (s *Session) ExcludeFiltered(ctx context.Context) (int, State, error) {
	return s.ExcludeMatching(ctx, s.Filter())
}

// ClearExclusions empties the set regardless of the current filter.
func (s *Session) ClearExclusions(ctx context.Context) (State, error) {
	return s.mutateExclusions(ctx, func() error {
		s.excluded = entity.NewExclusionSet()
		return nil
	})
}

// ResetPreferences clears the set and removes the stored value.
func (s *Session) ResetPreferences(ctx context.Context) (State, error) {
	s.persistMu.Lock()
	defer s.persistMu.Unlock()

	s.mu.Lock()
	s.excluded = entity.NewExclusionSet()
	state := s.afterMutationLocked()
	s.mu.Unlock()

	if err := s.exclusions.Reset(ctx); err != nil {
		return state, domain.WrapError(err, errcodes.PreferencesUnavailable, "failed to reset preferences")
	}

	return state, nil
}

// mutateExclusions applies change under the state lock, saves the resulting
// set and recomputes rankings from the last snapshot. persistMu is held
// until the save returns, so the stored set always matches the last
// mutation. The in-memory set keeps the change even if the save fails.
func (s *Session) mutateExclusions(ctx context.Context, change func() error) (State, error) {
	s.persistMu.Lock()
	defer s.persistMu.Unlock()

	s.mu.Lock()
	if err := change(); err != nil {
		s.mu.Unlock()
		return State{}, err
	}
	names := s.excluded.Names()
	s.mu.Unlock()

	err := s.exclusions.Save(ctx, names)

	s.mu.Lock()
	state := s.afterMutationLocked()
	s.mu.Unlock()

	if err != nil {
		logger(ctx).Error("exclusions not saved", logx.Error(err))
		return state, domain.WrapError(err, errcodes.PreferencesUnavailable, "failed to save preferences")
	}

	return state, nil
}

func (s *Session) afterMutationLocked() State {
	if !s.snapshot.Empty() {
		s.recomputeLocked()
	}

	return s.stateLocked()
}

func (s *Session) findLocked(name string) (entity.Shard, bool) {
	name = strings.TrimSpace(name)

	for _, shard := range s.shards {
		if shard.Name == name {
			return shard, true
		}
	}

	return lo.Find(s.shards, func(shard entity.Shard) bool {
		return strings.EqualFold(shard.Name, name)
	})
}
