package server

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"time"

	service "github.com/SuperOrca/sbshards/internal/domain/service/shard"
	"github.com/SuperOrca/sbshards/internal/domain/value"
	"github.com/SuperOrca/sbshards/internal/infrastructure/export"
	"github.com/SuperOrca/sbshards/pkg/httpx/reply"
	"github.com/SuperOrca/sbshards/pkg/httpx/req"
	"github.com/SuperOrca/sbshards/pkg/rest"
)

type shardSession interface {
	State() service.State
	Refresh(ctx context.Context) (service.State, error)
	SelectView(view value.View) service.State
	ToggleSort(column value.SortColumn) service.State
	SetSort(sort value.Sort) service.State
	ResetSort() service.State
	SetFilter(rarity value.Rarity) []service.ListEntry
	SetSearch(query string) []service.ListEntry
	Filter() value.ListFilter
	ToggleExclusion(ctx context.Context, name string) (bool, service.State, error)
	ExcludeMatching(ctx context.Context, filter value.ListFilter) (int, service.State, error)
	ExcludeFiltered(ctx context.Context) (int, service.State, error)
	ClearExclusions(ctx context.Context) (service.State, error)
	Exclusions() []string
}

type ShardServer struct {
	session shardSession
	now     func() time.Time
}

func NewShardServer(session shardSession) ShardServer {
	return ShardServer{
		session: session,
		now:     time.Now,
	}
}

func (s ShardServer) WithClock(now func() time.Time) ShardServer {
	s.now = now
	return s
}

// getV1Shards updates the management filter from the query string and
// returns the matching catalog entries.
func (s ShardServer) getV1Shards(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()
	query := r.URL.Query()

	filter, err := value.ParseListFilter(query.Get("rarity"), query.Get("q"))
	if err != nil {
		return fmt.Errorf("value.ParseListFilter: %w", err)
	}

	s.session.SetFilter(filter.Rarity)
	entries := s.session.SetSearch(filter.Query)

	reply.JSON(ctx, w, http.StatusOK, newRESTShardList(filter, entries))

	return nil
}

func (s ShardServer) getV1Rankings(w http.ResponseWriter, r *http.Request) error {
	reply.JSON(r.Context(), w, http.StatusOK, newRESTRankings(s.session.State()))

	return nil
}

func (s ShardServer) postV1RankingsRefresh(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	state, err := s.session.Refresh(ctx)
	if err != nil {
		return fmt.Errorf("session.Refresh: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, newRESTRankings(state))

	return nil
}

func (s ShardServer) putV1RankingsView(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	var request rest.SelectViewRequest

	if err := req.Read(r, &request); err != nil {
		return fmt.Errorf("req.Read: %w", err)
	}

	view, err := value.ParseView(request.View)
	if err != nil {
		return fmt.Errorf("value.ParseView: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, newRESTRankings(s.session.SelectView(view)))

	return nil
}

func (s ShardServer) putV1RankingsSort(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	var request rest.SortRequest

	if err := req.Read(r, &request); err != nil {
		return fmt.Errorf("req.Read: %w", err)
	}

	column, sort, err := newDomainSort(request)
	if err != nil {
		return fmt.Errorf("newDomainSort: %w", err)
	}

	var state service.State
	if sort == nil {
		state = s.session.ToggleSort(column)
	} else {
		state = s.session.SetSort(*sort)
	}

	reply.JSON(ctx, w, http.StatusOK, newRESTRankings(state))

	return nil
}

func (s ShardServer) deleteV1RankingsSort(w http.ResponseWriter, r *http.Request) error {
	reply.JSON(r.Context(), w, http.StatusOK, newRESTRankings(s.session.ResetSort()))

	return nil
}

func (s ShardServer) getV1Exclusions(w http.ResponseWriter, r *http.Request) error {
	reply.JSON(r.Context(), w, http.StatusOK, rest.Exclusions{Names: s.session.Exclusions()})

	return nil
}

func (s ShardServer) deleteV1Exclusions(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	state, err := s.session.ClearExclusions(ctx)
	if err != nil {
		return fmt.Errorf("session.ClearExclusions: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, newRESTRankings(state))

	return nil
}

func (s ShardServer) postV1ExclusionsToggle(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	var request rest.ToggleExclusionRequest

	if err := req.Read(r, &request); err != nil {
		return fmt.Errorf("req.Read: %w", err)
	}

	excluded, state, err := s.session.ToggleExclusion(ctx, request.Name)
	if err != nil {
		return fmt.Errorf("session.ToggleExclusion: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, rest.ToggleExclusionResponse{
		Name:     request.Name,
		Excluded: excluded,
		Rankings: newRESTRankings(state),
	})

	return nil
}

// postV1ExclusionsFiltered excludes every shard matching the body filter,
// or the current management filter when the body names none.
func (s ShardServer) postV1ExclusionsFiltered(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	var request rest.ExcludeFilteredRequest

	if err := req.Read(r, &request); err != nil {
		return fmt.Errorf("req.Read: %w", err)
	}

	var (
		added int
		state service.State
		err   error
	)

	if request.Rarity == "" && request.Query == "" {
		added, state, err = s.session.ExcludeFiltered(ctx)
	} else {
		var filter value.ListFilter

		filter, err = value.ParseListFilter(request.Rarity, request.Query)
		if err != nil {
			return fmt.Errorf("value.ParseListFilter: %w", err)
		}

		added, state, err = s.session.ExcludeMatching(ctx, filter)
	}

	if err != nil {
		return fmt.Errorf("session.ExcludeMatching: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, rest.ExcludeFilteredResponse{
		Added:    added,
		Rankings: newRESTRankings(state),
	})

	return nil
}

// getV1Export streams the displayed ranking as CSV.
func (s ShardServer) getV1Export(w http.ResponseWriter, r *http.Request) error {
	var buf bytes.Buffer

	if err := export.WriteCSV(&buf, s.session.State().Rows); err != nil {
		return fmt.Errorf("export.WriteCSV: %w", err)
	}

	w.Header().Set("Content-Type", export.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, export.FileName(s.now())))
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes()) //nolint:errcheck

	return nil
}

func (s ShardServer) getV1Stats(w http.ResponseWriter, r *http.Request) error {
	state := s.session.State()

	reply.JSON(r.Context(), w, http.StatusOK, newRESTStats(state.Stats, state.LastUpdated))

	return nil
}
