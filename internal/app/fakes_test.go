package app_test

import (
	"context"
	"sort"
	"sync"
	"time"

	"tripvote/internal/domain"
)

// ---- in-memory store with the same unique-vote and cascade rules as MySQL ----

type voteKey struct{ dest, voter string }

type memStore struct {
	mu       sync.Mutex
	dests    map[string]domain.Destination
	votes    map[voteKey]domain.Vote
	comments map[string]domain.Comment
	nextVote int64

	// noAggregates makes the joined reads fail as on a half-migrated schema.
	noAggregates bool
	// beforeInsertVote runs unlocked before InsertVote touches the map.
	beforeInsertVote func()
}

func newMemStore() *memStore {
	return &memStore{
		dests:    map[string]domain.Destination{},
		votes:    map[voteKey]domain.Vote{},
		comments: map[string]domain.Comment{},
	}
}

func (m *memStore) CreateDestination(ctx context.Context, d domain.Destination) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.dests[d.ID]; ok {
		return domain.ErrConflict
	}
	m.dests[d.ID] = d
	return nil
}

func (m *memStore) UpdateDestination(ctx context.Context, d domain.Destination) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	old, ok := m.dests[d.ID]
	if !ok {
		return domain.ErrNotFound
	}
	d.CreatedAt = old.CreatedAt
	m.dests[d.ID] = d
	return nil
}

func (m *memStore) DeleteDestination(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.dests[id]; !ok {
		return domain.ErrNotFound
	}
	delete(m.dests, id)
	for k := range m.votes {
		if k.dest == id {
			delete(m.votes, k)
		}
	}
	for k, c := range m.comments {
		if c.DestinationID == id {
			delete(m.comments, k)
		}
	}
	return nil
}

func (m *memStore) GetDestination(ctx context.Context, id string) (domain.Destination, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	d, ok := m.dests[id]
	if !ok {
		return domain.Destination{}, domain.ErrNotFound
	}
	return d, nil
}

func (m *memStore) DestinationExists(ctx context.Context, id string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.dests[id]
	return ok, nil
}

func (m *memStore) sortedDests() []domain.Destination {
	out := make([]domain.Destination, 0, len(m.dests))
	for _, d := range m.dests {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID > out[j].ID
	})
	return out
}

func (m *memStore) view(d domain.Destination, voterID string) domain.DestinationView {
	v := domain.DestinationView{Destination: d}
	for k := range m.votes {
		if k.dest == d.ID {
			v.VoteCount++
			if k.voter == voterID {
				v.HasVoted = true
			}
		}
	}
	for _, c := range m.comments {
		if c.DestinationID == d.ID {
			v.CommentCount++
		}
	}
	return v
}

func (m *memStore) ListDestinationViews(ctx context.Context, voterID string) ([]domain.DestinationView, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.noAggregates {
		return nil, domain.ErrSchemaUnavailable
	}
	out := []domain.DestinationView{}
	for _, d := range m.sortedDests() {
		out = append(out, m.view(d, voterID))
	}
	return out, nil
}

func (m *memStore) GetDestinationView(ctx context.Context, id, voterID string) (domain.DestinationView, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.noAggregates {
		return domain.DestinationView{}, domain.ErrSchemaUnavailable
	}
	d, ok := m.dests[id]
	if !ok {
		return domain.DestinationView{}, domain.ErrNotFound
	}
	return m.view(d, voterID), nil
}

func (m *memStore) ListDestinations(ctx context.Context) ([]domain.Destination, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.sortedDests(), nil
}

func (m *memStore) FindVote(ctx context.Context, destinationID, voterID string) (domain.Vote, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.votes[voteKey{destinationID, voterID}]
	if !ok {
		return domain.Vote{}, domain.ErrNotFound
	}
	return v, nil
}

func (m *memStore) InsertVote(ctx context.Context, destinationID, voterID string) error {
	if m.beforeInsertVote != nil {
		m.beforeInsertVote()
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.dests[destinationID]; !ok {
		return domain.ErrNotFound
	}
	k := voteKey{destinationID, voterID}
	if _, ok := m.votes[k]; ok {
		return domain.ErrConflict
	}
	m.nextVote++
	m.votes[k] = domain.Vote{ID: m.nextVote, DestinationID: destinationID, VoterID: voterID, CreatedAt: time.Now()}
	return nil
}

func (m *memStore) DeleteVote(ctx context.Context, destinationID, voterID string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	k := voteKey{destinationID, voterID}
	if _, ok := m.votes[k]; !ok {
		return false, nil
	}
	delete(m.votes, k)
	return true, nil
}

func (m *memStore) CountVotes(ctx context.Context, destinationID string) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.voteRows(destinationID), nil
}

// voteRows is the ground truth the services must agree with.
func (m *memStore) voteRows(destinationID string) int {
	n := 0
	for k := range m.votes {
		if k.dest == destinationID {
			n++
		}
	}
	return n
}

func (m *memStore) ListComments(ctx context.Context, destinationID string) ([]domain.Comment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []domain.Comment{}
	for _, c := range m.comments {
		if c.DestinationID == destinationID {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}

func (m *memStore) InsertComment(ctx context.Context, c domain.Comment) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.dests[c.DestinationID]; !ok {
		return domain.ErrNotFound
	}
	m.comments[c.ID] = c
	return nil
}

func (m *memStore) GetComment(ctx context.Context, id string) (domain.Comment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.comments[id]
	if !ok {
		return domain.Comment{}, domain.ErrNotFound
	}
	return c, nil
}

func (m *memStore) UpdateComment(ctx context.Context, c domain.Comment) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.comments[c.ID]; !ok {
		return domain.ErrNotFound
	}
	m.comments[c.ID] = c
	return nil
}

func (m *memStore) DeleteComment(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.comments[id]; !ok {
		return domain.ErrNotFound
	}
	delete(m.comments, id)
	return nil
}

// seed inserts a destination directly, bypassing validation.
func (m *memStore) seed(id, name string, created time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.dests[id] = domain.Destination{ID: id, Name: name, Type: domain.TypeResort, CreatedAt: created, UpdatedAt: created}
}

// ---- lookup fakes ----

type fakeGeocoder struct {
	coords domain.Coords
	err    error
	calls  int
}

func (f *fakeGeocoder) Geocode(ctx context.Context, address string) (domain.Coords, error) {
	f.calls++
	return f.coords, f.err
}

type fakeWeather struct {
	temps domain.DailyTemps
	err   error
}

func (f *fakeWeather) DailyTemps(ctx context.Context, c domain.Coords, start, end string) (domain.DailyTemps, error) {
	return f.temps, f.err
}

type fakeCache struct {
	store map[string]any
}

func (c *fakeCache) Get(ctx context.Context, key string, dst any) (bool, error) {
	v, ok := c.store[key]
	if !ok {
		return false, nil
	}
	if d, ok := dst.(*domain.LookupResult); ok {
		*d = v.(domain.LookupResult)
	}
	return true, nil
}

func (c *fakeCache) Set(ctx context.Context, key string, v any, ttlSec int) error {
	if c.store == nil {
		c.store = map[string]any{}
	}
	c.store[key] = v
	return nil
}

func (c *fakeCache) Del(ctx context.Context, key string) error {
	delete(c.store, key)
	return nil
}

func ptr[T any](v T) *T { return &v }
