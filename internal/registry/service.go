package registry

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/erazemk/evidenca/internal/metrics"
)

// Record is a registry record of concrete type R.
type Record[R any] interface {
	Owned
	// StatusActive reports the record's status flag.
	StatusActive() bool
	// WithIdentity returns a copy carrying id and owner.
	WithIdentity(id int64, owner string) R
}

// Journal receives an entry for every applied mutation.
type Journal interface {
	Append(ctx context.Context, kind string, recordID int64, action Action, actor string) error
}

// Options carries the optional collaborators of a Service.
type Options struct {
	Journal Journal
	Metrics *metrics.Metrics
	Logger  *slog.Logger
}

// Service composes an Allocator, a Store and a Policy into a registry.
//
// Register and Update are serialised: id allocation and insertion happen as
// one step, and a mutation is always applied to the same record version the
// policy was evaluated against.
type Service[R Record[R]] struct {
	kind    string
	ids     Allocator
	records Store[R]
	policy  Policy
	journal Journal
	metrics *metrics.Metrics
	log     *slog.Logger

	mu sync.Mutex
}

// NewService builds a registry of the given kind. ids may be nil when records
// is a SequencedStore.
func NewService[R Record[R]](kind string, ids Allocator, records Store[R], policy Policy, opts Options) *Service[R] {
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}
	return &Service[R]{
		kind:    kind,
		ids:     ids,
		records: records,
		policy:  policy,
		journal: opts.Journal,
		metrics: opts.Metrics,
		log:     log.With("registry", kind),
	}
}

// Register stores rec under a fresh id with caller as its owner and returns
// the id. No authorization is applied. A failed attempt leaves no gap in the
// id sequence.
func (s *Service[R]) Register(ctx context.Context, caller string, rec R) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, err := s.insertNext(ctx, caller, rec)
	if err != nil {
		s.metrics.IncStorageErrors(s.kind)
		return 0, err
	}

	s.metrics.IncRegistrations(s.kind)
	s.appendJournal(ctx, id, ActionRegister, caller)
	return id, nil
}

func (s *Service[R]) insertNext(ctx context.Context, caller string, rec R) (int64, error) {
	if seq, ok := s.records.(SequencedStore[R]); ok {
		id, err := seq.InsertNext(ctx, func(id int64) R { return rec.WithIdentity(id, caller) })
		if err != nil {
			return 0, unavailable("inserting record", err)
		}
		return id, nil
	}

	if s.ids == nil {
		return 0, unavailable("allocating id", errors.New("no id allocator"))
	}
	id, err := s.ids.Next(ctx)
	if err != nil {
		return 0, unavailable("allocating id", err)
	}
	if err := s.records.Insert(ctx, id, rec.WithIdentity(id, caller)); err != nil {
		if r, ok := s.ids.(Releaser); ok {
			r.Release(ctx, id)
		}
		return 0, unavailable("inserting record", err)
	}
	return id, nil
}

// Get returns the record stored under id, or nil if there is none.
func (s *Service[R]) Get(ctx context.Context, id int64) (*R, error) {
	rec, err := s.records.Get(ctx, id)
	if err != nil {
		s.metrics.IncStorageErrors(s.kind)
		return nil, unavailable("reading record", err)
	}
	return rec, nil
}

// Update replaces the record under id with the result of mutate, provided
// the policy allows caller to perform action on the stored record. The id
// and owner of the stored record are kept whatever mutate returns.
//
// On ErrNotFound, ErrForbidden or a mutate error the store is not touched.
func (s *Service[R]) Update(ctx context.Context, id int64, caller string, action Action, mutate func(cur R) (R, error)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cur, err := s.authorize(ctx, id, caller, action)
	if err != nil {
		return err
	}

	next, err := mutate(*cur)
	if err != nil {
		return err
	}

	if err := s.records.Replace(ctx, id, next.WithIdentity(id, (*cur).OwnedBy())); err != nil {
		s.metrics.IncStorageErrors(s.kind)
		return unavailable("replacing record", err)
	}

	s.metrics.IncMutations(s.kind, string(action))
	s.appendJournal(ctx, id, action, caller)
	return nil
}

// Apply runs write once the policy allows caller to perform action on the
// record under id, then journals the action. It serves data kept beside the
// record, which write stores itself.
func (s *Service[R]) Apply(ctx context.Context, id int64, caller string, action Action, write func(ctx context.Context) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.authorize(ctx, id, caller, action); err != nil {
		return err
	}

	if err := write(ctx); err != nil {
		s.metrics.IncStorageErrors(s.kind)
		return unavailable("applying "+string(action), err)
	}

	s.metrics.IncMutations(s.kind, string(action))
	s.appendJournal(ctx, id, action, caller)
	return nil
}

// Authorize evaluates the policy for caller and action against the record
// under id without changing it. It is used to gate data kept beside the
// record. The owner never changes, so the decision stays valid afterwards.
func (s *Service[R]) Authorize(ctx context.Context, id int64, caller string, action Action) (*R, error) {
	return s.authorize(ctx, id, caller, action)
}

// IsStatusActive reports the status flag of the record under id. A missing
// record is reported as inactive, not as an error.
func (s *Service[R]) IsStatusActive(ctx context.Context, id int64) (bool, error) {
	rec, err := s.Get(ctx, id)
	if err != nil {
		return false, err
	}
	if rec == nil {
		return false, nil
	}
	return (*rec).StatusActive(), nil
}

func (s *Service[R]) authorize(ctx context.Context, id int64, caller string, action Action) (*R, error) {
	cur, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if cur == nil {
		return nil, ErrNotFound
	}

	if s.policy.Evaluate(caller, *cur, action) == Deny {
		s.metrics.IncDenials(s.kind, string(action))
		s.log.Warn("mutation denied", "id", id, "action", action, "caller", caller)
		return nil, ErrForbidden
	}
	return cur, nil
}

func (s *Service[R]) appendJournal(ctx context.Context, id int64, action Action, actor string) {
	if s.journal == nil {
		return
	}
	if err := s.journal.Append(ctx, s.kind, id, action, actor); err != nil {
		s.log.Error("failed to append journal entry", "id", id, "action", action, "error", err)
	}
}
