package state

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/dayjournal/internal/client/models"
	"github.com/dmitrijs2005/dayjournal/internal/client/services"
)

// EntryState is a snapshot of the entries store. Entries hold at most one
// record per id, most-recent-first.
type EntryState struct {
	Entries []models.Entry

	IsLoading bool
	IsSuccess bool
	IsError   bool
	Message   string
}

// EntryStore mirrors the server's entry list. The server stays the source
// of truth: the local list is a cached projection, reconciled from each
// successful response.
//
// Every operation captures the session epoch before the request goes out.
// When the epoch has moved by the time the response arrives (logout, fresh
// login, session expiry), the payload is discarded: it belongs to a session
// that no longer exists.
type EntryStore struct {
	mu    sync.Mutex
	svc   services.EntryService
	epoch func() uint64
	state EntryState
}

// NewEntryStore builds a store bound to svc. epoch reports the current
// session epoch, normally AuthStore.Epoch.
func NewEntryStore(svc services.EntryService, epoch func() uint64) *EntryStore {
	if epoch == nil {
		epoch = func() uint64 { return 0 }
	}
	return &EntryStore{svc: svc, epoch: epoch}
}

// State returns a copy of the current state.
func (s *EntryStore) State() EntryState {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := s.state
	st.Entries = make([]models.Entry, len(s.state.Entries))
	copy(st.Entries, s.state.Entries)
	return st
}

func (s *EntryStore) pending() uint64 {
	s.mu.Lock()
	s.state.IsLoading = true
	s.mu.Unlock()
	return s.epoch()
}

// stale drops the loading flag and reports whether the response belongs to
// a dead session.
func (s *EntryStore) stale(before uint64) bool {
	if s.epoch() == before {
		return false
	}
	s.mu.Lock()
	s.state.IsLoading = false
	s.mu.Unlock()
	return true
}

func (s *EntryStore) rejected(err error, fallback string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.IsLoading = false
	if isSessionExpiry(err) {
		return
	}
	s.state.IsError = true
	s.state.Message = userMessage(err, fallback)
}

func (s *EntryStore) fulfilled(apply func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.IsLoading = false
	s.state.IsSuccess = true
	apply()
}

// Fetch replaces the local list wholesale with the server's.
func (s *EntryStore) Fetch(ctx context.Context) error {
	before := s.pending()
	entries, err := s.svc.List(ctx)
	if s.stale(before) {
		return err
	}
	if err != nil {
		s.rejected(err, "Failed to fetch entries")
		return err
	}
	s.fulfilled(func() {
		s.state.Entries = entries
	})
	return nil
}

// Create prepends the server-returned record: the freshest entry shows
// first, before any refetch.
func (s *EntryStore) Create(ctx context.Context, draft models.EntryDraft) error {
	before := s.pending()
	entry, err := s.svc.Create(ctx, draft)
	if s.stale(before) {
		return err
	}
	if err != nil {
		s.rejected(err, "Failed to create entry")
		return err
	}
	s.fulfilled(func() {
		s.state.Entries = append([]models.Entry{*entry}, s.state.Entries...)
	})
	return nil
}

// Update replaces the entry whose id matches the returned record. Entries
// not matching are untouched and ordering is preserved; an id unknown
// locally leaves the list unchanged.
func (s *EntryStore) Update(ctx context.Context, id int64, patch models.EntryPatch) error {
	before := s.pending()
	entry, err := s.svc.Update(ctx, id, patch)
	if s.stale(before) {
		return err
	}
	if err != nil {
		s.rejected(err, "Failed to update entry")
		return err
	}
	s.fulfilled(func() {
		for i := range s.state.Entries {
			if s.state.Entries[i].ID == entry.ID {
				s.state.Entries[i] = *entry
			}
		}
	})
	return nil
}

// Delete removes the entry with the given id. A failed delete (for example
// an id already gone on the server) leaves the list as it was.
func (s *EntryStore) Delete(ctx context.Context, id int64) error {
	before := s.pending()
	err := s.svc.Delete(ctx, id)
	if s.stale(before) {
		return err
	}
	if err != nil {
		s.rejected(err, "Failed to delete entry")
		return err
	}
	s.fulfilled(func() {
		kept := s.state.Entries[:0]
		for _, e := range s.state.Entries {
			if e.ID != id {
				kept = append(kept, e)
			}
		}
		s.state.Entries = kept
	})
	return nil
}

// Reset clears the transient flags; the cached list survives.
func (s *EntryStore) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.IsLoading = false
	s.state.IsSuccess = false
	s.state.IsError = false
	s.state.Message = ""
}

// Clear drops the cached list, e.g. on logout.
func (s *EntryStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = EntryState{}
}
