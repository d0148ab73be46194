package conversation

import (
	"hash/fnv"
	"sync"
	"time"

	"github.com/kyawzl/mahabote-bot/internal/mahabote"
)

// State is the position of a session in the reading dialogue.
type State string

const (
	StateGreeting      State = "greeting"
	StateAskDob        State = "ask_dob"
	StateAskWednesday  State = "ask_wednesday"
	StateReadingShown  State = "reading_shown"
	StateForecastShown State = "forecast_shown"
)

// Session is the per-user dialogue state. Sessions are keyed by
// "<channel>:<chat id>" so the same person on two channels gets two sessions.
type Session struct {
	ID        string
	State     State
	Language  mahabote.Language
	Name      string
	BirthDate time.Time
	Reading   *mahabote.Reading
	UpdatedAt time.Time
}

const storeShards = 16

// Store keeps sessions in memory, sharded so concurrent channels don't
// contend on one lock.
type Store struct {
	defaultLang mahabote.Language
	shards      [storeShards]storeShard
}

type storeShard struct {
	mu       sync.Mutex
	sessions map[string]*Session
}

func NewStore(defaultLang mahabote.Language) *Store {
	s := &Store{defaultLang: defaultLang}
	for i := range s.shards {
		s.shards[i].sessions = make(map[string]*Session)
	}
	return s
}

func (s *Store) shard(id string) *storeShard {
	h := fnv.New32a()
	h.Write([]byte(id))
	return &s.shards[h.Sum32()%storeShards]
}

// Do runs fn with the session for id held under its shard lock, creating the
// session in the greeting state on first contact. Mutations made by fn are
// kept.
func (s *Store) Do(id string, fn func(*Session)) {
	sh := s.shard(id)
	sh.mu.Lock()
	defer sh.mu.Unlock()

	sess, ok := sh.sessions[id]
	if !ok {
		sess = &Session{
			ID:       id,
			State:    StateGreeting,
			Language: s.defaultLang,
		}
		sh.sessions[id] = sess
	}
	fn(sess)
	sess.UpdatedAt = time.Now()
}

// Peek returns a copy of the session if it exists.
func (s *Store) Peek(id string) (Session, bool) {
	sh := s.shard(id)
	sh.mu.Lock()
	defer sh.mu.Unlock()

	sess, ok := sh.sessions[id]
	if !ok {
		return Session{}, false
	}
	return *sess, true
}

// Reset drops the session, so the next message starts from the greeting.
func (s *Store) Reset(id string) {
	sh := s.shard(id)
	sh.mu.Lock()
	defer sh.mu.Unlock()
	delete(sh.sessions, id)
}

// Len reports the total number of live sessions.
func (s *Store) Len() int {
	n := 0
	for i := range s.shards {
		s.shards[i].mu.Lock()
		n += len(s.shards[i].sessions)
		s.shards[i].mu.Unlock()
	}
	return n
}
