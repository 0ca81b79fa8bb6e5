// Package roomtest provides an in-memory room store over httptest for
// tests of the room client and the games built on it.
package roomtest

import (
	"crypto/rand"
	"encoding/base32"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Server is a fake room store speaking the create/fetch/replace contract.
// States are kept as raw JSON so any game type can be stored.
type Server struct {
	*httptest.Server

	mu    sync.Mutex
	rooms map[string]json.RawMessage

	failures atomic.Int32 // requests left to answer with 503
	hold     atomic.Pointer[fetchHold]
	gets     atomic.Int32
	puts     atomic.Int32
}

// NewServer starts a fake store. Close it with t.Cleanup(s.Close).
func NewServer() *Server {
	s := &Server{rooms: make(map[string]json.RawMessage)}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(s.injectFailures)
	r.Route("/api/rooms", func(r chi.Router) {
		r.Post("/", s.create)
		r.Get("/{roomID}", s.fetch)
		r.Put("/{roomID}", s.replace)
	})

	s.Server = httptest.NewServer(r)
	return s
}

// BaseURL is the value for roomsync.Options.BaseURL.
func (s *Server) BaseURL() string {
	return s.URL + "/api"
}

// FailNext makes the next n requests fail with 503.
func (s *Server) FailNext(n int) {
	s.failures.Store(int32(n))
}

type fetchHold struct {
	read    chan struct{}
	release chan struct{}
}

// HoldNextFetch makes the next fetch read the stored state and then wait
// before answering. read is closed once the state has been read; the
// answer is written after release is called.
func (s *Server) HoldNextFetch() (read <-chan struct{}, release func()) {
	h := &fetchHold{read: make(chan struct{}), release: make(chan struct{})}
	s.hold.Store(h)
	var once sync.Once
	return h.read, func() { once.Do(func() { close(h.release) }) }
}

// Gets returns how many fetches were served.
func (s *Server) Gets() int { return int(s.gets.Load()) }

// Puts returns how many replaces were served.
func (s *Server) Puts() int { return int(s.puts.Load()) }

// Put stores state under id as another client's push would.
func (s *Server) Put(id string, state any) {
	raw, err := json.Marshal(state)
	if err != nil {
		panic(err)
	}
	s.mu.Lock()
	s.rooms[id] = raw
	s.mu.Unlock()
}

// Get decodes the stored state of id into out; ok is false for an unknown room.
func (s *Server) Get(id string, out any) bool {
	s.mu.Lock()
	raw, ok := s.rooms[id]
	s.mu.Unlock()
	if !ok {
		return false
	}
	return json.Unmarshal(raw, out) == nil
}

func (s *Server) injectFailures(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		for {
			n := s.failures.Load()
			if n <= 0 {
				break
			}
			if s.failures.CompareAndSwap(n, n-1) {
				http.Error(w, "unavailable", http.StatusServiceUnavailable)
				return
			}
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) create(w http.ResponseWriter, r *http.Request) {
	var body struct {
		InitialState json.RawMessage `json:"initialState"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || len(body.InitialState) == 0 {
		http.Error(w, "initialState required", http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	id := s.uniqueCode()
	s.rooms[id] = body.InitialState
	s.mu.Unlock()

	writeJSON(w, http.StatusCreated, map[string]any{"roomId": id, "gameState": body.InitialState})
}

func (s *Server) fetch(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "roomID")
	s.mu.Lock()
	raw, ok := s.rooms[id]
	s.mu.Unlock()
	if h := s.hold.Swap(nil); h != nil {
		close(h.read)
		<-h.release
	}
	if !ok {
		http.Error(w, "room not found", http.StatusNotFound)
		return
	}
	s.gets.Add(1)
	writeJSON(w, http.StatusOK, map[string]any{"id": id, "gameState": raw})
}

func (s *Server) replace(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "roomID")
	var body struct {
		GameState json.RawMessage `json:"gameState"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || len(body.GameState) == 0 {
		http.Error(w, "gameState required", http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	_, ok := s.rooms[id]
	if ok {
		s.rooms[id] = body.GameState
	}
	s.mu.Unlock()
	if !ok {
		http.Error(w, "room not found", http.StatusNotFound)
		return
	}
	s.puts.Add(1)
	writeJSON(w, http.StatusOK, map[string]any{"gameState": body.GameState})
}

// uniqueCode returns an unused 6-character code. Caller holds s.mu.
func (s *Server) uniqueCode() string {
	for {
		b := make([]byte, 4)
		if _, err := rand.Read(b); err != nil {
			panic(err)
		}
		code := base32.StdEncoding.EncodeToString(b)[:6]
		if _, exists := s.rooms[code]; !exists {
			return code
		}
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
