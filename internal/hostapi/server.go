// Package hostapi is the reference host for pkg/dominion: a thin HTTP/
// WebSocket service that drives the Host-facing API (init, add_country,
// add_edge, tick, get_logs, get_world_snapshot) over the network. It never
// touches tick logic itself, so nothing here can compromise determinism —
// it only calls World's exported methods and relays what comes back.
package hostapi

import (
	"context"
	"net/http"
	"strconv"

	"github.com/rs/zerolog/log"

	coreauth "github.com/ironclad-games/dominion/internal/auth"
	"github.com/ironclad-games/dominion/internal/hostapi/auth"
	pgrepo "github.com/ironclad-games/dominion/internal/hostapi/repository/postgres"
	redisrepo "github.com/ironclad-games/dominion/internal/hostapi/repository/redis"
	"github.com/ironclad-games/dominion/internal/hostapi/ws"
	"github.com/ironclad-games/dominion/internal/logger"
	"github.com/ironclad-games/dominion/pkg/dominion"
)

// Server wires the world registry to HTTP routes. Postgres/Redis backends
// are optional: a Server constructed with nil repos still serves the full
// API against in-memory ring-buffer state only.
type Server struct {
	registry *Registry
	hub      *ws.Hub
	logs     *pgrepo.LogsRepo
	pub      *redisrepo.Publisher
	jwtMgr   *coreauth.JWTManager
}

// NewServer constructs a Server. logs and pub may be nil.
func NewServer(registry *Registry, hub *ws.Hub, logs *pgrepo.LogsRepo, pub *redisrepo.Publisher, jwtMgr *coreauth.JWTManager) *Server {
	return &Server{registry: registry, hub: hub, logs: logs, pub: pub, jwtMgr: jwtMgr}
}

// Routes registers the reference API on mux, gated behind jwtMgr where the
// route mutates or reads world state. Token issuance itself is public.
func (s *Server) Routes(mux *http.ServeMux, authHandler *auth.Handler, requireService func(http.Handler) http.Handler) {
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	mux.HandleFunc("POST /auth/token", authHandler.IssueToken)

	requireWrite := auth.RequireScope(auth.ScopeWorldsWrite)
	requireRead := auth.RequireScope(auth.ScopeWorldsRead)

	api := http.NewServeMux()
	api.Handle("POST /worlds", requireWrite(http.HandlerFunc(s.createWorld)))
	api.Handle("POST /worlds/{id}/countries", requireWrite(http.HandlerFunc(s.addCountry)))
	api.Handle("POST /worlds/{id}/edges", requireWrite(http.HandlerFunc(s.addEdge)))
	api.Handle("POST /worlds/{id}/tick", requireWrite(http.HandlerFunc(s.stepTick)))
	api.Handle("GET /worlds/{id}/logs", requireRead(http.HandlerFunc(s.getLogs)))
	api.Handle("GET /worlds/{id}/snapshot", requireRead(http.HandlerFunc(s.getSnapshot)))

	mux.Handle("/worlds", requireService(api))
	mux.Handle("/worlds/", requireService(api))

	// WebSocket upgrade: token carried as a query param since browsers can't
	// set custom headers on the handshake request.
	mux.HandleFunc("GET /worlds/{id}/ws", s.serveWS)
}

func (s *Server) createWorld(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Seed int64 `json:"seed"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	id, world := s.registry.Create(req.Seed)
	writeJSON(w, http.StatusCreated, map[string]any{"id": id, "seed": world.Seed})
}

func (s *Server) worldOr404(w http.ResponseWriter, r *http.Request) *dominion.World {
	id := r.PathValue("id")
	world := s.registry.Get(id)
	if world == nil {
		writeError(w, http.StatusNotFound, "unknown world id")
		return nil
	}
	return world
}

func (s *Server) addCountry(w http.ResponseWriter, r *http.Request) {
	world := s.worldOr404(w, r)
	if world == nil {
		return
	}
	var req struct {
		ID int `json:"id"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := world.AddCountry(req.ID); err != nil {
		writeError(w, http.StatusConflict, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, map[string]int{"id": req.ID})
}

func (s *Server) addEdge(w http.ResponseWriter, r *http.Request) {
	world := s.worldOr404(w, r)
	if world == nil {
		return
	}
	var req struct {
		From      int     `json:"from"`
		To        int     `json:"to"`
		Distance  int     `json:"distance"`
		Hostility float64 `json:"hostility"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := world.AddEdge(req.From, req.To, req.Distance, req.Hostility); err != nil {
		writeError(w, http.StatusConflict, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"status": "ok"})
}

func (s *Server) stepTick(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	world := s.worldOr404(w, r)
	if world == nil {
		return
	}

	rejected := world.StepTick(nil)
	tick := world.Tick

	ctx := logger.WithTickContext(r.Context(), id, tick)
	logger.ForTick(ctx).Info().Int("rejected", len(rejected)).Msg("tick committed")

	entries := entriesForTick(world, tick)
	s.afterTick(ctx, id, tick, entries)

	writeJSON(w, http.StatusOK, map[string]any{
		"tick":     tick,
		"rejected": rejected,
	})
}

// entriesForTick collects every country's DecisionLogEntry for a single
// tick number, in ascending country-id order. The ring buffer stores newest
// last, so the tick just run is always each country's final entry.
func entriesForTick(world *dominion.World, tick int) []dominion.DecisionLogEntry {
	snap := world.GetWorldSnapshot()
	out := make([]dominion.DecisionLogEntry, 0, len(snap.Countries))
	for _, c := range snap.Countries {
		logs := world.GetLogs(c.ID)
		if len(logs) == 0 {
			continue
		}
		last := logs[len(logs)-1]
		if last.Tick == tick {
			out = append(out, last)
		}
	}
	return out
}

// afterTick persists the tick's entries and fans out notifications. Both
// are best-effort: a host reading telemetry over HTTP/WS never blocks on
// durable storage, matching spec.md's ring buffer being the source of
// truth and Postgres being its overflow archive.
func (s *Server) afterTick(ctx context.Context, worldID string, tick int, entries []dominion.DecisionLogEntry) {
	if s.logs != nil {
		if err := s.logs.InsertTick(ctx, worldID, entries); err != nil {
			log.Error().Err(err).Str("worldId", worldID).Msg("failed to archive decision log entries")
		}
	}
	if s.pub != nil {
		if err := s.pub.PublishTickCommitted(ctx, worldID, tick); err != nil {
			log.Error().Err(err).Str("worldId", worldID).Msg("failed to publish tick notification")
		}
	}
	if s.hub != nil {
		s.hub.Broadcast(worldID, ws.Event{Type: ws.TickCommitted, WorldID: worldID, Data: entries})
	}
}

func (s *Server) getLogs(w http.ResponseWriter, r *http.Request) {
	world := s.worldOr404(w, r)
	if world == nil {
		return
	}
	countryID, err := strconv.Atoi(r.URL.Query().Get("country"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "country query parameter is required")
		return
	}
	writeJSON(w, http.StatusOK, world.GetLogs(countryID))
}

func (s *Server) getSnapshot(w http.ResponseWriter, r *http.Request) {
	world := s.worldOr404(w, r)
	if world == nil {
		return
	}
	writeJSON(w, http.StatusOK, world.GetWorldSnapshot())
}

func (s *Server) serveWS(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if s.registry.Get(id) == nil {
		writeError(w, http.StatusNotFound, "unknown world id")
		return
	}
	// The handshake request can't carry an Authorization header from a
	// browser client, so the token travels as a query param instead.
	claims, err := s.jwtMgr.ValidateToken(r.URL.Query().Get("token"))
	if err != nil {
		writeError(w, http.StatusUnauthorized, "invalid or missing token")
		return
	}
	if !claims.HasScope(auth.ScopeWorldsRead) {
		writeError(w, http.StatusForbidden, "token lacks worlds:read scope")
		return
	}
	s.hub.Upgrade(w, r, id)
}
