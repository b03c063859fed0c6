package server

import (
	"context"
	"encoding/json"
	"log"
	"net/http"

	"github.com/gorilla/websocket"

	"github.com/agora-ai/agora/internal/catalog"
	"github.com/agora-ai/agora/internal/models"
	"github.com/agora-ai/agora/pkg/rag"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // Be careful with this in production
	},
}

type Config struct {
	Addr string
}

// Server exposes the ask API over HTTP JSON and a websocket channel for
// interactive clients.
type Server struct {
	config Config
	engine *rag.Engine
}

func New(engine *rag.Engine, config Config) *Server {
	if config.Addr == "" {
		config.Addr = ":8080"
	}
	return &Server{
		config: config,
		engine: engine,
	}
}

// AskRequest mirrors the client's question: single mode targets one
// philosopher, general mode builds a panel from the region/era filters.
type AskRequest struct {
	Question      string `json:"question"`
	Mode          string `json:"mode"` // "single" (default) or "general"
	PhilosopherID string `json:"philosopherId,omitempty"`
	UseRAG        bool   `json:"useRAG,omitempty"`
	Region        string `json:"region,omitempty"`
	Century       string `json:"century,omitempty"`
}

type singleResponse struct {
	Answer        string   `json:"answer"`
	PhilosopherID string   `json:"philosopherId"`
	HasRagContext bool     `json:"hasRagContext"`
	Sources       []string `json:"sources,omitempty"`
}

type perspectiveResponse struct {
	Philosopher string   `json:"philosopher"`
	Name        string   `json:"name"`
	Bio         string   `json:"bio"`
	Response    string   `json:"response"`
	Sources     []string `json:"sources,omitempty"`
}

type filtersApplied struct {
	Region          string `json:"region,omitempty"`
	Century         string `json:"century,omitempty"`
	ExpandedFilters bool   `json:"expandedFilters"`
}

type panelResponse struct {
	Mode            string                `json:"mode"`
	Overview        string                `json:"overview"`
	Perspectives    []perspectiveResponse `json:"perspectives"`
	Themes          []string              `json:"themes"`
	Recommendations []string              `json:"recommendations"`
	FiltersApplied  filtersApplied        `json:"filtersApplied"`
}

type philosopherResponse struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Period    string   `json:"period"`
	School    string   `json:"school"`
	KeyThemes []string `json:"keyThemes"`
	Color     string   `json:"color"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) Start() error {
	mux := http.NewServeMux()
	mux.HandleFunc("/ask", s.handleAsk)
	mux.HandleFunc("/philosophers", s.handlePhilosophers)
	mux.HandleFunc("/ws", s.handleWebSocket)

	log.Printf("listening on %s", s.config.Addr)
	return http.ListenAndServe(s.config.Addr, mux)
}

func (s *Server) handleAsk(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, errorResponse{Error: "POST required"})
		return
	}

	var req AskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}
	if req.Question == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Missing required field: question"})
		return
	}

	if req.Mode == "general" {
		answer := s.engine.AskPanel(r.Context(), req.Question, req.Region, req.Century)
		writeJSON(w, http.StatusOK, buildPanelResponse(req, answer))
		return
	}

	if req.PhilosopherID == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Missing required field: philosopherId for single mode"})
		return
	}
	if _, ok := catalog.PhilosopherByID(req.PhilosopherID); !ok {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "Invalid philosopher ID"})
		return
	}

	answer, err := s.engine.AskAuthor(r.Context(), req.Question, req.PhilosopherID, req.UseRAG)
	if err != nil {
		log.Printf("generation error: %v", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "Failed to generate response"})
		return
	}

	resp := singleResponse{
		Answer:        answer.Answer,
		PhilosopherID: req.PhilosopherID,
		HasRagContext: answer.HasContext,
	}
	if answer.HasContext {
		resp.Sources = answer.Sources
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handlePhilosophers(w http.ResponseWriter, r *http.Request) {
	var out []philosopherResponse
	for _, p := range catalog.Philosophers() {
		out = append(out, philosopherResponse{
			ID:        p.ID,
			Name:      p.Name,
			Period:    p.Period,
			School:    p.School,
			KeyThemes: p.KeyThemes,
			Color:     p.Color,
		})
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("WebSocket upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	for {
		_, message, err := conn.ReadMessage()
		if err != nil {
			log.Printf("Error reading message: %v", err)
			break
		}

		var req AskRequest
		if err := json.Unmarshal(message, &req); err != nil {
			s.sendError(conn, "invalid request")
			continue
		}

		go s.handleWSAsk(conn, req)
	}
}

func (s *Server) handleWSAsk(conn *websocket.Conn, req AskRequest) {
	if req.Question == "" {
		s.sendError(conn, "question is required")
		return
	}

	if req.Mode == "general" {
		answer := s.engine.AskPanel(context.Background(), req.Question, req.Region, req.Century)
		s.send(conn, buildPanelResponse(req, answer))
		return
	}

	answer, err := s.engine.AskAuthor(context.Background(), req.Question, req.PhilosopherID, req.UseRAG)
	if err != nil {
		s.sendError(conn, "failed to generate response")
		return
	}
	s.send(conn, singleResponse{
		Answer:        answer.Answer,
		PhilosopherID: req.PhilosopherID,
		HasRagContext: answer.HasContext,
		Sources:       answer.Sources,
	})
}

func buildPanelResponse(req AskRequest, answer models.PanelAnswer) panelResponse {
	resp := panelResponse{
		Mode:            "general",
		Overview:        answer.Overview,
		Themes:          answer.Themes,
		Recommendations: answer.Recommendations,
		FiltersApplied: filtersApplied{
			ExpandedFilters: answer.FiltersExpanded,
		},
	}
	if req.Region != "" && req.Region != "all" {
		resp.FiltersApplied.Region = req.Region
	}
	if req.Century != "" && req.Century != "all" {
		resp.FiltersApplied.Century = req.Century
	}
	for _, p := range answer.Perspectives {
		resp.Perspectives = append(resp.Perspectives, perspectiveResponse{
			Philosopher: p.PhilosopherID,
			Name:        p.Name,
			Bio:         p.Bio,
			Response:    p.Response,
			Sources:     p.Sources,
		})
	}
	return resp
}

func (s *Server) send(conn *websocket.Conn, v interface{}) {
	if err := conn.WriteJSON(v); err != nil {
		log.Printf("Error sending message: %v", err)
	}
}

func (s *Server) sendError(conn *websocket.Conn, msg string) {
	s.send(conn, errorResponse{Error: msg})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Error encoding response: %v", err)
	}
}
