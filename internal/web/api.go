package web

import (
	"encoding/json"
	"net/http"

	"emojihub/internal/catalog"
	"emojihub/internal/model"
)

type emojisResponse struct {
	Emojis  []model.Emoji `json:"emojis"`
	Showing int           `json:"showing"`
	Total   int           `json:"total"`
}

type optionsResponse struct {
	Categories []string `json:"categories"`
	Groups     []string `json:"groups"`
}

func (s *Server) handleAPIEmojis(w http.ResponseWriter, r *http.Request) {
	snap := s.snapshot()
	if snap.Err != nil {
		writeJSON(w, http.StatusBadGateway, map[string]string{"error": snap.Err.Error()})
		return
	}
	visible := catalog.Filter(snap.Emojis, criteriaFrom(r.URL.Query()))
	writeJSON(w, http.StatusOK, emojisResponse{
		Emojis:  visible,
		Showing: len(visible),
		Total:   len(snap.Emojis),
	})
}

func (s *Server) handleAPIOptions(w http.ResponseWriter, r *http.Request) {
	snap := s.snapshot()
	resp := optionsResponse{Categories: snap.Categories, Groups: snap.Groups}
	if resp.Categories == nil {
		resp.Categories = []string{}
	}
	if resp.Groups == nil {
		resp.Groups = []string{}
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleAPIFavorites(w http.ResponseWriter, r *http.Request) {
	favs, err := s.mountFavorites(r)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, favs.List())
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
