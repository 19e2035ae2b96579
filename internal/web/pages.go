package web

import (
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"emojihub/internal/catalog"
	"emojihub/internal/favorites"
	"emojihub/internal/hub"
	"emojihub/internal/model"
)

type card struct {
	Emoji    model.Emoji
	Favorite bool
}

type catalogPage struct {
	Criteria   model.Criteria
	Categories []string
	Groups     []string
	Cards      []card
	Summary    string
	Total      int
	FavCount   int
	Err        string
	Back       string
}

type favoritesPage struct {
	Cards []card
	Count int
	Err   string
}

func criteriaFrom(q url.Values) model.Criteria {
	c := model.NewCriteria()
	c.Query = q.Get("q")
	if v := q.Get("category"); v != "" {
		c.Category = v
	}
	if v := q.Get("group"); v != "" {
		c.Group = v
	}
	return c
}

func (s *Server) handleCatalog(w http.ResponseWriter, r *http.Request) {
	snap := s.snapshot()
	page := catalogPage{
		Criteria:   criteriaFrom(r.URL.Query()),
		Categories: snap.Categories,
		Groups:     snap.Groups,
		Back:       r.URL.RequestURI(),
	}

	favs, err := s.mountFavorites(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	page.FavCount = favs.Len()

	if snap.Err != nil {
		page.Err = snap.Err.Error()
		s.render(w, http.StatusBadGateway, "catalog.html", page)
		return
	}

	cat := catalog.New()
	cat.SetEmojis(snap.Emojis)
	cat.SetCriteria(page.Criteria)
	for _, e := range cat.Visible() {
		page.Cards = append(page.Cards, card{Emoji: e, Favorite: favs.IsFavorite(e)})
	}
	page.Total = cat.Total()
	page.Summary = catalog.Summary(len(cat.Visible()), cat.Total())
	s.render(w, http.StatusOK, "catalog.html", page)
}

func (s *Server) handleRetry(w http.ResponseWriter, r *http.Request) {
	prev := s.snapshot()
	next := hub.Reload(r.Context(), s.source, prev)
	s.mu.Lock()
	s.snap = next
	s.mu.Unlock()
	http.Redirect(w, r, "/catalog", http.StatusSeeOther)
}

func (s *Server) handleFavorites(w http.ResponseWriter, r *http.Request) {
	favs, err := s.mountFavorites(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	s.render(w, http.StatusOK, "favorites.html", favoritesPageOf(favs))
}

func (s *Server) handleToggle(w http.ResponseWriter, r *http.Request) {
	name := r.FormValue("name")

	s.mu.Lock()
	defer s.mu.Unlock()

	favs, err := favorites.New(r.Context(), s.repo)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	e, ok := s.lookupLocked(name, favs)
	if !ok {
		http.Error(w, "unknown emoji", http.StatusNotFound)
		return
	}
	if _, err := favs.Toggle(r.Context(), e); err != nil {
		http.Error(w, "failed to save favorites", http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, safeBack(r.FormValue("back"), "/catalog"), http.StatusSeeOther)
}

func (s *Server) handleRemove(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	favs, err := favorites.New(r.Context(), s.repo)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if err := favs.Remove(r.Context(), model.Emoji{Name: r.FormValue("name")}); err != nil {
		http.Error(w, "failed to save favorites", http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, "/favorites", http.StatusSeeOther)
}

func (s *Server) handleClearConfirm(w http.ResponseWriter, r *http.Request) {
	favs, err := s.mountFavorites(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	s.render(w, http.StatusOK, "confirm.html", favoritesPageOf(favs))
}

func (s *Server) handleClear(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	favs, err := favorites.New(r.Context(), s.repo)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	err = favs.ClearAll(r.Context(), r.FormValue("confirm") == "yes")
	if err != nil && !errors.Is(err, favorites.ErrNotConfirmed) {
		http.Error(w, "failed to save favorites", http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, "/favorites", http.StatusSeeOther)
}

// lookupLocked resolves a name against the catalog, then the favorites set,
// so items can be toggled even while the catalog is unavailable.
func (s *Server) lookupLocked(name string, favs *favorites.Controller) (model.Emoji, bool) {
	if name == "" {
		return model.Emoji{}, false
	}
	for _, e := range s.snap.Emojis {
		if e.Name == name {
			return e, true
		}
	}
	for _, e := range favs.List() {
		if e.Name == name {
			return e, true
		}
	}
	return model.Emoji{}, false
}

func (s *Server) mountFavorites(r *http.Request) (*favorites.Controller, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return favorites.New(r.Context(), s.repo)
}

func favoritesPageOf(favs *favorites.Controller) favoritesPage {
	page := favoritesPage{Count: favs.Len()}
	for _, e := range favs.List() {
		page.Cards = append(page.Cards, card{Emoji: e, Favorite: true})
	}
	return page
}

// safeBack only allows local redirects.
func safeBack(back, fallback string) string {
	if strings.HasPrefix(back, "/catalog") || strings.HasPrefix(back, "/favorites") {
		return back
	}
	return fallback
}

func (s *Server) render(w http.ResponseWriter, status int, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := s.tmpl.ExecuteTemplate(w, name, data); err != nil {
		slog.Error("render page", "template", name, "err", err)
	}
}
