package handlers

import (
	"net/http"

	"github.com/Yash-Yashwant/CosplayAI/internal/character"
)

func (a *App) ListCharacters(w http.ResponseWriter, r *http.Request) {
	items := a.Characters.List()
	if style := r.URL.Query().Get("style"); style != "" {
		items = a.Characters.FilterByStyle(style)
	}
	if items == nil {
		items = []character.Summary{}
	}
	a.json(w, http.StatusOK, map[string]any{"characters": items})
}

func (a *App) SearchCharacters(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	if query == "" {
		a.error(w, http.StatusBadRequest, "bad_request", "q parameter required")
		return
	}
	items := a.Characters.Search(query)
	if items == nil {
		items = []character.Summary{}
	}
	a.json(w, http.StatusOK, map[string]any{"characters": items})
}
