package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/Yash-Yashwant/CosplayAI/internal/character"
	"github.com/Yash-Yashwant/CosplayAI/internal/generation"
	"github.com/Yash-Yashwant/CosplayAI/internal/imagen"
	"github.com/Yash-Yashwant/CosplayAI/internal/infra"
	"github.com/Yash-Yashwant/CosplayAI/internal/photo"
)

// Generator is the upstream contract the generate handler depends on.
// *imagen.Client satisfies it; tests substitute stubs.
type Generator interface {
	Generate(ctx context.Context, prompt string, baseImage, mask []byte) (*imagen.Result, error)
	ValidateConnection(ctx context.Context) bool
}

type App struct {
	Log        zerolog.Logger
	Config     *infra.Config
	Characters *character.Library
	Analyzer   *photo.Analyzer
	Generator  Generator
	Store      generation.Store
}

func NewApp(log zerolog.Logger, cfg *infra.Config, lib *character.Library, analyzer *photo.Analyzer, gen Generator, store generation.Store) *App {
	return &App{
		Log:        log,
		Config:     cfg,
		Characters: lib,
		Analyzer:   analyzer,
		Generator:  gen,
		Store:      store,
	}
}

func (a *App) json(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func (a *App) error(w http.ResponseWriter, code int, errCode, message string) {
	a.json(w, code, map[string]string{"error": errCode, "message": message})
}
