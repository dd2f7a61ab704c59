package handlers

import (
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/Yash-Yashwant/CosplayAI/internal/domain"
	"github.com/Yash-Yashwant/CosplayAI/internal/generation"
	"github.com/Yash-Yashwant/CosplayAI/internal/imagen"
	"github.com/Yash-Yashwant/CosplayAI/internal/middleware"
	"github.com/Yash-Yashwant/CosplayAI/internal/prompt"
	"github.com/Yash-Yashwant/CosplayAI/internal/upload"
)

type generateResponse struct {
	GenerationID  string `json:"generation_id"`
	Status        string `json:"status"`
	EstimatedTime int    `json:"estimated_time"`
}

// GenerateCosplay accepts a multipart photo plus character/style/quality
// fields, runs the analyze-compose-generate pipeline synchronously, and
// records the outcome. Input problems answer 400; upstream failures land
// in the record, not the response status.
func (a *App) GenerateCosplay(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(a.Config.MaxUploadBytes); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid multipart payload")
		return
	}
	file, header, err := r.FormFile("photo")
	if err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "photo file required")
		return
	}
	defer file.Close()

	if !upload.IsImageContentType(header.Header.Get("Content-Type")) {
		a.error(w, http.StatusBadRequest, "bad_request", "file must be an image")
		return
	}
	if !upload.AllowedExtension(header.Filename) {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid file format")
		return
	}

	data, err := io.ReadAll(io.LimitReader(file, a.Config.MaxUploadBytes))
	if err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "failed to read photo")
		return
	}
	if err := a.Analyzer.Validate(data); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", err.Error())
		return
	}

	characterID := formValue(r, "character", "sailor-moon")
	style := formValue(r, "style", "anime")
	quality := formValue(r, "quality", "high")

	def, ok := a.Characters.Get(characterID)
	if !ok {
		a.error(w, http.StatusBadRequest, "bad_request", domain.ErrUnknownCharacter.Error())
		return
	}

	analysis := a.Analyzer.Analyze(data)

	composed := prompt.ComposeTransformationPrompt(analysis, def, style)
	enhanced := prompt.EnhanceForQuality(composed, quality)
	finalPrompt := prompt.Sanitize(enhanced)

	rec := generation.Record{
		ID:            generation.NewID(),
		Status:        generation.StatusProcessing,
		Character:     characterID,
		Style:         style,
		Quality:       quality,
		CreatedAt:     nowUTC(),
		EstimatedTime: generation.EstimateSeconds(characterID, quality, analysis.Width, analysis.Height),
		Prompt:        finalPrompt,
		Analysis:      &analysis,
		Metadata: map[string]string{
			"request_id": middleware.RequestIDFromContext(r.Context()),
			"filename":   upload.SanitizeFilename(header.Filename),
		},
	}
	a.Store.Put(rec)

	a.runTransformation(r, &rec, def.Name, finalPrompt, data)
	a.Store.Put(rec)

	a.json(w, http.StatusOK, generateResponse{
		GenerationID:  rec.ID,
		Status:        string(generation.StatusProcessing),
		EstimatedTime: rec.EstimatedTime,
	})
}

// runTransformation performs the single-attempt upstream call and settles
// the record. Missing credentials degrade to a placeholder result rather
// than a failure.
func (a *App) runTransformation(r *http.Request, rec *generation.Record, characterName, finalPrompt string, photoBytes []byte) {
	result, err := a.Generator.Generate(r.Context(), finalPrompt, photoBytes, nil)
	switch {
	case err == nil:
		rec.Status = generation.StatusCompleted
		rec.ResultURL = "data:image/png;base64," + result.ImageBase64
		rec.Metadata["mode"] = "imagen"
	case errors.Is(err, imagen.ErrNoCredentials):
		a.Log.Warn().Str("generation_id", rec.ID).Msg("no upstream credentials, serving placeholder")
		rec.Status = generation.StatusCompleted
		rec.ResultURL = generation.PlaceholderDataURI(characterName)
		rec.Metadata["mode"] = "placeholder"
	default:
		a.Log.Error().Err(err).Str("generation_id", rec.ID).Msg("transformation failed")
		rec.Status = generation.StatusFailed
		rec.Error = err.Error()
	}
}

func (a *App) GetGeneration(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	rec, ok := a.Store.Get(id)
	if !ok {
		a.error(w, http.StatusNotFound, "not_found", "generation not found")
		return
	}
	a.json(w, http.StatusOK, rec)
}

func nowUTC() time.Time {
	return time.Now().UTC()
}

func formValue(r *http.Request, key, fallback string) string {
	if v := r.FormValue(key); v != "" {
		return v
	}
	return fallback
}
