package convert

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/lightvector/ogstosgf/internal/domain/conversion"
	apperrors "github.com/lightvector/ogstosgf/internal/errors"
	"github.com/lightvector/ogstosgf/internal/httpresponse"
	"github.com/lightvector/ogstosgf/internal/usecase/translate"
	"github.com/lightvector/ogstosgf/internal/utils"
)

const sgfContentType = "application/x-go-sgf; charset=utf-8"

type SGFStore interface {
	LoadSGF(ctx context.Context, gameID string) (string, error)
}

// ConversionFinder reads archived conversions when the cache has nothing.
type ConversionFinder interface {
	FindByGameID(ctx context.Context, gameID string) (*conversion.Conversion, error)
}

type Sink interface {
	Save(ctx context.Context, conv conversion.Conversion) error
}

type ConvertResponse struct {
	SGF       string   `json:"sgf"`
	Succeeded bool     `json:"succeeded"`
	Warnings  []string `json:"warnings"`
	Original  bool     `json:"original"`
}

type ConvertHandler struct {
	log        *zap.SugaredLogger
	translator *translate.Translator
	cache      SGFStore
	archive    ConversionFinder
	sinks      []Sink
}

// NewConvertHandler accepts nil cache and archive; with neither, GET /sgf answers 503.
func NewConvertHandler(log *zap.SugaredLogger, translator *translate.Translator, cache SGFStore, archive ConversionFinder, sinks ...Sink) *ConvertHandler {
	return &ConvertHandler{
		log:        log,
		translator: translator,
		cache:      cache,
		archive:    archive,
		sinks:      sinks,
	}
}

func (h *ConvertHandler) Routes(r chi.Router) {
	r.Post("/convert", h.HandleConvert)
	r.Get("/sgf/{gameID}", h.HandleGetSGF)
}

func (h *ConvertHandler) HandleConvert(w http.ResponseWriter, r *http.Request) {
	body, err := utils.ReadRequestBody(w, r)
	if err != nil {
		h.log.Error(err)
		status := http.StatusBadRequest
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			status = http.StatusRequestEntityTooLarge
		}
		httpresponse.WriteErrorWithStatus(w, status, err.Error())
		return
	}

	res, err := h.translator.TranslateBytes(body)
	if err != nil {
		h.log.Warnw("rejected record", "error", err)
		httpresponse.WriteErrorWithStatus(w, http.StatusBadRequest, err.Error())
		return
	}

	conv := conversion.Conversion{
		RunID:       uuid.NewString(),
		GameID:      res.Info.GameID,
		SGF:         res.SGF,
		Succeeded:   res.Succeeded,
		Warnings:    res.Warnings,
		BlackName:   res.Info.BlackName,
		WhiteName:   res.Info.WhiteName,
		Original:    res.Original,
		ConvertedAt: time.Now().UTC(),
	}
	if !res.Info.Date.IsZero() {
		conv.Date = &res.Info.Date
	}
	for _, sink := range h.sinks {
		if err := sink.Save(r.Context(), conv); err != nil {
			h.log.Errorw("failed to store conversion", "game_id", conv.GameID, "error", err)
		}
	}

	warnings := res.Warnings
	if warnings == nil {
		warnings = []string{}
	}
	httpresponse.WriteResponseWithStatus(w, http.StatusOK, ConvertResponse{
		SGF:       res.SGF,
		Succeeded: res.Succeeded,
		Warnings:  warnings,
		Original:  res.Original,
	})
}

func (h *ConvertHandler) HandleGetSGF(w http.ResponseWriter, r *http.Request) {
	if h.cache == nil && h.archive == nil {
		httpresponse.WriteErrorWithStatus(w, http.StatusServiceUnavailable, apperrors.ErrCacheDisabled.Error())
		return
	}

	gameID := chi.URLParam(r, "gameID")
	text, err := h.loadSGF(r.Context(), gameID)
	if errors.Is(err, apperrors.ErrSGFNotFound) {
		httpresponse.WriteErrorWithStatus(w, http.StatusNotFound, err.Error())
		return
	}
	if err != nil {
		h.log.Errorw("failed to load sgf", "game_id", gameID, "error", err)
		httpresponse.WriteInternalErrorResponse(w)
		return
	}

	w.Header().Set("Content-Type", sgfContentType)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(text))
}

// loadSGF tries the cache first, then the archive.
func (h *ConvertHandler) loadSGF(ctx context.Context, gameID string) (string, error) {
	err := apperrors.ErrSGFNotFound
	if h.cache != nil {
		var text string
		text, err = h.cache.LoadSGF(ctx, gameID)
		if err == nil {
			return text, nil
		}
		if !errors.Is(err, apperrors.ErrSGFNotFound) {
			h.log.Warnw("sgf cache lookup failed", "game_id", gameID, "error", err)
		}
	}
	if h.archive == nil {
		return "", err
	}

	conv, archiveErr := h.archive.FindByGameID(ctx, gameID)
	if archiveErr != nil {
		return "", archiveErr
	}
	return conv.SGF, nil
}
