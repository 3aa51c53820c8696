package web

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net"
	"net/http"
	"time"

	"github.com/KirkDiggler/sketchphone/internal/common/apperrors"
	"github.com/KirkDiggler/sketchphone/internal/models"
	"github.com/KirkDiggler/sketchphone/internal/services/game"
	"github.com/julienschmidt/httprouter"
	"github.com/skip2/go-qrcode"
)

const qrSize = 320

type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

type statusResponse struct {
	Code        string            `json:"code"`
	Status      models.GameStatus `json:"status"`
	Players     int               `json:"players"`
	Round       int               `json:"round,omitempty"`
	TotalRounds int               `json:"total_rounds"`
	Pending     int               `json:"pending"`
}

type stepResponse struct {
	Round    int             `json:"round"`
	Player   string          `json:"player"`
	Kind     models.TurnKind `json:"kind"`
	Text     string          `json:"text,omitempty"`
	ImageURL string          `json:"image_url,omitempty"`
}

type chainResponse struct {
	Origin string          `json:"origin"`
	Steps  []*stepResponse `json:"steps"`
}

type galleryResponse struct {
	Code   string           `json:"code"`
	Chains []*chainResponse `json:"chains"`
}

func securityHeaders(w http.ResponseWriter) {
	w.Header().Set("Cross-Origin-Resource-Policy", "cross-origin")
	w.Header().Set("Referrer-Policy", "strict-origin-when-cross-origin")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.Header().Set("Content-Security-Policy", "default-src 'none'")
}

func realIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		host = r.RemoteAddr
	}
	if ip := r.Header.Get("X-Real-IP"); ip != "" && net.ParseIP(ip) != nil {
		host = ip
	}
	return host
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	securityHeaders(w)
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Printf("Error encoding response: %v", err)
	}
}

// writeError maps the error taxonomy onto HTTP status codes
func writeError(w http.ResponseWriter, err error) {
	kind, ok := apperrors.KindOf(err)
	if !ok {
		log.Printf("Error serving request: %v", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
		return
	}

	status := http.StatusInternalServerError
	switch kind {
	case apperrors.KindValidation:
		status = http.StatusBadRequest
	case apperrors.KindNotFound:
		status = http.StatusNotFound
	case apperrors.KindStateConflict:
		status = http.StatusConflict
	}

	writeJSON(w, status, errorResponse{
		Error: err.Error(),
		Code:  apperrors.CodeOf(err),
	})
}

func requestContext(r *http.Request) (context.Context, context.CancelFunc) {
	return context.WithTimeout(r.Context(), timeout)
}

func (s *Server) serveHealthCheck() httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		securityHeaders(w)
		w.WriteHeader(http.StatusOK)

		_, _ = w.Write([]byte("Ok\n"))
	}
}

func (s *Server) serveStatus() httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
		startTime := time.Now()
		ctx, cancel := requestContext(r)
		defer cancel()

		status, err := s.gameService.GetStatus(ctx, &game.GetStatusInput{
			GameID: p.ByName("code"),
		})
		if err != nil {
			writeError(w, err)
			return
		}

		resp := &statusResponse{
			Code:        status.Game.ID,
			Status:      status.Game.Status,
			Players:     status.Game.PlayerCount(),
			TotalRounds: status.TotalRounds,
			Pending:     status.Pending,
		}
		if status.Game.Status.IsPlaying() {
			resp.Round = status.Round + 1
		}

		writeJSON(w, http.StatusOK, resp)

		s.logf("SERVE: Status of %s to %s in %s",
			status.Game.ID,
			realIP(r),
			time.Since(startTime).Round(time.Microsecond),
		)
	}
}

func (s *Server) serveGallery() httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
		startTime := time.Now()
		ctx, cancel := requestContext(r)
		defer cancel()

		gallery, err := s.gameService.GetGallery(ctx, &game.GetGalleryInput{
			GameID: p.ByName("code"),
		})
		if err != nil {
			writeError(w, err)
			return
		}

		resp := &galleryResponse{
			Code:   gallery.Game.ID,
			Chains: make([]*chainResponse, 0, len(gallery.Chains)),
		}
		for _, chain := range gallery.Chains {
			c := &chainResponse{
				Origin: chain.OriginName,
				Steps:  make([]*stepResponse, 0, len(chain.Steps)),
			}
			for _, step := range chain.Steps {
				c.Steps = append(c.Steps, &stepResponse{
					Round:    step.Round + 1,
					Player:   step.PlayerName,
					Kind:     step.Kind,
					Text:     step.Payload.Text,
					ImageURL: step.Payload.MediaURL,
				})
			}
			resp.Chains = append(resp.Chains, c)
		}

		writeJSON(w, http.StatusOK, resp)

		s.logf("SERVE: Gallery of %s (%d chains) to %s in %s",
			gallery.Game.ID,
			len(resp.Chains),
			realIP(r),
			time.Since(startTime).Round(time.Microsecond),
		)
	}
}

// serveQR encodes the join command of a game that still accepts players
func (s *Server) serveQR() httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
		startTime := time.Now()
		ctx, cancel := requestContext(r)
		defer cancel()

		status, err := s.gameService.GetStatus(ctx, &game.GetStatusInput{
			GameID: p.ByName("code"),
		})
		if err != nil {
			writeError(w, err)
			return
		}

		if status.Game.Status != models.GameStatusCreated {
			writeError(w, game.ErrGameAlreadyStarted)
			return
		}

		png, err := qrcode.Encode(fmt.Sprintf(s.cfg.JoinFormat, status.Game.ID), qrcode.Medium, qrSize)
		if err != nil {
			writeError(w, fmt.Errorf("qr generation failed: %w", err))
			return
		}

		w.Header().Set("Content-Type", "image/png")
		w.Header().Set("Cache-Control", "no-store")
		securityHeaders(w)
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(png)

		s.logf("SERVE: QR for %s to %s in %s",
			status.Game.ID,
			realIP(r),
			time.Since(startTime).Round(time.Microsecond),
		)
	}
}
