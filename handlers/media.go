package handlers

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/akinalp/dukkan/pkg"
)

// MediaHandler, yüklenmiş ürün görsellerini stream eder.
type MediaHandler struct {
	imageDir string
}

// NewMediaHandler, constructor.
func NewMediaHandler(imageDir string) *MediaHandler {
	return &MediaHandler{imageDir: imageDir}
}

// validPresets, preset query parametresinin alabileceği değerler.
var validPresets = map[string]bool{
	"four_small":   true,
	"actual_small": true,
	"small":        true,
	"big":          true,
}

// Serve godoc
// GET /images/{path...}?preset=small
//
// Preset varyantı diskte ayrı dosya olarak aranır ({preset}_{dosya});
// yoksa orijinal dosya döner. Böylece boyutlandırılmış kopyalar sonradan
// üretilse de URL'ler değişmez.
func (h *MediaHandler) Serve(w http.ResponseWriter, r *http.Request) {
	rawPath := r.PathValue("path")

	// Path traversal koruması: path temizlenir ve imageDir dışına
	// çıkan her istek reddedilir.
	cleaned := filepath.Clean("/" + rawPath)
	if strings.Contains(cleaned, "..") {
		pkg.ErrorWithMessage(w, http.StatusBadRequest, "invalid image path")
		return
	}
	relPath := strings.TrimPrefix(cleaned, "/")
	if relPath == "" {
		pkg.ErrorWithMessage(w, http.StatusBadRequest, "invalid image path")
		return
	}

	preset := r.URL.Query().Get("preset")
	if preset != "" && !validPresets[preset] {
		pkg.ErrorWithMessage(w, http.StatusBadRequest, "invalid preset")
		return
	}

	fullPath := filepath.Join(h.imageDir, relPath)

	if preset != "" {
		presetPath := filepath.Join(filepath.Dir(fullPath), preset+"_"+filepath.Base(fullPath))
		if _, err := os.Stat(presetPath); err == nil {
			fullPath = presetPath
		}
	}

	info, err := os.Stat(fullPath)
	if err != nil || info.IsDir() {
		pkg.ErrorWithMessage(w, http.StatusNotFound, "image not found")
		return
	}

	// Görseller immutable — dosya adında random prefix var, içerik değişmez.
	w.Header().Set("Cache-Control", "public, max-age=31536000, immutable")
	http.ServeFile(w, r, fullPath)
}
