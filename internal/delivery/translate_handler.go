package delivery

import (
	"encoding/json"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"regexp"

	"github.com/Vovarama1992/go-utils/logger"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/Vovarama1992/audio_translator/internal/pipeline"
	"github.com/Vovarama1992/audio_translator/internal/recognition"
)

var audioNameRe = regexp.MustCompile(`^translated_audio_\d{14}\.wav$`)

type TranslateHandler struct {
	processor pipeline.Processor
	outDir    string
	log       *logger.ZapLogger
}

func NewTranslateHandler(processor pipeline.Processor, outDir string, log *logger.ZapLogger) *TranslateHandler {
	return &TranslateHandler{
		processor: processor,
		outDir:    outDir,
		log:       log,
	}
}

func (h *TranslateHandler) Index(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_ = pageTmpl.Execute(w, map[string]any{
		"Models":  recognition.ModelSizes,
		"Default": recognition.ModelLarge,
	})
}

func (h *TranslateHandler) Translate(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(100 << 20); err != nil {
		h.log.Log(logger.LogEntry{Level: "warn", Message: "invalid multipart", Error: err})
		http.Error(w, "invalid multipart: "+err.Error(), http.StatusBadRequest)
		return
	}

	model, err := recognition.ParseModelSize(r.FormValue("model"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		h.log.Log(logger.LogEntry{Level: "warn", Message: "missing file", Error: err})
		http.Error(w, "missing file: "+err.Error(), http.StatusBadRequest)
		return
	}
	defer file.Close()

	// the recognizer wants a path, so spool the upload to disk
	tmpPath := filepath.Join(os.TempDir(), "upload_"+uuid.NewString()+filepath.Ext(header.Filename))
	tmp, err := os.Create(tmpPath)
	if err != nil {
		http.Error(w, "failed to store upload: "+err.Error(), http.StatusInternalServerError)
		return
	}
	defer os.Remove(tmpPath)

	if _, err := io.Copy(tmp, file); err != nil {
		tmp.Close()
		http.Error(w, "failed to store upload: "+err.Error(), http.StatusInternalServerError)
		return
	}
	tmp.Close()

	text, outPath, err := h.processor.Process(r.Context(), tmpPath, model)
	if err != nil {
		h.log.Log(logger.LogEntry{Level: "error", Message: "processing failed", Error: err})
		http.Error(w, "processing failed: "+err.Error(), http.StatusInternalServerError)
		return
	}

	name := filepath.Base(outPath)
	resp := map[string]any{
		"text":       text,
		"audio_file": name,
	}
	// the path is generated before synthesis runs, so check the file
	// actually exists before advertising it
	if _, err := os.Stat(outPath); err == nil {
		resp["audio_url"] = "/audio/" + name
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(resp)
}

func (h *TranslateHandler) Audio(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	if !audioNameRe.MatchString(name) {
		http.Error(w, "invalid audio name", http.StatusBadRequest)
		return
	}
	http.ServeFile(w, r, filepath.Join(h.outDir, name))
}
