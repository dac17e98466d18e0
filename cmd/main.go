package main

import (
	"log"
	"net/http"
	"os"

	"github.com/Vovarama1992/go-utils/httputil"
	"github.com/Vovarama1992/go-utils/logger"

	"github.com/Vovarama1992/audio_translator/internal/delivery"
	"github.com/Vovarama1992/audio_translator/internal/pipeline"
	"github.com/Vovarama1992/audio_translator/internal/recognition"
	"github.com/Vovarama1992/audio_translator/internal/synthesis"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {

	// =========================================================================
	// ENV INIT
	// =========================================================================

	_ = godotenv.Load()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	outDir := os.Getenv("OUTPUT_DIR")
	if outDir == "" {
		outDir = "."
	}

	// read once at startup; an empty key is reported per request by the
	// synthesizer, not here
	azureKey := os.Getenv("AZURE_SPEECH_KEY")
	azureRegion := os.Getenv("AZURE_SERVICE_REGION")

	baseLogger, _ := zap.NewProduction()
	defer baseLogger.Sync()
	zl := logger.NewZapLogger(baseLogger.Sugar())

	// =========================================================================
	// CLIENTS (STT / TTS)
	// =========================================================================

	var recognizer recognition.Recognizer
	if whisperURL := os.Getenv("WHISPER_SERVER_URL"); whisperURL != "" {
		recognizer = recognition.NewWhisperClient(whisperURL)
	} else if apiKey := os.Getenv("OPENAI_API_KEY"); apiKey != "" {
		recognizer = recognition.NewOpenAIClient(apiKey)
	} else {
		log.Fatal("WHISPER_SERVER_URL or OPENAI_API_KEY must be set")
	}

	ttsClient := synthesis.NewAzureClient(azureKey, azureRegion)

	// =========================================================================
	// PIPELINE
	// =========================================================================

	pipelineService := pipeline.NewService(recognizer, ttsClient, outDir, zl)

	// =========================================================================
	// HTTP ROUTER
	// =========================================================================

	r := chi.NewRouter()
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	translateHandler := delivery.NewTranslateHandler(pipelineService, outDir, zl)
	delivery.RegisterRoutes(r, translateHandler)

	r.With(httputil.RecoverMiddleware).Get("/ping", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(200)
		w.Write([]byte("pong"))
	})

	// =========================================================================
	// START SERVER
	// =========================================================================

	addr := ":" + port
	zl.Log(logger.LogEntry{
		Level:   "info",
		Message: "listening at " + addr,
		Service: "audio_translator",
	})

	if err := http.ListenAndServe(addr, r); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
