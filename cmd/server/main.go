// Command server runs the correction engine behind a small HTTP API:
// exact-match lookup, ranked suggestions, single and batch correction,
// hot reload, health, and stats, per SPEC_FULL.md's OUTER SURFACE.
package main

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"os"
	"strconv"
	"strings"

	"github.com/redis/go-redis/v9"

	"corrector/internal/admindict"
	"corrector/internal/corrector"
	"corrector/pkg/correrr"
	"corrector/pkg/guard"
)

func main() {
	redisAddr := getenv("REDIS_ADDR", "localhost:6379")
	redisPassword := os.Getenv("REDIS_PASSWORD")
	redisDB := getEnvInt("REDIS_DB", 0)

	client := redis.NewClient(&redis.Options{
		Addr:     redisAddr,
		Password: redisPassword,
		DB:       redisDB,
	})
	store := admindict.New(client, getenv("REDIS_ADMIN_KEY", ""))

	engine := corrector.New()
	engine.SetAdminSource(store)

	freqThreshold := getEnvFloat("FREQUENCY_THRESHOLD", 10)
	cfg := corrector.Config{
		DictionaryPath:     getenv("DICTIONARY_PATH", "dictionary.txt"),
		ProtectedPath:      os.Getenv("PROTECTED_PATH"),
		EditDistance:       getEnvInt("EDIT_DISTANCE", 1),
		FrequencyThreshold: &freqThreshold,
		SkipURLs:           getEnvBool("SKIP_URLS", true),
		SkipEmails:         getEnvBool("SKIP_EMAILS", true),
		SkipHostnames:      getEnvBool("SKIP_HOSTNAMES", false),
		SkipCodePatterns:   getEnvBool("SKIP_CODE_PATTERNS", false),
		SkipNumbers:        getEnvBool("SKIP_NUMBERS", true),
		CallerPatterns:     parsePatterns(os.Getenv("CALLER_PATTERNS")),
	}

	ctx := context.Background()
	if err := engine.Load(ctx, cfg); err != nil {
		log.Fatalf("server: initial load failed: %v", err)
	}
	log.Printf("server: loaded dictionary %s", cfg.DictionaryPath)

	mux := http.NewServeMux()
	registerRoutes(mux, engine, store)

	addr := getenv("HTTP_ADDR", ":8080")
	log.Printf("server: listening on %s", addr)
	log.Fatal(http.ListenAndServe(addr, mux))
}

func registerRoutes(mux *http.ServeMux, engine *corrector.Engine, store *admindict.Store) {
	mux.HandleFunc("/v1/healthz", func(w http.ResponseWriter, r *http.Request) {
		if err := engine.Healthcheck(); err != nil {
			writeError(w, http.StatusServiceUnavailable, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	mux.HandleFunc("/v1/stats", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, engine.Stats())
	})

	mux.HandleFunc("/v1/reload", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.NotFound(w, r)
			return
		}
		if err := engine.Reload(r.Context()); err != nil {
			writeError(w, statusFor(err), err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"status": "reloaded"})
	})

	mux.HandleFunc("/v1/contains", func(w http.ResponseWriter, r *http.Request) {
		word := r.URL.Query().Get("word")
		if word == "" {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "word is required"})
			return
		}
		ok, err := engine.CorrectExact(word)
		if err != nil {
			writeError(w, statusFor(err), err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]bool{"contains": ok})
	})

	mux.HandleFunc("/v1/suggest", func(w http.ResponseWriter, r *http.Request) {
		word := r.URL.Query().Get("word")
		max := queryInt(r, "max", 5)
		sugg, err := engine.Suggestions(word, max)
		if err != nil {
			writeError(w, statusFor(err), err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"suggestions": sugg})
	})

	mux.HandleFunc("/v1/correct", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.NotFound(w, r)
			return
		}
		var req struct {
			Word     string `json:"word"`
			UseGuard bool   `json:"use_guard"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
			return
		}
		got, err := engine.Correct(req.Word, req.UseGuard)
		if err != nil {
			writeError(w, statusFor(err), err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"corrected": got})
	})

	mux.HandleFunc("/v1/correct-batch", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.NotFound(w, r)
			return
		}
		var req struct {
			Tokens   []string `json:"tokens"`
			UseGuard bool     `json:"use_guard"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
			return
		}
		out, err := engine.CorrectTokens(req.Tokens, req.UseGuard)
		if err != nil {
			writeError(w, statusFor(err), err)
			return
		}
		writeJSON(w, http.StatusOK, map[string][]string{"tokens": out})
	})

	mux.HandleFunc("/v1/admin-word", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.NotFound(w, r)
			return
		}
		var req struct {
			Word string `json:"word"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Word == "" {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "word is required"})
			return
		}
		if err := store.Add(r.Context(), req.Word); err != nil {
			writeError(w, http.StatusInternalServerError, err)
			return
		}
		writeJSON(w, http.StatusCreated, map[string]string{"status": "ok"})
	})

	mux.HandleFunc("/v1/admin-word/", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete {
			http.NotFound(w, r)
			return
		}
		word := strings.TrimPrefix(r.URL.Path, "/v1/admin-word/")
		if word == "" {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "word is required"})
			return
		}
		if err := store.Remove(r.Context(), word); err != nil {
			writeError(w, http.StatusInternalServerError, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
}

func statusFor(err error) int {
	if correrr.Is(err, correrr.NotLoaded) {
		return http.StatusServiceUnavailable
	}
	if correrr.Is(err, correrr.InvalidArgument) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{"error": err.Error()})
}

func queryInt(r *http.Request, key string, def int) int {
	v := r.URL.Query().Get(key)
	if v == "" {
		return def
	}
	if i, err := strconv.Atoi(v); err == nil {
		return i
	}
	return def
}

// parsePatterns builds caller patterns from a ";"-separated env var of raw
// regex sources. Richer per-pattern flags are a Go-API-only concern (spec
// §6.3); the env surface only covers the common case-sensitive default.
func parsePatterns(raw string) []guard.PatternSpec {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ";")
	out := make([]guard.PatternSpec, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		out = append(out, guard.PatternSpec{Source: p})
	}
	return out
}

func getenv(key, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}

func getEnvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	if i, err := strconv.Atoi(v); err == nil {
		return i
	}
	return def
}

func getEnvFloat(key string, def float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	if f, err := strconv.ParseFloat(v, 64); err == nil {
		return f
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	if b, err := strconv.ParseBool(v); err == nil {
		return b
	}
	return def
}
