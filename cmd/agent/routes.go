package main

import (
	"encoding/json"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tacktile/interview-agent/internal/archive"
	"github.com/tacktile/interview-agent/internal/evaluation"
	"github.com/tacktile/interview-agent/internal/session"
)

type deps struct {
	store        *evaluation.Store
	archiveStore *archive.Store
	orch         *session.Orchestrator
}

// registerRoutes wires all HTTP endpoints to the shared mux.
func registerRoutes(mux *http.ServeMux, d deps) {
	mux.HandleFunc("/health", handleHealth)
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("GET /api/status", d.handleStatus)
	mux.HandleFunc("GET /api/evaluations", d.handleEvaluations)
	mux.HandleFunc("GET /api/evaluations/{name}", d.handleEvaluation)
	mux.HandleFunc("GET /api/sessions/{id}", d.handleSession)
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}

func (d deps) handleStatus(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"state": d.orch.State().String()})
}

func (d deps) handleEvaluations(w http.ResponseWriter, r *http.Request) {
	names, err := d.store.List()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{"evaluations": names, "total": len(names)})
}

func (d deps) handleEvaluation(w http.ResponseWriter, r *http.Request) {
	result, err := d.store.Load(r.PathValue("name"))
	if err != nil {
		http.Error(w, "not found", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}

func (d deps) handleSession(w http.ResponseWriter, r *http.Request) {
	if d.archiveStore == nil {
		http.Error(w, "archive disabled", http.StatusNotFound)
		return
	}
	sess, utterances, err := d.archiveStore.GetSession(r.PathValue("id"))
	if err != nil {
		http.Error(w, "not found", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{"session": sess, "utterances": utterances})
}
