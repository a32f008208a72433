// Copyright 2025 The x12d Authors
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package engine

import (
	"net/http"
	"time"

	"github.com/goccy/go-json"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/x12d/x12d/common"
)

func (e *Engine) setupRoutes() {
	if e.svr == nil {
		return
	}

	e.svr.RegisterGetRoute("/metrics", func(w http.ResponseWriter, r *http.Request) {
		promhttp.Handler().ServeHTTP(w, r)
	})

	e.svr.RegisterGetRoute("/healthz", e.handleHealthz)
	e.svr.RegisterPostRoute("/v1/validate", e.handleValidate)
}

func (e *Engine) handleHealthz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"status":  "ok",
		"version": common.Version,
		"uptime":  time.Now().Unix() - common.Started(),
	})
}

// handleValidate accepts a raw X12 document as the request body and
// returns the validation Report as JSON. The request's Content-Length,
// if present, is purely informational: the document is streamed through
// the driver exactly as any other byte source would be.
func (e *Engine) handleValidate(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	source := r.URL.Query().Get("source")
	if source == "" {
		source = "http"
	}

	report, err := e.Validate(r.Context(), source, r.Body)
	if err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]any{"error": err.Error()})
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(report)
}
