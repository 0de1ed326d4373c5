package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/Aleph-Alpha/std/v1/avro"
	"github.com/Aleph-Alpha/std/v1/logger"
	"github.com/Aleph-Alpha/std/v1/schema_registry"
)

type handler struct {
	service *schema_registry.Service
	log     logger.Logger
}

type schemaRequest struct {
	Schema     string `json:"schema"`
	SchemaType string `json:"schemaType"`
}

// writeError maps a schema_invalid error to 422 (the schema itself is
// malformed) and any other error to 500. schema_registry.Service.RegisterSchema
// reports an incompatible-but-well-formed schema as a plain error, so
// registerSchema answers it with 500 (not Confluent's 409);
// checkCompatibility reports incompatibility as a normal 200 response with
// is_compatible false.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	if _, ok := err.(*avro.SchemaInvalidError); ok {
		status = http.StatusUnprocessableEntity
	}
	w.Header().Set("Content-Type", "application/vnd.schemaregistry.v1+json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"message": err.Error()})
}

func (h *handler) registerSchema(w http.ResponseWriter, r *http.Request) {
	subject := mux.Vars(r)["subject"]

	var req schemaRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, &avro.SchemaInvalidError{Message: "malformed request body"})
		return
	}

	id, err := h.service.RegisterSchema(subject, req.Schema, req.SchemaType)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/vnd.schemaregistry.v1+json")
	json.NewEncoder(w).Encode(map[string]int{"id": id})
}

func (h *handler) checkCompatibility(w http.ResponseWriter, r *http.Request) {
	subject := mux.Vars(r)["subject"]

	var req schemaRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, &avro.SchemaInvalidError{Message: "malformed request body"})
		return
	}

	compatible, err := h.service.CheckCompatibility(subject, req.Schema, req.SchemaType)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/vnd.schemaregistry.v1+json")
	json.NewEncoder(w).Encode(map[string]bool{"is_compatible": compatible})
}

func (h *handler) getSchemaByID(w http.ResponseWriter, r *http.Request) {
	idStr := mux.Vars(r)["id"]
	id, err := strconv.Atoi(idStr)
	if err != nil {
		writeError(w, &avro.SchemaInvalidError{Message: "schema id must be an integer"})
		return
	}

	schema, err := h.service.GetSchemaByID(id)
	if err != nil {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/vnd.schemaregistry.v1+json")
	json.NewEncoder(w).Encode(map[string]string{"schema": schema})
}

func (h *handler) getLatestSchema(w http.ResponseWriter, r *http.Request) {
	subject := mux.Vars(r)["subject"]

	metadata, err := h.service.GetLatestSchema(subject)
	if err != nil {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/vnd.schemaregistry.v1+json")
	json.NewEncoder(w).Encode(metadata)
}
