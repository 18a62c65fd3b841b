package cmd

import (
	"encoding/json"
	"log"
	"net/http"
	"path/filepath"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"github.com/spf13/cobra"

	"github.com/jsphweid/cadence/constants"
	"github.com/jsphweid/cadence/db"
	"github.com/jsphweid/cadence/model"
)

func init() {
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves the render endpoints over HTTP",
	Long:  `Serves the render endpoints over HTTP`,
	Run: func(cmd *cobra.Command, args []string) {
		serve()
	},
}

func readPath(w http.ResponseWriter, r *http.Request) (string, bool) {
	var input model.RenderRequestBody
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return "", false
	}
	if input.Path == "" {
		http.Error(w, "Request body needs a path", http.StatusBadRequest)
		return "", false
	}
	return input.Path, true
}

func writeError(w http.ResponseWriter, status int, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(model.ErrorResponse{Error: err.Error(), Success: false})
}

func HandleParse(w http.ResponseWriter, r *http.Request) {
	path, ok := readPath(w, r)
	if !ok {
		return
	}
	doc, err := ParseDocument(path)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	json.NewEncoder(w).Encode(doc)
}

func HandleGameNotes(w http.ResponseWriter, r *http.Request) {
	path, ok := readPath(w, r)
	if !ok {
		return
	}
	doc, err := GameDocument(path)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	doc.Metadata = maybeEnrichMetadata(path, doc.Metadata)
	json.NewEncoder(w).Encode(doc)
}

func HandleSheetMusic(w http.ResponseWriter, r *http.Request) {
	path, ok := readPath(w, r)
	if !ok {
		return
	}
	doc, err := NotationDocument(path)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	doc.Metadata = maybeEnrichMetadata(path, doc.Metadata)
	json.NewEncoder(w).Encode(doc)
}

// maybeEnrichMetadata overlays curated metadata from the configured
// table, when there is one. The score's own metadata stays otherwise.
func maybeEnrichMetadata(path string, meta model.Metadata) model.Metadata {
	if constants.GetMetadataTable() == "" {
		return meta
	}
	filename := filepath.Base(path)
	if m, ok := db.GetScoreMetadatas([]string{filename})[filename]; ok {
		return m
	}
	return meta
}

func serve() {
	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/parse", HandleParse).Methods("POST")
	router.HandleFunc("/game-notes", HandleGameNotes).Methods("POST")
	router.HandleFunc("/sheet-music", HandleSheetMusic).Methods("POST")

	handler := cors.Default().Handler(router)
	log.Fatal(http.ListenAndServe(constants.GetServeAddr(), handler))
}
