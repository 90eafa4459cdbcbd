package cmd

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/ADAning/animal-well-flute-sub000/constants"
	"github.com/ADAning/animal-well-flute-sub000/convert"
	"github.com/ADAning/animal-well-flute-sub000/model"
	"github.com/ADAning/animal-well-flute-sub000/parser"
	"github.com/ADAning/animal-well-flute-sub000/song"
	"github.com/bep/debounce"
	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var serveAddr string

var (
	serveManager    *song.Manager
	serveConverter  *convert.Converter
	reloadDebounced func(f func())
)

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&serveAddr, "addr", ":8080", "listen address")
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves the song library over HTTP",
	Long:  `Serves the song library over HTTP`,
	Run: func(cmd *cobra.Command, args []string) {
		serve()
	},
}

// LoadServeState initializes the shared server state. Split out so e2e
// tests can call it directly.
func LoadServeState() {
	serveManager = song.NewManager(constants.GetSongsDir())
	serveConverter = convert.New()
	reloadDebounced = debounce.New(500 * time.Millisecond)
}

func NewRouter() *mux.Router {
	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/songs", HandleListSongs).Methods("GET")
	router.HandleFunc("/songs/{name}", HandleGetSong).Methods("GET")
	router.HandleFunc("/songs/{name}/suggestions", HandleSuggestions).Methods("GET")
	router.HandleFunc("/convert", HandleConvert).Methods("POST")
	router.HandleFunc("/reload", HandleReload).Methods("POST")
	return router
}

func serve() {
	LoadServeState()
	handler := cors.Default().Handler(NewRouter())
	logrus.Infof("listening on %v", serveAddr)
	log.Fatal(http.ListenAndServe(serveAddr, handler))
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, model.ErrorResponse{Error: err.Error()})
}

func HandleListSongs(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, serveManager.ListInfo())
}

func HandleGetSong(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]
	s, err := serveManager.Get(name)
	if err != nil {
		writeError(w, http.StatusNotFound, err)
		return
	}

	jianpu := make([]string, 0, len(s.Jianpu))
	for _, bar := range s.Jianpu {
		jianpu = append(jianpu, song.BarToString(bar))
	}
	writeJSON(w, http.StatusOK, model.SongDetail{
		Name:        s.Name,
		Description: s.Description,
		BPM:         s.BPM,
		Offset:      s.Offset,
		Jianpu:      jianpu,
	})
}

func HandleSuggestions(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]
	s, err := serveManager.Get(name)
	if err != nil {
		writeError(w, http.StatusNotFound, err)
		return
	}

	parsed, err := parser.New(nil).Parse(s.Jianpu)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, http.StatusOK, serveConverter.GetPreview(parsed))
}

func HandleConvert(w http.ResponseWriter, r *http.Request) {
	var input model.ConvertRequestBody
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	s, err := serveManager.Get(input.Song)
	if err != nil {
		writeError(w, http.StatusNotFound, err)
		return
	}

	parsed, err := parser.New(nil).Parse(s.Jianpu)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	bars, used, err := serveConverter.Convert(parsed, convert.Options{
		Strategy:     input.Strategy,
		ManualOffset: input.ManualOffset,
		Preference:   input.Preference,
	})
	if err != nil {
		var parseErr *parser.ParseError
		status := http.StatusUnprocessableEntity
		if errors.As(err, &parseErr) {
			status = http.StatusBadRequest
		}
		writeError(w, status, err)
		return
	}

	writeJSON(w, http.StatusOK, model.ConvertResponse{Strategy: string(used), Bars: bars})
}

func HandleReload(w http.ResponseWriter, r *http.Request) {
	reloadDebounced(func() {
		serveManager.Reload()
		logrus.Info("song library reloaded")
	})
	w.WriteHeader(http.StatusAccepted)
}
