package rest

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/yumyai/getseq/logger"
)

func TestMain(m *testing.M) {
	if err := logger.InitLogger(zapcore.ErrorLevel); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

func TestGenomes(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/info/species", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Accept"))

		w.Write([]byte(`{"species":[{"name":"homo_sapiens","display_name":"Human","division":"EnsemblVertebrates"}]}`))
	}))
	defer ts.Close()

	genomes, err := NewClient(ts.URL, 100).Genomes()
	require.NoError(t, err)
	assert.Equal(t, []Genome{{Name: "homo_sapiens", DisplayName: "Human"}}, genomes)
}

func TestAssemblyVersionsVerbatimOrder(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/info/assembly/homo_sapiens", r.URL.Path)

		w.Write([]byte(`{"coord_system_versions":["GRCh38","GRCh37","NCBI36"]}`))
	}))
	defer ts.Close()

	versions, err := NewClient(ts.URL, 100).AssemblyVersions("homo_sapiens")
	require.NoError(t, err)
	assert.Equal(t, []string{"GRCh38", "GRCh37", "NCBI36"}, versions)
}

func TestSequencesPost(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/sequence/region/human", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, "application/json", r.Header.Get("Accept"))

		q := r.URL.Query()
		assert.Equal(t, "GRCh38", q.Get("coord_system_version"))
		assert.Equal(t, "10", q.Get("expand_5prime"))
		assert.Equal(t, "20", q.Get("expand_3prime"))

		var body struct {
			Regions []string `json:"regions"`
		}
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, []string{"1:1000..2000", "MT:50..100"}, body.Regions)

		w.Write([]byte(`[{"id":"chromosome:GRCh38:1:1000:2000:1","seq":"ACGT"},{"id":"chromosome:GRCh38:MT:50:100:1","seq":"TTGA"}]`))
	}))
	defer ts.Close()

	records, err := NewClient(ts.URL, 100).Sequences("human", "GRCh38", []string{"1:1000..2000", "MT:50..100"}, 10, 20)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, SequenceRecord{ID: "chromosome:GRCh38:1:1000:2000:1", Seq: "ACGT"}, records[0])
}

func TestHTTPErrorCarriesStatusAndBody(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "something exploded upstream", http.StatusInternalServerError)
	}))
	defer ts.Close()

	_, err := NewClient(ts.URL, 100).Genomes()

	var herr *HTTPError
	require.ErrorAs(t, err, &herr)
	assert.Equal(t, http.StatusInternalServerError, herr.StatusCode)
	assert.Contains(t, herr.Body, "something exploded upstream")
}

func TestDecodeErrorOnBadJSON(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>this is not JSON</html>"))
	}))
	defer ts.Close()

	_, err := NewClient(ts.URL, 100).Genomes()

	var derr *DecodeError
	require.ErrorAs(t, err, &derr)
}

func TestNewClientDefaults(t *testing.T) {
	c := NewClient("", 0)
	assert.Equal(t, DefaultServer, c.Server)
	assert.Equal(t, DefaultReqsPerSec, c.throttle.ceiling)
}
