// Client for the Ensembl REST API. This is the only place that talks to
// the network; everything above it works with decoded values.

package rest

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/yumyai/getseq/logger"
)

// DefaultServer is the public Ensembl REST root.
const DefaultServer = "https://rest.ensembl.org"

// HTTPError is a non-2xx reply from the server. There is no retry: the
// caller aborts the current operation.
type HTTPError struct {
	StatusCode int
	Body       string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("server returned HTTP %d: %s", e.StatusCode, e.Body)
}

// DecodeError is a 2xx reply whose body could not be parsed as JSON.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("undecodable JSON reply: %v", e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// Genome is one entry of the /info/species catalog.
type Genome struct {
	Name        string `json:"name"`
	DisplayName string `json:"display_name"`
}

// SequenceRecord is the sequence returned for one requested region.
type SequenceRecord struct {
	ID  string `json:"id"`
	Seq string `json:"seq"`
}

type speciesReply struct {
	Species []Genome `json:"species"`
}

type assemblyReply struct {
	CoordSystemVersions []string `json:"coord_system_versions"`
}

// Client talks to an Ensembl-compatible REST server. Each client owns its
// throttle; to share one rate budget, share the client instance.
type Client struct {
	Server string

	httpc    *http.Client
	throttle *Throttle
}

// NewClient builds a client for server (DefaultServer when empty),
// throttled to reqsPerSec requests per second.
func NewClient(server string, reqsPerSec int) *Client {
	if server == "" {
		server = DefaultServer
	}
	return &Client{
		Server:   server,
		httpc:    http.DefaultClient,
		throttle: NewThrottle(reqsPerSec),
	}
}

// request performs one throttled call against endpoint and decodes the
// JSON reply into out. A nil body means GET; otherwise the body is
// JSON-encoded and sent as a POST.
func (c *Client) request(endpoint string, params url.Values, body any, out any) error {

	u := c.Server + endpoint
	if len(params) > 0 {
		u += "?" + params.Encode()
	}

	var req *http.Request
	var err error

	if body != nil {
		payload, merr := json.Marshal(body)
		if merr != nil {
			return merr
		}
		req, err = http.NewRequest(http.MethodPost, u, bytes.NewReader(payload))
		if err != nil {
			return err
		}
		req.Header.Set("Content-Type", "application/json")
	} else {
		req, err = http.NewRequest(http.MethodGet, u, nil)
		if err != nil {
			return err
		}
	}
	req.Header.Set("Accept", "application/json")

	c.throttle.Wait()

	logger.Debug("REST request",
		zap.String("request_id", "req-"+uuid.New().String()),
		zap.String("method", req.Method),
		zap.String("url", u))

	resp, err := c.httpc.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &HTTPError{StatusCode: resp.StatusCode, Body: string(raw)}
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return &DecodeError{Err: err}
	}

	return nil
}

// Genomes lists every genome known to the server, in server order.
func (c *Client) Genomes() ([]Genome, error) {
	var reply speciesReply
	if err := c.request("/info/species", nil, nil, &reply); err != nil {
		return nil, err
	}
	return reply.Species, nil
}

// AssemblyVersions lists the coordinate system versions available for one
// species, in server order.
func (c *Client) AssemblyVersions(species string) ([]string, error) {
	var reply assemblyReply
	if err := c.request("/info/assembly/"+species, nil, nil, &reply); err != nil {
		return nil, err
	}
	return reply.CoordSystemVersions, nil
}

// Sequences fetches the DNA sequences for up to 50 canonical region
// strings, each extended by upstream bp on the 5' end and downstream bp on
// the 3' end.
func (c *Client) Sequences(species, assembly string, regions []string, upstream, downstream int) ([]SequenceRecord, error) {

	params := url.Values{}
	params.Set("coord_system_version", assembly)
	params.Set("expand_5prime", strconv.Itoa(upstream))
	params.Set("expand_3prime", strconv.Itoa(downstream))

	body := map[string][]string{"regions": regions}

	var records []SequenceRecord
	if err := c.request("/sequence/region/"+species, params, body, &records); err != nil {
		return nil, err
	}

	return records, nil
}
