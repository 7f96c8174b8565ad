package client

import (
	"bufio"
	"bytes"
	"net/http"
	"net/http/httputil"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// debugTransport logs every request and response at debug level.
//
// When to use:
//   - Set RWGPS_DEBUG=true or DEBUG=true
//   - While investigating unexpected statuses or bodies
//
// Bodies are logged verbatim; the API key and auth token headers are
// redacted. Keep it off in production.
type debugTransport struct {
	base   http.RoundTripper
	logger zerolog.Logger
}

func (dt *debugTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	l := dt.logger.With().Str("request_id", uuid.NewString()).Str("method", req.Method).Str("url", req.URL.String()).Logger()

	if reqDump, err := httputil.DumpRequestOut(req, true); err == nil {
		l.Debug().Str("request_dump", redactCredentials(reqDump)).Msg("HTTP request")
	}

	resp, err := dt.base.RoundTrip(req)
	if err != nil {
		l.Error().Err(err).Msg("HTTP request failed")
		return nil, err
	}

	if respDump, err := httputil.DumpResponse(resp, true); err == nil {
		l.Debug().Int("status_code", resp.StatusCode).Str("response_dump", string(respDump)).Msg("HTTP response")
	}
	return resp, nil
}

// redactCredentials masks the values of the credential headers in a dump.
func redactCredentials(dump []byte) string {
	var out strings.Builder
	sc := bufio.NewScanner(bytes.NewReader(dump))
	sc.Buffer(make([]byte, 0, 64*1024), len(dump)+1)
	for sc.Scan() {
		line := sc.Text()
		name, _, ok := strings.Cut(line, ":")
		if ok && (strings.EqualFold(name, HeaderAPIKey) || strings.EqualFold(name, HeaderAuthToken)) {
			line = name + ": REDACTED"
		}
		out.WriteString(line)
		out.WriteByte('\n')
	}
	return out.String()
}

// debugLoggingRequested reports whether RWGPS_DEBUG or DEBUG is "true".
func debugLoggingRequested() bool {
	return os.Getenv("RWGPS_DEBUG") == "true" || os.Getenv("DEBUG") == "true"
}
