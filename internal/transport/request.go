package transport

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/amby-app/feedsync/pkg/errors"
)

// DecodeResponse decodes a JSON response into the target structure.
// A non-200 status is returned as an APIError carrying the body.
func DecodeResponse(resp *http.Response, source string, target any) error {
	defer resp.Body.Close() //nolint:errcheck // best-effort close on read path

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.WrapIO("read", "response body", err)
	}

	if resp.StatusCode != http.StatusOK {
		return errors.NewAPIError(source, resp.StatusCode, string(body))
	}

	if err := json.Unmarshal(body, target); err != nil {
		return errors.WrapParse("json", "response", err)
	}

	return nil
}
