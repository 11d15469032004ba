package res

import (
	"context"
	"encoding/base64"
	"io"
	"mime"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/gompdf/gomresume/pkg/errors"
)

// maxRemoteSize caps remote bodies; resumes are small.
const maxRemoteSize = 8 << 20

const acceptHeader = "application/yaml, text/yaml, text/plain;q=0.9, */*;q=0.5"

func (l *Loader) fetchRemote(ctx context.Context, loc string) (*Resource, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, loc, nil)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid URL %s", loc)
	}
	req.Header.Set("Accept", acceptHeader)

	resp, err := l.client.Do(req)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeNetwork, err, "failed to fetch %s", loc)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, errors.New(errors.ErrCodeFileNotFound, "%s: HTTP %s", loc, resp.Status)
	case resp.StatusCode != http.StatusOK:
		return nil, errors.New(errors.ErrCodeNetwork, "failed to fetch %s: HTTP %s", loc, resp.Status)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxRemoteSize+1))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeNetwork, err, "failed to read %s", loc)
	}
	if len(data) > maxRemoteSize {
		return nil, errors.New(errors.ErrCodeInvalidInput, "%s is larger than %d bytes", loc, maxRemoteSize)
	}

	mt := resp.Header.Get("Content-Type")
	if parsed, _, err := mime.ParseMediaType(mt); err == nil {
		mt = parsed
	}
	path := loc
	if u, err := url.Parse(loc); err == nil {
		path = u.Path
	}
	return &Resource{Source: loc, Kind: kindOf(mt, path), MediaType: mt, Data: data}, nil
}

// readLocal reads path, falling back to the search directories when the
// file does not exist.
func (l *Loader) readLocal(path string) (*Resource, error) {
	data, err := os.ReadFile(path)
	if err == nil {
		return fileResource(path, data), nil
	}
	if !os.IsNotExist(err) {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "failed to read %s", path)
	}

	base := filepath.Base(path)
	for _, dir := range l.dirs {
		candidate := filepath.Join(dir, base)
		if data, err := os.ReadFile(candidate); err == nil {
			return fileResource(candidate, data), nil
		}
	}
	return nil, errors.New(errors.ErrCodeFileNotFound, "file not found: %s", path)
}

func fileResource(path string, data []byte) *Resource {
	mt := mediaTypeOf(path)
	return &Resource{Source: path, Kind: kindOf(mt, path), MediaType: mt, Data: data}
}

// decodeDataURL decodes an RFC 2397 data URL, e.g.
//
//	data:application/yaml;base64,<base64>
//	data:text/yaml,personal:%0A%20%20name:%20Ada
func decodeDataURL(u string) (*Resource, error) {
	header, payload, ok := strings.Cut(strings.TrimPrefix(u, "data:"), ",")
	if !ok {
		return nil, errors.New(errors.ErrCodeInvalidInput, "invalid data URL")
	}

	params := strings.Split(header, ";")
	mt := params[0]
	if mt == "" {
		mt = "text/plain"
	}
	encoded := false
	for _, p := range params[1:] {
		encoded = encoded || strings.EqualFold(strings.TrimSpace(p), "base64")
	}

	var data []byte
	switch {
	case encoded:
		d, err := base64.StdEncoding.DecodeString(payload)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid base64 data URL")
		}
		data = d
	default:
		if d, err := url.PathUnescape(payload); err == nil {
			data = []byte(d)
		} else {
			data = []byte(payload)
		}
	}
	return &Resource{Source: u, Kind: kindOf(mt, ""), MediaType: mt, Data: data}, nil
}
