// Package toml reads layout overlay files. An overlay uses the same keys as
// the document's config sub-document and is applied on top of it.
package toml

import (
	"github.com/BurntSushi/toml"

	"github.com/gompdf/gomresume/internal/config"
	"github.com/gompdf/gomresume/pkg/errors"
)

// Overlay is a decoded overlay file.
type Overlay struct {
	Overrides config.Overrides
	// Unknown lists keys that matched no layout setting, e.g. "fonts.colour".
	Unknown []string
}

// Parse decodes overlay data.
func Parse(data []byte) (Overlay, error) {
	var ov Overlay
	md, err := toml.Decode(string(data), &ov.Overrides)
	if err != nil {
		return Overlay{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "invalid config file")
	}
	for _, key := range md.Undecoded() {
		ov.Unknown = append(ov.Unknown, key.String())
	}
	return ov, nil
}
