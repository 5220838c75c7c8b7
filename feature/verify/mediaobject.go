package verify

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrMultiplePIDs is returned when a media object carries several umd: identifiers.
	ErrMultiplePIDs = errors.New("media object has multiple pids")
	// ErrMultipleHandles is returned when a media object carries several handles.
	ErrMultipleHandles = errors.New("media object has multiple handles")
)

// MediaObject is a media object as indexed by the repository.
type MediaObject struct {
	ID     string `json:"id"`
	PID    string `json:"pid"`
	Handle string `json:"handle"`
	URL    string `json:"url"`
	Parts  int    `json:"parts"`
}

type solrDoc struct {
	ID       string   `json:"id"`
	Mods     []string `json:"mods_tesim"`
	Sections []string `json:"section_id_ssim"`
}

func newMediaObject(doc solrDoc, baseURL string) (MediaObject, error) {
	pid, err := single(doc.Mods, "umd:")
	if err != nil {
		return MediaObject{}, fmt.Errorf("%s: %w: %w", doc.ID, ErrMultiplePIDs, err)
	}
	handle, err := single(doc.Mods, "hdl:")
	if err != nil {
		return MediaObject{}, fmt.Errorf("%s: %w: %w", doc.ID, ErrMultipleHandles, err)
	}

	return MediaObject{
		ID:     doc.ID,
		PID:    pid,
		Handle: handle,
		URL:    baseURL + doc.ID,
		Parts:  len(doc.Sections),
	}, nil
}

// single returns the only value starting with prefix.
func single(values []string, prefix string) (string, error) {
	var found []string
	for _, v := range values {
		if strings.HasPrefix(v, prefix) {
			found = append(found, v)
		}
	}
	switch len(found) {
	case 0:
		return "", nil
	case 1:
		return found[0], nil
	default:
		return "", fmt.Errorf("%s", strings.Join(found, ", "))
	}
}
