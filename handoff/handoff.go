// Package handoff defines the wire format carrying a finished itinerary
// from the builder to the preview: the full JSON document, percent-encoded,
// in a single query parameter.
package handoff

import (
	"encoding/json"
	"net/url"
	"strings"

	"github.com/Dhunu/vigovia/models"
)

// Param is the query parameter the preview reads.
const Param = "data"

// Encode serializes the itinerary and percent-encodes it for use as a
// query-parameter value.
func Encode(it models.Itinerary) (string, error) {
	data, err := json.Marshal(it)
	if err != nil {
		return "", err
	}
	return url.QueryEscape(string(data)), nil
}

// Decode reverses Encode.
func Decode(payload string) (models.Itinerary, error) {
	raw, err := url.QueryUnescape(payload)
	if err != nil {
		return models.Itinerary{}, err
	}
	return Parse([]byte(raw))
}

// Parse unmarshals a payload the router has already percent-decoded.
func Parse(data []byte) (models.Itinerary, error) {
	var it models.Itinerary
	if err := json.Unmarshal(data, &it); err != nil {
		return models.Itinerary{}, err
	}
	return it, nil
}

// PreviewURL builds the handoff target opened after finalize.
func PreviewURL(base string, it models.Itinerary) (string, error) {
	payload, err := Encode(it)
	if err != nil {
		return "", err
	}
	return strings.TrimRight(base, "/") + "/preview?" + Param + "=" + payload, nil
}
