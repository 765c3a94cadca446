package models

import (
	"encoding/base64"

	"github.com/rohanthewiz/serr"
	"github.com/vmihailenco/msgpack/v5"
)

// The web host keeps no widget state on the server. Each rendered widget
// carries its FilterState as a token, and the browser posts it back with
// every event.
//
// Encoding pipeline: FilterState -> msgpack bytes -> URL-safe Base64 string

// EncodeStateToken packs the state into a token safe for HTML attributes
// and form values.
func EncodeStateToken(s FilterState) (string, error) {
	msgpackBytes, err := msgpack.Marshal(&s)
	if err != nil {
		return "", serr.Wrap(err, "failed to msgpack encode filter state")
	}

	return base64.RawURLEncoding.EncodeToString(msgpackBytes), nil
}

// DecodeStateToken reverses EncodeStateToken.
// An empty token yields the default state of a freshly mounted widget.
func DecodeStateToken(token string) (FilterState, error) {
	if token == "" {
		return NewFilterState(), nil
	}

	msgpackBytes, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return FilterState{}, serr.Wrap(err, "failed to decode base64 state token")
	}

	var s FilterState
	if err := msgpack.Unmarshal(msgpackBytes, &s); err != nil {
		return FilterState{}, serr.Wrap(err, "failed to unmarshal msgpack state token")
	}

	if s.SelectedIndex < 0 {
		return FilterState{}, serr.New("state token has a negative selected index")
	}

	return s, nil
}
