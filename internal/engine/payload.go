package engine

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Payload is the navigation context carried by every button. It is the
// entire per-user state: the engine keeps nothing between turns, so each
// button must carry what its screen needs to be reconstructed.
type Payload struct {
	Cmd   Command `json:"cmd"`
	Depth int     `json:"depth"`
	Data  Data    `json:"data,omitzero"`
}

// Data holds the optional continuation fields. Absent numeric fields decode
// to 0 and absent filters to "no filter"; the FAQ id is a pointer because
// index 0 is a valid question and must be distinguishable from "not set".
type Data struct {
	Page      int    `json:"page,omitempty"`
	Value     string `json:"value,omitempty"`
	Title     string `json:"title,omitempty"`
	Direction string `json:"direction,omitempty"`
	Duration  string `json:"duration,omitempty"`
	ID        *int   `json:"id,omitempty"`
}

// Filter returns the listing filter this context describes.
func (d Data) Filter() FilterContext {
	return FilterContext{Direction: d.Direction, Duration: d.Duration}
}

// FilterContext is the active listing filter, threaded together with depth
// through every listing transition so paging and "back" can rebuild the
// exact same view.
type FilterContext struct {
	Direction string
	Duration  string
}

func (f FilterContext) data(page int) Data {
	return Data{Page: page, Direction: f.Direction, Duration: f.Duration}
}

var errEmptyCommand = errors.New("payload has no command")

// DecodePayload parses the JSON a button carried. Callers treat any error
// as "no payload"; missing fields fall back to their zero values.
func DecodePayload(raw string) (Payload, error) {
	var p Payload
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		return Payload{}, fmt.Errorf("decoding payload: %w", err)
	}
	if p.Cmd == "" {
		return Payload{}, errEmptyCommand
	}
	return p, nil
}

func (p Payload) encode() string {
	data, err := json.Marshal(p)
	if err != nil {
		// Payload contains only plain strings and ints.
		panic(fmt.Sprintf("encoding payload: %v", err))
	}
	return string(data)
}
