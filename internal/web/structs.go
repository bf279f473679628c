package web

import "github.com/goserg/vegasgolf/internal/service"

type holeResponse struct {
	Result  service.HoleDocument  `json:"result"`
	Round   service.RoundDocument `json:"round"`
	Summary string                `json:"summary,omitempty"`
}

type errorResponse struct {
	Errors []string `json:"errors"`
}
