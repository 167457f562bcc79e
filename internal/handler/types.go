package handler

import (
	"alltopia/internal/domain"
)

// societyRequest is the body of every endpoint that takes a characteristic set.
// Missing characteristics take the default value; an explicit null is rejected.
type societyRequest struct {
	Values map[string]*float64 `json:"values"`
	Locale string              `json:"locale"`
}

type scoreResponse struct {
	Average float64            `json:"average"`
	Label   domain.Label       `json:"label"`
	Values  map[string]float64 `json:"values"`
}

type characteristicInfo struct {
	Index       int    `json:"index"`
	Name        string `json:"name"`
	DisplayName string `json:"display_name"`
}

type characteristicsResponse struct {
	Characteristics []characteristicInfo `json:"characteristics"`
	Min             float64              `json:"min"`
	Max             float64              `json:"max"`
	Default         float64              `json:"default"`
	Locale          string               `json:"locale"`
}
