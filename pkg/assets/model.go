package assets

import "time"

type Asset struct {
	ID              int64     `json:"id"`
	Name            string    `json:"name"`
	Type            string    `json:"type"`
	Tag             string    `json:"tag"`
	SerialNumber    string    `json:"serial_number"`
	Cost            string    `json:"cost"`
	AcquisitionDate string    `json:"acquisition_date"`
	CreatedAt       time.Time `json:"created_at"`
}

// AssetInput carries the writable fields of an asset. The ID is always
// server-assigned and never accepted from callers.
type AssetInput struct {
	Name            string `json:"name"`
	Type            string `json:"type"`
	Tag             string `json:"tag"`
	SerialNumber    string `json:"serial_number"`
	Cost            string `json:"cost"`
	AcquisitionDate string `json:"acquisition_date"`
}

// AssetPatch is a partial update. A nil field means "leave unchanged".
type AssetPatch struct {
	Name            *string `json:"name"`
	Type            *string `json:"type"`
	Tag             *string `json:"tag"`
	SerialNumber    *string `json:"serial_number"`
	Cost            *string `json:"cost"`
	AcquisitionDate *string `json:"acquisition_date"`
}
