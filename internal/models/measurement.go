package models

import "time"

// Measurement is one raw signal-quality sample before aggregation.
type Measurement struct {
	ID int64 `json:"id" db:"id"`

	Geohash  string `json:"geohash" db:"geohash"`
	District string `json:"district" db:"district"` // kecamatan-level administrative label
	Carrier  string `json:"carrier" db:"carrier"`

	Latitude  float64 `json:"latitude" db:"latitude"`
	Longitude float64 `json:"longitude" db:"longitude"`

	RSRP       float64 `json:"rsrp" db:"rsrp"`             // dBm
	Population float64 `json:"population" db:"population"` // people covered at the sample location

	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
