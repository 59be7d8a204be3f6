package model

import (
	"time"
)

type InjectStats struct {
	Injection   time.Duration `json:"injection"`
	CarrierSize int           `json:"carrier_size"`
	BitsWritten int           `json:"bits_written"`
}

type ExtractStats struct {
	Extraction   time.Duration `json:"extraction"`
	CarrierSize  int           `json:"carrier_size"`
	BytesScanned int           `json:"bytes_scanned"`
}
