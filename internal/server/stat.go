package server

import (
	"stegno/pkg/model"

	"github.com/dustin/go-humanize"
)

type humanizedInjectStats struct {
	model.InjectStats
	InjectionHuman   string `json:"injection_human"`
	CarrierSizeHuman string `json:"carrier_size_human"`
}

type humanizedExtractStats struct {
	model.ExtractStats
	ExtractionHuman   string `json:"extraction_human"`
	CarrierSizeHuman  string `json:"carrier_size_human"`
	BytesScannedHuman string `json:"bytes_scanned_human"`
}

func toHumanizedInjectStats(injectStats model.InjectStats) humanizedInjectStats {
	return humanizedInjectStats{
		InjectStats:      injectStats,
		InjectionHuman:   injectStats.Injection.String(),
		CarrierSizeHuman: humanize.Bytes(uint64(injectStats.CarrierSize)),
	}
}

func toHumanizedExtractStats(extractStats model.ExtractStats) humanizedExtractStats {
	return humanizedExtractStats{
		ExtractStats:      extractStats,
		ExtractionHuman:   extractStats.Extraction.String(),
		CarrierSizeHuman:  humanize.Bytes(uint64(extractStats.CarrierSize)),
		BytesScannedHuman: humanize.Bytes(uint64(extractStats.BytesScanned)),
	}
}
