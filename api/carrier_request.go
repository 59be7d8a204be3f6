package api

type InjectRequest struct {
	Carrier []byte `json:"carrier" binding:"required"`
	Message string `json:"message"`
}

type InjectResponse struct {
	Carrier []byte `json:"carrier"`
}

type ExtractRequest struct {
	Carrier []byte `json:"carrier" binding:"required"`
}

type ExtractResponse struct {
	Message string `json:"message"`
}

type CapacityResponse struct {
	CarrierSize   int    `json:"carrier_size"`
	Capacity      int    `json:"capacity"`
	CapacityHuman string `json:"capacity_human"`
}
