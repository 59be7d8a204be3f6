package server

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"stegno/api/stegno/InjectMessage"
	"stegno/pkg/carrier"

	flatbuffers "github.com/google/flatbuffers/go"
)

// handleInjectFlatbufferRequest is the binary counterpart of InjectHandler. Carriers travel as raw byte vectors,
// avoiding the base64 overhead of JSON.
func (s *Server) handleInjectFlatbufferRequest(w http.ResponseWriter, r *http.Request) {
	requestBody, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "error reading body", http.StatusInternalServerError)
		return
	}
	if len(requestBody) < flatbuffers.SizeUOffsetT {
		http.Error(w, "request body is not a flatbuffer", http.StatusBadRequest)
		return
	}

	carrierBytes, message, err := decodeInjectRequest(requestBody)
	if err != nil {
		s.logger.WithError(err).Error("Error decoding flatbuffer request")
		http.Error(w, "request body is not a valid flatbuffer inject request", http.StatusBadRequest)
		return
	}

	encoder, err := carrier.NewEncoder(s.config)
	if err != nil {
		http.Error(w, "error setting up carrier codec", http.StatusInternalServerError)
		return
	}

	injected, err := encoder.Inject(carrierBytes, message)
	if errors.Is(err, carrier.ErrCarrierNotBigEnough) {
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	} else if err != nil {
		http.Error(w, "error injecting message", http.StatusInternalServerError)
		return
	}
	s.logger.With("stats", toHumanizedInjectStats(encoder.Stats())).Info("Flatbuffer message injection was successful")

	fbResponseBuilder := flatbuffers.NewBuilder(len(carrierBytes) + 64)
	offset := fbResponseBuilder.CreateByteVector(injected)
	InjectMessage.InjectResponseStart(fbResponseBuilder)
	InjectMessage.InjectResponseAddCarrier(fbResponseBuilder, offset)
	response := InjectMessage.InjectResponseEnd(fbResponseBuilder)
	fbResponseBuilder.Finish(response)

	w.Header().Set("Content-Type", "application/octet-stream")
	if _, err = w.Write(fbResponseBuilder.FinishedBytes()); err != nil {
		s.logger.WithError(err).Error("Error writing flatbuffer response")
	}
}

// decodeInjectRequest reads the request fields. Offsets in a flatbuffer are not verified on access, so a malformed
// body panics with an out of range slice; that panic is turned into an error here.
func decodeInjectRequest(requestBody []byte) (carrierBytes []byte, message string, err error) {
	defer func() {
		if r := recover(); r != nil {
			carrierBytes, message, err = nil, "", fmt.Errorf("malformed flatbuffer: %v", r)
		}
	}()

	injectRequest := InjectMessage.GetRootAsInjectRequest(requestBody, 0)
	return injectRequest.CarrierBytes(), string(injectRequest.Message()), nil
}
