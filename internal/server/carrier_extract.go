package server

import (
	"errors"
	"net/http"
	"stegno/api"
	"stegno/internal/logging"
	"stegno/pkg/carrier"

	"github.com/gin-gonic/gin"
)

var (
	errExtract = api.Error{Code: "extract_error", Error: "error while extracting message from carrier"}
)

// ExtractHandler godoc
//
// @Summary Extract a message from a carrier
// @Description Recovers the message hidden in the LSBs of the supplied carrier
// @Tags carrier
// @Accept json
// @Produce json
// @Param requestBody body api.ExtractRequest true "Carrier holding a hidden message"
// @Success 200 {object} api.ExtractResponse
// @Failure 400 {object} api.Error
// @Failure 422 {object} api.Error
// @Router /extract [post]
func (s *Server) ExtractHandler(ctx *gin.Context) {
	var requestBody api.ExtractRequest

	logger := logging.BuildLoggerFromCtx(s.logger, ctx)
	logger.Debug("Processing extract request")

	if err := ctx.ShouldBindJSON(&requestBody); err != nil {
		logger.WithError(err).Error("Error decoding request body")
		ctx.AbortWithStatusJSON(http.StatusBadRequest, errRequestBodyDecode)
		return
	}

	decoder, err := carrier.NewDecoder(s.config)
	if err != nil {
		logger.WithError(err).Error("Error creating carrier decoder")
		ctx.AbortWithStatusJSON(http.StatusInternalServerError, errCodecSetup)
		return
	}

	message, err := decoder.Extract(requestBody.Carrier)
	if err != nil {
		handleExtractError(ctx, logger, err)
		return
	}

	logger.With("stats", toHumanizedExtractStats(decoder.Stats())).Info("Message extraction was successful")

	ctx.JSON(http.StatusOK, api.ExtractResponse{Message: message})
}

func handleExtractError(ctx *gin.Context, logger *logging.Logger, err error) {
	logger.WithError(err).Error("Error extracting message from carrier")
	var decodeErr *carrier.DecodeError
	if errors.As(err, &decodeErr) {
		ctx.AbortWithStatusJSON(http.StatusUnprocessableEntity, api.Error{Code: "decode_error", Error: err.Error()})
		return
	}
	ctx.AbortWithStatusJSON(http.StatusInternalServerError, errExtract)
}
