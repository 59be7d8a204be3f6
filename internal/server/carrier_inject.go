package server

import (
	"errors"
	"net/http"
	"stegno/api"
	"stegno/internal/logging"
	"stegno/pkg/carrier"

	"github.com/gin-gonic/gin"
)

// InjectHandler godoc
//
// @Summary Inject a message into a carrier
// @Description Hides the message in the LSBs of the supplied carrier and returns the modified carrier
// @Tags carrier
// @Accept json
// @Produce json
// @Param requestBody body api.InjectRequest true "Carrier and message to hide in it"
// @Success 200 {object} api.InjectResponse
// @Failure 400 {object} api.Error
// @Failure 422 {object} api.Error
// @Router /inject [post]
func (s *Server) InjectHandler(ctx *gin.Context) {
	var requestBody api.InjectRequest

	logger := logging.BuildLoggerFromCtx(s.logger, ctx)
	logger.Debug("Processing inject request")

	if err := ctx.ShouldBindJSON(&requestBody); err != nil {
		logger.WithError(err).Error("Error decoding request body")
		ctx.AbortWithStatusJSON(http.StatusBadRequest, errRequestBodyDecode)
		return
	}

	encoder, err := carrier.NewEncoder(s.config)
	if err != nil {
		logger.WithError(err).Error("Error creating carrier encoder")
		ctx.AbortWithStatusJSON(http.StatusInternalServerError, errCodecSetup)
		return
	}

	injected, err := encoder.Inject(requestBody.Carrier, requestBody.Message)
	if err != nil {
		handleInjectError(ctx, logger, err)
		return
	}

	logger.With("stats", toHumanizedInjectStats(encoder.Stats())).Info("Message injection was successful")

	ctx.JSON(http.StatusOK, api.InjectResponse{Carrier: injected})
}

func handleInjectError(ctx *gin.Context, logger *logging.Logger, err error) {
	logger.WithError(err).Error("Error injecting message into carrier")
	if errors.Is(err, carrier.ErrCarrierNotBigEnough) {
		ctx.AbortWithStatusJSON(http.StatusUnprocessableEntity, api.Error{Code: "capacity_error", Error: err.Error()})
		return
	}
	ctx.AbortWithStatusJSON(http.StatusInternalServerError, errInject)
}
