package server

import (
	"net/http"
	"stegno/api"
	"stegno/pkg/carrier"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/gin-gonic/gin"
)

// CapacityHandler godoc
//
// @Summary Message capacity of a carrier
// @Description Returns how many message bytes fit into a carrier of the given size
// @Tags carrier
// @Produce json
// @Param carrier_size query int true "Carrier size in bytes"
// @Success 200 {object} api.CapacityResponse
// @Failure 400 {object} api.Error
// @Router /capacity [get]
func (s *Server) CapacityHandler(ctx *gin.Context) {
	carrierSize, err := strconv.Atoi(ctx.Query("carrier_size"))
	if err != nil || carrierSize < 0 {
		ctx.AbortWithStatusJSON(http.StatusBadRequest, errInvalidSize)
		return
	}

	capacity := carrier.Capacity(carrierSize)
	ctx.JSON(http.StatusOK, api.CapacityResponse{
		CarrierSize:   carrierSize,
		Capacity:      capacity,
		CapacityHuman: humanize.Bytes(uint64(capacity)),
	})
}
