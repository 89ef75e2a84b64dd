package http

import (
	"log/slog"
	"net/http"

	"github.com/dungnt9/hrm-ApiGateway/internal/domain/orgchart"
	"github.com/dungnt9/hrm-ApiGateway/internal/handler/http/response"
)

type OrgChartHandler interface {
	Get(w http.ResponseWriter, r *http.Request)
}

type OrgChartHandlerImpl struct {
	orgChartService orgchart.Service
}

func NewOrgChartHandler(orgChartService orgchart.Service) OrgChartHandler {
	return &OrgChartHandlerImpl{orgChartService: orgChartService}
}

// Get implements OrgChartHandler. rootId empty means the top of the
// hierarchy; depth falls back to the service default.
func (o *OrgChartHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	rootID := r.URL.Query().Get("rootId")
	depth := queryInt(r, "depth", 0)

	chart, err := o.orgChartService.GetOrgChart(r.Context(), rootID, depth)
	if err != nil {
		slog.Error("GetOrgChart service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, chart)
}
