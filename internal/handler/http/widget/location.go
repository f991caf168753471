package widget

import (
	"net/http"

	"newtab-feed/internal/handler/http/respond"
	widgetUC "newtab-feed/internal/usecase/widget"
)

type LocationHandler struct{ Svc *widgetUC.Service }

// ServeHTTP 現在地取得
// @Summary      現在地取得
// @Description  クライアントIPから都市と座標を推定します。取得できない場合は北京を返します。
// @Tags         widgets
// @Produce      json
// @Param        force  query  bool  false  "キャッシュを無視して再取得"
// @Success      200 {object} entity.Location "現在地" headers(X-Data-Origin=string,X-Data-Fetched-At=string)
// @Failure      400 {string} string "Invalid query parameters"
// @Router       /api/location [get]
func (h LocationHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	force, err := boolParam(r, "force")
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	res := h.Svc.Location(r.Context(), clientIP(r), force)
	writeResult(w, res.Origin, res.Provider, res.FetchedAt, res.Value)
}
