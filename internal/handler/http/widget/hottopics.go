package widget

import (
	"net/http"

	"newtab-feed/internal/handler/http/respond"
	widgetUC "newtab-feed/internal/usecase/widget"
)

type HotTopicsHandler struct{ Svc *widgetUC.Service }

// ServeHTTP 話題ランキング取得
// @Summary      話題ランキング取得
// @Description  zhihu / weibo / toutiao / hackernews の上位5件をまとめて返します。取得に失敗したソースは予備データになります。
// @Tags         widgets
// @Produce      json
// @Param        force  query  bool  false  "キャッシュを無視して再取得"
// @Success      200 {object} entity.HotTopics "ソース別ランキング" headers(X-Data-Origin=string,X-Data-Fetched-At=string)
// @Failure      400 {string} string "Invalid query parameters"
// @Router       /api/hot-topics [get]
func (h HotTopicsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	force, err := boolParam(r, "force")
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}
	res := h.Svc.HotTopics(r.Context(), force)
	writeResult(w, res.Origin, res.Provider, res.FetchedAt, res.Value)
}
