package widget

import (
	"net/http"

	"newtab-feed/internal/handler/http/respond"
	widgetUC "newtab-feed/internal/usecase/widget"
)

type MovieHandler struct{ Svc *widgetUC.Service }

// ServeHTTP 映画推薦取得
// @Summary      映画推薦取得
// @Description  おすすめ映画と名台詞を返します。3時間キャッシュされます。
// @Tags         widgets
// @Produce      json
// @Param        force  query  bool  false  "キャッシュを無視して再取得"
// @Success      200 {object} entity.Movie "映画" headers(X-Data-Origin=string,X-Data-Fetched-At=string)
// @Failure      400 {string} string "Invalid query parameters"
// @Router       /api/movie [get]
func (h MovieHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	force, err := boolParam(r, "force")
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}
	res := h.Svc.Movie(r.Context(), force)
	writeResult(w, res.Origin, res.Provider, res.FetchedAt, res.Value)
}

type ProverbHandler struct{ Svc *widgetUC.Service }

// ServeHTTP 今日の名言取得
// @Summary      今日の名言取得
// @Description  今日の名言を返します。同じ日付の間は同じ名言です。force 指定時は別の名言を選びます。
// @Tags         widgets
// @Produce      json
// @Param        force  query  bool  false  "キャッシュを無視して再取得"
// @Success      200 {object} entity.Proverb "名言" headers(X-Data-Origin=string,X-Data-Fetched-At=string)
// @Failure      400 {string} string "Invalid query parameters"
// @Router       /api/proverb [get]
func (h ProverbHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	force, err := boolParam(r, "force")
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}
	res := h.Svc.Proverb(r.Context(), force)
	writeResult(w, res.Origin, res.Provider, res.FetchedAt, res.Value)
}
