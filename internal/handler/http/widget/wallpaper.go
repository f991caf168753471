package widget

import (
	"errors"
	"net/http"

	"newtab-feed/internal/domain/entity"
	"newtab-feed/internal/handler/http/respond"
	widgetUC "newtab-feed/internal/usecase/widget"
)

type WallpaperHandler struct{ Svc *widgetUC.Service }

// ServeHTTP 壁紙取得
// @Summary      壁紙取得
// @Description  指定ソースの壁紙URLを返します。bing は1日キャッシュされ、unsplash / picsum は毎回新しいURLです。
// @Tags         widgets
// @Produce      json
// @Param        source    query  string  false  "unsplash | picsum | bing" default(unsplash)
// @Param        category  query  string  false  "unsplash のカテゴリ" default(nature)
// @Param        force     query  bool    false  "キャッシュを無視して再取得"
// @Success      200 {object} entity.Wallpaper "壁紙" headers(X-Data-Origin=string,X-Data-Fetched-At=string)
// @Failure      400 {string} string "Unknown source or invalid query parameters"
// @Router       /api/wallpaper [get]
func (h WallpaperHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	force, err := boolParam(r, "force")
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	q := r.URL.Query()
	res, err := h.Svc.Wallpaper(r.Context(), q.Get("source"), q.Get("category"), force)
	if err != nil {
		code := http.StatusInternalServerError
		if errors.Is(err, entity.ErrUnknownWallpaperSource) {
			code = http.StatusBadRequest
		}
		respond.SafeError(w, code, err)
		return
	}
	writeResult(w, res.Origin, res.Provider, res.FetchedAt, res.Value)
}
