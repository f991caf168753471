package widget

import (
	"net/http"

	"newtab-feed/internal/handler/http/respond"
	widgetUC "newtab-feed/internal/usecase/widget"
)

type GamesHandler struct{ Svc *widgetUC.Service }

// ServeHTTP ゲーム一覧取得
// @Summary      ゲーム一覧取得
// @Tags         widgets
// @Produce      json
// @Success      200 {array} entity.Game "ゲーム一覧"
// @Router       /api/games [get]
func (h GamesHandler) ServeHTTP(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Cache-Control", "public, max-age=86400")
	respond.JSON(w, http.StatusOK, h.Svc.Games())
}

type GradientsHandler struct{ Svc *widgetUC.Service }

// ServeHTTP グラデーション取得
// @Summary      グラデーション取得
// @Description  random=true で1件をランダムに返し、それ以外は全件を返します。
// @Tags         widgets
// @Produce      json
// @Param        random  query  bool  false  "1件だけランダムに返す"
// @Success      200 {array} entity.Gradient "グラデーション一覧"
// @Failure      400 {string} string "Invalid query parameters"
// @Router       /api/gradients [get]
func (h GradientsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	random, err := boolParam(r, "random")
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}
	if random {
		w.Header().Set("Cache-Control", "no-store")
		respond.JSON(w, http.StatusOK, h.Svc.RandomGradient())
		return
	}
	w.Header().Set("Cache-Control", "public, max-age=86400")
	respond.JSON(w, http.StatusOK, h.Svc.Gradients())
}
