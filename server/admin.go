package server

import (
	"encoding/json"
	"net/http"
)

// HandleAdminConfig 返回本局配置。配置开局后不可变，只支持 GET。
// GET /admin/config
func HandleAdminConfig(room *Room) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			w.Header().Set("Allow", http.MethodGet)
			http.Error(w, "config is immutable for a running session", http.StatusMethodNotAllowed)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(room.Config())
	}
}

// HandleMetrics 输出运行指标与观战人数
// GET /metrics
func HandleMetrics(room *Room, hub *Hub) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		payload := map[string]any{
			"room":    room.ID,
			"metrics": room.Metrics().Snapshot(),
			"viewers": hub.Count(),
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(payload)
	}
}
