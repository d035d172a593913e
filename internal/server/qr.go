package server

import (
	"net/http"

	qrcode "github.com/skip2/go-qrcode"
)

// handleJoinQR renders the game's join link as a QR code PNG, for the host
// to show the other players at the start of a session.
func handleJoinQR(publicURL string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess := sessionFrom(r)

		png, err := qrcode.Encode(joinURL(publicURL, sess.id), qrcode.Medium, 256)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}

		w.Header().Set("Content-Type", "image/png")
		w.Header().Set("Cache-Control", "public, max-age=86400")
		w.Write(png)
	}
}
