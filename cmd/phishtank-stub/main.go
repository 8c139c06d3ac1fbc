// phishtank-stub is a local stand-in for the PhishTank check endpoint,
// for manual testing and compose-based development. It answers the
// check form with canned verdicts: URLs whose host ends in
// "phish.example" are confirmed phishes, "pending.example" hosts are in
// the database but unverified, everything else is unknown. Sending
// app_key "rate-limited" simulates an exhausted quota.
package main

import (
	"encoding/base64"
	"encoding/json"
	"log"
	"net/http"
	"net/url"
	"os"
	"strings"
)

func main() {
	addr := os.Getenv("ADDR")
	if strings.TrimSpace(addr) == "" {
		addr = ":8090"
	}

	log.Printf("phishtank-stub listening on %s", addr)
	if err := http.ListenAndServe(addr, newMux()); err != nil {
		log.Fatal(err)
	}
}

func newMux() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/checkurl/", handleCheck)
	// The real endpoint lives at /checkurl/; accept the root too so the
	// stub works with a bare base URL.
	mux.HandleFunc("/", handleCheck)
	return mux
}

func handleCheck(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if err := r.ParseForm(); err != nil {
		writeError(w, "Invalid request")
		return
	}

	w.Header().Set("X-Request-Limit", "200")
	w.Header().Set("X-Request-Count", "1")
	w.Header().Set("X-Request-Limit-Interval", "300 Seconds")

	if r.PostFormValue("app_key") == "rate-limited" {
		w.WriteHeader(509)
		_, _ = w.Write([]byte("bandwidth limit exceeded"))
		return
	}

	decoded, err := base64.StdEncoding.DecodeString(r.PostFormValue("url"))
	if err != nil {
		writeError(w, "Invalid url")
		return
	}
	checked := string(decoded)

	u, err := url.Parse(checked)
	if err != nil || u.Host == "" {
		writeError(w, "Invalid url")
		return
	}

	results := map[string]any{
		"url":         checked,
		"in_database": false,
	}
	switch {
	case hostMatches(u.Host, "phish.example"):
		results["in_database"] = true
		results["phish_id"] = 4119
		results["phish_detail_page"] = "https://phishtank.example/phish_detail.php?phish_id=4119"
		results["verified"] = true
		results["verified_at"] = "2026-08-01T09:30:00+00:00"
		results["valid"] = true
		results["submitted_at"] = "2026-07-31T18:12:45+00:00"
	case hostMatches(u.Host, "pending.example"):
		results["in_database"] = true
		results["phish_id"] = 4120
		results["verified"] = false
		results["submitted_at"] = "2026-08-20T07:02:11+00:00"
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{"results": results})
}

func hostMatches(host, suffix string) bool {
	return host == suffix || strings.HasSuffix(host, "."+suffix)
}

func writeError(w http.ResponseWriter, text string) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{"errortext": text})
}
