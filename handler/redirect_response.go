package handler

import (
	"net/http"
	"net/url"
)

type redirectResponse struct {
	url  string
	code int
	back bool
}

func (rr redirectResponse) Render(w http.ResponseWriter, r *http.Request) error {
	target := rr.url
	if rr.back {
		if ref := r.Header.Get("Referer"); ref != "" && sameHost(ref, r) {
			target = ref
		}
	}
	http.Redirect(w, r, target, rr.code)
	return nil
}

// Redirect answers 303 See Other, the usual reply to a processed form.
func Redirect(url string) Response {
	return redirectResponse{url: url, code: http.StatusSeeOther}
}

func RedirectWithCode(url string, code int) Response {
	return redirectResponse{url: url, code: code}
}

// RedirectBack returns to the same-host Referer, or to fallback.
func RedirectBack(fallback string) Response {
	return redirectResponse{url: fallback, code: http.StatusSeeOther, back: true}
}

func sameHost(raw string, r *http.Request) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	if u.Scheme != "" && u.Scheme != "http" && u.Scheme != "https" {
		return false
	}
	return u.Host == "" || u.Host == r.Host
}
