package attack

import (
	"fmt"
	"math/rand/v2"
	"net/http"
	"net/url"
	"sync/atomic"

	vegeta "github.com/tsenart/vegeta/v12/lib"
)

var urlCounter atomic.Uint64

func CreateTargeter(baseURL string) vegeta.Targeter {
	header := http.Header{"Content-Type": []string{"application/json"}}
	target := baseURL + "/api/url/create"

	return func(t *vegeta.Target) error {
		t.Method = http.MethodPost
		t.URL = target
		t.Header = header
		t.Body = fmt.Appendf(nil, `{"long_url":"https://example.com/%d"}`, urlCounter.Add(1))
		return nil
	}
}

func RedirectTargeter(baseURL string, ids []string) vegeta.Targeter {
	return func(t *vegeta.Target) error {
		t.Method = http.MethodGet
		t.URL = baseURL + "/" + ids[rand.IntN(len(ids))]
		t.Header = nil
		t.Body = nil
		return nil
	}
}

func MixedTargeter(baseURL string, ids []string, createRatio float64) vegeta.Targeter {
	createTarget := CreateTargeter(baseURL)
	redirectTarget := RedirectTargeter(baseURL, ids)

	return func(t *vegeta.Target) error {
		if rand.Float64() < createRatio {
			return createTarget(t)
		}
		return redirectTarget(t)
	}
}

// CheckTargeter hits alias availability with fresh names, so every request
// reaches the store.
func CheckTargeter(baseURL string) vegeta.Targeter {
	return func(t *vegeta.Target) error {
		t.Method = http.MethodGet
		t.URL = baseURL + "/api/alias/check?alias=" + url.QueryEscape(fmt.Sprintf("bench-%d", urlCounter.Add(1)))
		t.Header = nil
		t.Body = nil
		return nil
	}
}
