package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	fsrepo "StockKeeper/internal/cli/repo/fs"
)

// SessionCookieName дублирует имя cookie сервера для клиентской стороны.
const SessionCookieName = "session_token"

// DoJSON выполняет запрос с JSON-телом. Непустой token уходит как cookie сессии.
func DoJSON(method, url string, payload any, token string) (*http.Response, []byte, error) {
	var reqBody io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return nil, nil, err
		}
		reqBody = bytes.NewReader(b)
	}
	req, err := http.NewRequest(method, url, reqBody)
	if err != nil {
		return nil, nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Cookie", SessionCookieName+"="+token)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, nil, err
	}
	body, _ := io.ReadAll(resp.Body)
	return resp, body, nil
}

// PostJSON sends a JSON POST request. If token is non-empty, it is passed as session cookie.
func PostJSON(url string, payload any, token string) (*http.Response, []byte, error) {
	return DoJSON(http.MethodPost, url, payload, token)
}

// GetJSON sends a GET request with the session cookie.
func GetJSON(url string, token string) (*http.Response, []byte, error) {
	return DoJSON(http.MethodGet, url, nil, token)
}

// PersistSessionFromResponse извлекает cookie сессии из ответа и сохраняет её
// через файловое хранилище.
func PersistSessionFromResponse(resp *http.Response) error {
	store := fsrepo.SessionFSStore{}
	for _, c := range resp.Cookies() {
		if c.Name == SessionCookieName && c.Value != "" {
			return store.Save(c.Value)
		}
	}
	return fmt.Errorf("no session cookie in response")
}
