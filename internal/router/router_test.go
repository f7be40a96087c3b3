package router_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"testing"

	"pet-adoption-board/internal/router"
)

func newServer(t *testing.T) *httptest.Server {
	t.Helper()

	h, err := router.NewRouter(router.Options{})
	if err != nil {
		t.Fatalf("NewRouter error: %v", err)
	}
	return httptest.NewServer(h)
}

func newClient(t *testing.T) *http.Client {
	t.Helper()

	jar, err := cookiejar.New(nil)
	if err != nil {
		t.Fatalf("cookiejar: %v", err)
	}
	return &http.Client{Jar: jar}
}

func TestHTTP_EndToEnd_AdoptionFlow(t *testing.T) {
	ts := newServer(t)
	defer ts.Close()

	owner := newClient(t)
	other := newClient(t)
	anon := newClient(t)

	// 1) Registro + login del dueño
	{
		st, body := doReq(t, owner, ts.URL, "POST", "/api/auth/register", map[string]any{
			"username": "maria_lopez", "password": "abc123",
		})
		if st != http.StatusOK {
			t.Fatalf("expected 200 register, got %d body=%s", st, string(body))
		}

		st, body = doReq(t, owner, ts.URL, "POST", "/api/auth/login", map[string]any{
			"username": "maria_lopez", "password": "abc123",
		})
		if st != http.StatusOK {
			t.Fatalf("expected 200 login, got %d body=%s", st, string(body))
		}
	}

	// 2) whoAmI con sesión
	{
		st, body := doReq(t, owner, ts.URL, "GET", "/api/auth/me", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 me, got %d", st)
		}
		var me struct {
			LoggedIn bool   `json:"loggedIn"`
			Username string `json:"username"`
		}
		_ = json.Unmarshal(body, &me)
		if !me.LoggedIn || me.Username != "maria_lopez" {
			t.Fatalf("unexpected me response: %s", string(body))
		}
	}

	// 3) Crear sin sesión => 401
	{
		st, _ := doReq(t, anon, ts.URL, "POST", "/api/pets", validListingPayload())
		if st != http.StatusUnauthorized {
			t.Fatalf("expected 401 create without session, got %d", st)
		}
	}

	// 4) El dueño crea dos publicaciones: ids 1 y 2
	id1 := createListing(t, owner, ts.URL, validListingPayload())
	if id1 != 1 {
		t.Fatalf("expected first id 1, got %d", id1)
	}

	catPayload := validListingPayload()
	catPayload["animal"] = "cat"
	catPayload["breed"] = "siamese"
	catPayload["compatibility"] = []string{"cats"}
	id2 := createListing(t, owner, ts.URL, catPayload)
	if id2 != 2 {
		t.Fatalf("expected second id 2, got %d", id2)
	}

	// 5) La compatibilidad se guarda deduplicada
	{
		dupPayload := validListingPayload()
		dupPayload["compatibility"] = []string{"dogs", "dogs", "cats"}
		st, body := doReq(t, owner, ts.URL, "POST", "/api/pets", dupPayload)
		if st != http.StatusCreated {
			t.Fatalf("expected 201, got %d body=%s", st, string(body))
		}
		var resp struct {
			Compatibility []string `json:"compatibility"`
		}
		_ = json.Unmarshal(body, &resp)
		if len(resp.Compatibility) != 2 {
			t.Fatalf("expected deduplicated {dogs, cats}, got %v", resp.Compatibility)
		}
	}

	// 6) Browse público con filtros, sin sesión
	{
		st, body := doReq(t, anon, ts.URL, "GET", "/api/pets?animal=dog&compat=children", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 browse, got %d", st)
		}
		var out []struct {
			ID     int64  `json:"id"`
			Animal string `json:"animal"`
		}
		_ = json.Unmarshal(body, &out)
		for _, l := range out {
			if l.Animal != "dog" {
				t.Fatalf("filter leaked non-dog listing: %s", string(body))
			}
		}

		st, body = doReq(t, anon, ts.URL, "GET", "/api/pets?breed=any", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 browse breed=any, got %d", st)
		}
		_ = json.Unmarshal(body, &out)
		if len(out) != 3 {
			t.Fatalf(`breed "any" must return everything, got %d`, len(out))
		}
	}

	// 7) Cambio de estado por el dueño
	{
		st, body := doReq(t, owner, ts.URL, "PATCH", "/api/pets/1/status", map[string]any{"status": "adopted"})
		if st != http.StatusOK {
			t.Fatalf("expected 200 set status, got %d body=%s", st, string(body))
		}
		var resp struct {
			Status string `json:"status"`
		}
		_ = json.Unmarshal(body, &resp)
		if resp.Status != "adopted" {
			t.Fatalf("expected adopted, got %s", resp.Status)
		}
	}

	// 8) Otro usuario no puede tocar la publicación ajena
	{
		st, _ := doReq(t, other, ts.URL, "POST", "/api/auth/register", map[string]any{
			"username": "juan_perez", "password": "xyz789",
		})
		if st != http.StatusOK {
			t.Fatalf("expected 200 register #2, got %d", st)
		}
		st, _ = doReq(t, other, ts.URL, "POST", "/api/auth/login", map[string]any{
			"username": "juan_perez", "password": "xyz789",
		})
		if st != http.StatusOK {
			t.Fatalf("expected 200 login #2, got %d", st)
		}

		st, _ = doReq(t, other, ts.URL, "PATCH", "/api/pets/1/status", map[string]any{"status": "available"})
		if st != http.StatusForbidden {
			t.Fatalf("expected 403 non-owner, got %d", st)
		}

		// y la publicación sigue adopted
		_, body := doReq(t, anon, ts.URL, "GET", "/api/pets?status=adopted", nil)
		var out []struct {
			ID int64 `json:"id"`
		}
		_ = json.Unmarshal(body, &out)
		if len(out) != 1 || out[0].ID != 1 {
			t.Fatalf("forbidden call changed state: %s", string(body))
		}
	}

	// 9) Status inválido y publicación inexistente
	{
		st, _ := doReq(t, owner, ts.URL, "PATCH", "/api/pets/1/status", map[string]any{"status": "pending"})
		if st != http.StatusBadRequest {
			t.Fatalf("expected 400 invalid status, got %d", st)
		}
		st, _ = doReq(t, owner, ts.URL, "PATCH", "/api/pets/99/status", map[string]any{"status": "adopted"})
		if st != http.StatusNotFound {
			t.Fatalf("expected 404 unknown listing, got %d", st)
		}
	}

	// 10) Logout: idempotente, y me vuelve a loggedIn=false
	{
		st, _ := doReq(t, owner, ts.URL, "POST", "/api/auth/logout", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 logout, got %d", st)
		}
		st, _ = doReq(t, owner, ts.URL, "POST", "/api/auth/logout", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 second logout, got %d", st)
		}

		st, body := doReq(t, owner, ts.URL, "GET", "/api/auth/me", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 me after logout, got %d", st)
		}
		var me struct {
			LoggedIn bool `json:"loggedIn"`
		}
		_ = json.Unmarshal(body, &me)
		if me.LoggedIn {
			t.Fatalf("expected loggedIn=false after logout")
		}

		st, _ = doReq(t, owner, ts.URL, "POST", "/api/pets", validListingPayload())
		if st != http.StatusUnauthorized {
			t.Fatalf("expected 401 create after logout, got %d", st)
		}
	}
}

func TestHTTP_Register_Validation(t *testing.T) {
	ts := newServer(t)
	defer ts.Close()
	c := newClient(t)

	st, _ := doReq(t, c, ts.URL, "POST", "/api/auth/register", map[string]any{
		"username": "ab", "password": "abc123",
	})
	if st != http.StatusBadRequest {
		t.Fatalf("expected 400 short username, got %d", st)
	}

	st, _ = doReq(t, c, ts.URL, "POST", "/api/auth/register", map[string]any{
		"username": "maria_lopez", "password": "letters",
	})
	if st != http.StatusBadRequest {
		t.Fatalf("expected 400 weak password, got %d", st)
	}

	st, _ = doReq(t, c, ts.URL, "POST", "/api/auth/register", map[string]any{
		"username": "maria_lopez", "password": "abc123",
	})
	if st != http.StatusOK {
		t.Fatalf("expected 200 register, got %d", st)
	}
	st, _ = doReq(t, c, ts.URL, "POST", "/api/auth/register", map[string]any{
		"username": "maria_lopez", "password": "abc123",
	})
	if st != http.StatusConflict {
		t.Fatalf("expected 409 duplicate, got %d", st)
	}
}

func TestHTTP_Login_InvalidCredentialsIndistinguishable(t *testing.T) {
	ts := newServer(t)
	defer ts.Close()
	c := newClient(t)

	st, _ := doReq(t, c, ts.URL, "POST", "/api/auth/register", map[string]any{
		"username": "maria_lopez", "password": "abc123",
	})
	if st != http.StatusOK {
		t.Fatalf("expected 200 register, got %d", st)
	}

	_, bodyWrongPass := mustStatus(t, c, ts.URL, "POST", "/api/auth/login", map[string]any{
		"username": "maria_lopez", "password": "wrong99",
	}, http.StatusUnauthorized)
	_, bodyNoUser := mustStatus(t, c, ts.URL, "POST", "/api/auth/login", map[string]any{
		"username": "ghost_user", "password": "abc123",
	}, http.StatusUnauthorized)

	// mismo cuerpo en ambos casos: no se filtra qué cuentas existen
	if string(bodyWrongPass) != string(bodyNoUser) {
		t.Fatalf("login failures must be indistinguishable: %s vs %s", bodyWrongPass, bodyNoUser)
	}
}

func TestHTTP_CreateListing_ValidationDetails(t *testing.T) {
	ts := newServer(t)
	defer ts.Close()
	c := newClient(t)

	mustStatus(t, c, ts.URL, "POST", "/api/auth/register", map[string]any{
		"username": "maria_lopez", "password": "abc123",
	}, http.StatusOK)
	mustStatus(t, c, ts.URL, "POST", "/api/auth/login", map[string]any{
		"username": "maria_lopez", "password": "abc123",
	}, http.StatusOK)

	st, body := doReq(t, c, ts.URL, "POST", "/api/pets", map[string]any{
		"animal":      "bird",
		"breed":       "x",
		"ageGroup":    "old",
		"gender":      "other",
		"description": "short",
		"imageUrl":    "https://evil.example/pic.png",
	})
	if st != http.StatusBadRequest {
		t.Fatalf("expected 400 validation, got %d body=%s", st, string(body))
	}

	var resp struct {
		Error   string   `json:"error"`
		Details []string `json:"details"`
	}
	_ = json.Unmarshal(body, &resp)
	if resp.Error != "Validation failed." {
		t.Fatalf("unexpected error field: %s", string(body))
	}
	if len(resp.Details) != 6 {
		t.Fatalf("expected all 6 violations reported together, got %v", resp.Details)
	}
}

func validListingPayload() map[string]any {
	return map[string]any{
		"animal":        "dog",
		"breed":         "labrador",
		"ageGroup":      "young",
		"gender":        "male",
		"compatibility": []string{"dogs", "children"},
		"description":   "Friendly lab looking for a home.",
		"imageUrl":      "",
	}
}

func createListing(t *testing.T, c *http.Client, baseURL string, payload map[string]any) int64 {
	t.Helper()

	st, body := doReq(t, c, baseURL, "POST", "/api/pets", payload)
	if st != http.StatusCreated {
		t.Fatalf("expected 201 create listing, got %d body=%s", st, string(body))
	}

	var resp struct {
		ID int64 `json:"id"`
	}
	_ = json.Unmarshal(body, &resp)
	if resp.ID == 0 {
		t.Fatalf("create listing: missing id body=%s", string(body))
	}
	return resp.ID
}

func mustStatus(t *testing.T, c *http.Client, baseURL, method, path string, body any, want int) (int, []byte) {
	t.Helper()

	st, respBody := doReq(t, c, baseURL, method, path, body)
	if st != want {
		t.Fatalf("%s %s: expected %d, got %d body=%s", method, path, want, st, string(respBody))
	}
	return st, respBody
}

func doReq(t *testing.T, c *http.Client, baseURL, method, path string, body any) (int, []byte) {
	t.Helper()

	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("json marshal: %v", err)
		}
		rdr = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, baseURL+path, rdr)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := c.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer res.Body.Close()

	respBody, _ := io.ReadAll(res.Body)
	return res.StatusCode, respBody
}
