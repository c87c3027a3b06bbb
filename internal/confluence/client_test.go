package confluence

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestFindPage(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/rest/api/content" {
			t.Errorf("path = %q", r.URL.Path)
		}
		q := r.URL.Query()
		if q.Get("title") != "My Page" || q.Get("spaceKey") != "DOCS" || q.Get("expand") != "version" {
			t.Errorf("unexpected query: %v", q)
		}
		user, pass, ok := r.BasicAuth()
		if !ok || user != "me@example.com" || pass != "tok" {
			t.Errorf("unexpected auth: %s %s %v", user, pass, ok)
		}
		fmt.Fprint(w, `{"results": [{"id": "12345", "version": {"number": 3}}]}`)
	}))
	defer ts.Close()

	c := &Client{BaseURL: ts.URL, Email: "me@example.com", APIToken: "tok", HTTPClient: ts.Client()}
	page, found, err := c.FindPage(context.Background(), "My Page", "DOCS")
	if err != nil {
		t.Fatalf("FindPage() error: %v", err)
	}
	if !found {
		t.Fatal("expected page to be found")
	}
	if page.ID != "12345" || page.Version != 3 {
		t.Errorf("unexpected page: %+v", page)
	}
}

func TestFindPageNotFound(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"results": []}`)
	}))
	defer ts.Close()

	c := &Client{BaseURL: ts.URL, HTTPClient: ts.Client()}
	_, found, err := c.FindPage(context.Background(), "Missing", "DOCS")
	if err != nil {
		t.Fatalf("FindPage() error: %v", err)
	}
	if found {
		t.Error("expected page not to be found")
	}
}

func TestCreatePage(t *testing.T) {
	var gotBody map[string]any
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/rest/api/content/" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("decoding body: %v", err)
		}
		fmt.Fprint(w, `{"id": "777"}`)
	}))
	defer ts.Close()

	c := &Client{BaseURL: ts.URL, HTTPClient: ts.Client()}
	id, err := c.CreatePage(context.Background(), "My Page", "DOCS", "h2. *Hello*")
	if err != nil {
		t.Fatalf("CreatePage() error: %v", err)
	}
	if id != "777" {
		t.Errorf("id = %q", id)
	}

	if gotBody["type"] != "page" || gotBody["title"] != "My Page" {
		t.Errorf("unexpected body: %v", gotBody)
	}
	if _, present := gotBody["version"]; present {
		t.Error("create payload must not carry a version")
	}
	space := gotBody["space"].(map[string]any)
	if space["key"] != "DOCS" {
		t.Errorf("space = %v", space)
	}
	wiki := gotBody["body"].(map[string]any)["wiki"].(map[string]any)
	if wiki["value"] != "h2. *Hello*" || wiki["representation"] != "wiki" {
		t.Errorf("wiki body = %v", wiki)
	}
}

func TestUpdatePage(t *testing.T) {
	var gotBody map[string]any
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut || r.URL.Path != "/rest/api/content/12345" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("decoding body: %v", err)
		}
		fmt.Fprint(w, `{"id": "12345"}`)
	}))
	defer ts.Close()

	c := &Client{BaseURL: ts.URL, HTTPClient: ts.Client()}
	id, err := c.UpdatePage(context.Background(), "12345", "My Page", "DOCS", "content", 4)
	if err != nil {
		t.Fatalf("UpdatePage() error: %v", err)
	}
	if id != "12345" {
		t.Errorf("id = %q", id)
	}

	version := gotBody["version"].(map[string]any)
	if version["number"] != float64(4) {
		t.Errorf("version = %v", version)
	}
	if gotBody["id"] != "12345" {
		t.Errorf("body id = %v", gotBody["id"])
	}
}

func TestWriteNon2xx(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "space does not exist", http.StatusBadRequest)
	}))
	defer ts.Close()

	c := &Client{BaseURL: ts.URL, HTTPClient: ts.Client()}
	if _, err := c.CreatePage(context.Background(), "T", "NOPE", "body"); err == nil {
		t.Fatal("expected error for HTTP 400")
	}
}

func TestPageURL(t *testing.T) {
	c := &Client{BaseURL: "https://example.atlassian.net/wiki"}
	want := "https://example.atlassian.net/wiki/pages/viewpage.action?pageId=99"
	if got := c.PageURL("99"); got != want {
		t.Errorf("PageURL() = %q, want %q", got, want)
	}
}
