package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestClient_GetProfile(t *testing.T) {
	hs := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || r.URL.Path != "/api/profile" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{
			"full_name":"Ada Lovelace",
			"first_name":"Ada",
			"valorant_agent":"jett",
			"agent_name":"AGENT"
		}`))
	}))
	defer hs.Close()

	c := New(hs.URL)
	p, err := c.GetProfile(context.Background())
	if err != nil {
		t.Fatalf("GetProfile returned error: %v", err)
	}
	if p.FullName != "Ada Lovelace" || p.Agent != "jett" {
		t.Fatalf("unexpected profile %+v", p)
	}
}

func TestClient_SetAgent(t *testing.T) {
	hs := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPatch || r.URL.Path != "/api/profile" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		var upd ProfileUpdate
		if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
			t.Errorf("decode: %v", err)
		}
		if upd.Agent == nil || *upd.Agent != "sage" {
			t.Errorf("expected agent patch, got %+v", upd)
		}
		if upd.FullName != nil {
			t.Errorf("partial patch must omit untouched fields")
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"full_name":"Ada Lovelace","first_name":"Ada","valorant_agent":"sage","agent_name":"AGENT"}`))
	}))
	defer hs.Close()

	c := New(hs.URL)
	p, err := c.SetAgent(context.Background(), "sage")
	if err != nil {
		t.Fatalf("SetAgent returned error: %v", err)
	}
	if p.Agent != "sage" {
		t.Fatalf("unexpected profile %+v", p)
	}
}

func TestClient_SetAgentRejectsUnknownPersona(t *testing.T) {
	c := New("http://unused")
	if _, err := c.SetAgent(context.Background(), "shadowblade"); err == nil {
		t.Fatalf("expected catalog validation error")
	}
}

func TestClient_GetGamification(t *testing.T) {
	hs := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || r.URL.Path != "/api/gamification" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{
			"total_xp":150,
			"level":2,
			"level_title":"OPERATIVE",
			"current_xp_in_level":50,
			"xp_for_next_level":150,
			"rank_icon":"⚔️",
			"streak":3,
			"activities_today":2
		}`))
	}))
	defer hs.Close()

	c := New(hs.URL)
	g, err := c.GetGamification(context.Background())
	if err != nil {
		t.Fatalf("GetGamification returned error: %v", err)
	}
	if g.Level != 2 || g.LevelTitle != "OPERATIVE" || g.Streak != 3 {
		t.Fatalf("unexpected gamification %+v", g)
	}
}
