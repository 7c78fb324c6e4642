package main

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"connectrpc.com/connect"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/mmynk/fivehundred/internal/config"
	"github.com/mmynk/fivehundred/internal/storage/memory"
	pb "github.com/mmynk/fivehundred/pkg/proto"
	"github.com/mmynk/fivehundred/pkg/proto/protoconnect"
)

func newTestServer(t *testing.T, mutate func(*config.Config)) *httptest.Server {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.Database.Driver = "memory"
	cfg.Auth.JWTSecret = "test-secret"
	if mutate != nil {
		mutate(cfg)
	}

	handler, err := newHandler(cfg, memory.New(), prometheus.NewRegistry())
	if err != nil {
		t.Fatalf("newHandler failed: %v", err)
	}
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return server
}

func TestHandler_EndToEnd(t *testing.T) {
	server := newTestServer(t, nil)
	ctx := context.Background()

	authClient := protoconnect.NewAuthServiceClient(http.DefaultClient, server.URL)
	scoreClient := protoconnect.NewScoreServiceClient(http.DefaultClient, server.URL)

	reg, err := authClient.Register(ctx, connect.NewRequest(&pb.RegisterRequest{
		Email: "alice@example.com", DisplayName: "Alice", Password: "correct horse",
	}))
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	req := connect.NewRequest(&pb.CreateGameRequest{Teams: []*pb.Team{
		{Id: 0, Players: []string{"A", "B", "C"}},
		{Id: 1, Players: []string{"D", "E", "F"}},
	}})
	req.Header().Set("Authorization", "Bearer "+reg.Msg.Token)
	if _, err := scoreClient.CreateGame(ctx, req); err != nil {
		t.Fatalf("CreateGame failed: %v", err)
	}

	resp, err := http.Get(server.URL + "/metrics")
	if err != nil {
		t.Fatalf("GET /metrics failed: %v", err)
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	if !strings.Contains(string(body), "fivehundred_live_games 1") {
		t.Errorf("metrics missing live game gauge:\n%s", body)
	}
	if !strings.Contains(string(body), `procedure="/fivehundred.v1.ScoreService/CreateGame"`) {
		t.Errorf("metrics missing rpc histogram")
	}
}

func TestHandler_RateLimit(t *testing.T) {
	server := newTestServer(t, func(c *config.Config) {
		c.RateLimit.RPS = 0.001
		c.RateLimit.Burst = 2
	})
	client := protoconnect.NewScoreServiceClient(http.DefaultClient, server.URL)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		if _, err := client.GetScoringTable(ctx, connect.NewRequest(&pb.GetScoringTableRequest{})); err != nil {
			t.Fatalf("call %d failed: %v", i+1, err)
		}
	}
	_, err := client.GetScoringTable(ctx, connect.NewRequest(&pb.GetScoringTableRequest{}))
	if connect.CodeOf(err) != connect.CodeResourceExhausted {
		t.Errorf("expected ResourceExhausted, got %v", err)
	}
}

func TestHandler_CORSPreflight(t *testing.T) {
	server := newTestServer(t, nil)

	req, _ := http.NewRequest(http.MethodOptions, server.URL+protoconnect.ScoreServiceSubmitBidProcedure, nil)
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("preflight failed: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK || resp.Header.Get("Access-Control-Allow-Origin") != "*" {
		t.Errorf("unexpected preflight response: %d %v", resp.StatusCode, resp.Header)
	}
}

func TestHandler_JSONWireFormat(t *testing.T) {
	server := newTestServer(t, nil)
	authClient := protoconnect.NewAuthServiceClient(http.DefaultClient, server.URL)

	reg, err := authClient.Register(context.Background(), connect.NewRequest(&pb.RegisterRequest{
		Email: "bob@example.com", DisplayName: "Bob", Password: "correct horse",
	}))
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	body := `{"teams":[{"id":0,"players":["A","B"]},{"id":1,"players":["C","D"]}]}`
	req, _ := http.NewRequest(http.MethodPost, server.URL+protoconnect.ScoreServiceCreateGameProcedure, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+reg.Msg.Token)
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("CreateGame failed: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		data, _ := io.ReadAll(resp.Body)
		t.Fatalf("status %d: %s", resp.StatusCode, data)
	}

	var out struct {
		Game map[string]any `json:"game"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	updatedAt, ok := out.Game["updatedAt"].(string)
	if !ok {
		t.Fatalf("updatedAt should be a timestamp string, got %#v", out.Game["updatedAt"])
	}
	if _, err := time.Parse(time.RFC3339Nano, updatedAt); err != nil {
		t.Errorf("updatedAt %q is not RFC 3339: %v", updatedAt, err)
	}
	if out.Game["winningTeamId"] != float64(-1) {
		t.Errorf("winningTeamId = %#v, want -1", out.Game["winningTeamId"])
	}
	if _, ok := out.Game["winning_team_id"]; ok {
		t.Error("fields should use lowerCamelCase JSON names")
	}
}
