package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"ergg/internal/config"
)

func newTestBSER(t *testing.T, handler http.HandlerFunc) *BSERClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewBSERClient(&config.Config{BSERAPIKey: "secret", BSERBaseURL: srv.URL + "/"})
}

func TestBSERClient_SendsKeyAndDecodes(t *testing.T) {
	c := newTestBSER(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("x-api-key"); got != "secret" {
			t.Errorf("x-api-key = %q, want %q", got, "secret")
		}
		if r.URL.Path != "/v1/user/nickname" || r.URL.Query().Get("query") != "흑 백" {
			t.Errorf("unexpected request %s", r.URL.String())
		}
		w.Write([]byte(`{"code":200,"message":"Success","user":{"userNum":1733,"nickname":"흑 백"}}`))
	})

	resp, err := c.GetUserByNickname(context.Background(), "흑 백")
	if err != nil {
		t.Fatalf("GetUserByNickname() error = %v", err)
	}
	if resp.User.UserNum != 1733 || resp.User.Nickname != "흑 백" {
		t.Errorf("user = %+v", resp.User)
	}
}

func TestBSERClient_EnvelopeError(t *testing.T) {
	c := newTestBSER(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"code":404,"message":"Not Found"}`))
	})

	_, err := c.GetUserByNickname(context.Background(), "nobody")
	if !IsNotFound(err) {
		t.Fatalf("error = %v, want not found", err)
	}
	var apiErr *Error
	if !errors.As(err, &apiErr) || apiErr.Message != "Not Found" {
		t.Errorf("error = %#v, want message %q", err, "Not Found")
	}
}

func TestBSERClient_HTTPStatusError(t *testing.T) {
	c := newTestBSER(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"message":"Too Many Requests"}`))
	})

	_, err := c.GetGame(context.Background(), 42)
	var apiErr *Error
	if !errors.As(err, &apiErr) {
		t.Fatalf("error = %v, want *Error", err)
	}
	if apiErr.StatusCode != http.StatusTooManyRequests || apiErr.Message != "Too Many Requests" {
		t.Errorf("apiErr = %+v", apiErr)
	}
}

func TestBSERClient_GamesPaging(t *testing.T) {
	c := newTestBSER(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/user/games/7" || r.URL.Query().Get("next") != "99" {
			t.Errorf("unexpected request %s", r.URL.String())
		}
		w.Write([]byte(`{"code":200,"message":"Success","userGames":[{"gameId":5,"userNum":7,"characterNum":1}],"next":98}`))
	})

	resp, err := c.GetUserGames(context.Background(), 7, 99)
	if err != nil {
		t.Fatalf("GetUserGames() error = %v", err)
	}
	if len(resp.UserGames) != 1 || resp.UserGames[0].GameID != 5 || resp.Next != 98 {
		t.Errorf("resp = %+v", resp)
	}
}

func TestBSERClient_Deadline(t *testing.T) {
	c := newTestBSER(t, func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.Write([]byte(`{"code":200}`))
	})

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	if _, err := c.GetSeasons(ctx); err == nil {
		t.Fatal("GetSeasons() error = nil, want timeout")
	}
}
