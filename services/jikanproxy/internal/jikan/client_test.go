package jikan

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"testing"
)

type stubDoer struct {
	resp     *Response
	err      error
	endpoint string
	path     string
	params   url.Values
}

func (s *stubDoer) Fetch(_ context.Context, endpoint, path string, params url.Values) (*Response, error) {
	s.endpoint, s.path, s.params = endpoint, path, params
	return s.resp, s.err
}

func ok(body string) *Response {
	return &Response{StatusCode: http.StatusOK, Body: []byte(body), Attempts: 1}
}

func TestSearchAnime_Decodes(t *testing.T) {
	d := &stubDoer{resp: ok(`{
		"data":[{"mal_id":20,"title":"Naruto","score":7.99,"year":2002,"episodes":220,
			"genres":[{"mal_id":1,"name":"Action"}],
			"images":{"jpg":{"image_url":"a.jpg","large_image_url":"b.jpg"}}},
			{"mal_id":21,"title":"One Piece","score":null}],
		"pagination":{"last_visible_page":3,"has_next_page":true,"items":{"count":2,"total":60,"per_page":25}}}`)}
	c := NewClient(d)

	out, err := c.SearchAnime(context.Background(), url.Values{"q": {"naruto"}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.endpoint != EndpointAnimeSearch || d.path != "/anime" || d.params.Get("q") != "naruto" {
		t.Fatalf("unexpected call %s %s %v", d.endpoint, d.path, d.params)
	}
	if len(out.Data) != 2 {
		t.Fatalf("expected 2 items, got %d", len(out.Data))
	}
	first := out.Data[0]
	if first.Score == nil || *first.Score != 7.99 || first.Year != 2002 || first.Images.JPG.LargeImageURL != "b.jpg" {
		t.Fatalf("unexpected first item %+v", first)
	}
	if out.Data[1].Score != nil {
		t.Fatalf("expected nil score for null, got %v", *out.Data[1].Score)
	}
	if out.Pagination.Items == nil || out.Pagination.Items.Total != 60 || out.Pagination.LastVisiblePage != 3 {
		t.Fatalf("unexpected pagination %+v", out.Pagination)
	}
}

func TestTopAnime_Path(t *testing.T) {
	d := &stubDoer{resp: ok(`{"data":[]}`)}
	if _, err := NewClient(d).TopAnime(context.Background(), url.Values{"filter": {"airing"}}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.path != "/top/anime" || d.endpoint != EndpointTopAnime {
		t.Fatalf("unexpected call %s %s", d.endpoint, d.path)
	}
}

func TestAnimeFull_Path(t *testing.T) {
	d := &stubDoer{resp: ok(`{"data":{"mal_id":5114,"title":"Fullmetal Alchemist: Brotherhood"}}`)}
	out, err := NewClient(d).AnimeFull(context.Background(), 5114)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.path != "/anime/5114/full" {
		t.Fatalf("unexpected path %s", d.path)
	}
	if out.Data.MalID != 5114 {
		t.Fatalf("unexpected id %d", out.Data.MalID)
	}
}

func TestAnimeFull_InvalidID(t *testing.T) {
	d := &stubDoer{resp: ok(`{}`)}
	if _, err := NewClient(d).AnimeFull(context.Background(), 0); err == nil {
		t.Fatal("expected error for id 0")
	}
	if d.path != "" {
		t.Fatal("expected no upstream call")
	}
}

func TestClient_ErrorMapping(t *testing.T) {
	cases := []struct {
		name string
		resp *Response
		err  error
		want error
	}{
		{"rate limited", &Response{StatusCode: 429, Attempts: 3}, nil, ErrRateLimited},
		{"server error", &Response{StatusCode: 500, Body: []byte("boom")}, nil, ErrUnavailable},
		{"not found", &Response{StatusCode: 404}, nil, ErrUnavailable},
		{"bad json", ok(`<html>`), nil, ErrDecode},
		{"transport", nil, ErrTransport, ErrTransport},
		{"nil response", nil, nil, ErrUnavailable},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewClient(&stubDoer{resp: tc.resp, err: tc.err}).SearchAnime(context.Background(), nil)
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestIsNotFound(t *testing.T) {
	_, err := NewClient(&stubDoer{resp: &Response{StatusCode: 404}}).AnimeFull(context.Background(), 1)
	if !IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
	_, err = NewClient(&stubDoer{resp: &Response{StatusCode: 500}}).AnimeFull(context.Background(), 1)
	if IsNotFound(err) {
		t.Fatal("500 must not be reported as not found")
	}
}

func TestGenres_Decodes(t *testing.T) {
	d := &stubDoer{resp: ok(`{"data":[{"mal_id":1,"name":"Action","count":5000},{"mal_id":2,"name":"Adventure"}]}`)}
	out, err := NewClient(d).AnimeGenres(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.path != "/genres/anime" || len(out.Data) != 2 || out.Data[0].Name != "Action" {
		t.Fatalf("unexpected result %+v", out)
	}
}
