// internal/pipeline/pipeline_test.go
package pipeline

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/photostack/photostack/internal/domain"
)

type fakeFilter struct {
	derr  *domain.Error
	calls int
}

func (f *fakeFilter) Apply(_ context.Context, img *domain.Image) *domain.Error {
	f.calls++
	if f.derr != nil {
		return f.derr
	}
	img.Data = append([]byte("filtered:"), img.Data...)
	return nil
}

type fakeStorer struct {
	derr  *domain.Error
	calls int
	got   *domain.Image
}

func (f *fakeStorer) Store(_ context.Context, bucket string, img *domain.Image) (*domain.UploadResult, *domain.Error) {
	f.calls++
	f.got = img
	if f.derr != nil {
		return nil, f.derr
	}
	return &domain.UploadResult{Bucket: "photos-dev-" + bucket, Key: img.Name, Location: "http://store/" + img.Name}, nil
}

var badRequest = domain.Validation("BadRequest", "Unable to parse request. Verify your content-type to be of image/*")

func TestRunRejectsWrongContentType(t *testing.T) {
	storer := &fakeStorer{}
	o := NewOrchestrator(nil, storer, badRequest)

	img := &domain.Image{Name: "clip.mp4", MimeType: "video/mp4", Data: []byte{1, 2, 3}}
	_, derr := o.Run(context.Background(), "testBucket", img)
	if derr == nil {
		t.Fatal("expected validation failure")
	}
	if derr.Code != "BadRequest" {
		t.Fatalf("unexpected code %q", derr.Code)
	}
	if storer.calls != 0 {
		t.Fatal("store must never run for rejected input")
	}
}

func TestRunRejectsEmptyBody(t *testing.T) {
	storer := &fakeStorer{}
	o := NewOrchestrator(nil, storer, badRequest)

	img := &domain.Image{Name: "p.jpg", MimeType: "image/jpeg"}
	if _, derr := o.Run(context.Background(), "testBucket", img); derr == nil {
		t.Fatal("expected validation failure")
	}
	if storer.calls != 0 {
		t.Fatal("store must never run for rejected input")
	}
}

func TestRunFiltersThenStores(t *testing.T) {
	filter := &fakeFilter{}
	storer := &fakeStorer{}
	o := NewOrchestrator(filter, storer, badRequest)

	img := &domain.Image{Name: "testPhoto.jpg", MimeType: "image/jpeg", Data: []byte{1, 2, 3}}
	res, derr := o.Run(context.Background(), "testBucket", img)
	if derr != nil {
		t.Fatalf("unexpected error: %v", derr)
	}
	if filter.calls != 1 || storer.calls != 1 {
		t.Fatalf("expected one filter and one store call, got %d/%d", filter.calls, storer.calls)
	}
	if string(storer.got.Data) != "filtered:\x01\x02\x03" {
		t.Fatalf("storer did not receive filtered bytes: %q", storer.got.Data)
	}
	if res.Bucket != "photos-dev-testBucket" || res.Key != "testPhoto.jpg" {
		t.Fatalf("unexpected result %+v", res)
	}
}

func TestRunFilterFailureSkipsStore(t *testing.T) {
	filter := &fakeFilter{derr: domain.Parse("Invalid response from photo-filter service")}
	storer := &fakeStorer{}
	o := NewOrchestrator(filter, storer, badRequest)

	img := &domain.Image{Name: "p.png", MimeType: "image/png", Data: []byte{1}}
	_, derr := o.Run(context.Background(), "testBucket", img)
	if derr == nil || derr.Kind != domain.KindParseError {
		t.Fatalf("expected ParseError, got %v", derr)
	}
	if storer.calls != 0 {
		t.Fatal("store must not run after a failed filter")
	}
}

func TestFilterClientReplacesBytes(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/greyscale" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if ct := r.Header.Get("Content-Type"); ct != "image/png" {
			t.Errorf("content type not forwarded: %q", ct)
		}
		w.Write([]byte("grey"))
	}))
	defer srv.Close()

	img := &domain.Image{Name: "p.png", MimeType: "image/png", Data: []byte("raw")}
	if derr := NewFilterClient(srv.URL).Apply(context.Background(), img); derr != nil {
		t.Fatalf("unexpected error: %v", derr)
	}
	if string(img.Data) != "grey" {
		t.Fatalf("bytes not replaced: %q", img.Data)
	}
}

func TestFilterClientNon200PassesBodyThrough(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte(`{"code":"FilterBroken","message":"boom"}`))
	}))
	defer srv.Close()

	img := &domain.Image{MimeType: "image/png", Data: []byte("raw")}
	derr := NewFilterClient(srv.URL).Apply(context.Background(), img)
	if derr == nil || derr.Kind != domain.KindUpstreamNon200 {
		t.Fatalf("expected UpstreamNon200, got %v", derr)
	}
	if derr.Serialized() != `{"code":"FilterBroken","message":"boom"}` {
		t.Fatalf("body not passed through verbatim: %q", derr.Serialized())
	}
}

func TestFilterClientEmptyOKBodyIsParseError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	img := &domain.Image{MimeType: "image/jpeg", Data: []byte("raw")}
	derr := NewFilterClient(srv.URL).Apply(context.Background(), img)
	if derr == nil || derr.Kind != domain.KindParseError {
		t.Fatalf("expected ParseError, got %v", derr)
	}
	if derr.Message != "Invalid response from photo-filter service" {
		t.Fatalf("unexpected message %q", derr.Message)
	}
}

func TestFilterClientConnectionRefused(t *testing.T) {
	// grab a free port and close it so the dial is refused
	l, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}
	addr := l.Addr().String()
	l.Close()

	img := &domain.Image{MimeType: "image/jpeg", Data: []byte("raw")}
	derr := NewFilterClient("http://" + addr).Apply(context.Background(), img)
	if derr == nil || derr.Kind != domain.KindConnectionRefused {
		t.Fatalf("expected ConnectionRefused, got %v", derr)
	}
	if derr.Code != "ECONNREFUSED" {
		t.Fatalf("unexpected code %q", derr.Code)
	}
	want := fmt.Sprintf("Could not connect to photo-filter service at %s", addr)
	if derr.Message != want {
		t.Fatalf("message %q, want %q", derr.Message, want)
	}
}

func TestHTTPStorerParsesUploadResult(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/bucket/testBucket/photos/testPhoto.jpg" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"bucket":"photos-dev-testBucket","key":"testPhoto.jpg","location":"http://store/testPhoto.jpg"}`))
	}))
	defer srv.Close()

	img := &domain.Image{Name: "testPhoto.jpg", MimeType: "image/jpeg", Data: []byte{1, 2, 3}}
	res, derr := NewHTTPStorer(srv.URL).Store(context.Background(), "testBucket", img)
	if derr != nil {
		t.Fatalf("unexpected error: %v", derr)
	}
	if res.Bucket != "photos-dev-testBucket" || res.Key != "testPhoto.jpg" {
		t.Fatalf("unexpected result %+v", res)
	}
}

func TestHTTPStorerErrorBodyPassthrough(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"code":"AccessDenied","message":"Access Denied"}`))
	}))
	defer srv.Close()

	img := &domain.Image{Name: "p.jpg", MimeType: "image/jpeg", Data: []byte{1}}
	_, derr := NewHTTPStorer(srv.URL).Store(context.Background(), "testBucket", img)
	if derr == nil || derr.Kind != domain.KindUpstreamNon200 {
		t.Fatalf("expected UpstreamNon200, got %v", derr)
	}
	if derr.Serialized() != `{"code":"AccessDenied","message":"Access Denied"}` {
		t.Fatalf("body not passed through: %q", derr.Serialized())
	}
}
