package adapter

import (
	"context"
	stderrors "errors"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/kbukum/pkgbridge/errors"
	"github.com/kbukum/pkgbridge/provider"
	"github.com/kbukum/pkgbridge/stream"
)

func TestFindPackagesEmptyInput(t *testing.T) {
	p := newFakeProvider()
	f := NewFacade(p)

	s, err := f.FindPackages(context.Background(), nil, nil, provider.VersionRange{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, err := stream.Collect(context.Background(), s)
	if err != nil || len(got) != 0 {
		t.Errorf("expected empty completed stream, got %d items, err %v", len(got), err)
	}
	if p.callCount() != 0 {
		t.Errorf("provider must not be called for empty input, saw %v", p.recorded())
	}
}

func TestFindPackagesSingleElementDelegates(t *testing.T) {
	p := newFakeProvider()
	p.results["zlib"] = []provider.SoftwareIdentity{identity("zlib")}
	f := NewFacade(p)

	s, err := f.FindPackages(context.Background(), nil, []string{"zlib"}, provider.VersionRange{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, err := stream.Collect(context.Background(), s)
	if err != nil || len(got) != 1 {
		t.Fatalf("expected 1 package, got %d, err %v", len(got), err)
	}

	calls := p.recorded()
	if len(calls) != 1 || calls[0] != "find_package:zlib@0" {
		t.Errorf("expected a single sessionless find call, got %v", calls)
	}
}

func TestFindPackagesSessionProtocol(t *testing.T) {
	p := newFakeProvider()
	p.results["a"] = []provider.SoftwareIdentity{identity("a1"), identity("a2")}
	p.results["b"] = []provider.SoftwareIdentity{identity("b1")}
	p.results["c"] = []provider.SoftwareIdentity{identity("c1")}
	f := NewFacade(p)

	s, err := f.FindPackages(context.Background(), nil, []string{"a", "b", "c"}, provider.VersionRange{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, err := stream.Collect(context.Background(), s)
	if err != nil {
		t.Fatalf("unexpected stream error: %v", err)
	}

	names := make([]string, len(got))
	for i, pkg := range got {
		names[i] = pkg.Name
		if pkg.Status != StatusAvailable {
			t.Errorf("expected status available, got %v for %s", pkg.Status, pkg.Name)
		}
	}
	if strings.Join(names, ",") != "a1,a2,b1,c1" {
		t.Errorf("expected per-term ordering with no interleaving, got %v", names)
	}

	want := []string{
		"start_find",
		"find_package:a@42",
		"find_package:b@42",
		"find_package:c@42",
		"complete_find@42",
	}
	calls := p.recorded()
	if len(calls) != len(want) {
		t.Fatalf("expected calls %v, got %v", want, calls)
	}
	for i := range want {
		if calls[i] != want[i] {
			t.Errorf("call %d: expected %q, got %q", i, want[i], calls[i])
		}
	}
}

func TestFindPackagesCancellationAbandonsSession(t *testing.T) {
	p := newFakeProvider()
	p.results["a"] = []provider.SoftwareIdentity{identity("a1"), identity("a2"), identity("a3")}
	p.results["b"] = []provider.SoftwareIdentity{identity("b1")}
	f := NewFacade(p)

	s, err := f.FindPackages(context.Background(), nil, []string{"a", "b"}, provider.VersionRange{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Pull one item, then cancel while the producer is mid-term.
	first, ok, err := s.Next(context.Background())
	if err != nil || !ok {
		t.Fatalf("expected first item, got ok=%v err=%v", ok, err)
	}
	if first.Name != "a1" {
		t.Errorf("expected a1 first, got %s", first.Name)
	}
	s.Cancel()

	select {
	case <-p.abandoned:
	case <-time.After(2 * time.Second):
		t.Fatal("provider never observed the abandon signal")
	}

	for _, call := range p.recorded() {
		if call == "find_package:b@42" {
			t.Error("no per-term call may run after cancellation")
		}
		if strings.HasPrefix(call, "complete_find") {
			t.Error("an abandoned session must not be completed")
		}
	}

	// Pulls after cancellation report exhaustion, not an error.
	_, ok, err = s.Next(context.Background())
	if ok || err != nil {
		t.Errorf("expected exhausted stream after cancel, got ok=%v err=%v", ok, err)
	}
}

func TestFindPackagesPerTermErrorAbandonsSession(t *testing.T) {
	sentinel := stderrors.New("feed unreachable")
	p := newFakeProvider()
	p.results["a"] = []provider.SoftwareIdentity{identity("a1")}
	p.findErrFor = "b"
	p.callErr = sentinel
	f := NewFacade(p)

	s, err := f.FindPackages(context.Background(), nil, []string{"a", "b", "c"}, provider.VersionRange{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, err := stream.Collect(context.Background(), s)
	if !stderrors.Is(err, sentinel) {
		t.Fatalf("expected untranslated provider error, got %v", err)
	}
	if len(got) != 1 || got[0].Name != "a1" {
		t.Errorf("items before the failure must remain valid, got %v", got)
	}

	for _, call := range p.recorded() {
		if call == "find_package:c@42" {
			t.Error("no per-term call may run after a term failed")
		}
		if strings.HasPrefix(call, "complete_find") {
			t.Error("a failed session must not be completed")
		}
	}
}

func TestFindPackagesByURIsSkipsUnsupported(t *testing.T) {
	supported, _ := url.Parse("nuget://feed.example.com/zlib")
	unsupported, _ := url.Parse("gopher://feed.example.com/zlib")

	p := newFakeProvider()
	p.results[supported.String()] = []provider.SoftwareIdentity{identity("zlib")}
	f := NewFacade(p)

	s, err := f.FindPackagesByURIs(context.Background(), nil, []*url.URL{supported, unsupported})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, err := stream.Collect(context.Background(), s)
	if err != nil || len(got) != 1 {
		t.Fatalf("expected 1 package, got %d, err %v", len(got), err)
	}

	for _, call := range p.recorded() {
		if strings.Contains(call, "gopher") {
			t.Errorf("unsupported scheme must not reach the provider: %v", call)
		}
	}
}

func TestFindPackagesByURIsNilElementFails(t *testing.T) {
	supported, _ := url.Parse("nuget://feed.example.com/zlib")

	p := newFakeProvider()
	f := NewFacade(p)

	_, err := f.FindPackagesByURIs(context.Background(), nil, []*url.URL{supported, nil})
	if !errors.HasCode(err, errors.ErrCodeMissingArgument) {
		t.Fatalf("expected MISSING_ARGUMENT, got %v", err)
	}
	if p.callCount() != 0 {
		t.Errorf("provider must not be called when an element is nil: %v", p.recorded())
	}
}

func TestFindPackagesByFilesSessionProtocol(t *testing.T) {
	p := newFakeProvider()
	p.results["/a.nupkg"] = []provider.SoftwareIdentity{identity("a")}
	p.results["/b.nupkg"] = []provider.SoftwareIdentity{identity("b")}
	f := NewFacade(p)

	s, err := f.FindPackagesByFiles(context.Background(), nil, []string{"/a.nupkg", "/b.nupkg", "/c.deb"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, err := stream.Collect(context.Background(), s)
	if err != nil || len(got) != 2 {
		t.Fatalf("expected 2 packages, got %d, err %v", len(got), err)
	}

	starts, completes := 0, 0
	for _, call := range p.recorded() {
		if call == "start_find" {
			starts++
		}
		if strings.HasPrefix(call, "complete_find") {
			completes++
		}
		if strings.Contains(call, "/c.deb") {
			t.Errorf("unsupported extension must not reach the provider: %v", call)
		}
	}
	if starts != 1 || completes != 1 {
		t.Errorf("expected exactly one start and one complete, got %d/%d", starts, completes)
	}
}
