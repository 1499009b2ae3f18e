package provider

import "testing"

func TestReferenceZero(t *testing.T) {
	var r Reference
	if !r.IsZero() {
		t.Error("zero Reference should report IsZero")
	}

	r = NewReference("pkg:nuget/zlib@1.3")
	if r.IsZero() {
		t.Error("constructed Reference should not report IsZero")
	}
	if r.Value() != "pkg:nuget/zlib@1.3" {
		t.Errorf("unexpected value %q", r.Value())
	}
	if r.String() != r.Value() {
		t.Error("String should match Value")
	}
}

func TestVersionRangeIsZero(t *testing.T) {
	tests := []struct {
		name string
		v    VersionRange
		want bool
	}{
		{"empty", VersionRange{}, true},
		{"required", VersionRange{Required: "1.0"}, false},
		{"minimum", VersionRange{Minimum: "1.0"}, false},
		{"maximum", VersionRange{Maximum: "2.0"}, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.v.IsZero(); got != tc.want {
				t.Errorf("IsZero() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestSinkFuncAdapters(t *testing.T) {
	var pkgs int
	ps := PackageSinkFunc(func(p SoftwareIdentity) bool {
		pkgs++
		return pkgs < 2
	})
	if !ps.Yield(SoftwareIdentity{Name: "a"}) {
		t.Error("first yield should continue")
	}
	if ps.Yield(SoftwareIdentity{Name: "b"}) {
		t.Error("second yield should stop")
	}

	var srcs int
	ss := SourceSinkFunc(func(s PackageSource) bool {
		srcs++
		return true
	})
	ss.Yield(PackageSource{Name: "feed"})
	if srcs != 1 {
		t.Errorf("expected 1 source yielded, got %d", srcs)
	}
}
