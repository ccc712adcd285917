package profile

import "testing"

func TestGet_Known(t *testing.T) {
	p := Get("gallery")
	if p.Name != "gallery" || !p.Placeholders || p.Upscale != 256 {
		t.Errorf("unexpected gallery profile: %+v", p)
	}
}

func TestGet_FallsBack(t *testing.T) {
	p := Get("no-such-profile")
	if p.Name != "no-such-profile" {
		t.Errorf("requested name not preserved: %q", p.Name)
	}
	if p.BaseSize != Get("feed").BaseSize {
		t.Error("fallback did not use feed defaults")
	}
}

func TestNames_AllResolve(t *testing.T) {
	for _, name := range Names() {
		if Get(name).Name != name {
			t.Errorf("profile %q does not resolve to itself", name)
		}
	}
}
