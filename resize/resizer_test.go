package resize

import "testing"

func TestPassThroughResizer(t *testing.T) {
	in := NewSize(1920, 1080)
	out, err := NewPassThroughResizer().OutputSize(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != in {
		t.Errorf("got %dx%d, want input unchanged", out.Major(), out.Minor())
	}
}

func TestExactResizerIgnoresInput(t *testing.T) {
	r := NewExactResizer(720, 1280)
	inputs := []Size{
		NewSize(1920, 1080),
		NewSize(320, 240),
		NewExactSize(1080, 1920),
	}
	for _, in := range inputs {
		out, err := r.OutputSize(in)
		if err != nil {
			t.Fatalf("input %dx%d: unexpected error: %v", in.Major(), in.Minor(), err)
		}
		if out.Major() != 1280 || out.Minor() != 720 {
			t.Errorf("input %dx%d: got %dx%d, want 1280x720",
				in.Major(), in.Minor(), out.Major(), out.Minor())
		}
	}
}

func TestExactResizerRejectsNonPositiveTarget(t *testing.T) {
	if _, err := NewExactResizer(1280, 0).OutputSize(NewSize(1920, 1080)); err == nil {
		t.Error("expected error for zero target dimension")
	}
}

func TestFractionResizer(t *testing.T) {
	tests := []struct {
		name         string
		fraction     float64
		in           Size
		major, minor int
		wantErr      bool
	}{
		{"half", 0.5, NewSize(1920, 1080), 960, 540, false},
		{"identity", 1.0, NewSize(1920, 1080), 1920, 1080, false},
		{"round half up", 0.5, NewSize(1919, 1079), 960, 540, false},
		{"collapses to zero", 0.0001, NewSize(100, 100), 0, 0, true},
		{"fraction zero", 0, NewSize(1920, 1080), 0, 0, true},
		{"fraction above one", 1.5, NewSize(1920, 1080), 0, 0, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			out, err := NewFractionResizer(tc.fraction).OutputSize(tc.in)
			if tc.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if out.Major() != tc.major || out.Minor() != tc.minor {
				t.Errorf("got %dx%d, want %dx%d", out.Major(), out.Minor(), tc.major, tc.minor)
			}
		})
	}
}

func TestAtMostResizer(t *testing.T) {
	tests := []struct {
		name         string
		r            AtMostResizer
		in           Size
		major, minor int
		wantErr      bool
	}{
		{"within cap passes through", NewAtMostResizer(480), NewSize(640, 480), 640, 480, false},
		{"scales to cap", NewAtMostResizer(720), NewSize(1920, 1080), 1280, 720, false},
		{"wide aspect", NewAtMostResizer(480), NewSize(1920, 800), 1152, 480, false},
		{"odd major rounded down to even", NewAtMostResizer(500), NewSize(1001, 999), 500, 500, false},
		{"both caps, major binds", NewAtMostResizerWithMajor(720, 1000), NewSize(1920, 1080), 1000, 562, false},
		{"both caps, within", NewAtMostResizerWithMajor(720, 2000), NewSize(640, 480), 640, 480, false},
		{"zero input", NewAtMostResizer(480), NewSize(1920, 0), 0, 0, true},
		{"zero cap", NewAtMostResizer(0), NewSize(1920, 1080), 0, 0, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			out, err := tc.r.OutputSize(tc.in)
			if tc.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if out.Major() != tc.major || out.Minor() != tc.minor {
				t.Errorf("got %dx%d, want %dx%d", out.Major(), out.Minor(), tc.major, tc.minor)
			}
		})
	}
}

func TestAtMostResizerPreservesAspectRatio(t *testing.T) {
	inputs := []Size{
		NewSize(3840, 1610),
		NewSize(2560, 1070),
		NewSize(1920, 803),
	}
	r := NewAtMostResizer(480)
	for _, in := range inputs {
		out, err := r.OutputSize(in)
		if err != nil {
			t.Fatalf("%dx%d: unexpected error: %v", in.Major(), in.Minor(), err)
		}
		origRatio := float64(in.Major()) / float64(in.Minor())
		newRatio := float64(out.Major()) / float64(out.Minor())
		diff := (newRatio - origRatio) / origRatio
		if diff < -0.01 || diff > 0.01 {
			t.Errorf("%dx%d -> %dx%d: aspect ratio changed by %.2f%%",
				in.Major(), in.Minor(), out.Major(), out.Minor(), diff*100)
		}
		if out.Minor() > in.Minor() {
			t.Errorf("%dx%d -> %dx%d: upscaled minor axis",
				in.Major(), in.Minor(), out.Major(), out.Minor())
		}
	}
}
