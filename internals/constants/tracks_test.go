// file: internals/constants/tracks_test.go
package constants

import "testing"

func TestResolveSubjectTrack(t *testing.T) {
	tests := []struct {
		name       string
		classLabel string
		want       string
	}{
		{"kelas IPS dapat ekonomi", "X IPS 1", TrackEkonomi},
		{"kelas IPS lain juga ekonomi", "XII IPS 2", TrackEkonomi},
		{"kelas IIS dapat geografi", "XI IIS 1", TrackGeografi},
		{"kelas tidak terdaftar", "X MIPA 1", ""},
		{"label kosong", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ResolveSubjectTrack(tt.classLabel); got != tt.want {
				t.Errorf("ResolveSubjectTrack(%q) = %q, want %q", tt.classLabel, got, tt.want)
			}
		})
	}
}

func TestEveryMappedClassResolvesToItsTrack(t *testing.T) {
	for classLabel, track := range ClassTrackMap {
		if got := ResolveSubjectTrack(classLabel); got != track {
			t.Errorf("ResolveSubjectTrack(%q) = %q, want %q", classLabel, got, track)
		}
	}
}

func TestClassLabelsForTrack(t *testing.T) {
	ekonomi := ClassLabelsForTrack(TrackEkonomi)
	geografi := ClassLabelsForTrack(TrackGeografi)
	if len(ekonomi) == 0 || len(geografi) == 0 {
		t.Fatalf("kedua track harus punya kelas: ekonomi=%d geografi=%d", len(ekonomi), len(geografi))
	}

	// Partisi: tidak ada kelas yang muncul di dua track sekaligus.
	seen := map[string]bool{}
	for _, label := range ekonomi {
		seen[label] = true
	}
	for _, label := range geografi {
		if seen[label] {
			t.Errorf("kelas %q muncul di dua track", label)
		}
	}
}

func TestIsValidTrack(t *testing.T) {
	if !IsValidTrack(TrackEkonomi) || !IsValidTrack(TrackGeografi) {
		t.Error("track bawaan harus valid")
	}
	if IsValidTrack("sejarah") {
		t.Error("track di luar daftar harus invalid")
	}
}
