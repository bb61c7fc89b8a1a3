package constants

import "strings"

// Dua jalur mapel tetap pada deployment ini. Pemetaan kelas → jalur sengaja
// berupa tabel data (bukan branching) supaya penambahan kelas/jalur cukup
// menambah entri di sini.
const (
	TrackEkonomi  = "ekonomi"
	TrackGeografi = "geografi"
)

var ClassTrackMap = map[string]string{
	// Jalur ekonomi
	"X IPS 1":   TrackEkonomi,
	"X IPS 2":   TrackEkonomi,
	"XI IPS 1":  TrackEkonomi,
	"XI IPS 2":  TrackEkonomi,
	"XII IPS 1": TrackEkonomi,
	"XII IPS 2": TrackEkonomi,

	// Jalur geografi
	"X IIS 1":   TrackGeografi,
	"XI IIS 1":  TrackGeografi,
	"XII IIS 1": TrackGeografi,
}

// ResolveSubjectTrack memetakan label kelas ke jalur mapel.
// Label tak dikenal mengembalikan "" (bukan error) — total untuk semua input.
func ResolveSubjectTrack(classLabel string) string {
	return ClassTrackMap[strings.TrimSpace(classLabel)]
}

// ClassLabelsForTrack mengembalikan semua label kelas milik satu jalur.
func ClassLabelsForTrack(track string) []string {
	labels := make([]string, 0, len(ClassTrackMap))
	for label, t := range ClassTrackMap {
		if t == track {
			labels = append(labels, label)
		}
	}
	return labels
}

func IsValidTrack(track string) bool {
	return track == TrackEkonomi || track == TrackGeografi
}
