// file: internals/features/learning/quizzes/service/quiz_service_test.go
package service

import "testing"

func TestGradeSelection(t *testing.T) {
	tests := []struct {
		name     string
		correct  int
		selected int
		want     bool
	}{
		{"pilihan benar", 2, 2, true},
		{"pilihan salah", 2, 0, false},
		{"index nol benar", 0, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GradeSelection(tt.correct, tt.selected); got != tt.want {
				t.Errorf("GradeSelection(%d, %d) = %v, want %v", tt.correct, tt.selected, got, tt.want)
			}
		})
	}
}

func TestComputeScorePercent(t *testing.T) {
	tests := []struct {
		name    string
		correct int
		total   int
		want    int
	}{
		{"semua benar", 10, 10, 100},
		{"semua salah", 0, 10, 0},
		{"setengah", 5, 10, 50},
		{"pembulatan ke atas", 2, 3, 67},
		{"pembulatan ke bawah", 1, 3, 33},
		{"satu soal benar", 1, 1, 100},
		{"total nol tidak panic", 0, 0, 0},
		{"correct negatif dijaga", -1, 5, 0},
		{"correct melebihi total", 7, 5, 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ComputeScorePercent(tt.correct, tt.total); got != tt.want {
				t.Errorf("ComputeScorePercent(%d, %d) = %d, want %d", tt.correct, tt.total, got, tt.want)
			}
		})
	}
}
