package catalog

import "testing"

func TestLevelRangesAreContiguous(t *testing.T) {
	all := Levels()
	if len(all) == 0 {
		t.Fatal("level table is empty")
	}

	if all[0].LessonStart != 1 {
		t.Errorf("first level starts at %d, want 1", all[0].LessonStart)
	}

	for i := 1; i < len(all); i++ {
		prev, cur := all[i-1], all[i]
		if cur.LessonStart != prev.LessonEnd+1 {
			t.Errorf("level %d starts at %d, want %d (gap or overlap after level %d)",
				cur.ID, cur.LessonStart, prev.LessonEnd+1, prev.ID)
		}
	}

	last := all[len(all)-1]
	if last.LessonEnd != TotalLessons() {
		t.Errorf("last lesson id %d != TotalLessons() %d", last.LessonEnd, TotalLessons())
	}
}

func TestGetLevel(t *testing.T) {
	tests := []struct {
		name    string
		id      int
		wantErr bool
	}{
		{name: "first level", id: 1},
		{name: "last level", id: LevelCount()},
		{name: "zero id", id: 0, wantErr: true},
		{name: "past the end", id: LevelCount() + 1, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			level, err := GetLevel(tt.id)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("GetLevel(%d) expected error, got %+v", tt.id, level)
				}
				return
			}
			if err != nil {
				t.Fatalf("GetLevel(%d) unexpected error: %v", tt.id, err)
			}
			if level.ID != tt.id {
				t.Errorf("GetLevel(%d) returned level %d", tt.id, level.ID)
			}
		})
	}
}

func TestLevelByLesson(t *testing.T) {
	tests := []struct {
		name      string
		lessonID  int
		wantLevel int
		wantErr   bool
	}{
		{name: "first lesson of level 1", lessonID: 1, wantLevel: 1},
		{name: "inside level 4 range", lessonID: 55, wantLevel: 4},
		{name: "level 6 boundary start", lessonID: 76, wantLevel: 6},
		{name: "level 6 boundary end", lessonID: 84, wantLevel: 6},
		{name: "level 9 range", lessonID: 110, wantLevel: 9},
		{name: "zero lesson", lessonID: 0, wantErr: true},
		{name: "beyond last lesson", lessonID: TotalLessons() + 1, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			level, err := LevelByLesson(tt.lessonID)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("LevelByLesson(%d) expected error", tt.lessonID)
				}
				return
			}
			if err != nil {
				t.Fatalf("LevelByLesson(%d) unexpected error: %v", tt.lessonID, err)
			}
			if level.ID != tt.wantLevel {
				t.Errorf("LevelByLesson(%d) = level %d, want %d", tt.lessonID, level.ID, tt.wantLevel)
			}
		})
	}
}

func TestGetLessonFallsBackToDefaults(t *testing.T) {
	// Lesson 3 is in range but has no dedicated metadata entry
	lesson, err := GetLesson(3)
	if err != nil {
		t.Fatalf("GetLesson(3) unexpected error: %v", err)
	}
	if lesson.XPReward != defaultXPReward || lesson.CoinReward != defaultCoinReward {
		t.Errorf("default rewards = (%d, %d), want (%d, %d)",
			lesson.XPReward, lesson.CoinReward, defaultXPReward, defaultCoinReward)
	}

	if _, err := GetLesson(9999); err == nil {
		t.Error("GetLesson(9999) expected error for out-of-range id")
	}
}
