package session

import (
	"sync"
	"testing"

	"github.com/wonny/fintel/backend/internal/profile"
)

func TestStorePutGet(t *testing.T) {
	store := NewStore()

	sess := New(profile.Profile{Label: profile.LabelNeutral, RiskScore: 0.5}, []string{"금리"})
	store.Put(sess)

	got, ok := store.Get(sess.ID)
	if !ok {
		t.Fatal("session not found after Put")
	}
	if got.Profile.Label != profile.LabelNeutral {
		t.Errorf("Label = %s, want 중립형", got.Profile.Label)
	}

	if _, ok := store.Get("missing"); ok {
		t.Error("expected miss for unknown id")
	}
}

// 재제출은 세션을 통째로 교체한다
func TestStoreReplaceWholesale(t *testing.T) {
	store := NewStore()

	first := New(profile.Profile{Label: profile.LabelConservative, RiskScore: 0.1, InterestTags: []string{"채권"}}, []string{"금리"})
	store.Put(first)

	second := &Session{
		ID:       first.ID,
		Profile:  profile.Profile{Label: profile.LabelAggressive, RiskScore: 0.9},
		Keywords: []string{"AI"},
	}
	store.Put(second)

	got, _ := store.Get(first.ID)
	if got.Profile.Label != profile.LabelAggressive {
		t.Errorf("Label = %s, want 공격형 after replace", got.Profile.Label)
	}
	if len(got.Profile.InterestTags) != 0 {
		t.Errorf("old interest tags leaked into replaced session: %v", got.Profile.InterestTags)
	}
	if store.Len() != 1 {
		t.Errorf("Len = %d, want 1", store.Len())
	}
}

// 조회로 받은 세션은 복사본이다 — 이후의 SetThemes가 보이지 않는다
func TestStoreGetReturnsCopy(t *testing.T) {
	store := NewStore()
	sess := New(profile.Profile{Label: profile.LabelNeutral}, []string{"금리"})
	store.Put(sess)

	got, _ := store.Get(sess.ID)
	store.SetThemes(sess.ID, []string{"AI"})
	if len(got.Themes) != 0 {
		t.Errorf("earlier copy picked up SetThemes: %v", got.Themes)
	}

	updated, _ := store.Get(sess.ID)
	if len(updated.Themes) != 1 || updated.Themes[0] != "AI" {
		t.Errorf("Themes = %v, want [AI]", updated.Themes)
	}
}

// go test -race 대상: 추천 갱신과 챗 조회가 같은 세션에 동시 접근한다
func TestStoreConcurrentGetAndSetThemes(t *testing.T) {
	store := NewStore()
	sess := New(profile.Profile{RiskScore: 0.5}, []string{"금리"})
	store.Put(sess)

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			for j := 0; j < 1000; j++ {
				store.SetThemes(sess.ID, []string{"AI", "금리"})
			}
		}()
		go func() {
			defer wg.Done()
			for j := 0; j < 1000; j++ {
				got, ok := store.Get(sess.ID)
				if ok && got.Themes != nil && len(got.Themes) != 2 {
					t.Errorf("Themes = %v", got.Themes)
					return
				}
			}
		}()
	}
	wg.Wait()
}

func TestStoreDelete(t *testing.T) {
	store := NewStore()
	sess := New(profile.Profile{}, nil)
	store.Put(sess)

	store.Delete(sess.ID)
	if _, ok := store.Get(sess.ID); ok {
		t.Error("session still present after Delete")
	}
}

func TestNewGeneratesUniqueIDs(t *testing.T) {
	a := New(profile.Profile{}, nil)
	b := New(profile.Profile{}, nil)
	if a.ID == b.ID {
		t.Error("expected unique session ids")
	}
}
