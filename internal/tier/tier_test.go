package tier

import (
	"reflect"
	"testing"
)

func TestClassify_IronLowestDivision(t *testing.T) {
	for r := 0; r <= 149; r++ {
		got := Classify(r, 5000)
		if got.Key != Iron || got.Division != "IV" || got.Score != r {
			t.Fatalf("Classify(%d, 5000) = %+v, want iron IV score %d", r, got, r)
		}
	}
}

func TestClassify_Bands(t *testing.T) {
	tests := []struct {
		rating   int
		key      Key
		division string
		score    int
	}{
		{150, Iron, "III", 0},
		{449, Iron, "II", 149},
		{599, Iron, "I", 149},
		{600, Bronze, "IV", 0},
		{1399, Bronze, "I", 199},
		{1400, Silver, "IV", 0},
		{2399, Silver, "I", 249},
		{2400, Gold, "IV", 0},
		{3000, Gold, "II", 0},
		{3600, Platinum, "IV", 0},
		{4999, Platinum, "I", 349},
		{5000, Diamond, "IV", 0},
		{6399, Diamond, "I", 349},
		{6400, Meteorite, "", 0},
		{7099, Meteorite, "", 699},
		{7100, Mithril, "", 0},
		{999999, Mithril, "", 992899},
	}

	for _, tt := range tests {
		got := Classify(tt.rating, 5000)
		if got.Key != tt.key || got.Division != tt.division || got.Score != tt.score {
			t.Errorf("Classify(%d, 5000) = {%s %q %d}, want {%s %q %d}",
				tt.rating, got.Key, got.Division, got.Score, tt.key, tt.division, tt.score)
		}
	}
}

func TestClassify_RankOverrides(t *testing.T) {
	tests := []struct {
		rank int
		want Key
	}{
		{1, Eternity},
		{30, Eternity},
		{31, Demigod},
		{1000, Demigod},
		{1001, Gold},
		{UnknownRank, Gold},
	}

	for _, tt := range tests {
		got := Classify(2500, tt.rank)
		if got.Key != tt.want {
			t.Errorf("Classify(2500, %d).Key = %s, want %s", tt.rank, got.Key, tt.want)
		}
	}
}

func TestClassify_TopTierScore(t *testing.T) {
	got := Classify(8123, 12)
	want := Descriptor{Key: Eternity, Name: "이터니티", Score: 323, ScoreText: "323점"}
	if got != want {
		t.Errorf("Classify(8123, 12) = %+v, want %+v", got, want)
	}

	got = Classify(7900, 500)
	if got.Key != Demigod || got.Score != 100 || got.Division != "" {
		t.Errorf("Classify(7900, 500) = %+v, want demigod score 100", got)
	}
}

func TestClassify_DisplayName(t *testing.T) {
	got := Classify(2750, UnknownRank)
	if got.Name != "골드 III" {
		t.Errorf("Name = %q, want %q", got.Name, "골드 III")
	}
	if got.ScoreText != "50점" {
		t.Errorf("ScoreText = %q, want %q", got.ScoreText, "50점")
	}
}

func TestClassify_NegativeRatingIsUnranked(t *testing.T) {
	got := Classify(-1, UnknownRank)
	if got.Key != Unrank || got.Score != 0 {
		t.Errorf("Classify(-1) = %+v, want unrank with score 0", got)
	}
}

func TestClassify_Idempotent(t *testing.T) {
	for _, r := range []int{0, 599, 600, 4321, 7100, 90000} {
		a, b := Classify(r, 2000), Classify(r, 2000)
		if !reflect.DeepEqual(a, b) {
			t.Errorf("Classify(%d) not deterministic: %+v vs %+v", r, a, b)
		}
	}
}

func TestClassifier_CustomDemigodCutoff(t *testing.T) {
	c := NewClassifier(30, 300)
	if got := c.Classify(7000, 300); got.Key != Demigod {
		t.Errorf("rank 300 = %s, want demigod", got.Key)
	}
	if got := c.Classify(7000, 301); got.Key != Meteorite {
		t.Errorf("rank 301 = %s, want meteorite", got.Key)
	}
}

func TestBandsAreContiguous(t *testing.T) {
	next := 0
	for _, m := range majors {
		for _, b := range m.bands {
			if b.low != next {
				t.Fatalf("%s band starts at %d, want %d", m.key, b.low, next)
			}
			if b.high < 0 {
				return
			}
			next = b.high + 1
		}
	}
	t.Fatal("top band is bounded")
}

func TestAssetPath(t *testing.T) {
	if got := AssetPath(Mithril); got != "/images/RankTier/mithril.png" {
		t.Errorf("AssetPath(mithril) = %q", got)
	}
}
