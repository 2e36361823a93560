package risk

import (
	"math"
	"testing"
	"time"

	db "github.com/maizecandy/seller-help/db/sqlc"
	"github.com/maizecandy/seller-help/util"
	"github.com/stretchr/testify/require"
)

func ev(riskType, kind string, createdAt time.Time) db.Evidence {
	return db.Evidence{
		RiskType:     riskType,
		EvidenceKind: kind,
		CreatedAt:    createdAt,
	}
}

func TestScoreSingleReturnScamImage(t *testing.T) {
	now := time.Now()

	score, level := Score([]db.Evidence{ev(RiskTypeReturnScam, EvidenceKindImage, now)}, now)
	require.Equal(t, int32(5), score)
	require.Equal(t, LevelLow, level)
}

func TestScoreFiveBlackmailVideos(t *testing.T) {
	now := time.Now()

	evidence := []db.Evidence{}
	for i := 0; i < 5; i++ {
		evidence = append(evidence, ev(RiskTypeBlackmail, EvidenceKindVideo, now.AddDate(0, 0, -i)))
	}

	score, level := Score(evidence, now)
	require.Equal(t, int32(40), score)
	require.Equal(t, LevelMedium, level)
}

func TestScoreEmptyEvidence(t *testing.T) {
	score, level := Score(nil, time.Now())
	require.Equal(t, int32(0), score)
	require.Equal(t, LevelLow, level)
}

func TestDecayFactorBoundaries(t *testing.T) {
	day := 24 * time.Hour

	testCases := []struct {
		name string
		age  time.Duration
		want float64
	}{
		{name: "Fresh", age: 0, want: 1.0},
		{name: "Exactly 30 days", age: 30 * day, want: 1.0},
		{name: "31 days", age: 31 * day, want: math.Exp(-0.01)},
		{name: "100 days", age: 100 * day, want: math.Exp(-0.70)},
		{name: "Exactly 180 days", age: 180 * day, want: math.Exp(-1.50)},
		{name: "181 days", age: 181 * day, want: 0},
		{name: "One year", age: 365 * day, want: 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			require.InDelta(t, tc.want, decayFactor(tc.age), 1e-6)
		})
	}
}

func TestScoreOldEvidenceContributesNothing(t *testing.T) {
	now := time.Now()

	// 超过180天的证据保留在历史里，但对分值零贡献
	evidence := []db.Evidence{
		ev(RiskTypeReturnScam, EvidenceKindVideo, now.AddDate(0, 0, -200)),
		ev(RiskTypeBlackmail, EvidenceKindVideo, now.AddDate(-1, 0, 0)),
	}

	score, level := Score(evidence, now)
	require.Equal(t, int32(0), score)
	require.Equal(t, LevelLow, level)
}

func TestScoreCappedAt100(t *testing.T) {
	now := time.Now()

	evidence := []db.Evidence{}
	for i := 0; i < 50; i++ {
		evidence = append(evidence, ev(RiskTypeReturnScam, EvidenceKindVideo, now))
	}

	score, level := Score(evidence, now)
	require.Equal(t, int32(100), score)
	require.Equal(t, LevelCritical, level)
}

func TestLevelBoundariesStrict(t *testing.T) {
	now := time.Now()

	// unknown×image 每条正好贡献1分，精确构造边界分值
	build := func(n int) []db.Evidence {
		evidence := make([]db.Evidence, n)
		for i := range evidence {
			evidence[i] = ev(RiskTypeUnknown, EvidenceKindImage, now)
		}
		return evidence
	}

	testCases := []struct {
		count     int
		wantScore int32
		wantLevel Level
	}{
		{count: 30, wantScore: 30, wantLevel: LevelLow},
		{count: 31, wantScore: 31, wantLevel: LevelMedium},
		{count: 60, wantScore: 60, wantLevel: LevelMedium},
		{count: 61, wantScore: 61, wantLevel: LevelHigh},
		{count: 80, wantScore: 80, wantLevel: LevelHigh},
		{count: 81, wantScore: 81, wantLevel: LevelCritical},
	}

	for _, tc := range testCases {
		score, level := Score(build(tc.count), now)
		require.Equal(t, tc.wantScore, score)
		require.Equal(t, tc.wantLevel, level)
	}
}

func TestScoreDeterministic(t *testing.T) {
	now := time.Now()

	evidence := []db.Evidence{
		ev(RiskTypeRefund, EvidenceKindText, now.AddDate(0, 0, -10)),
		ev(RiskTypeOnlyRefund, EvidenceKindImage, now.AddDate(0, 0, -45)),
		ev(RiskTypeFakeReview, EvidenceKindVideo, now.AddDate(0, 0, -90)),
	}

	score1, level1 := Score(evidence, now)
	score2, level2 := Score(evidence, now)
	require.Equal(t, score1, score2)
	require.Equal(t, level1, level2)

	// 与插入顺序无关
	reversed := []db.Evidence{evidence[2], evidence[1], evidence[0]}
	score3, level3 := Score(reversed, now)
	require.Equal(t, score1, score3)
	require.Equal(t, level1, level3)
}

func TestScoreAlwaysInRange(t *testing.T) {
	now := time.Now()
	riskTypes := []string{RiskTypeRefund, RiskTypeOnlyRefund, RiskTypeReturnScam, RiskTypeBlackmail, RiskTypeFakeReview, RiskTypeUnknown}
	kinds := []string{EvidenceKindText, EvidenceKindImage, EvidenceKindVideo, EvidenceKindUnknown}

	for i := 0; i < 100; i++ {
		n := int(util.RandomInt(0, 60))
		evidence := make([]db.Evidence, n)
		for j := range evidence {
			evidence[j] = ev(
				riskTypes[util.RandomInt(0, int64(len(riskTypes)-1))],
				kinds[util.RandomInt(0, int64(len(kinds)-1))],
				now.AddDate(0, 0, -int(util.RandomInt(0, 400))),
			)
		}

		score, _ := Score(evidence, now)
		require.GreaterOrEqual(t, score, int32(0))
		require.LessOrEqual(t, score, int32(100))
	}
}

func TestUnknownTypesFallBackToDefaultWeights(t *testing.T) {
	now := time.Now()

	// 未收录的类别按 unknown 权重计算
	score, _ := Score([]db.Evidence{ev("something_new", "hologram", now)}, now)
	require.Equal(t, int32(1), score)
}
