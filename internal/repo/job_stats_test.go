package repo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-gin-jobs-api/internal/domain"
)

func TestFillStatusCounts_AllKeysPresent(t *testing.T) {
	out := fillStatusCounts([]statusRow{
		{Status: domain.StatusPending, Count: 3},
		{Status: domain.StatusInterview, Count: 2},
	})
	assert.Equal(t, int64(3), out.Pending)
	assert.Equal(t, int64(2), out.Interview)
	assert.Equal(t, int64(0), out.Declined) // 缺失分组补 0
}

func TestFillStatusCounts_Empty(t *testing.T) {
	out := fillStatusCounts(nil)
	assert.Equal(t, domain.StatusCounts{}, out)
}

func TestFillStatusCounts_SumMatchesTotal(t *testing.T) {
	rows := []statusRow{
		{Status: domain.StatusPending, Count: 5},
		{Status: domain.StatusInterview, Count: 1},
		{Status: domain.StatusDeclined, Count: 4},
	}
	out := fillStatusCounts(rows)
	assert.Equal(t, int64(10), out.Pending+out.Interview+out.Declined)
}

func TestShapeMonthly_ReversesToAscending(t *testing.T) {
	// 查询结果按 (年, 月) 倒序，展示要升序
	rows := []monthRow{
		{Year: 2026, Month: 8, Count: 4},
		{Year: 2026, Month: 7, Count: 1},
		{Year: 2025, Month: 12, Count: 2},
	}
	out := shapeMonthly(rows)
	require.Len(t, out, 3)
	assert.Equal(t, domain.MonthlyCount{Date: "Dec 2025", Count: 2}, out[0])
	assert.Equal(t, domain.MonthlyCount{Date: "Jul 2026", Count: 1}, out[1])
	assert.Equal(t, domain.MonthlyCount{Date: "Aug 2026", Count: 4}, out[2])
}

func TestShapeMonthly_Empty(t *testing.T) {
	assert.Empty(t, shapeMonthly(nil))
}
