package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/alumniconnect/Backend-Alumni-Connect/src/models"
)

func newProject(category string) *models.Project {
	return &models.Project{
		Id:        primitive.NewObjectID(),
		Title:     "Campus Library Fund",
		Goal:      1000,
		Category:  category,
		CreatedBy: primitive.NewObjectID(),
	}
}

func TestDonateAccumulatesAndRecordsDonors(t *testing.T) {
	p := newProject("infrastructure")
	d1 := primitive.NewObjectID()
	d2 := primitive.NewObjectID()
	now := time.Now()

	require.NoError(t, Donate(p, d1, 400, now))
	require.NoError(t, Donate(p, d2, 700, now))

	// Overfunding past the goal is allowed.
	assert.Equal(t, int64(1100), p.Raised)
	require.Len(t, p.Donors, 2)
	assert.Equal(t, d1, p.Donors[0])
	assert.Equal(t, d2, p.Donors[1])
	require.Len(t, p.Donations, 2)
	assert.Equal(t, int64(400), p.Donations[0].Amount)
}

func TestRepeatDonorCountedOnce(t *testing.T) {
	p := newProject("scholarships")
	d := primitive.NewObjectID()

	require.NoError(t, Donate(p, d, 100, time.Now()))
	require.NoError(t, Donate(p, d, 250, time.Now()))

	assert.Equal(t, int64(350), p.Raised)
	assert.Len(t, p.Donors, 1)
	assert.Len(t, p.Donations, 2)
}

func TestDonateRejectsNonPositiveAmounts(t *testing.T) {
	p := newProject("scholarships")
	d := primitive.NewObjectID()

	for _, amount := range []int64{0, -5} {
		err := Donate(p, d, amount, time.Now())
		require.ErrorIs(t, err, ErrInvalidAmount)
	}

	assert.Equal(t, int64(0), p.Raised)
	assert.Empty(t, p.Donors)
	assert.Empty(t, p.Donations)
}

func TestStatsAggregatesAcrossProjects(t *testing.T) {
	shared := primitive.NewObjectID()
	p1 := newProject("scholarships")
	p2 := newProject("events")

	require.NoError(t, Donate(p1, shared, 500, time.Now()))
	require.NoError(t, Donate(p2, shared, 200, time.Now()))
	require.NoError(t, Donate(p2, primitive.NewObjectID(), 300, time.Now()))

	stats := Stats([]models.Project{*p1, *p2})

	assert.Equal(t, int64(1000), stats.TotalRaised)
	// The donor donating to both projects is counted once.
	assert.Equal(t, 2, stats.ActiveDonors)
	assert.Equal(t, 2, stats.ProjectsFunded)
	assert.Equal(t, 1, stats.ScholarshipsAwarded)
}

func TestStatsOnEmptySet(t *testing.T) {
	stats := Stats(nil)

	assert.Equal(t, int64(0), stats.TotalRaised)
	assert.Equal(t, 0, stats.ActiveDonors)
	assert.Equal(t, 0, stats.ProjectsFunded)
}

func TestChartsGroupByCategoryAndMonth(t *testing.T) {
	p1 := newProject("scholarships")
	p2 := newProject("")
	march := time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC)
	june := time.Date(2025, time.June, 2, 0, 0, 0, 0, time.UTC)

	require.NoError(t, Donate(p1, primitive.NewObjectID(), 150, march))
	require.NoError(t, Donate(p1, primitive.NewObjectID(), 50, june))
	require.NoError(t, Donate(p2, primitive.NewObjectID(), 75, june))

	charts := Charts([]models.Project{*p1, *p2})

	require.Len(t, charts.DonationData, 2)
	assert.Equal(t, CategorySlice{Category: "scholarships", Value: 200}, charts.DonationData[0])
	assert.Equal(t, CategorySlice{Category: "Other", Value: 75}, charts.DonationData[1])

	require.Len(t, charts.MonthlyData, 12)
	assert.Equal(t, MonthlyTotal{Month: "Mar", Amount: 150}, charts.MonthlyData[2])
	assert.Equal(t, MonthlyTotal{Month: "Jun", Amount: 125}, charts.MonthlyData[5])
	assert.Equal(t, MonthlyTotal{Month: "Jan", Amount: 0}, charts.MonthlyData[0])
}
