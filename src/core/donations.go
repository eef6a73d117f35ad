package core

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/alumniconnect/Backend-Alumni-Connect/src/apperr"
	"github.com/alumniconnect/Backend-Alumni-Connect/src/models"
)

// ErrInvalidAmount rejects zero and negative donations.
var ErrInvalidAmount = apperr.New(apperr.CodeInvalid, "Invalid donation amount")

// Donate accumulates amount on the project, records the donor in the
// deduplicated donor set, and appends an immutable donation record.
// Overfunding past the goal is allowed.
func Donate(project *models.Project, donor primitive.ObjectID, amount int64, now time.Time) error {
	if amount <= 0 {
		return ErrInvalidAmount
	}

	project.Raised += amount
	if !project.HasDonor(donor) {
		project.Donors = append(project.Donors, donor)
	}
	project.Donations = append(project.Donations, models.Donation{
		Donor:  donor,
		Amount: amount,
		Date:   now,
	})
	return nil
}

// ScholarshipCategory is the grouping key counted as scholarships in stats.
const ScholarshipCategory = "scholarships"

// DonationStats are the aggregate figures shown on the donations dashboard.
type DonationStats struct {
	TotalRaised         int64 `json:"totalRaised"`
	ActiveDonors        int   `json:"activeDonors"`
	ProjectsFunded      int   `json:"projectsFunded"`
	ScholarshipsAwarded int   `json:"scholarshipsAwarded"`
}

// Stats derives aggregate figures from the full project set. Nothing is
// stored; callers scan on demand.
func Stats(projects []models.Project) DonationStats {
	stats := DonationStats{ProjectsFunded: len(projects)}

	donors := make(map[primitive.ObjectID]struct{})
	for _, p := range projects {
		stats.TotalRaised += p.Raised
		for _, d := range p.Donors {
			donors[d] = struct{}{}
		}
		if p.Category == ScholarshipCategory {
			stats.ScholarshipsAwarded++
		}
	}
	stats.ActiveDonors = len(donors)
	return stats
}

// CategorySlice is one slice of the category distribution chart.
type CategorySlice struct {
	Category string `json:"category"`
	Value    int64  `json:"value"`
}

// MonthlyTotal is one bar of the monthly donation trend chart.
type MonthlyTotal struct {
	Month  string `json:"month"`
	Amount int64  `json:"amount"`
}

// ChartData feeds the dashboard charts.
type ChartData struct {
	DonationData []CategorySlice `json:"donationData"`
	MonthlyData  []MonthlyTotal  `json:"monthlyData"`
}

var monthNames = []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

// Charts derives the category distribution of raised funds and the monthly
// donation totals from the individual donation records.
func Charts(projects []models.Project) ChartData {
	byCategory := make(map[string]int64)
	order := make([]string, 0)
	monthly := make([]int64, 12)

	for _, p := range projects {
		category := p.Category
		if category == "" {
			category = "Other"
		}
		if _, seen := byCategory[category]; !seen {
			order = append(order, category)
		}
		byCategory[category] += p.Raised

		for _, d := range p.Donations {
			monthly[d.Date.Month()-1] += d.Amount
		}
	}

	data := ChartData{
		DonationData: make([]CategorySlice, 0, len(order)),
		MonthlyData:  make([]MonthlyTotal, 12),
	}
	for _, category := range order {
		data.DonationData = append(data.DonationData, CategorySlice{Category: category, Value: byCategory[category]})
	}
	for i, amount := range monthly {
		data.MonthlyData[i] = MonthlyTotal{Month: monthNames[i], Amount: amount}
	}
	return data
}
