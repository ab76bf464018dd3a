package seed

import (
	"log/slog"
	"math/rand"
	"time"

	"github.com/shopspring/decimal"

	"github.com/opshub-dev/opshub/backend/internal/availability"
	"github.com/opshub-dev/opshub/backend/internal/domain"
	"github.com/opshub-dev/opshub/backend/internal/repository"
)

var demoClients = []string{
	"Northside Dental", "Harbour Cafe", "GreenLeaf Landscaping",
	"Budget Auto Repairs", "Lakeview Physio", "Corner Store Mitchell St",
}

var demoLeads = []struct {
	Name   string
	Email  string
	Phone  string
	Source string
}{
	{"Ava Robinson", "ava.robinson@example.com", "0400 111 222", "Indeed"},
	{"Liam Chen", "liam.chen@example.com", "0400 333 444", "Referral"},
	{"Sophie Taylor", "sophie.taylor@example.com", "0400 555 666", "Facebook"},
	{"Noah Patel", "noah.patel@example.com", "0400 777 888", "Walk-in"},
}

var demoTasks = []string{
	"Restock cleaning supplies",
	"Call back Harbour Cafe about the quote",
	"Update the public holiday roster",
	"Chase the overdue invoice from Budget Auto",
	"Book the van for a service",
	"Prepare next month's marketing flyer",
}

// SeedDemoData fills an empty database with a believable month of
// activity. It refuses to run twice: existing transactions mean the
// database is in use.
func SeedDemoData(repo *repository.Repository, ownerID int64) {
	count, err := repo.CountTransactions()
	if err != nil {
		slog.Error("failed to check for existing transactions", "error", err)
		return
	}
	if count > 0 {
		slog.Info("database already contains transactions, skipping demo seed")
		return
	}

	seedTransactions(repo, ownerID)
	seedCosts(repo, ownerID)
	seedTasks(repo, ownerID)
	seedLeads(repo)

	slog.Info("demo data seeded")
}

func seedTransactions(repo *repository.Repository, ownerID int64) {
	now := time.Now()
	cnt := 0

	for i := 0; i < 18; i++ {
		date := now.AddDate(0, 0, -rand.Intn(28))

		txn := &domain.Transaction{
			Type:          domain.TransactionInflow,
			Category:      domain.CategoryClientPayment,
			AmountNet:     decimal.NewFromInt(int64(150 + rand.Intn(1200))),
			GSTApplied:    true,
			PaymentMethod: domain.PaymentBankTransferBusiness,
			Description:   "Weekly service",
			ClientName:    demoClients[rand.Intn(len(demoClients))],
			Date:          date,
			CreatedBy:     ownerID,
		}
		txn.ComputeGross()

		if err := repo.CreateTransaction(txn); err != nil {
			slog.Error("failed to insert demo transaction", "error", err)
			continue
		}
		cnt++
	}

	outflows := []struct {
		Category domain.TransactionCategory
		Amount   int64
		Desc     string
	}{
		{domain.CategoryMarketing, 320, "Facebook ads"},
		{domain.CategoryFranchiseFee, 950, "Monthly franchise fee"},
		{domain.CategoryTax, 410, "BAS instalment"},
		{domain.CategoryOther, 180, "Fuel"},
	}
	for _, o := range outflows {
		txn := &domain.Transaction{
			Type:          domain.TransactionOutflow,
			Category:      o.Category,
			AmountNet:     decimal.NewFromInt(o.Amount),
			PaymentMethod: domain.PaymentCreditDebitCard,
			Description:   o.Desc,
			Date:          now.AddDate(0, 0, -rand.Intn(28)),
			CreatedBy:     ownerID,
		}
		txn.ComputeGross()

		if err := repo.CreateTransaction(txn); err != nil {
			slog.Error("failed to insert demo transaction", "error", err)
			continue
		}
		cnt++
	}

	slog.Info("demo transactions inserted", "count", cnt)
}

func seedCosts(repo *repository.Repository, ownerID int64) {
	month := time.Now().Format("2006-01")
	hour := domain.CostUnitHour
	task := domain.CostUnitTask
	expected := int32(120)
	actual := int32(96)
	expectedTasks := int32(40)
	actualTasks := int32(31)

	costs := []*domain.Cost{
		{
			Name:     "Van lease",
			Type:     domain.CostTypeFixed,
			Category: domain.CategoryOther,
			Amount:   decimal.NewFromInt(650),
			Month:    month,
		},
		{
			Name:     "Insurance",
			Type:     domain.CostTypeFixed,
			Category: domain.CategoryOther,
			Amount:   decimal.NewFromInt(210),
			Month:    month,
		},
		{
			Name:           "Casual wages",
			Type:           domain.CostTypeVariable,
			Category:       domain.CategoryOther,
			Amount:         decimal.NewFromFloat(32.5),
			Unit:           &hour,
			ExpectedVolume: &expected,
			ActualVolume:   &actual,
			Month:          month,
		},
		{
			Name:           "Consumables",
			Type:           domain.CostTypeVariable,
			Category:       domain.CategoryOther,
			Amount:         decimal.NewFromInt(12),
			Unit:           &task,
			ExpectedVolume: &expectedTasks,
			ActualVolume:   &actualTasks,
			Month:          month,
		},
	}

	cnt := 0
	for _, cost := range costs {
		cost.CreatedBy = ownerID
		if err := repo.CreateCost(cost); err != nil {
			slog.Error("failed to insert demo cost", "error", err)
			continue
		}
		cnt++
	}

	slog.Info("demo costs inserted", "count", cnt)
}

func seedTasks(repo *repository.Repository, ownerID int64) {
	statuses := []domain.TaskStatus{
		domain.TaskStatusNew, domain.TaskStatusNew, domain.TaskStatusNew,
		domain.TaskStatusProgress, domain.TaskStatusProgress,
		domain.TaskStatusComplete,
	}

	cnt := 0
	for i, title := range demoTasks {
		task := &domain.Task{
			Title:     title,
			Status:    statuses[i%len(statuses)],
			CreatedBy: ownerID,
		}
		if err := repo.CreateTask(task); err != nil {
			slog.Error("failed to insert demo task", "error", err)
			continue
		}
		cnt++
	}

	slog.Info("demo tasks inserted", "count", cnt)
}

func seedLeads(repo *repository.Repository) {
	cnt := 0
	for _, l := range demoLeads {
		lead := &domain.RecruitmentLead{
			Name:   l.Name,
			Email:  l.Email,
			Phone:  l.Phone,
			Source: l.Source,
			Status: domain.LeadStatusNew,
		}
		if err := repo.CreateLead(lead); err != nil {
			slog.Error("failed to insert demo lead", "error", err)
			continue
		}
		cnt++
	}

	slog.Info("demo leads inserted", "count", cnt)
}

// SeedDemoAvailability submits a pending availability for the current week
// for the given user, so the review screens have something to show.
func SeedDemoAvailability(engine *availability.Engine, userID int64) {
	weekStart := availability.WeekStart(time.Now()).Format(availability.DateLayout)
	start, _ := time.Parse(availability.DateLayout, weekStart)

	selection := make([]string, 0)
	for _, date := range availability.WeekDates(start) {
		day := date.Format(availability.DateLayout)
		// a morning block and an afternoon block per day
		for idx := int32(9); idx < 13; idx++ {
			selection = append(selection, availability.EncodeSlotKey(day, idx))
		}
		for idx := int32(18); idx < 22; idx++ {
			selection = append(selection, availability.EncodeSlotKey(day, idx))
		}
	}

	if _, err := engine.Submit(userID, weekStart, selection); err != nil {
		slog.Error("failed to seed demo availability", "error", err)
		return
	}

	slog.Info("demo availability submitted", "userID", userID, "weekStart", weekStart)
}
