package service

import (
	"fmt"
	"math"

	"github.com/Rndynt/WealthWiseApp-sub001/internal/model"

	"github.com/shopspring/decimal"
)

// HealthReport is the weighted goal-coverage score for a workspace.
type HealthReport struct {
	OverallScore     float64  `json:"overallScore"`
	GoalContribution float64  `json:"goalContribution"`
	Recommendations  []string `json:"recommendations"`
}

// FinancialHealthService scores how well a workspace's active goals cover
// the four pillars: emergency buffer, debt reduction, savings, and investing.
type FinancialHealthService struct {
	Goals GoalLister
}

func NewFinancialHealthService(goals GoalLister) *FinancialHealthService {
	return &FinancialHealthService{Goals: goals}
}

var (
	savingsTypes    = []model.GoalType{model.GoalSavings, model.GoalVacation, model.GoalHouse, model.GoalEducation}
	investmentTypes = []model.GoalType{model.GoalInvestment, model.GoalRetirement}
)

// Score weighs active-goal progress: emergency fund 30%, debt payoff 25%,
// savings-like goals 25%, investment-like goals 20%. Category progress is
// clamped to [0,1] before weighting.
func (s *FinancialHealthService) Score(workspaceID uint) (*HealthReport, error) {
	goals, err := s.Goals.FindByWorkspaceID(workspaceID)
	if err != nil {
		return nil, err
	}

	var active []model.Goal
	for i := range goals {
		if goals[i].Status == model.GoalActive {
			active = append(active, goals[i])
		}
	}

	emergency := averageProgress(active, model.GoalEmergencyFund)
	debt := averageProgress(active, model.GoalDebtPayment)
	savings := averageProgress(active, savingsTypes...)
	investment := averageProgress(active, investmentTypes...)

	score := (emergency*0.30 + debt*0.25 + savings*0.25 + investment*0.20) * 100

	report := &HealthReport{
		OverallScore:     math.Round(score*100) / 100,
		GoalContribution: math.Round(score*100) / 100,
	}
	if !hasGoalLike(active, model.GoalEmergencyFund, "emergency fund") {
		report.Recommendations = append(report.Recommendations,
			"Create an emergency fund goal covering 3-6 months of expenses")
	}
	return report, nil
}

// averageProgress averages fractional progress across goals of the given
// types, clamped to [0,1]. No matching goals scores zero.
func averageProgress(goals []model.Goal, types ...model.GoalType) float64 {
	var sum float64
	var count int
	for i := range goals {
		if !containsGoalType(types, goals[i].Type) {
			continue
		}
		p := goals[i].Progress() / 100
		if p < 0 {
			p = 0
		}
		if p > 1 {
			p = 1
		}
		sum += p
		count++
	}
	if count == 0 {
		return 0
	}
	return sum / float64(count)
}

func containsGoalType(types []model.GoalType, t model.GoalType) bool {
	for _, candidate := range types {
		if candidate == t {
			return true
		}
	}
	return false
}

var minimumMonthlyPayment = decimal.NewFromInt(100)

// EstimatePayoffTimeline projects how long a debt takes to clear assuming
// 20% of disposable income goes to it, with a floor of 100 per month.
func EstimatePayoffTimeline(remaining, disposableIncome decimal.Decimal) string {
	payment := disposableIncome.Mul(decimal.NewFromFloat(0.2))
	if payment.LessThan(minimumMonthlyPayment) {
		payment = minimumMonthlyPayment
	}
	months := int(remaining.Div(payment).Ceil().IntPart())
	if months < 1 {
		months = 1
	}
	if months <= 12 {
		return fmt.Sprintf("%d months", months)
	}
	years := (months + 11) / 12
	return fmt.Sprintf("%d years", years)
}
